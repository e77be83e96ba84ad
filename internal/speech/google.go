package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	googleTTSURL      = "https://translate.google.com/translate_tts"
	ttsRequestTimeout = 10 * time.Second

	// maxSlugRunes bounds the readable part of a cached file name.
	maxSlugRunes = 32
)

// Google speaks by downloading an mp3 from Google Translate's text-to-speech
// endpoint and playing it with a local player. Downloads are cached in dir,
// so each item is fetched once.
type Google struct {
	baseURL string
	lang    string
	dir     string
	player  []string
	client  *http.Client
	play    func(ctx context.Context, path string) error
}

// NewGoogle returns a Google speaker caching audio in dir and playing it
// with the player command line.
func NewGoogle(dir, lang string, player []string) *Google {
	if lang == "" {
		lang = "en"
	}
	g := &Google{
		baseURL: googleTTSURL,
		lang:    lang,
		dir:     dir,
		player:  player,
		client:  &http.Client{Timeout: ttsRequestTimeout},
	}
	g.play = g.runPlayer
	return g
}

func (g *Google) Speak(ctx context.Context, text string) error {
	path, err := g.Fetch(ctx, text)
	if err != nil {
		return err
	}
	return g.play(ctx, path)
}

// Fetch returns the cached audio file for text, downloading it first if
// needed.
func (g *Google) Fetch(ctx context.Context, text string) (string, error) {
	path := filepath.Join(g.dir, fmt.Sprintf("%s_%s.mp3", g.lang, audioName(text)))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}
	if err := g.download(ctx, text, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}
	return path, nil
}

func (g *Google) download(ctx context.Context, text, path string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", g.lang)
	params.Set("client", "tw-ob")
	params.Set("textlen", strconv.Itoa(len(text)))

	ctx, cancel := context.WithTimeout(ctx, ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// Google rejects requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(g.dir, ".download-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

func (g *Google) runPlayer(ctx context.Context, path string) error {
	return run(ctx, g.player[0], append(append([]string{}, g.player[1:]...), path)...)
}

// audioName turns text into a file name component: a short readable slug
// followed by a hash of the text, so distinct texts never share a file.
func audioName(text string) string {
	key := strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	n := 0
	for _, r := range key {
		if n == maxSlugRunes {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
		n++
	}
	sum := sha256.Sum256([]byte(key))
	return b.String() + "_" + hex.EncodeToString(sum[:5])
}
