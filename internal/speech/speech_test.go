package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_None(t *testing.T) {
	log, _ := test.NewNullLogger()
	s, err := New(Config{Engine: EngineNone}, log)
	require.NoError(t, err)
	assert.IsType(t, Silent{}, s)
	assert.NoError(t, s.Speak(context.Background(), "anything"))
}

func TestNew_UnknownEngine(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := New(Config{Engine: "festival"}, log)
	assert.Error(t, err)
}

func TestNew_MissingCommand(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := New(Config{Engine: EngineCommand, Command: "definitely-not-a-real-binary-xyz"}, log)
	assert.Error(t, err)
}

func TestAudioName(t *testing.T) {
	name := audioName(" Give up ")
	assert.True(t, strings.HasPrefix(name, "give_up_"), name)
	assert.Equal(t, name, audioName("give up"), "case and outer spaces do not matter")
	assert.NotEqual(t, name, audioName("give-up"))
	assert.NotEqual(t, audioName("don't"), audioName("don_t"))

	long := audioName(strings.Repeat("antidisestablishmentarianism ", 20))
	assert.LessOrEqual(t, len(long), 64)
	assert.NotEqual(t, long, audioName(strings.Repeat("antidisestablishmentarianism ", 21)))

	// Multi-byte letters are kept whole.
	assert.True(t, strings.HasPrefix(audioName("café"), "café_"))
}

func TestGoogle_FetchCaches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "look up", r.URL.Query().Get("q"))
		assert.Equal(t, "en", r.URL.Query().Get("tl"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte("ID3fake-mp3"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	g := NewGoogle(dir, "", []string{"true"})
	g.baseURL = srv.URL

	var played []string
	g.play = func(_ context.Context, path string) error {
		played = append(played, path)
		return nil
	}

	ctx := context.Background()
	require.NoError(t, g.Speak(ctx, "look up"))
	require.NoError(t, g.Speak(ctx, "look up"))

	assert.Equal(t, int32(1), hits.Load(), "second call served from cache")
	require.Len(t, played, 2)
	assert.Equal(t, filepath.Join(dir, "en_"+audioName("look up")+".mp3"), played[0])

	data, err := os.ReadFile(played[0])
	require.NoError(t, err)
	assert.Equal(t, "ID3fake-mp3", string(data))
}

func TestGoogle_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	dir := t.TempDir()
	g := NewGoogle(dir, "en", []string{"true"})
	g.baseURL = srv.URL

	_, err := g.Fetch(context.Background(), "rhythm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no partial downloads left behind")
}

func TestCommand_Speak(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out := filepath.Join(t.TempDir(), "spoken.txt")
	c := NewCommand("sh", "-c", `printf '%s' "$1" > "$0"`, out)

	require.NoError(t, c.Speak(context.Background(), "give up"))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "give up", string(data))
}

func TestCommand_Failure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	c := NewCommand("sh", "-c", "echo broken >&2; exit 3")
	err := c.Speak(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
