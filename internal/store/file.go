package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// archiveTimeLayout formats the timestamp of archived decks.
const archiveTimeLayout = "2006-01-02_15-04-05"

// FileDeck persists a deck as an indented JSON array at <dir>/<deck>.json.
type FileDeck struct {
	name string
	path string
	now  func() time.Time
}

// OpenFileDeck returns the JSON deck name stored under dir, creating dir
// if needed.
func OpenFileDeck(dir, name string) (*FileDeck, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return NewFileDeck(filepath.Join(dir, name+".json"), name), nil
}

// NewFileDeck returns the JSON deck name stored at path. The directory is
// created on the first Save.
func NewFileDeck(path, name string) *FileDeck {
	return &FileDeck{name: name, path: path, now: time.Now}
}

// Path returns the JSON file backing the deck.
func (d *FileDeck) Path() string {
	return d.path
}

// Load reads the deck. A missing file loads as an empty deck. A file that
// cannot be decoded is moved aside to <path>.corrupt-<timestamp> so the
// next Save does not overwrite it, and an error wrapping ErrMalformed is
// returned.
func (d *FileDeck) Load(ctx context.Context) ([]Record, error) {
	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		aside := d.path + ".corrupt-" + d.now().Format(archiveTimeLayout)
		if rerr := os.Rename(d.path, aside); rerr != nil {
			return nil, fmt.Errorf("%w: %s: %v (move aside: %v)", ErrMalformed, d.path, err, rerr)
		}
		return nil, fmt.Errorf("%w: %s: %v (moved to %s)", ErrMalformed, d.path, err, aside)
	}
	return records, nil
}

// Save writes the records atomically.
func (d *FileDeck) Save(ctx context.Context, records []Record) error {
	return writeRecordsFile(d.path, records)
}

// Archive renames the deck file to Archive-<deck>-<timestamp>.json in the
// same directory.
func (d *FileDeck) Archive(ctx context.Context) (string, error) {
	if _, err := os.Stat(d.path); errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	dst := archivePath(filepath.Dir(d.path), d.name, d.now())
	if err := os.Rename(d.path, dst); err != nil {
		return "", fmt.Errorf("archive deck: %w", err)
	}
	return dst, nil
}

func (d *FileDeck) Close() error {
	return nil
}

func archivePath(dir, deck string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("Archive-%s-%s.json", deck, t.Format(archiveTimeLayout)))
}

// encodeRecords renders records with four-space indentation and a trailing
// newline. The output is stable for equal input.
func encodeRecords(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode deck: %w", err)
	}
	return append(data, '\n'), nil
}

// writeRecordsFile encodes records into a temp file next to path and renames
// it into place, so a crash never leaves a half-written deck.
func writeRecordsFile(path string, records []Record) error {
	data, err := encodeRecords(records)
	if err != nil {
		return err
	}
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create deck dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write deck: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close deck: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace deck: %w", err)
	}
	return nil
}
