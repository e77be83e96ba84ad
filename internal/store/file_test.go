package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDeck_MissingLoadsEmpty(t *testing.T) {
	d, err := OpenFileDeck(filepath.Join(t.TempDir(), "nested"), "words")
	require.NoError(t, err)

	got, err := d.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileDeck_RoundTripIsByteIdentical(t *testing.T) {
	dir := t.TempDir()
	d, err := OpenFileDeck(dir, "words")
	require.NoError(t, err)
	ctx := context.Background()

	records := []Record{
		{Text: "rhythm", RightCount: 4, WrongCount: 1, Asked: 5, Streak: 3, Difficulty: ptr(2.3333333333333335), Category: ptr("average")},
		{Text: "give up", Difficulty: ptr(2.5), Category: ptr("struggling")},
	}
	require.NoError(t, d.Save(ctx, records))
	first, err := os.ReadFile(d.Path())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		loaded, err := d.Load(ctx)
		require.NoError(t, err)
		require.NoError(t, d.Save(ctx, loaded))
	}
	second, err := os.ReadFile(d.Path())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestFileDeck_Format(t *testing.T) {
	d, err := OpenFileDeck(t.TempDir(), "words")
	require.NoError(t, err)
	require.NoError(t, d.Save(context.Background(), []Record{{Text: "cat"}}))

	data, err := os.ReadFile(d.Path())
	require.NoError(t, err)
	want := `[
    {
        "text": "cat",
        "rightCount": 0,
        "wrongCount": 0,
        "asked": 0,
        "streak": 0,
        "difficulty": null,
        "category": null
    }
]
`
	assert.Equal(t, want, string(data))
}

func TestFileDeck_SaveEmpty(t *testing.T) {
	d, err := OpenFileDeck(t.TempDir(), "words")
	require.NoError(t, err)
	require.NoError(t, d.Save(context.Background(), nil))

	data, err := os.ReadFile(d.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestFileDeck_LegacyKeys(t *testing.T) {
	dir := t.TempDir()
	legacy := `[
    {"word": "necessary", "rightCount": 2, "wrongCount": 1, "asked": 3, "streak": 1},
    {"phrasal_verb": "look up", "rightCount": 0, "wrongCount": 0, "asked": 0, "streak": 0, "difficulty": 3.75, "category": "average"}
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words.json"), []byte(legacy), 0o644))

	d, err := OpenFileDeck(dir, "words")
	require.NoError(t, err)
	got, err := d.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "necessary", got[0].Text)
	assert.Equal(t, 3, got[0].Asked)
	assert.Nil(t, got[0].Difficulty)
	assert.Nil(t, got[0].Category)

	assert.Equal(t, "look up", got[1].Text)
	require.NotNil(t, got[1].Difficulty)
	assert.Equal(t, 3.75, *got[1].Difficulty)
}

func TestFileDeck_MalformedMovedAside(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	d, err := OpenFileDeck(dir, "words")
	require.NoError(t, err)
	d.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC) }

	_, err = d.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "malformed file should be moved")
	_, statErr = os.Stat(path + ".corrupt-2024-03-09_14-05-06")
	assert.NoError(t, statErr)
}

func TestFileDeck_Archive(t *testing.T) {
	dir := t.TempDir()
	d, err := OpenFileDeck(dir, "phrasal_verbs")
	require.NoError(t, err)
	d.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	ctx := context.Background()

	path, err := d.Archive(ctx)
	require.NoError(t, err)
	assert.Empty(t, path)

	require.NoError(t, d.Save(ctx, []Record{{Text: "give up"}}))
	path, err = d.Archive(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Archive-phrasal_verbs-2025-01-02_03-04-05.json"), path)

	_, statErr := os.Stat(d.Path())
	assert.True(t, os.IsNotExist(statErr))

	got, err := d.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewFileDeck_CreatesDirOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "mine.json")
	d := NewFileDeck(path, "words")
	require.NoError(t, d.Save(context.Background(), []Record{{Text: "cat"}}))

	got, err := d.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "cat", got[0].Text)
	assert.Equal(t, path, d.Path())
}
