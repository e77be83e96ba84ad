package difficulty

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFrequencies(t *testing.T) {
	input := `# comment line

Apple 12
banana 3
apple 5
`
	table, err := ParseFrequencies(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseFrequencies: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
	if n, ok := table.Count("APPLE"); !ok || n != 17 {
		t.Errorf("Count(APPLE) = %d, %v; want 17, true", n, ok)
	}
	if _, ok := table.Count("cherry"); ok {
		t.Error("expected cherry to be unseen")
	}
}

func TestParseFrequencies_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing count", "apple\n", "line 1"},
		{"bad count", "apple 1\npear many\n", "line 2"},
		{"negative count", "apple -4\n", "line 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFrequencies(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFrequencyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freq.txt")
	if err := os.WriteFile(path, []byte("word 101\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadFrequencyFile(path)
	if err != nil {
		t.Fatalf("LoadFrequencyFile: %v", err)
	}
	if n, _ := table.Count("word"); n != 101 {
		t.Errorf("Count(word) = %d, want 101", n)
	}

	if _, err := LoadFrequencyFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultFrequencies(t *testing.T) {
	table := DefaultFrequencies()
	if table.Len() < 10000 {
		t.Errorf("embedded corpus has %d words, want at least 10000", table.Len())
	}
	if n, ok := table.Count("the"); !ok || n <= 100 {
		t.Errorf("Count(the) = %d, %v", n, ok)
	}
}
