package difficulty

import "testing"

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"the", 1},
		{"make", 1},
		{"free", 1},
		{"jumped", 1},
		{"likes", 1},
		{"table", 2},
		{"wanted", 2},
		{"boxes", 2},
		{"yellow", 2},
		{"beautiful", 3},
		{"extraordinarily", 6},
		{"Rhythm", 1},
	}
	for _, tc := range tests {
		if got := CountSyllables(tc.word); got != tc.want {
			t.Errorf("CountSyllables(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}
