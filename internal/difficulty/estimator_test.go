package difficulty

import (
	"math"
	"strings"
	"testing"
)

func TestLengthScore(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"a", 1},
		{"four", 1},
		{"seven", 2},
		{"seventy", 2},
		{"eighteen", 3},
		{"dictionary", 3},
		{"accommodate", 4},
		{"extraordinarily", 4},
	}
	for _, tc := range tests {
		if got := LengthScore(tc.word); got != tc.want {
			t.Errorf("LengthScore(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestCompositionalScore(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{1, 2},
		{2, 3},
		{3, 4},
		{4, 5},
		{7, 5},
	}
	for _, tc := range tests {
		if got := CompositionalScore(tc.words); got != tc.want {
			t.Errorf("CompositionalScore(%d) = %d, want %d", tc.words, got, tc.want)
		}
	}
}

func TestSyllableScore(t *testing.T) {
	tests := []struct {
		total int
		multi bool
		want  int
	}{
		{1, false, 1},
		{2, false, 1},
		{3, false, 2},
		{4, false, 2},
		{5, false, 3},
		{3, true, 1},
		{4, true, 2},
		{5, true, 2},
		{6, true, 3},
	}
	for _, tc := range tests {
		if got := SyllableScore(tc.total, tc.multi); got != tc.want {
			t.Errorf("SyllableScore(%d, %v) = %d, want %d", tc.total, tc.multi, got, tc.want)
		}
	}
}

func TestFrequencyScore(t *testing.T) {
	e := NewEstimator(nil)
	tests := []struct {
		word string
		want int
	}{
		{"the", 1},
		{"people", 1},
		{"achieve", 2},
		{"rhythm", 3},
		{"zzyzx", 4},
	}
	for _, tc := range tests {
		if got := e.FrequencyScore(tc.word); got != tc.want {
			t.Errorf("FrequencyScore(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestFrequencyScore_EverydayWords(t *testing.T) {
	e := NewEstimator(nil)
	for _, w := range []string{"friend", "believe", "beautiful", "because", "tomorrow", "necessary", "separate", "definitely", "receive"} {
		if got := e.FrequencyScore(w); got >= maxFrequencyScore {
			t.Errorf("FrequencyScore(%q) = %d, want below %d", w, got, maxFrequencyScore)
		}
	}
}

func TestEstimate_KnownWords(t *testing.T) {
	e := NewEstimator(nil)
	tests := []struct {
		text string
		want float64
	}{
		// length 1, phonetic 2, frequency 1, syllable 1
		{"the", 5.0 / 15 * 5},
		// every factor at its maximum
		{"extraordinarily", 5},
		// compositional 3, phonetic 2, syllable 1
		{"give up", 6.0 / 12 * 5},
	}
	for _, tc := range tests {
		got := e.Estimate(tc.text)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Estimate(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestEstimate_Range(t *testing.T) {
	e := NewEstimator(nil)
	inputs := []string{
		"a", "I", "cat", "rhythm", "necessary", "Mississippi",
		"onomatopoeia", "look up", "put up with", "get away with it now please",
		"", "   ", "!!!",
	}
	for _, in := range inputs {
		d := e.Estimate(in)
		if d < MinDifficulty || d > MaxDifficulty {
			t.Errorf("Estimate(%q) = %v, outside [%v, %v]", in, d, MinDifficulty, MaxDifficulty)
		}
	}
}

func TestBreakdown_SingleVsMultiWord(t *testing.T) {
	e := NewEstimator(nil)

	single := e.Breakdown("accommodate")
	if single.MultiWord || single.Max != SingleWordMax {
		t.Errorf("single word breakdown = %+v", single)
	}

	multi := e.Breakdown("  Look   UP ")
	if !multi.MultiWord || multi.Max != MultiWordMax {
		t.Errorf("multi word breakdown = %+v", multi)
	}
	if multi.Frequency != 0 {
		t.Errorf("multi word frequency = %d, want 0", multi.Frequency)
	}
	if multi.Length != 3 {
		t.Errorf("multi word compositional = %d, want 3", multi.Length)
	}
}

func TestEstimate_CustomFrequencies(t *testing.T) {
	table, err := ParseFrequencies(strings.NewReader("zzyzx 500\n"))
	if err != nil {
		t.Fatal(err)
	}
	common := NewEstimator(table).Estimate("zzyzx")
	rare := NewEstimator(nil).Estimate("zzyzx")
	if common >= rare {
		t.Errorf("common estimate %v should be below rare estimate %v", common, rare)
	}
}

func TestWords(t *testing.T) {
	got := Words(`  "Put" UP, with!  -- `)
	want := []string{"put", "up", "with"}
	if len(got) != len(want) {
		t.Fatalf("Words = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
