package vocab

import (
	"testing"

	"github.com/abhisek/spellz/internal/mastery"
)

func TestRecordAttempt_Transitions(t *testing.T) {
	it := &Item{Text: "rhythm", Category: mastery.CategoryAverage}

	// Two misses stay Average: not enough data yet.
	if tr := it.RecordAttempt(false); tr != nil {
		t.Fatalf("unexpected transition %+v", tr)
	}
	if tr := it.RecordAttempt(false); tr != nil {
		t.Fatalf("unexpected transition %+v", tr)
	}

	tr := it.RecordAttempt(true)
	if tr == nil {
		t.Fatal("expected transition on third attempt")
	}
	if tr.From != mastery.CategoryAverage || tr.To != mastery.CategoryStruggling || tr.Text != "rhythm" {
		t.Errorf("transition = %+v", tr)
	}
	if it.Asked != 3 || it.RightCount != 1 || it.WrongCount != 2 || it.Streak != 1 {
		t.Errorf("counters = %+v", it.Counters)
	}
}

func TestRecordAttempt_ReachesMastered(t *testing.T) {
	it := &Item{Text: "cat", Category: mastery.CategoryAverage}
	var last *mastery.Transition
	for i := 0; i < 5; i++ {
		if tr := it.RecordAttempt(true); tr != nil {
			last = tr
		}
	}
	if it.Category != mastery.CategoryMastered {
		t.Fatalf("category = %s, want mastered", it.Category)
	}
	if last == nil || last.To != mastery.CategoryMastered {
		t.Errorf("last transition = %+v", last)
	}
}

func TestMatches(t *testing.T) {
	it := &Item{Text: "put up with"}
	tests := []struct {
		answer string
		want   bool
	}{
		{"put up with", true},
		{"  Put Up  With ", true},
		{"PUT UP WITH", true},
		{"put upwith", false},
		{"put up", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := it.Matches(tc.answer); got != tc.want {
			t.Errorf("Matches(%q) = %v, want %v", tc.answer, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"  Hello ":          "hello",
		"LOOK\tUP":          "look up",
		"get  away   with ": "get away with",
		"":                  "",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
