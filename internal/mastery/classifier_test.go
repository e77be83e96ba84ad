package mastery

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		c    Counters
		want Category
	}{
		{"no attempts", Counters{}, CategoryAverage},
		{"two wrong answers", Counters{Asked: 2, WrongCount: 2}, CategoryAverage},
		{"two right answers", Counters{Asked: 2, RightCount: 2, Streak: 2}, CategoryAverage},
		{"perfect with long streak", Counters{Asked: 3, RightCount: 3, Streak: 5}, CategoryMastered},
		{"perfect with short streak", Counters{Asked: 4, RightCount: 4, Streak: 4}, CategoryAverage},
		{"sixty percent", Counters{Asked: 5, RightCount: 3, WrongCount: 2}, CategoryStruggling},
		{"exactly eighty percent", Counters{Asked: 5, RightCount: 4, WrongCount: 1, Streak: 3}, CategoryStruggling},
		{"ninety percent", Counters{Asked: 10, RightCount: 9, WrongCount: 1, Streak: 2}, CategoryAverage},
		{"ninety five percent streak five", Counters{Asked: 20, RightCount: 19, WrongCount: 1, Streak: 5}, CategoryMastered},
		{"mostly wrong", Counters{Asked: 3, RightCount: 1, WrongCount: 2}, CategoryStruggling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.c); got != tt.want {
				t.Errorf("Classify(%+v) = %s, want %s", tt.c, got, tt.want)
			}
		})
	}
}

func TestClassify_MasteredBoundary(t *testing.T) {
	c := Counters{Asked: 100, RightCount: 95, WrongCount: 5, Streak: MasteredStreak + 1}
	if got := Classify(c); got != CategoryMastered {
		t.Errorf("95%% with streak %d: got %s, want mastered", c.Streak, got)
	}
	c.Streak = MasteredStreak
	if got := Classify(c); got != CategoryAverage {
		t.Errorf("95%% with streak %d: got %s, want average", c.Streak, got)
	}
}

func TestClassify_MasteredCheckedBeforeStruggling(t *testing.T) {
	// Hand-edited decks can carry counters that satisfy both rules.
	c := Counters{Asked: 20, RightCount: 19, WrongCount: 25, Streak: 6}
	if c.WrongCount <= c.RightCount {
		t.Fatal("counters must also satisfy the struggling rule")
	}
	if got := Classify(c); got != CategoryMastered {
		t.Errorf("got %s, want mastered", got)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories {
		got, ok := ParseCategory(string(c))
		if !ok || got != c {
			t.Errorf("ParseCategory(%q) = %q, %v", c, got, ok)
		}
	}
	if _, ok := ParseCategory("expert"); ok {
		t.Error("expected unknown category to be rejected")
	}
}
