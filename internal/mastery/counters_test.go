package mastery

import "testing"

func TestPercentage_NoAttempts(t *testing.T) {
	var c Counters
	if got := c.Percentage(); got != 0 {
		t.Errorf("Percentage() = %v, want 0", got)
	}
}

func TestPercentage_Bounds(t *testing.T) {
	for asked := 1; asked <= 12; asked++ {
		for right := 0; right <= asked; right++ {
			c := Counters{Asked: asked, RightCount: right, WrongCount: asked - right}
			got := c.Percentage()
			want := 100 * float64(right) / float64(asked)
			if got != want {
				t.Errorf("asked=%d right=%d: got %v, want %v", asked, right, got, want)
			}
			if got < 0 || got > 100 {
				t.Errorf("asked=%d right=%d: %v out of range", asked, right, got)
			}
		}
	}
}

func TestRecord_Wrong(t *testing.T) {
	c := Counters{Asked: 4, RightCount: 4, Streak: 4}
	c.Record(false)

	if c.Streak != 0 {
		t.Errorf("Streak = %d, want 0", c.Streak)
	}
	if c.WrongCount != 1 {
		t.Errorf("WrongCount = %d, want 1", c.WrongCount)
	}
	if c.Asked != 5 {
		t.Errorf("Asked = %d, want 5", c.Asked)
	}
	if c.RightCount != 4 {
		t.Errorf("RightCount = %d, want 4", c.RightCount)
	}
}

func TestRecord_Correct(t *testing.T) {
	c := Counters{Asked: 2, RightCount: 1, WrongCount: 1, Streak: 1}
	c.Record(true)

	if c.Streak != 2 {
		t.Errorf("Streak = %d, want 2", c.Streak)
	}
	if c.RightCount != 2 {
		t.Errorf("RightCount = %d, want 2", c.RightCount)
	}
	if c.Asked != 3 {
		t.Errorf("Asked = %d, want 3", c.Asked)
	}
}

func TestRecord_KeepsAskedInSync(t *testing.T) {
	var c Counters
	for i, correct := range []bool{true, false, true, true, false, true} {
		c.Record(correct)
		if c.Asked != i+1 {
			t.Fatalf("Asked = %d after %d attempts", c.Asked, i+1)
		}
		if c.RightCount+c.WrongCount != c.Asked {
			t.Fatalf("right+wrong = %d, asked = %d", c.RightCount+c.WrongCount, c.Asked)
		}
	}
	if c.Streak != 1 {
		t.Errorf("Streak = %d, want 1", c.Streak)
	}
}
