package mastery

// Counters holds the mutable attempt statistics of a single item.
type Counters struct {
	RightCount int
	WrongCount int
	Asked      int
	Streak     int
}

// Record applies one completed attempt. A wrong answer resets the streak.
func (c *Counters) Record(correct bool) {
	c.Asked++
	if correct {
		c.RightCount++
		c.Streak++
		return
	}
	c.WrongCount++
	c.Streak = 0
}

// Percentage returns the share of correct answers in [0, 100].
func (c Counters) Percentage() float64 {
	if c.Asked == 0 {
		return 0
	}
	p := 100 * float64(c.RightCount) / float64(c.Asked)
	if p > 100 {
		return 100
	}
	return p
}

// Reset zeroes every counter.
func (c *Counters) Reset() {
	*c = Counters{}
}
