package mastery

const (
	// MinAttempts is the number of attempts needed before an item leaves
	// the Average bucket.
	MinAttempts = 3

	// MasteredPercentage and MasteredStreak must both be met for mastery.
	MasteredPercentage = 95.0
	MasteredStreak     = 4

	// StrugglingPercentage is the accuracy at or below which an item struggles.
	StrugglingPercentage = 80.0
)

// Classify maps attempt counters to a category. The mastered check runs
// before the struggling check.
func Classify(c Counters) Category {
	if c.Asked < MinAttempts {
		return CategoryAverage
	}

	pct := c.Percentage()
	switch {
	case pct >= MasteredPercentage && c.Streak > MasteredStreak:
		return CategoryMastered
	case pct <= StrugglingPercentage || c.WrongCount > c.RightCount:
		return CategoryStruggling
	default:
		return CategoryAverage
	}
}
