package mastery

// Category is an item's coarse mastery bucket, derived from its attempt history.
type Category string

const (
	CategoryMastered   Category = "mastered"
	CategoryAverage    Category = "average"
	CategoryStruggling Category = "struggling"
)

// AllCategories lists every category from most to least urgent.
var AllCategories = []Category{CategoryStruggling, CategoryAverage, CategoryMastered}

// ParseCategory maps a persisted category name to a Category.
// The second return value is false for unknown names.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryMastered, CategoryAverage, CategoryStruggling:
		return Category(s), true
	}
	return "", false
}

func (c Category) String() string {
	return string(c)
}

// Transition records a category change caused by a single attempt.
type Transition struct {
	Text string
	From Category
	To   Category
}
