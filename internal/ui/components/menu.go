package components

import (
	"strings"

	"github.com/abhisek/spellz/internal/ui/theme"
)

// MenuItem is a single numbered entry of a line-based menu.
type MenuItem struct {
	Key   string
	Label string
}

// Menu is a vertical list of keyed options.
type Menu struct {
	Title string
	Items []MenuItem
}

// NewMenu creates a new menu with the given items.
func NewMenu(title string, items []MenuItem) Menu {
	return Menu{Title: title, Items: items}
}

// Lookup returns the item whose key matches choice, ignoring case and
// surrounding space.
func (m Menu) Lookup(choice string) (MenuItem, bool) {
	choice = strings.ToLower(strings.TrimSpace(choice))
	for _, item := range m.Items {
		if strings.ToLower(item.Key) == choice {
			return item, true
		}
	}
	return MenuItem{}, false
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	if m.Title != "" {
		b.WriteString(theme.Title.Render(m.Title))
		b.WriteString("\n")
	}
	for _, item := range m.Items {
		b.WriteString("  ")
		b.WriteString(theme.MenuKey.Render(item.Key))
		b.WriteString("  ")
		b.WriteString(theme.Body.Render(item.Label))
		b.WriteString("\n")
	}
	return b.String()
}
