package models

// Category groups for the dashboard pie and the budget summary. Categories
// not claimed by any group fall into the fallback group.
const (
	GroupEssentials    = "Essentials"
	GroupLifestyle     = "Lifestyle"
	GroupTransport     = "Transport"
	GroupSubscriptions = "Subscriptions"
	GroupFallback      = "Other"
)

// Category is a spending label as it appears in the sheet's category column.
type Category struct {
	Name  string `json:"name"`
	Group string `json:"group"`
}

// CategoryGroup is a named set of categories.
type CategoryGroup struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// DefaultCategoryGroups is the built-in taxonomy, seedable into the mirror.
func DefaultCategoryGroups() []CategoryGroup {
	return []CategoryGroup{
		{Name: GroupEssentials, Categories: []string{"Groceries", "Rent", "Utilities", "Insurance", "Healthcare"}},
		{Name: GroupLifestyle, Categories: []string{"Dining", "Entertainment", "Shopping", "Travel", "Gifts"}},
		{Name: GroupTransport, Categories: []string{"Gas", "Transit", "Parking", "Car Maintenance"}},
		{Name: GroupSubscriptions, Categories: []string{"Streaming", "Software", "Memberships"}},
	}
}

// GroupForCategory returns the group a category belongs to, with the
// fallback group for unknown or empty categories.
func GroupForCategory(groups []CategoryGroup, category string) string {
	if category == "" {
		return GroupFallback
	}
	for _, g := range groups {
		for _, c := range g.Categories {
			if c == category {
				return g.Name
			}
		}
	}
	return GroupFallback
}

// KnownCategories flattens a taxonomy into the set of claimed category names.
func KnownCategories(groups []CategoryGroup) []string {
	var names []string
	for _, g := range groups {
		names = append(names, g.Categories...)
	}
	return names
}
