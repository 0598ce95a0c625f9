// Package category holds the static registry of task categories and
// their visual themes. Loaded once, never mutated.
package category

import "github.com/phenomvv/aetherapp/internal/model"

const DefaultIcon = "Briefcase"

type Theme struct {
	Name           model.Category `json:"name"`
	Color          string         `json:"color"`
	BgColor        string         `json:"bgColor"`
	Icon           string         `json:"icon"`
	SuggestedIcons []string       `json:"suggestedIcons"`
}

// Registry lists every category in display order. Grouping and
// per-category aggregates follow this order, not alphabetical.
var Registry = []Theme{
	{
		Name:    model.CategoryWork,
		Color:   "#818CF8",
		BgColor: "rgba(129, 140, 248, 0.1)",
		Icon:    "Briefcase",
		SuggestedIcons: []string{
			"Briefcase", "Code", "Terminal", "Mail", "Book",
			"Presentation", "FileText", "Zap", "Star",
		},
	},
	{
		Name:    model.CategoryPersonal,
		Color:   "#C084FC",
		BgColor: "rgba(192, 132, 252, 0.1)",
		Icon:    "User",
		SuggestedIcons: []string{
			"User", "Home", "Camera", "Tv", "Gamepad2", "Music",
			"Film", "Plane", "MapPin", "Star", "Bookmark",
		},
	},
	{
		Name:    model.CategoryWellness,
		Color:   "#2DD4BF",
		BgColor: "rgba(45, 212, 191, 0.1)",
		Icon:    "Heart",
		SuggestedIcons: []string{
			"Heart", "Moon", "Zap", "Wind", "Sun", "Droplets",
			"Soup", "Carrot", "Apple", "Activity",
		},
	},
	{
		Name:    model.CategoryShopping,
		Color:   "#F472B6",
		BgColor: "rgba(244, 114, 182, 0.1)",
		Icon:    "ShoppingCart",
		SuggestedIcons: []string{
			"ShoppingCart", "CreditCard", "Package", "Tag", "Gift",
			"Car", "Apple", "Star",
		},
	},
	{
		Name:    model.CategoryFitness,
		Color:   "#FB923C",
		BgColor: "rgba(251, 146, 60, 0.1)",
		Icon:    "Activity",
		SuggestedIcons: []string{
			"Activity", "Dumbbell", "Zap", "Heart", "Carrot",
			"MapPin", "Wind", "Sun",
		},
	},
	{
		Name:    model.CategoryFood,
		Color:   "#FCD34D",
		BgColor: "rgba(252, 211, 77, 0.1)",
		Icon:    "Utensils",
		SuggestedIcons: []string{
			"Utensils", "UtensilsCrossed", "Salad", "Pizza", "Coffee",
			"IceCream", "Candy", "Beer", "Wine", "GlassWater",
			"Apple", "Carrot", "Soup",
		},
	},
}

var knownIcons = func() map[string]bool {
	m := map[string]bool{}
	for _, theme := range Registry {
		for _, icon := range theme.SuggestedIcons {
			m[icon] = true
		}
	}
	m["Trash2"] = true
	return m
}()

// ThemeFor returns the theme for a category. Unknown categories fall
// back to the first registry entry; the category value on the task
// itself is left alone.
func ThemeFor(c model.Category) Theme {
	for _, theme := range Registry {
		if theme.Name == c {
			return theme
		}
	}
	return Registry[0]
}

// IconByName resolves a display icon name, falling back to the default
// icon when the name is unrecognized.
func IconByName(name string) string {
	if knownIcons[name] {
		return name
	}
	return DefaultIcon
}

func IsValid(c model.Category) bool {
	for _, theme := range Registry {
		if theme.Name == c {
			return true
		}
	}
	return false
}

func Names() []model.Category {
	out := make([]model.Category, 0, len(Registry))
	for _, theme := range Registry {
		out = append(out, theme.Name)
	}
	return out
}
