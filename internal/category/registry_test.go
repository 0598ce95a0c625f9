package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenomvv/aetherapp/internal/model"
)

func TestRegistry_DisplayOrder(t *testing.T) {
	assert.Equal(t, []model.Category{
		model.CategoryWork, model.CategoryPersonal, model.CategoryWellness,
		model.CategoryShopping, model.CategoryFitness, model.CategoryFood,
	}, Names())
}

func TestThemeFor(t *testing.T) {
	theme := ThemeFor(model.CategoryFood)
	assert.Equal(t, "#FCD34D", theme.Color)
	assert.Equal(t, "Utensils", theme.Icon)

	// Unknown categories get the first theme so rendering never breaks.
	fallback := ThemeFor(model.Category("Chores"))
	assert.Equal(t, model.CategoryWork, fallback.Name)
}

func TestIconByName(t *testing.T) {
	assert.Equal(t, "Pizza", IconByName("Pizza"))
	assert.Equal(t, "Trash2", IconByName("Trash2"))
	assert.Equal(t, DefaultIcon, IconByName("NotAnIcon"))
	assert.Equal(t, DefaultIcon, IconByName(""))
}

func TestIsValid(t *testing.T) {
	for _, name := range Names() {
		assert.True(t, IsValid(name), "category %s", name)
	}
	assert.False(t, IsValid(model.Category("Chores")))
	assert.False(t, IsValid(model.Category("")))
	assert.False(t, IsValid(model.Category("work")), "category names are case sensitive")
}

func TestRegistry_EveryThemeIsComplete(t *testing.T) {
	for _, theme := range Registry {
		require.NotEmpty(t, theme.Color, "category %s", theme.Name)
		require.NotEmpty(t, theme.BgColor, "category %s", theme.Name)
		require.NotEmpty(t, theme.Icon, "category %s", theme.Name)
		require.NotEmpty(t, theme.SuggestedIcons, "category %s", theme.Name)
		assert.Contains(t, theme.SuggestedIcons, theme.Icon,
			"default icon for %s should be suggestable", theme.Name)
	}
}
