package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenomvv/aetherapp/internal/model"
)

func fiveTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "Q4 Product Roadmap", Category: model.CategoryWork},
		{ID: "2", Title: "Review client feedback", Category: model.CategoryWork, Completed: true},
		{ID: "3", Title: "Grocery shopping", Category: model.CategoryPersonal},
		{ID: "4", Title: "Morning meditation", Category: model.CategoryWellness, Completed: true},
		{ID: "5", Title: "Starbucks", Category: model.CategoryFood},
	}
}

func TestDashboardGroups_TodayShowsOnlyIncomplete(t *testing.T) {
	groups := DashboardGroups(fiveTasks(), TabToday, "")

	total := 0
	for _, g := range groups {
		for _, task := range g.Tasks {
			assert.False(t, task.Completed)
			total++
		}
	}
	assert.Equal(t, 3, total)
}

func TestDashboardGroups_CompletedTab(t *testing.T) {
	groups := DashboardGroups(fiveTasks(), TabCompleted, "")

	total := 0
	for _, g := range groups {
		for _, task := range g.Tasks {
			assert.True(t, task.Completed)
			total++
		}
	}
	assert.Equal(t, 2, total)
}

func TestDashboardGroups_UpcomingIsUnfiltered(t *testing.T) {
	groups := DashboardGroups(fiveTasks(), TabUpcoming, "")

	total := 0
	for _, g := range groups {
		total += len(g.Tasks)
	}
	assert.Equal(t, 5, total)
}

func TestDashboardGroups_RegistryOrderAndNoEmptyGroups(t *testing.T) {
	// Store order deliberately interleaves categories.
	tasks := []model.Task{
		{ID: "1", Title: "lunch", Category: model.CategoryFood},
		{ID: "2", Title: "deploy", Category: model.CategoryWork},
		{ID: "3", Title: "dinner", Category: model.CategoryFood},
	}

	groups := DashboardGroups(tasks, TabUpcoming, "")
	require.Len(t, groups, 2)
	assert.Equal(t, model.CategoryWork, groups[0].Category)
	assert.Equal(t, model.CategoryFood, groups[1].Category)
	assert.Len(t, groups[1].Tasks, 2)
}

func TestDashboardGroups_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	groups := DashboardGroups(fiveTasks(), TabUpcoming, "ROADMAP")

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Tasks, 1)
	assert.Equal(t, "Q4 Product Roadmap", groups[0].Tasks[0].Title)

	assert.Empty(t, DashboardGroups(fiveTasks(), TabUpcoming, "no such task"))
}

func TestDailyProgress(t *testing.T) {
	p := DailyProgress(fiveTasks())
	assert.Equal(t, 5, p.Total)
	assert.Equal(t, 2, p.Completed)
	assert.Equal(t, 40, p.Percent)

	empty := DailyProgress(nil)
	assert.Equal(t, 0, empty.Percent)
}

func TestAnalytics_CompletionRate(t *testing.T) {
	assert.Equal(t, 0, Analytics(nil).CompletionRate)

	three := []model.Task{
		{ID: "1", Category: model.CategoryWork, Completed: true},
		{ID: "2", Category: model.CategoryWork},
		{ID: "3", Category: model.CategoryFood},
	}
	st := Analytics(three)
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 1, st.Completed)
	assert.Equal(t, 33, st.CompletionRate)
}

func TestAnalytics_CategoryCountsExcludeZeros(t *testing.T) {
	st := Analytics(fiveTasks())

	names := make([]model.Category, 0, len(st.Categories))
	for _, c := range st.Categories {
		assert.Greater(t, c.Value, 0)
		names = append(names, c.Name)
	}
	// Registry order: Work, Personal, Wellness, Food. Shopping and
	// Fitness have no tasks and are omitted.
	assert.Equal(t, []model.Category{
		model.CategoryWork, model.CategoryPersonal,
		model.CategoryWellness, model.CategoryFood,
	}, names)
}

func TestAnalytics_WeeklyTrendCarriesLiveCompletedCount(t *testing.T) {
	st := Analytics(fiveTasks())
	require.Len(t, st.WeeklyTrend, 7)
	assert.Equal(t, "Fri", st.WeeklyTrend[4].Day)
	assert.Equal(t, 2, st.WeeklyTrend[4].Completed)
}
