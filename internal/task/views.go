package task

import (
	"math"
	"strings"

	"github.com/phenomvv/aetherapp/internal/category"
	"github.com/phenomvv/aetherapp/internal/model"
)

// Tab selects which slice of the collection the dashboard shows.
type Tab string

const (
	TabToday     Tab = "Today"
	TabUpcoming  Tab = "Upcoming"
	TabCompleted Tab = "Completed"
)

type Group struct {
	Category model.Category `json:"category"`
	Color    string         `json:"color"`
	Tasks    []model.Task   `json:"tasks"`
}

// DashboardGroups filters by tab ("Today" = incomplete, "Completed" =
// completed, anything else = all), then by a case-insensitive title
// search, then groups by category in registry order. Empty groups are
// omitted.
func DashboardGroups(tasks []model.Task, tab Tab, search string) []Group {
	search = strings.ToLower(strings.TrimSpace(search))

	byCat := map[model.Category][]model.Task{}
	for _, t := range tasks {
		switch tab {
		case TabToday:
			if t.Completed {
				continue
			}
		case TabCompleted:
			if !t.Completed {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
			continue
		}
		byCat[t.Category] = append(byCat[t.Category], t)
	}

	out := []Group{}
	for _, theme := range category.Registry {
		if ts := byCat[theme.Name]; len(ts) > 0 {
			out = append(out, Group{Category: theme.Name, Color: theme.Color, Tasks: ts})
		}
	}
	return out
}

type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// DailyProgress computes the progress indicator over the whole
// collection.
func DailyProgress(tasks []model.Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}

type CategoryCount struct {
	Name  model.Category `json:"name"`
	Value int            `json:"value"`
	Color string         `json:"color"`
}

type TrendPoint struct {
	Day       string `json:"day"`
	Completed int    `json:"completed"`
}

type Stats struct {
	Total          int             `json:"total"`
	Completed      int             `json:"completed"`
	CompletionRate int             `json:"completionRate"`
	Categories     []CategoryCount `json:"categories"`

	// WeeklyTrend is presentation-only filler around today's live
	// completed count; there is no historical tracking behind it.
	WeeklyTrend []TrendPoint `json:"weeklyTrend"`
}

// Analytics computes the aggregates for the stats screen. Categories
// with zero tasks are excluded; the completion rate is 0 for an empty
// collection.
func Analytics(tasks []model.Task) Stats {
	p := DailyProgress(tasks)

	st := Stats{
		Total:          p.Total,
		Completed:      p.Completed,
		CompletionRate: p.Percent,
		Categories:     []CategoryCount{},
	}

	for _, theme := range category.Registry {
		n := 0
		for _, t := range tasks {
			if t.Category == theme.Name {
				n++
			}
		}
		if n > 0 {
			st.Categories = append(st.Categories, CategoryCount{
				Name:  theme.Name,
				Value: n,
				Color: theme.Color,
			})
		}
	}

	st.WeeklyTrend = []TrendPoint{
		{Day: "Mon", Completed: 4},
		{Day: "Tue", Completed: 7},
		{Day: "Wed", Completed: 5},
		{Day: "Thu", Completed: 8},
		{Day: "Fri", Completed: p.Completed},
		{Day: "Sat", Completed: 3},
		{Day: "Sun", Completed: 2},
	}
	return st
}
