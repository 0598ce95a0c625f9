package model

import "time"

type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryWellness Category = "Wellness"
	CategoryShopping Category = "Shopping"
	CategoryFitness  Category = "Fitness"
	CategoryFood     Category = "Food"
)

// Time labels written by the mutation operations. The field is free
// text, not a structured time.
const (
	TimeJustNow   = "Just now"
	TimeCompleted = "Completed"
	TimeDefault   = "12:00 PM"
)

type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
	Completed bool      `json:"completed"`
	Time      string    `json:"time,omitempty"`
	Date      time.Time `json:"date"`

	// LogoUrl is an optional enrichment applied after creation. Never
	// required for correctness.
	LogoUrl string `json:"logoUrl,omitempty"`

	// IconName overrides the category's default icon for this task.
	IconName string `json:"iconName,omitempty"`

	Subtasks []Subtask `json:"subtasks,omitempty"`

	// IsBreakingDown is true only while a subtask-generation request
	// is outstanding for this task.
	IsBreakingDown bool `json:"isBreakingDown,omitempty"`
}
