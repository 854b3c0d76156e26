package models

// GoalSnapshot pins the daily goal that was in effect on a historical date.
// Once written for a date it never changes, so later goal edits cannot
// retroactively alter history percentages.
type GoalSnapshot struct {
	Date string `json:"date"` // YYYY-MM-DD, primary key
	Goal int    `json:"goal"`
}
