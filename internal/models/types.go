package models

import "time"

// ResponsibleAdult is the guardian account that owns child profiles.
type ResponsibleAdult struct {
	AdultID      int64
	Email        string
	Username     string
	PasswordHash string
}

// Child belongs to exactly one responsible adult. (AdultID, ChildName)
// is unique: one guardian cannot register two children with the same
// name, but different guardians may reuse a name.
type Child struct {
	ChildID   int64
	AdultID   int64
	ChildName string
	Gender    string
	Age       int
	Grade     int
}

// ActivityResult is one graded attempt at an activity. Rows are
// append-only; a child may have many rows for the same activity.
// Score is ternary: 1 correct, -1 incorrect, 0 skipped (no answer).
type ActivityResult struct {
	ResultID         int64
	ChildID          int64
	ActivityID       int
	GivenAnswer      *string
	IsCorrect        int
	Score            int
	IsCompleted      int
	TimeTakenSeconds *int
	CreatedAt        time.Time
}
