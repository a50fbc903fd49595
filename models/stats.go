package models

import "time"

// Stats aggregates the card collection in a single pass. NewCards,
// LearningCards and MasteredCards always sum to TotalCards.
type Stats struct {
	TotalCards    int `json:"total_cards"`
	DueToday      int `json:"due_today"`
	DueThisWeek   int `json:"due_this_week"`
	NewCards      int `json:"new_cards"`
	LearningCards int `json:"learning_cards"`
	MasteredCards int `json:"mastered_cards"`
}

// ReviewRecord is one entry of the review history: the grade given to a card
// and the schedule that resulted from it.
type ReviewRecord struct {
	ID           int64     `json:"id"`
	Identity     string    `json:"identity"`
	Quality      Quality   `json:"quality"`
	IntervalDays int       `json:"interval_days"`
	EaseFactor   float64   `json:"ease_factor"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}

// ReviewFilter narrows a review-history listing. Zero values mean "no
// constraint"; Limit <= 0 falls back to a repository default.
type ReviewFilter struct {
	Identity string
	Since    time.Time
	Until    time.Time
	Limit    int
}
