package models

import "time"

// InitialEaseFactor is the ease factor assigned to a newly registered card.
const InitialEaseFactor = 2.5

// MinEaseFactor is the floor below which the ease factor never drops.
const MinEaseFactor = 1.3

// MasteryThresholdDays marks the review cadence at which a card counts as
// mastered: once the interval exceeds three weeks the word is retained at
// long-term-memory timescales.
const MasteryThresholdDays = 21

// Card is the scheduling record for one vocabulary item. The identity is the
// word or phrase itself; LessonDay records which lesson introduced it and is
// never used in scheduling math.
type Card struct {
	Identity       string    `json:"identity"`
	LessonDay      int       `json:"lesson_day"`
	Repetitions    int       `json:"repetitions"`
	EaseFactor     float64   `json:"ease_factor"`
	IntervalDays   int       `json:"interval_days"`
	LastReviewedAt time.Time `json:"last_reviewed_at,omitzero"`
	NextReviewAt   time.Time `json:"next_review_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewCard returns a brand-new card for identity: never reviewed, due
// immediately (start of now's day).
func NewCard(identity string, lessonDay int, now time.Time) Card {
	return Card{
		Identity:     identity,
		LessonDay:    lessonDay,
		Repetitions:  0,
		EaseFactor:   InitialEaseFactor,
		IntervalDays: 0,
		NextReviewAt: StartOfDay(now),
		CreatedAt:    now,
	}
}

// Reviewed reports whether the card has been reviewed at least once.
func (c Card) Reviewed() bool {
	return !c.LastReviewedAt.IsZero()
}

// Lifecycle classifies the card from its scheduling fields. The state is
// always derived, never stored, so every consumer agrees on it.
func (c Card) Lifecycle() Lifecycle {
	switch {
	case c.Repetitions == 0:
		return LifecycleNew
	case c.IntervalDays >= MasteryThresholdDays:
		return LifecycleMastered
	default:
		return LifecycleLearning
	}
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
