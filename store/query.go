package store

import (
	"sort"
	"time"

	"github.com/StavrosT-sys/Enhanced-Vocab112/models"
)

// DueNow returns every card due on or before asOf's day: due today or
// overdue. Overdue cards carry no penalty or priority escalation; they are
// simply due, surfaced first by the ordering.
func (s *Store) DueNow(asOf time.Time) []models.Card {
	cutoff := models.EndOfDay(asOf)
	var due []models.Card
	for c := range s.All() {
		if !c.NextReviewAt.After(cutoff) {
			due = append(due, c)
		}
	}
	sortByDue(due)
	return due
}

// DueWithin returns the cards whose next review falls in the half-open
// window [start of asOf's day, +days). The window includes cards due today:
// "this week" subsumes "today".
func (s *Store) DueWithin(asOf time.Time, days int) []models.Card {
	from := models.StartOfDay(asOf)
	until := from.AddDate(0, 0, days)
	var due []models.Card
	for c := range s.All() {
		if !c.NextReviewAt.Before(from) && c.NextReviewAt.Before(until) {
			due = append(due, c)
		}
	}
	sortByDue(due)
	return due
}

// Stats aggregates the whole collection in one pass. The lifecycle counts
// always sum to TotalCards since classification is total over cards.
func (s *Store) Stats(asOf time.Time, windowDays int) models.Stats {
	var st models.Stats
	dueCutoff := models.EndOfDay(asOf)
	windowFrom := models.StartOfDay(asOf)
	windowUntil := windowFrom.AddDate(0, 0, windowDays)

	for c := range s.All() {
		st.TotalCards++
		if !c.NextReviewAt.After(dueCutoff) {
			st.DueToday++
		}
		if !c.NextReviewAt.Before(windowFrom) && c.NextReviewAt.Before(windowUntil) {
			st.DueThisWeek++
		}
		switch c.Lifecycle() {
		case models.LifecycleNew:
			st.NewCards++
		case models.LifecycleLearning:
			st.LearningCards++
		case models.LifecycleMastered:
			st.MasteredCards++
		}
	}
	return st
}

// sortByDue orders cards by ascending next review date. Input slices come
// from insertion-ordered iteration, so the stable sort keeps ties
// deterministic across calls within the same day.
func sortByDue(cards []models.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].NextReviewAt.Before(cards[j].NextReviewAt)
	})
}
