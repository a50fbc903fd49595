package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StavrosT-sys/Enhanced-Vocab112/apperr"
	"github.com/StavrosT-sys/Enhanced-Vocab112/models"
	"github.com/StavrosT-sys/Enhanced-Vocab112/srs"
)

var reviewTime = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

func newCard() models.Card {
	return models.NewCard("ephemeral", 3, reviewTime.AddDate(0, 0, -10))
}

func TestApplyReview_FirstFailure(t *testing.T) {
	card := newCard()

	updated, err := srs.ApplyReview(card, models.Again, reviewTime)
	require.NoError(t, err)

	assert.Equal(t, 0, updated.Repetitions, "repetitions should stay at zero on failure")
	assert.Equal(t, 1, updated.IntervalDays, "failed card is due again the next day")
	assert.InDelta(t, 1.7, updated.EaseFactor, 1e-9, "ease factor drops by 0.8 on a full lapse")
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), updated.NextReviewAt)
	assert.Equal(t, reviewTime, updated.LastReviewedAt)
}

func TestApplyReview_StandardGrowth(t *testing.T) {
	card := newCard()
	card.Repetitions = 2
	card.IntervalDays = 6
	card.EaseFactor = 2.5

	updated, err := srs.ApplyReview(card, models.Good, reviewTime)
	require.NoError(t, err)

	assert.Equal(t, 3, updated.Repetitions)
	assert.InDelta(t, 2.5, updated.EaseFactor, 1e-9, "GOOD leaves the ease factor unchanged")
	assert.Equal(t, 15, updated.IntervalDays, "round(6 * 2.5)")
	assert.Equal(t, time.Date(2026, 3, 29, 0, 0, 0, 0, time.UTC), updated.NextReviewAt)
}

func TestApplyReview_IntervalLadder(t *testing.T) {
	tests := []struct {
		name        string
		repetitions int
		interval    int
		ease        float64
		quality     models.Quality
		expected    int
	}{
		{
			name:        "first success sets interval to 1",
			repetitions: 0,
			interval:    0,
			ease:        2.5,
			quality:     models.Good,
			expected:    1,
		},
		{
			name:        "second success sets interval to 6",
			repetitions: 1,
			interval:    1,
			ease:        2.5,
			quality:     models.Good,
			expected:    6,
		},
		{
			name:        "third success multiplies by ease factor",
			repetitions: 2,
			interval:    6,
			ease:        2.5,
			quality:     models.Good,
			expected:    15,
		},
		{
			name:        "hard on first success still uses the ladder",
			repetitions: 0,
			interval:    0,
			ease:        2.5,
			quality:     models.Hard,
			expected:    1,
		},
		{
			name:        "easy on first success gets the one-day bonus",
			repetitions: 0,
			interval:    0,
			ease:        2.5,
			quality:     models.Easy,
			expected:    2,
		},
		{
			name:        "easy on second success gets the one-day bonus",
			repetitions: 1,
			interval:    1,
			ease:        2.5,
			quality:     models.Easy,
			expected:    7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := newCard()
			card.Repetitions = tt.repetitions
			card.IntervalDays = tt.interval
			card.EaseFactor = tt.ease

			updated, err := srs.ApplyReview(card, tt.quality, reviewTime)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, updated.IntervalDays)
			assert.Equal(t, tt.repetitions+1, updated.Repetitions)
		})
	}
}

func TestApplyReview_HardCapsGrowth(t *testing.T) {
	card := newCard()
	card.Repetitions = 5
	card.IntervalDays = 10
	card.EaseFactor = 2.5

	updated, err := srs.ApplyReview(card, models.Hard, reviewTime)
	require.NoError(t, err)

	assert.InDelta(t, 2.36, updated.EaseFactor, 1e-9, "HARD lowers the ease factor by 0.14")
	assert.Equal(t, 12, updated.IntervalDays, "growth multiplier is capped at 1.2 on HARD")
	assert.Equal(t, 6, updated.Repetitions, "HARD still counts as a pass")
}

func TestApplyReview_EasyBonus(t *testing.T) {
	card := newCard()
	card.Repetitions = 3
	card.IntervalDays = 10
	card.EaseFactor = 2.5

	updated, err := srs.ApplyReview(card, models.Easy, reviewTime)
	require.NoError(t, err)

	assert.InDelta(t, 2.6, updated.EaseFactor, 1e-9, "EASY raises the ease factor by 0.1")
	assert.Equal(t, 27, updated.IntervalDays, "round(10 * 2.6) plus the one-day bonus")
}

func TestApplyReview_EaseFloor(t *testing.T) {
	card := newCard()
	card.IntervalDays = 10

	for i := 0; i < 10; i++ {
		var err error
		card, err = srs.ApplyReview(card, models.Again, reviewTime)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, card.EaseFactor, models.MinEaseFactor, "ease factor must never drop below the floor")
	}
	assert.InDelta(t, models.MinEaseFactor, card.EaseFactor, 1e-9)
}

func TestApplyReview_InvalidQuality(t *testing.T) {
	for _, q := range []models.Quality{-1, 4, 99} {
		_, err := srs.ApplyReview(newCard(), q, reviewTime)
		require.Error(t, err)
		assert.True(t, apperr.IsInvalidQuality(err), "expected INVALID_QUALITY for grade %d", int(q))
	}
}

func TestApplyReview_DoesNotMutateInput(t *testing.T) {
	card := newCard()
	card.Repetitions = 2
	card.IntervalDays = 6
	before := card

	_, err := srs.ApplyReview(card, models.Good, reviewTime)
	require.NoError(t, err)

	assert.Equal(t, before, card, "scheduler must return a new record, not mutate in place")
}

func TestReset(t *testing.T) {
	card := newCard()
	card.Repetitions = 4
	card.IntervalDays = 30
	card.EaseFactor = 1.9
	card.LastReviewedAt = reviewTime.AddDate(0, 0, -30)

	reset := srs.Reset(card, reviewTime)

	assert.Equal(t, 0, reset.Repetitions)
	assert.Equal(t, 0, reset.IntervalDays)
	assert.InDelta(t, models.InitialEaseFactor, reset.EaseFactor, 1e-9)
	assert.False(t, reset.Reviewed())
	assert.Equal(t, models.StartOfDay(reviewTime), reset.NextReviewAt)
	assert.Equal(t, card.Identity, reset.Identity)
	assert.Equal(t, card.LessonDay, reset.LessonDay)
	assert.Equal(t, card.CreatedAt, reset.CreatedAt)
	assert.Equal(t, models.LifecycleNew, reset.Lifecycle())
}
