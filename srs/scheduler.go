package srs

import (
	"math"
	"time"

	"github.com/StavrosT-sys/Enhanced-Vocab112/apperr"
	"github.com/StavrosT-sys/Enhanced-Vocab112/models"
)

// The four UI grades map onto SM-2's native 0-5 quality axis: a single
// failure grade is a full lapse, the three passing grades are increasingly
// confident recalls.
var sm2Scale = [...]float64{
	models.Again: 0,
	models.Hard:  3,
	models.Good:  4,
	models.Easy:  5,
}

// hardGrowthCap limits interval growth on a HARD pass regardless of the ease
// factor.
const hardGrowthCap = 1.2

// ApplyReview computes the card's next scheduling record for a review graded
// quality at now. The input card is never mutated; the caller commits the
// returned record (or keeps the old one on error).
func ApplyReview(card models.Card, quality models.Quality, now time.Time) (models.Card, error) {
	if !quality.IsValid() {
		return models.Card{}, apperr.NewInvalidQuality(int(quality))
	}

	// Ease factor update runs on every review, pass or fail.
	q := sm2Scale[quality]
	ef := card.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < models.MinEaseFactor {
		ef = models.MinEaseFactor
	}

	if quality == models.Again {
		// Lapse: back to the front of the queue, due again tomorrow.
		card.Repetitions = 0
		card.IntervalDays = 1
	} else {
		card.Repetitions++
		switch {
		case card.Repetitions == 1:
			card.IntervalDays = 1
		case card.Repetitions == 2:
			card.IntervalDays = 6
		default:
			growth := ef
			if quality == models.Hard && growth > hardGrowthCap {
				growth = hardGrowthCap
			}
			card.IntervalDays = int(math.Round(float64(card.IntervalDays) * growth))
		}
		if quality == models.Easy {
			card.IntervalDays++
		}
	}

	card.EaseFactor = ef
	card.LastReviewedAt = now
	card.NextReviewAt = models.StartOfDay(now).AddDate(0, 0, card.IntervalDays)
	return card, nil
}

// Reset returns the card to its brand-new state: progress wiped, due
// immediately. The identity, lesson tag and creation time survive.
func Reset(card models.Card, now time.Time) models.Card {
	card.Repetitions = 0
	card.EaseFactor = models.InitialEaseFactor
	card.IntervalDays = 0
	card.LastReviewedAt = time.Time{}
	card.NextReviewAt = models.StartOfDay(now)
	return card
}
