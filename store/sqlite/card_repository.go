package sqlite

import (
	"context"
	"database/sql"

	"github.com/StavrosT-sys/Enhanced-Vocab112/internal/logger"
	"github.com/StavrosT-sys/Enhanced-Vocab112/models"
	"github.com/StavrosT-sys/Enhanced-Vocab112/store"
)

type cardRepository struct {
	db *DB
}

// NewCardRepository returns a store.Repository backed by db.
func NewCardRepository(db *DB) store.Repository {
	return &cardRepository{db: db}
}

func (r *cardRepository) LoadAll(ctx context.Context) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT identity, lesson_day, repetitions, ease_factor, interval_days, last_reviewed_at, next_review_at, created_at
FROM cards
ORDER BY seq
`)
	if err != nil {
		log.Error("failed to query cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var c models.Card
		var lastReviewed sql.NullTime
		if err := rows.Scan(&c.Identity, &c.LessonDay, &c.Repetitions, &c.EaseFactor, &c.IntervalDays, &lastReviewed, &c.NextReviewAt, &c.CreatedAt); err != nil {
			log.Error("failed to scan card row: %v", err)
			return nil, err
		}
		if lastReviewed.Valid {
			c.LastReviewedAt = lastReviewed.Time
		}
		cards = append(cards, c)
	}
	log.Debug("loaded %d cards", len(cards))
	return cards, rows.Err()
}

func (r *cardRepository) Save(ctx context.Context, card models.Card) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("saving card: identity=%q, interval=%d, ease=%.2f", card.Identity, card.IntervalDays, card.EaseFactor)

	_, err := r.db.ExecContext(ctx, upsertCardSQL, upsertCardArgs(card)...)
	if err != nil {
		log.Error("failed to save card %q: %v", card.Identity, err)
	}
	return err
}

func (r *cardRepository) SaveAll(ctx context.Context, cards []models.Card) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("saving %d cards", len(cards))

	return tx(ctx, r.db, func(t *sql.Tx) error {
		stmt, err := t.PrepareContext(ctx, upsertCardSQL)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, c := range cards {
			if _, err := stmt.ExecContext(ctx, upsertCardArgs(c)...); err != nil {
				return err
			}
		}
		return nil
	})
}

// The upsert keeps the original seq on conflict so insertion order survives
// restarts.
const upsertCardSQL = `
INSERT INTO cards (identity, lesson_day, repetitions, ease_factor, interval_days, last_reviewed_at, next_review_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(identity) DO UPDATE SET
    lesson_day = excluded.lesson_day,
    repetitions = excluded.repetitions,
    ease_factor = excluded.ease_factor,
    interval_days = excluded.interval_days,
    last_reviewed_at = excluded.last_reviewed_at,
    next_review_at = excluded.next_review_at
`

func upsertCardArgs(c models.Card) []any {
	var lastReviewed sql.NullTime
	if c.Reviewed() {
		lastReviewed = sql.NullTime{Time: c.LastReviewedAt, Valid: true}
	}
	return []any{c.Identity, c.LessonDay, c.Repetitions, c.EaseFactor, c.IntervalDays, lastReviewed, c.NextReviewAt, c.CreatedAt}
}
