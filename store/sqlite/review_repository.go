package sqlite

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/StavrosT-sys/Enhanced-Vocab112/internal/logger"
	"github.com/StavrosT-sys/Enhanced-Vocab112/models"
	"github.com/StavrosT-sys/Enhanced-Vocab112/store"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const defaultHistoryLimit = 200

type reviewRepository struct {
	db *DB
}

// NewReviewRepository returns a store.ReviewLog backed by db.
func NewReviewRepository(db *DB) store.ReviewLog {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Append(ctx context.Context, rec models.ReviewRecord) error {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("appending review: identity=%q, quality=%s", rec.Identity, rec.Quality)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO review_history (identity, quality, interval_days, ease_factor, reviewed_at)
VALUES (?, ?, ?, ?, ?)
`, rec.Identity, int(rec.Quality), rec.IntervalDays, rec.EaseFactor, rec.ReviewedAt)
	if err != nil {
		log.Error("failed to append review: %v", err)
	}
	return err
}

func (r *reviewRepository) List(ctx context.Context, filter models.ReviewFilter) ([]models.ReviewRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("listing reviews: identity=%q, limit=%d", filter.Identity, filter.Limit)

	query := sqlBuilder.Select(
		"id", "identity", "quality", "interval_days", "ease_factor", "reviewed_at",
	).From("review_history")

	// Dynamic WHERE clauses
	if filter.Identity != "" {
		query = query.Where(squirrel.Eq{"identity": filter.Identity})
	}
	if !filter.Since.IsZero() {
		query = query.Where(squirrel.GtOrEq{"reviewed_at": filter.Since})
	}
	if !filter.Until.IsZero() {
		query = query.Where(squirrel.LtOrEq{"reviewed_at": filter.Until})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	query = query.OrderBy("reviewed_at DESC", "id DESC").Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build review query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query reviews: %v", err)
		return nil, err
	}
	defer rows.Close()

	var recs []models.ReviewRecord
	for rows.Next() {
		var rec models.ReviewRecord
		var quality int
		if err := rows.Scan(&rec.ID, &rec.Identity, &quality, &rec.IntervalDays, &rec.EaseFactor, &rec.ReviewedAt); err != nil {
			log.Error("failed to scan review row: %v", err)
			return nil, err
		}
		rec.Quality = models.Quality(quality)
		recs = append(recs, rec)
	}
	log.Debug("found %d reviews", len(recs))
	return recs, rows.Err()
}
