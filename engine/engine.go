// Package engine exposes the consumer contract of the spaced-repetition
// engine: register vocabulary as it is taught, grade reviews, and project
// due lists and aggregate stats. View layers call this package and nothing
// below it.
package engine

import (
	"context"
	"io"
	"time"

	"github.com/StavrosT-sys/Enhanced-Vocab112/apperr"
	"github.com/StavrosT-sys/Enhanced-Vocab112/internal/config"
	"github.com/StavrosT-sys/Enhanced-Vocab112/internal/logger"
	"github.com/StavrosT-sys/Enhanced-Vocab112/models"
	"github.com/StavrosT-sys/Enhanced-Vocab112/srs"
	"github.com/StavrosT-sys/Enhanced-Vocab112/store"
	"github.com/StavrosT-sys/Enhanced-Vocab112/store/sqlite"
)

// Engine owns the card store for one process. Construct it with New
// (injecting a repository) or Open (config-driven SQLite). It is
// single-owner and synchronous: every mutation is visible to the next call.
type Engine struct {
	store      *store.Store
	history    store.ReviewLog
	log        *logger.Logger
	now        func() time.Time
	windowDays int
	owned      io.Closer
}

// Option configures an Engine.
type Option func(*Engine)

// WithReviewLog records every graded review to rl.
func WithReviewLog(rl store.ReviewLog) Option {
	return func(e *Engine) {
		e.history = rl
	}
}

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLogger sets the engine's logger.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithDueWindow sets the "due soon" window, in days, used by Stats.
func WithDueWindow(days int) Option {
	return func(e *Engine) {
		e.windowDays = days
	}
}

// New builds an Engine over repo and loads all persisted cards into memory.
func New(ctx context.Context, repo store.Repository, opts ...Option) (*Engine, error) {
	e := &Engine{
		store:      store.New(repo),
		log:        logger.Default().WithPrefix("engine"),
		now:        time.Now,
		windowDays: 7,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.store.Load(ctx); err != nil {
		return nil, err
	}
	e.log.Info("engine ready: %d cards", e.store.Len())
	return e, nil
}

// Open wires the default stack from the environment: godotenv config, a
// SQLite-backed repository and review log. The returned engine owns the
// database; Close flushes and releases it.
func Open(ctx context.Context) (*Engine, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, apperr.NewValidation("config", err.Error())
	}

	logger.SetDefault(logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel))))

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, apperr.NewPersistence("open", err)
	}

	e, err := New(ctx, sqlite.NewCardRepository(db),
		WithReviewLog(sqlite.NewReviewRepository(db)),
		WithDueWindow(cfg.DueWindowDays),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	e.owned = db
	return e, nil
}

// RegisterCard creates a card for a newly taught word. Registering the same
// identity again is a no-op and never resets progress.
func (e *Engine) RegisterCard(ctx context.Context, identity string, lessonDay int) (models.Card, error) {
	if identity == "" {
		return models.Card{}, apperr.NewValidation("identity", "cannot be empty")
	}
	return e.store.UpsertNew(ctx, identity, lessonDay, e.now())
}

// GradeReview applies the learner's grade to the card and commits the new
// schedule. On a persistence failure the returned card is the committed
// in-memory record and the error reports the lost durability; Flush retries
// it.
func (e *Engine) GradeReview(ctx context.Context, identity string, quality models.Quality) (models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("engine")

	card, err := e.store.Get(identity)
	if err != nil {
		return models.Card{}, err
	}

	updated, err := srs.ApplyReview(card, quality, e.now())
	if err != nil {
		return models.Card{}, err
	}
	log.Debug("review graded: identity=%q, quality=%s, interval=%d, ease=%.2f",
		identity, quality, updated.IntervalDays, updated.EaseFactor)

	saveErr := e.store.Save(ctx, updated)

	if e.history != nil {
		rec := models.ReviewRecord{
			Identity:     identity,
			Quality:      quality,
			IntervalDays: updated.IntervalDays,
			EaseFactor:   updated.EaseFactor,
			ReviewedAt:   updated.LastReviewedAt,
		}
		if err := e.history.Append(ctx, rec); err != nil {
			// History is best-effort; the review itself already committed.
			log.Warn("failed to record review history: %v", err)
		}
	}

	return updated, saveErr
}

// ResetCard returns the card to its brand-new state ("unlearn") without
// deleting its registration.
func (e *Engine) ResetCard(ctx context.Context, identity string) (models.Card, error) {
	card, err := e.store.Get(identity)
	if err != nil {
		return models.Card{}, err
	}
	reset := srs.Reset(card, e.now())
	if err := e.store.Save(ctx, reset); err != nil {
		return reset, err
	}
	return reset, nil
}

// Get returns the current record for identity.
func (e *Engine) Get(ctx context.Context, identity string) (models.Card, error) {
	return e.store.Get(identity)
}

// DueNow returns the cards due today or overdue, most overdue first.
func (e *Engine) DueNow(ctx context.Context) []models.Card {
	return e.store.DueNow(e.now())
}

// DueWithin returns the cards due in the next days days, today included.
func (e *Engine) DueWithin(ctx context.Context, days int) ([]models.Card, error) {
	if days < 1 {
		return nil, apperr.NewValidation("days", "must be at least 1")
	}
	return e.store.DueWithin(e.now(), days), nil
}

// Stats aggregates the collection as of now.
func (e *Engine) Stats(ctx context.Context) models.Stats {
	return e.store.Stats(e.now(), e.windowDays)
}

// History lists past reviews matching filter.
func (e *Engine) History(ctx context.Context, filter models.ReviewFilter) ([]models.ReviewRecord, error) {
	if e.history == nil {
		return nil, apperr.NewValidation("history", "no review log configured")
	}
	return e.history.List(ctx, filter)
}

// Flush writes the full in-memory record set to the repository. Call it to
// recover durability after a PERSISTENCE_FAILURE.
func (e *Engine) Flush(ctx context.Context) error {
	return e.store.FlushAll(ctx)
}

// Close flushes all records and releases the database when the engine owns
// one.
func (e *Engine) Close(ctx context.Context) error {
	err := e.Flush(ctx)
	if e.owned != nil {
		e.log.Debug("closing database")
		if cerr := e.owned.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
