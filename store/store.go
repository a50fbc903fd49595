package store

import (
	"context"
	"iter"
	"time"

	"github.com/StavrosT-sys/Enhanced-Vocab112/apperr"
	"github.com/StavrosT-sys/Enhanced-Vocab112/internal/logger"
	"github.com/StavrosT-sys/Enhanced-Vocab112/models"
)

// Store is the single source of truth for card records: a keyed in-memory
// map with stable insertion order, flushed to a Repository on every
// mutation. It is owned by one logical caller at a time and is not safe for
// concurrent use.
type Store struct {
	repo  Repository
	cards map[string]models.Card
	order []string
}

// New creates an empty Store backed by repo. Call Load before use.
func New(repo Repository) *Store {
	return &Store{
		repo:  repo,
		cards: make(map[string]models.Card),
	}
}

// Load replaces the in-memory contents with everything the repository holds.
func (s *Store) Load(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("store")

	cards, err := s.repo.LoadAll(ctx)
	if err != nil {
		log.Error("failed to load cards: %v", err)
		return apperr.NewPersistence("load", err)
	}

	s.cards = make(map[string]models.Card, len(cards))
	s.order = make([]string, 0, len(cards))
	for _, c := range cards {
		if _, ok := s.cards[c.Identity]; ok {
			continue
		}
		s.cards[c.Identity] = c
		s.order = append(s.order, c.Identity)
	}
	log.Info("loaded %d cards", len(s.order))
	return nil
}

// Len returns the number of cards in the store.
func (s *Store) Len() int {
	return len(s.order)
}

// UpsertNew creates a brand-new card for identity unless one already exists.
// Duplicate registration is a no-op so lesson-completion calls stay
// idempotent; existing progress is never reset.
func (s *Store) UpsertNew(ctx context.Context, identity string, lessonDay int, now time.Time) (models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("store")

	if existing, ok := s.cards[identity]; ok {
		log.Debug("card already registered: identity=%q", identity)
		return existing, nil
	}

	card := models.NewCard(identity, lessonDay, now)
	s.cards[identity] = card
	s.order = append(s.order, identity)
	log.Debug("card registered: identity=%q, lesson_day=%d", identity, lessonDay)

	if err := s.repo.Save(ctx, card); err != nil {
		log.Error("failed to persist new card %q: %v", identity, err)
		return card, apperr.NewPersistence("save", err)
	}
	return card, nil
}

// Get returns the card for identity.
func (s *Store) Get(identity string) (models.Card, error) {
	card, ok := s.cards[identity]
	if !ok {
		return models.Card{}, apperr.NewNotFound(identity)
	}
	return card, nil
}

// Save replaces the stored record for card's identity and flushes it to the
// repository. On a persistence error the in-memory record keeps the new
// value; durability is recovered with FlushAll.
func (s *Store) Save(ctx context.Context, card models.Card) error {
	log := logger.FromContext(ctx).WithPrefix("store")

	if card.Identity == "" {
		return apperr.NewValidation("identity", "cannot be empty")
	}
	if _, ok := s.cards[card.Identity]; !ok {
		s.order = append(s.order, card.Identity)
	}
	s.cards[card.Identity] = card
	log.Debug("card saved: identity=%q, interval=%d, ease=%.2f", card.Identity, card.IntervalDays, card.EaseFactor)

	if err := s.repo.Save(ctx, card); err != nil {
		log.Error("failed to persist card %q: %v", card.Identity, err)
		return apperr.NewPersistence("save", err)
	}
	return nil
}

// All yields every card in insertion order. The sequence is finite and
// restartable; mutating the store during iteration is not supported.
func (s *Store) All() iter.Seq[models.Card] {
	return func(yield func(models.Card) bool) {
		for _, id := range s.order {
			if !yield(s.cards[id]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of all cards in insertion order.
func (s *Store) Snapshot() []models.Card {
	out := make([]models.Card, 0, len(s.order))
	for c := range s.All() {
		out = append(out, c)
	}
	return out
}

// FlushAll writes the full in-memory record set to the repository. It is the
// retry path after a failed Save and the teardown flush.
func (s *Store) FlushAll(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("store")

	if err := s.repo.SaveAll(ctx, s.Snapshot()); err != nil {
		log.Error("failed to flush %d cards: %v", len(s.order), err)
		return apperr.NewPersistence("flush", err)
	}
	log.Debug("flushed %d cards", len(s.order))
	return nil
}
