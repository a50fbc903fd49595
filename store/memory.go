package store

import (
	"context"

	"github.com/StavrosT-sys/Enhanced-Vocab112/models"
)

// MemoryRepository keeps records in process memory only. It backs ephemeral
// sessions and tests; nothing survives the process.
type MemoryRepository struct {
	cards   map[string]models.Card
	order   []string
	reviews []models.ReviewRecord
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{cards: make(map[string]models.Card)}
}

// LoadAll implements Repository.
func (m *MemoryRepository) LoadAll(ctx context.Context) ([]models.Card, error) {
	out := make([]models.Card, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.cards[id])
	}
	return out, nil
}

// Save implements Repository.
func (m *MemoryRepository) Save(ctx context.Context, card models.Card) error {
	if _, ok := m.cards[card.Identity]; !ok {
		m.order = append(m.order, card.Identity)
	}
	m.cards[card.Identity] = card
	return nil
}

// SaveAll implements Repository.
func (m *MemoryRepository) SaveAll(ctx context.Context, cards []models.Card) error {
	m.cards = make(map[string]models.Card, len(cards))
	m.order = m.order[:0]
	for _, c := range cards {
		if err := m.Save(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// Append implements ReviewLog.
func (m *MemoryRepository) Append(ctx context.Context, rec models.ReviewRecord) error {
	rec.ID = int64(len(m.reviews) + 1)
	m.reviews = append(m.reviews, rec)
	return nil
}

// List implements ReviewLog.
func (m *MemoryRepository) List(ctx context.Context, filter models.ReviewFilter) ([]models.ReviewRecord, error) {
	var out []models.ReviewRecord
	for _, r := range m.reviews {
		if filter.Identity != "" && r.Identity != filter.Identity {
			continue
		}
		if !filter.Since.IsZero() && r.ReviewedAt.Before(filter.Since) {
			continue
		}
		if !filter.Until.IsZero() && r.ReviewedAt.After(filter.Until) {
			continue
		}
		out = append(out, r)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}
