package store

import (
	"context"

	"github.com/StavrosT-sys/Enhanced-Vocab112/models"
)

// Repository is the durable persistence collaborator behind the card store.
// LoadAll returns every stored card in insertion order; Save replaces one
// record; SaveAll replaces the full set. Implementations either fully commit
// a record or leave the prior one intact.
type Repository interface {
	LoadAll(ctx context.Context) ([]models.Card, error)
	Save(ctx context.Context, card models.Card) error
	SaveAll(ctx context.Context, cards []models.Card) error
}

// ReviewLog records the grade history of reviews. Appends are best-effort
// from the engine's perspective; a failed append never fails the review.
type ReviewLog interface {
	Append(ctx context.Context, rec models.ReviewRecord) error
	List(ctx context.Context, filter models.ReviewFilter) ([]models.ReviewRecord, error)
}
