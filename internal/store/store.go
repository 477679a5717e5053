package store

import (
	"context"
	"errors"

	"trivia-game-backend/internal/models"
)

var (
	ErrNotFound  = errors.New("game not found")
	ErrCodeTaken = errors.New("game code already taken")
)

// Store is the durable record of game sessions, keyed by code.
//
// Mutate is the single synchronization point of the whole system: two
// concurrent mutations of the same code never both apply against the same
// prior version. An error returned by fn aborts the mutation with no write.
type Store interface {
	Get(ctx context.Context, code string) (*models.Game, error)
	Create(ctx context.Context, game *models.Game) error
	Mutate(ctx context.Context, code string, fn func(*models.Game) error) (*models.Game, error)
	ListByUser(ctx context.Context, userID string) ([]models.Game, error)
}
