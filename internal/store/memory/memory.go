// Package memory holds game sessions in process memory. It backs tests and
// database-less deployments; the mutex makes Mutate atomic per store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"trivia-game-backend/internal/models"
	"trivia-game-backend/internal/store"
)

type Store struct {
	mu    sync.Mutex
	games map[string]*models.Game
}

func New() *Store {
	return &Store{games: make(map[string]*models.Game)}
}

func (s *Store) Get(ctx context.Context, code string) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[code]
	if !ok {
		return nil, store.ErrNotFound
	}
	return g.Clone(), nil
}

func (s *Store) Create(ctx context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[game.Code]; ok {
		return store.ErrCodeTaken
	}
	g := game.Clone()
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	s.games[game.Code] = g
	*game = *g.Clone()
	return nil
}

func (s *Store) Mutate(ctx context.Context, code string, fn func(*models.Game) error) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[code]
	if !ok {
		return nil, store.ErrNotFound
	}
	// fn works on a copy; a rejected mutation leaves the record untouched.
	next := g.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.UpdatedAt = time.Now()
	s.games[code] = next
	return next.Clone(), nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Game
	for _, g := range s.games {
		if g.HostID == userID || g.Player(userID) != nil {
			out = append(out, *g.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
