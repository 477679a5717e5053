// Package postgres persists game sessions in a single jsonb-backed row per
// game. Mutate takes a row lock so concurrent mutations of one game
// serialize at the database.
package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"trivia-game-backend/internal/models"
	"trivia-game-backend/internal/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, code string) (*models.Game, error) {
	var g models.Game
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Store) Create(ctx context.Context, game *models.Game) error {
	err := s.db.WithContext(ctx).Create(game).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return store.ErrCodeTaken
	}
	return err
}

func (s *Store) Mutate(ctx context.Context, code string, fn func(*models.Game) error) (*models.Game, error) {
	var out *models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g models.Game
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("code = ?", code).First(&g).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return store.ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := fn(&g); err != nil {
			return err
		}
		if err := tx.Save(&g).Error; err != nil {
			return err
		}
		out = &g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Game, error) {
	needle, err := json.Marshal([]map[string]string{{"user_id": userID}})
	if err != nil {
		return nil, err
	}
	var games []models.Game
	err = s.db.WithContext(ctx).
		Where("host_id = ? OR players @> ?", userID, string(needle)).
		Order("created_at DESC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}
