package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"trivia-game-backend/internal/models"
	"trivia-game-backend/internal/store"
)

const (
	maxQuestions           = 20
	optionCount            = 4
	defaultPoints          = 10
	defaultTimePerQuestion = 30

	codeLength      = 6
	maxCodeAttempts = 10
)

// codeAlphabet leaves out 0/O/1/I so codes stay easy to read aloud.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GameService is the session coordinator. It holds no mutable state of its
// own; every mutation is applied as one atomic store.Mutate call, which is
// the sole synchronization point between concurrent requests.
type GameService struct {
	store store.Store
}

func NewGameService(st store.Store) *GameService {
	return &GameService{store: st}
}

type AnswerResult struct {
	IsCorrect bool `json:"is_correct"`
	Points    int  `json:"points"`
}

type LeaderboardEntry struct {
	Position int    `json:"position"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

func (s *GameService) CreateGame(ctx context.Context, hostID string, questions []models.Question, timePerQuestion int) (*models.Game, error) {
	if len(questions) == 0 || len(questions) > maxQuestions {
		return nil, fmt.Errorf("%w: between 1 and %d questions required", ErrInvalidInput, maxQuestions)
	}
	for i := range questions {
		q := &questions[i]
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("%w: question %d has no text", ErrInvalidInput, i+1)
		}
		if len(q.Options) != optionCount {
			return nil, fmt.Errorf("%w: question %d must have exactly %d options", ErrInvalidInput, i+1, optionCount)
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return nil, fmt.Errorf("%w: question %d option %d is empty", ErrInvalidInput, i+1, j+1)
			}
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("%w: question %d correct answer out of range", ErrInvalidInput, i+1)
		}
		if q.Points <= 0 {
			q.Points = defaultPoints
		}
	}
	if timePerQuestion <= 0 {
		timePerQuestion = defaultTimePerQuestion
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		game := &models.Game{
			Code:            generateCode(),
			HostID:          hostID,
			Questions:       questions,
			TimePerQuestion: timePerQuestion,
			Status:          models.GameStatusWaiting,
			CurrentQuestion: 0,
			Players:         models.PlayerList{},
		}
		err := s.store.Create(ctx, game)
		if errors.Is(err, store.ErrCodeTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return game, nil
	}
	return nil, ErrCodeExhausted
}

func (s *GameService) JoinGame(ctx context.Context, code, userID, username string) (*models.Game, error) {
	game, err := s.store.Mutate(ctx, normalizeCode(code), func(g *models.Game) error {
		if g.Player(userID) != nil {
			// retried join; keep the roster as is
			return nil
		}
		if g.Status != models.GameStatusWaiting {
			return ErrGameNotWaiting
		}
		g.Players = append(g.Players, models.Player{
			UserID:   userID,
			Username: username,
			Score:    0,
			Answers:  []models.Answer{},
			JoinedAt: time.Now(),
		})
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return game, nil
}

func (s *GameService) StartGame(ctx context.Context, code, requesterID string) (*models.Game, error) {
	game, err := s.store.Mutate(ctx, normalizeCode(code), func(g *models.Game) error {
		if g.HostID != requesterID {
			return ErrNotHost
		}
		if g.Status != models.GameStatusWaiting {
			return ErrGameNotWaiting
		}
		if len(g.Players) < 2 {
			return ErrNotEnoughPlayers
		}
		now := time.Now()
		g.Status = models.GameStatusInProgress
		g.CurrentQuestion = 0
		g.StartedAt = &now
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return game, nil
}

// SubmitAnswer records one player's answer to the current question. When the
// submission completes the "all answered" set, the same mutation advances
// the game to the next question or to completed; no timer or scheduler is
// involved.
func (s *GameService) SubmitAnswer(ctx context.Context, code, userID string, questionIndex, answer int) (*AnswerResult, error) {
	var result AnswerResult
	_, err := s.store.Mutate(ctx, normalizeCode(code), func(g *models.Game) error {
		if g.Status != models.GameStatusInProgress {
			return ErrGameNotInProgress
		}
		player := g.Player(userID)
		if player == nil {
			return ErrPlayerNotFound
		}
		if questionIndex != g.CurrentQuestion {
			return ErrStaleQuestion
		}
		question := g.Questions[questionIndex]
		if answer < 0 || answer >= len(question.Options) {
			return fmt.Errorf("%w: answer out of range", ErrInvalidInput)
		}
		if player.HasAnswered(questionIndex) {
			return ErrAlreadyAnswered
		}

		isCorrect := answer == question.CorrectAnswer
		points := 0
		if isCorrect {
			points = question.Points
		}
		player.Answers = append(player.Answers, models.Answer{
			QuestionIndex: questionIndex,
			Answer:        answer,
			IsCorrect:     isCorrect,
			Points:        points,
			AnsweredAt:    time.Now(),
		})
		player.Score += points

		if g.AllAnswered(questionIndex) {
			if questionIndex+1 < len(g.Questions) {
				g.CurrentQuestion++
			} else {
				now := time.Now()
				g.Status = models.GameStatusCompleted
				g.EndedAt = &now
			}
		}

		result = AnswerResult{IsCorrect: isCorrect, Points: points}
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &result, nil
}

// GetGame returns the current game projection. It is a pure read with no
// side effects, safe for clients to poll.
func (s *GameService) GetGame(ctx context.Context, code string) (*models.Game, error) {
	game, err := s.store.Get(ctx, normalizeCode(code))
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return game, nil
}

func (s *GameService) ListGames(ctx context.Context, userID string) ([]models.Game, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *GameService) Leaderboard(ctx context.Context, code string) ([]LeaderboardEntry, error) {
	game, err := s.GetGame(ctx, code)
	if err != nil {
		return nil, err
	}
	players := append(models.PlayerList{}, game.Players...)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score > players[j].Score
	})
	entries := make([]LeaderboardEntry, len(players))
	for i, p := range players {
		entries[i] = LeaderboardEntry{
			Position: i + 1,
			UserID:   p.UserID,
			Username: p.Username,
			Score:    p.Score,
		}
	}
	return entries, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrGameNotFound
	}
	return err
}

func generateCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
