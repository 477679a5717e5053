package services

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrGameNotFound      = errors.New("game not found")
	ErrPlayerNotFound    = errors.New("player not found in game")
	ErrNotHost           = errors.New("only the host can start the game")
	ErrGameNotWaiting    = errors.New("game has already started")
	ErrGameNotInProgress = errors.New("game is not in progress")
	ErrNotEnoughPlayers  = errors.New("need at least 2 players to start")
	ErrStaleQuestion     = errors.New("answer is for a question that is no longer current")
	ErrAlreadyAnswered   = errors.New("already answered this question")
	ErrCodeExhausted     = errors.New("could not allocate a unique game code")
)
