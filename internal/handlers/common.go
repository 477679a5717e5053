package handlers

import (
	"errors"
	"net/http"

	"trivia-game-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrGameNotFound),
		errors.Is(err, services.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotHost):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrGameNotWaiting),
		errors.Is(err, services.ErrGameNotInProgress),
		errors.Is(err, services.ErrNotEnoughPlayers),
		errors.Is(err, services.ErrStaleQuestion),
		errors.Is(err, services.ErrAlreadyAnswered):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
}
