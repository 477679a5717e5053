package handlers

import (
	"fmt"
	"net/http"

	"trivia-game-backend/internal/models"
	"trivia-game-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type GameHandler struct {
	gameService   *services.GameService
	publicBaseURL string
}

func NewGameHandler(gameService *services.GameService, publicBaseURL string) *GameHandler {
	return &GameHandler{gameService: gameService, publicBaseURL: publicBaseURL}
}

type CreateGameRequest struct {
	Questions       []models.Question `json:"questions" binding:"required"`
	TimePerQuestion int               `json:"time_per_question" example:"30"`
}

// CreateGame godoc
// @Summary      Create a game
// @Description  Creates a waiting game with a fixed question set and a join code.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateGameRequest true "Question set"
// @Success      201 {object} models.Game
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	game, err := h.gameService.CreateGame(c.Request.Context(), userID, req.Questions, req.TimePerQuestion)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// ListGames godoc
// @Summary      List my games
// @Description  Games the caller hosts or plays in, newest first.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Game
// @Router       /api/v1/games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	userID := c.GetString("user_id")

	games, err := h.gameService.ListGames(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// GetGame godoc
// @Summary      Get game state
// @Description  Full current projection; read-only and safe to poll.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200 {object} models.Game
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{code} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	game, err := h.gameService.GetGame(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// JoinGame godoc
// @Summary      Join a waiting game
// @Description  Idempotent; rejoining is a no-op. No late joins once started.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200 {object} models.Game
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{code}/join [post]
func (h *GameHandler) JoinGame(c *gin.Context) {
	userID := c.GetString("user_id")
	username := c.GetString("username")

	game, err := h.gameService.JoinGame(c.Request.Context(), c.Param("code"), userID, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// StartGame godoc
// @Summary      Start a game
// @Description  Host only; requires at least 2 joined players.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200 {object} models.Game
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{code}/start [post]
func (h *GameHandler) StartGame(c *gin.Context) {
	userID := c.GetString("user_id")

	game, err := h.gameService.StartGame(c.Request.Context(), c.Param("code"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

type SubmitAnswerRequest struct {
	QuestionIndex int `json:"question_index" example:"0"`
	Answer        int `json:"answer" example:"2"`
}

// SubmitAnswer godoc
// @Summary      Answer the current question
// @Description  One answer per player per question. The submission that completes the roster advances the game.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Param        request body SubmitAnswerRequest true "Answer"
// @Success      200 {object} services.AnswerResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{code}/answer [post]
func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.gameService.SubmitAnswer(c.Request.Context(), c.Param("code"), userID, req.QuestionIndex, req.Answer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLeaderboard godoc
// @Summary      Get leaderboard
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200 {array} services.LeaderboardEntry
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{code}/leaderboard [get]
func (h *GameHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.gameService.Leaderboard(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetJoinQR godoc
// @Summary      Join link as QR code
// @Description  PNG QR code of the join URL, for showing on the host screen.
// @Tags         games
// @Produce      png
// @Param        code path string true "Game code"
// @Success      200 {string} binary "PNG image"
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{code}/qr [get]
func (h *GameHandler) GetJoinQR(c *gin.Context) {
	game, err := h.gameService.GetGame(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	joinURL := fmt.Sprintf("%s/join?code=%s", h.publicBaseURL, game.Code)
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
