package handlers

import (
	"net/http"

	"trivia-game-backend/internal/middleware"
	"trivia-game-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every HTTP route. Mutating game routes sit behind JWT
// auth; the QR endpoint stays open since it only renders the join link.
func NewRouter(authService *services.AuthService, gameService *services.GameService, publicBaseURL string) *gin.Engine {
	authHandler := NewAuthHandler(authService)
	gameHandler := NewGameHandler(gameService, publicBaseURL)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/guest", authHandler.Guest)
		}

		games := api.Group("/games")
		{
			games.GET("/:code/qr", gameHandler.GetJoinQR)

			authed := games.Group("")
			authed.Use(middleware.JWTAuth(authService))
			{
				authed.POST("", gameHandler.CreateGame)
				authed.GET("", gameHandler.ListGames)
				authed.GET("/:code", gameHandler.GetGame)
				authed.POST("/:code/join", gameHandler.JoinGame)
				authed.POST("/:code/start", gameHandler.StartGame)
				authed.POST("/:code/answer", gameHandler.SubmitAnswer)
				authed.GET("/:code/leaderboard", gameHandler.GetLeaderboard)
			}
		}
	}

	return r
}
