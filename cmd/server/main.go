package main

import (
	"os"

	"trivia-game-backend/internal/config"
	"trivia-game-backend/internal/database"
	"trivia-game-backend/internal/handlers"
	"trivia-game-backend/internal/services"
	"trivia-game-backend/internal/store"
	"trivia-game-backend/internal/store/memory"
	pgstore "trivia-game-backend/internal/store/postgres"

	_ "trivia-game-backend/docs"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// @title           Trivia Game API
// @version         1.0
// @description     Lockstep multiplayer trivia sessions joined by short code.
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	var (
		db *gorm.DB
		st store.Store
	)
	if cfg.DatabaseURL != "" {
		db, err = database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
		st = pgstore.New(db)
		log.Info().Msg("using postgres store")
	} else {
		st = memory.New()
		log.Warn().Msg("DATABASE_URL not set, using in-memory store; guest login only")
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	gameService := services.NewGameService(st)

	r := handlers.NewRouter(authService, gameService, cfg.PublicBaseURL)

	log.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
