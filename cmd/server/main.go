package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"portfolio_backend/internal/app/di"
	"portfolio_backend/internal/app/router"
	authadapters "portfolio_backend/internal/feature/auth/adapters"
	authhandler "portfolio_backend/internal/feature/auth/transport/handler"
	authusecase "portfolio_backend/internal/feature/auth/usecase"
	commentadapters "portfolio_backend/internal/feature/comments/adapters"
	commenthandler "portfolio_backend/internal/feature/comments/transport/handler"
	commentusecase "portfolio_backend/internal/feature/comments/usecase"
	portfolioadapters "portfolio_backend/internal/feature/portfolio/adapters"
	portfoliohandler "portfolio_backend/internal/feature/portfolio/transport/handler"
	portfoliousecase "portfolio_backend/internal/feature/portfolio/usecase"
	stockadapters "portfolio_backend/internal/feature/stocks/adapters"
	stockhandler "portfolio_backend/internal/feature/stocks/transport/handler"
	stockusecase "portfolio_backend/internal/feature/stocks/usecase"
	"portfolio_backend/internal/platform/config"
	infradb "portfolio_backend/internal/platform/db"
	jwtmw "portfolio_backend/internal/platform/jwt"
	infraredis "portfolio_backend/internal/platform/redis"
)

func main() {
	// Configuration: a missing or weak signing secret stops the process here.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg.DB)
	if err := infradb.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Redis (optional; sessions fall back to the relational store)
	var rdb *redisv9.Client
	if cfg.Redis.Addr != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
			log.Println("[WARN] Redis unavailable. Falling back to DB sessions.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	stockRepo := stockadapters.NewStockRepository(db)
	commentRepo := commentadapters.NewCommentRepository(db)
	portfolioRepo := portfolioadapters.NewPortfolioRepository(db)

	// Token generator
	tokenGen := jwtmw.NewGenerator(cfg.JWT)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokenGen,
		cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
	stockUC := stockusecase.NewStockUsecase(stockRepo)
	commentUC := commentusecase.NewCommentUsecase(commentRepo, stockUC)
	portfolioUC := portfoliousecase.NewPortfolioUsecase(portfolioRepo, stockUC, userRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	stockH := stockhandler.NewStockHandler(stockUC)
	commentH := commenthandler.NewCommentHandler(commentUC)
	portfolioH := portfoliohandler.NewPortfolioHandler(portfolioUC)

	r := router.NewRouter(cfg.JWT, authH, stockH, commentH, portfolioH)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
