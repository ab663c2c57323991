// Package db opens the GORM connection to the relational store.
package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "portfolio_backend/internal/feature/auth/adapters"
	authentity "portfolio_backend/internal/feature/auth/domain/entity"
	commententity "portfolio_backend/internal/feature/comments/domain/entity"
	portfolioentity "portfolio_backend/internal/feature/portfolio/domain/entity"
	stockentity "portfolio_backend/internal/feature/stocks/domain/entity"
	"portfolio_backend/internal/platform/config"
)

// OpenDB connects to postgres, retrying for up to a minute so the server
// survives a database that is still starting. TranslateError is enabled so
// unique-key violations surface as gorm.ErrDuplicatedKey in the adapters.
func OpenDB(cfg config.DB) *gorm.DB {
	dsn := cfg.DSN()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	return db
}

// Migrate creates or updates the schema for every model in the system.
// Foreign keys declared on the models (comments.stock_id ON DELETE SET NULL,
// portfolio composite key) are part of this schema and backstop the
// existence-check-then-insert races at the store level.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&authadapters.SessionModel{},
		&stockentity.Stock{},
		&commententity.Comment{},
		&portfolioentity.Portfolio{},
	)
}
