// Package entity defines the domain entities for the portfolio feature.
package entity

import (
	"time"

	userentity "portfolio_backend/internal/feature/auth/domain/entity"
	stockentity "portfolio_backend/internal/feature/stocks/domain/entity"
)

// Portfolio is the join record stating that a user holds a stock. The pair is
// the whole identity: the composite primary key makes a duplicate holding a
// store-level conflict even when two requests race past the existence checks.
// The foreign keys remove holdings together with their user or stock.
type Portfolio struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	StockID   uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time

	User  *userentity.User   `gorm:"constraint:OnDelete:CASCADE"`
	Stock *stockentity.Stock `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (Portfolio) TableName() string {
	return "portfolios"
}
