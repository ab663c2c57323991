// Package entity defines the domain entities for the comments feature.
package entity

import (
	"time"

	stockentity "portfolio_backend/internal/feature/stocks/domain/entity"
)

// Comment is a user-authored note attached to a stock. The stock reference is
// nullable: deleting a stock leaves its comments behind as orphans with
// StockID cleared. The author reference is mandatory and set at creation.
type Comment struct {
	// ID is the unique identifier for the comment.
	ID uint `gorm:"primaryKey"`

	// Title is the comment headline.
	Title string `gorm:"size:280;not null"`

	// Content is the comment body.
	Content string `gorm:"size:280;not null"`

	// CreatedOn is set once at creation and never mutated.
	CreatedOn time.Time `gorm:"not null;autoCreateTime"`

	// StockID references the commented stock; nil once the stock is deleted.
	StockID *uint `gorm:"index"`

	// Stock declares the association so migration emits the foreign key.
	// The SET NULL rule is the store-level backstop for the orphan policy.
	Stock *stockentity.Stock `gorm:"constraint:OnDelete:SET NULL"`

	// UserID references the authoring user.
	UserID uint `gorm:"index;not null"`
}
