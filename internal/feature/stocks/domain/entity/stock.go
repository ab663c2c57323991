// Package entity defines the domain entities for the stocks feature.
package entity

import "time"

// Stock represents a listed company tracked by the system.
type Stock struct {
	// ID is the unique identifier for the stock.
	ID uint `gorm:"primaryKey"`

	// Symbol is the ticker symbol, the unique business key.
	// It is normalized to upper case on create and immutable afterwards.
	Symbol string `gorm:"uniqueIndex;size:20;not null"`

	// CompanyName is the listed company's name.
	CompanyName string `gorm:"size:255;not null"`

	// Purchase is the reference purchase price.
	Purchase float64 `gorm:"type:decimal(18,2);not null"`

	// LastDiv is the most recent dividend per share.
	LastDiv float64 `gorm:"type:decimal(18,2);not null;default:0"`

	// Industry is the company's industry classification.
	Industry string `gorm:"size:100;not null"`

	// MarketCap is the market capitalization in whole currency units.
	MarketCap int64 `gorm:"not null"`

	// CreatedAt is the timestamp when the stock was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the stock was last updated.
	UpdatedAt time.Time
}
