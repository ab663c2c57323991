package dto

import (
	"time"

	"portfolio_backend/internal/feature/stocks/domain/entity"
)

// StockRes is the JSON representation of a stock.
type StockRes struct {
	ID          uint      `json:"id"`
	Symbol      string    `json:"symbol"`
	CompanyName string    `json:"companyName"`
	Purchase    float64   `json:"purchase"`
	LastDiv     float64   `json:"lastDiv"`
	Industry    string    `json:"industry"`
	MarketCap   int64     `json:"marketCap"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StockResFromEntity converts a domain entity to its response form.
func StockResFromEntity(s *entity.Stock) StockRes {
	return StockRes{
		ID:          s.ID,
		Symbol:      s.Symbol,
		CompanyName: s.CompanyName,
		Purchase:    s.Purchase,
		LastDiv:     s.LastDiv,
		Industry:    s.Industry,
		MarketCap:   s.MarketCap,
		CreatedAt:   s.CreatedAt,
	}
}
