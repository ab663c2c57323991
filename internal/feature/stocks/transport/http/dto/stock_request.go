// Package dto defines data transfer objects for the stocks feature's HTTP transport layer.
package dto

// ListStocksReq carries the query-string form of a stock query.
// Binding rejects negative page values before the repository is reached;
// zero and absent values fall back to defaults, and sizes above the cap are
// clamped later, not rejected.
type ListStocksReq struct {
	Symbol       string `form:"symbol"`
	CompanyName  string `form:"companyName"`
	SortBy       string `form:"sortBy" binding:"omitempty,oneof=symbol Symbol"`
	IsDescending bool   `form:"isDescending"`
	PageNumber   int    `form:"pageNumber" binding:"omitempty,gte=1"`
	PageSize     int    `form:"pageSize" binding:"omitempty,gte=1"`
}

// CreateStockReq represents the request body for creating a stock.
type CreateStockReq struct {
	Symbol      string  `json:"symbol" binding:"required,max=20"`
	CompanyName string  `json:"companyName" binding:"required,max=255"`
	Purchase    float64 `json:"purchase" binding:"required,gt=0"`
	LastDiv     float64 `json:"lastDiv" binding:"gte=0"`
	Industry    string  `json:"industry" binding:"required,max=100"`
	MarketCap   int64   `json:"marketCap" binding:"gte=0"`
}

// UpdateStockReq represents the request body for replacing a stock's mutable
// fields. The symbol is immutable and deliberately absent.
type UpdateStockReq struct {
	CompanyName string  `json:"companyName" binding:"required,max=255"`
	Purchase    float64 `json:"purchase" binding:"required,gt=0"`
	LastDiv     float64 `json:"lastDiv" binding:"gte=0"`
	Industry    string  `json:"industry" binding:"required,max=100"`
	MarketCap   int64   `json:"marketCap" binding:"gte=0"`
}
