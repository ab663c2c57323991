// Package domain defines domain values for the stocks feature.
package domain

import "strings"

// SortField names a stock attribute results can be ordered by.
type SortField string

const (
	// SortNone leaves results in insertion (ID) order.
	SortNone SortField = ""
	// SortBySymbol orders results by ticker symbol.
	SortBySymbol SortField = "symbol"
)

// Page-size policy: values below 1 are rejected at the transport boundary,
// values above MaxPageSize are clamped here.
const (
	DefaultPageSize = 10
	MaxPageSize     = 20
)

// StockQuery describes a caller's filter/sort/paginate intent over the stock
// collection. It carries no persistence logic; the repository translates it
// into a single retrieval plan (filter, then sort, then paginate), so page
// boundaries are always computed over the filtered set.
type StockQuery struct {
	// Symbol, when set, restricts results to symbols with this prefix
	// (case-insensitive).
	Symbol string

	// CompanyName, when set, restricts results to company names with this
	// prefix (case-insensitive). Filters compose with AND semantics.
	CompanyName string

	// SortBy selects the ordering; ties are always broken by ID so that
	// pagination stays stable across pages.
	SortBy SortField

	// Descending reverses the selected ordering.
	Descending bool

	// PageNumber is 1-based.
	PageNumber int

	// PageSize is the number of items per page, capped at MaxPageSize.
	PageSize int
}

// Normalized returns a copy with defaults applied and the page size clamped.
func (q StockQuery) Normalized() StockQuery {
	if q.PageNumber < 1 {
		q.PageNumber = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	q.Symbol = strings.TrimSpace(q.Symbol)
	q.CompanyName = strings.TrimSpace(q.CompanyName)
	return q
}

// Offset returns the number of rows to skip for the requested page.
func (q StockQuery) Offset() int {
	return (q.PageNumber - 1) * q.PageSize
}
