package usecase

import (
	"context"
	"strings"

	"portfolio_backend/internal/feature/stocks/domain"
	"portfolio_backend/internal/feature/stocks/domain/entity"
)

// StockUpdate carries the mutable field set replaced by an update.
// The symbol is the immutable business key and is deliberately absent.
type StockUpdate struct {
	CompanyName string
	Purchase    float64
	LastDiv     float64
	Industry    string
	MarketCap   int64
}

// StockRepository abstracts the persistence layer for stock entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StockRepository interface {
	// List applies the query's filters, ordering and pagination in one plan
	// and returns the resulting page.
	List(ctx context.Context, q domain.StockQuery) ([]entity.Stock, error)

	// FindByID retrieves a stock by ID, returning ErrStockNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Stock, error)

	// FindBySymbol retrieves a stock by its exact (normalized) symbol.
	FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)

	// Create persists a new stock, returning ErrSymbolAlreadyExists on a
	// duplicate symbol.
	Create(ctx context.Context, stock *entity.Stock) error

	// Update replaces the mutable fields of the identified stock and returns
	// the updated row, or ErrStockNotFound.
	Update(ctx context.Context, id uint, update StockUpdate) (*entity.Stock, error)

	// Delete removes the stock and orphans its comments, returning the deleted
	// row or ErrStockNotFound.
	Delete(ctx context.Context, id uint) (*entity.Stock, error)

	// Exists reports whether a stock with the given ID exists.
	Exists(ctx context.Context, id uint) (bool, error)
}

// StockUsecase provides the business logic for stock operations.
type StockUsecase struct {
	repo StockRepository
}

// NewStockUsecase creates a new StockUsecase with the given repository.
func NewStockUsecase(r StockRepository) *StockUsecase {
	return &StockUsecase{repo: r}
}

// NormalizeSymbol maps a symbol onto its canonical stored form.
// Symbol handling is case-insensitive by construction: every write and lookup
// goes through this normalization, and the store compares exact strings.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// List returns one page of stocks for the given query.
func (u *StockUsecase) List(ctx context.Context, q domain.StockQuery) ([]entity.Stock, error) {
	q = q.Normalized()
	q.Symbol = NormalizeSymbol(q.Symbol)
	return u.repo.List(ctx, q)
}

// GetByID retrieves a single stock by ID.
func (u *StockUsecase) GetByID(ctx context.Context, id uint) (*entity.Stock, error) {
	return u.repo.FindByID(ctx, id)
}

// GetBySymbol retrieves a single stock by ticker symbol.
func (u *StockUsecase) GetBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	return u.repo.FindBySymbol(ctx, NormalizeSymbol(symbol))
}

// Create inserts a new stock with its symbol normalized.
func (u *StockUsecase) Create(ctx context.Context, stock *entity.Stock) error {
	stock.Symbol = NormalizeSymbol(stock.Symbol)
	return u.repo.Create(ctx, stock)
}

// Update replaces the mutable fields of the identified stock.
func (u *StockUsecase) Update(ctx context.Context, id uint, update StockUpdate) (*entity.Stock, error) {
	return u.repo.Update(ctx, id, update)
}

// Delete removes a stock. Comments referencing it survive with their stock
// reference cleared.
func (u *StockUsecase) Delete(ctx context.Context, id uint) (*entity.Stock, error) {
	return u.repo.Delete(ctx, id)
}

// Exists reports whether a stock with the given ID exists. Dependent features
// (portfolio, comments) use this before accepting a stock reference.
func (u *StockUsecase) Exists(ctx context.Context, id uint) (bool, error) {
	return u.repo.Exists(ctx, id)
}
