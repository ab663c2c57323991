package usecase

import (
	"context"
	"errors"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	stockentity "portfolio_backend/internal/feature/stocks/domain/entity"
	stockusecase "portfolio_backend/internal/feature/stocks/usecase"
)

// PortfolioRepository abstracts the persistence layer for portfolio rows.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PortfolioRepository interface {
	// Create inserts a holding, returning ErrAlreadyInPortfolio on a duplicate pair.
	Create(ctx context.Context, p *entity.Portfolio) error

	// Delete removes a holding, returning ErrNotInPortfolio when absent.
	// Removing a row never touches the user or the stock themselves.
	Delete(ctx context.Context, userID, stockID uint) error

	// ListStocks returns the stocks held by the user, in holding-creation order.
	ListStocks(ctx context.Context, userID uint) ([]stockentity.Stock, error)
}

// StockFinder is the slice of the stocks feature this usecase depends on.
type StockFinder interface {
	GetBySymbol(ctx context.Context, symbol string) (*stockentity.Stock, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// UserChecker is the slice of the auth feature this usecase depends on.
type UserChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// PortfolioUsecase provides the business logic for portfolio operations.
type PortfolioUsecase struct {
	repo   PortfolioRepository
	stocks StockFinder
	users  UserChecker
}

// NewPortfolioUsecase creates a new PortfolioUsecase instance.
func NewPortfolioUsecase(repo PortfolioRepository, stocks StockFinder, users UserChecker) *PortfolioUsecase {
	return &PortfolioUsecase{repo: repo, stocks: stocks, users: users}
}

// ListStocks returns the authenticated user's holdings.
func (u *PortfolioUsecase) ListStocks(ctx context.Context, userID uint) ([]stockentity.Stock, error) {
	return u.repo.ListStocks(ctx, userID)
}

// Add records that the user holds the stock with the given symbol. Both the
// user and the stock are confirmed to exist before the insert; the order of
// the two checks carries no meaning. A concurrent deletion slipping between
// check and insert is caught by the store's foreign keys, not ignored.
func (u *PortfolioUsecase) Add(ctx context.Context, userID uint, symbol string) (*entity.Portfolio, error) {
	stock, err := u.stocks.GetBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, stockusecase.ErrStockNotFound) {
			return nil, ErrStockNotFound
		}
		return nil, err
	}

	ok, err := u.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	p := &entity.Portfolio{UserID: userID, StockID: stock.ID}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Remove deletes the user's holding of the stock with the given symbol.
// The user and the stock survive the removal untouched.
func (u *PortfolioUsecase) Remove(ctx context.Context, userID uint, symbol string) error {
	stock, err := u.stocks.GetBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, stockusecase.ErrStockNotFound) {
			return ErrStockNotFound
		}
		return err
	}
	return u.repo.Delete(ctx, userID, stock.ID)
}
