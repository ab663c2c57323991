// Package adapters provides the GORM repository implementation for the portfolio feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/usecase"
	stockentity "portfolio_backend/internal/feature/stocks/domain/entity"
)

// portfolioGorm is the relational implementation of the PortfolioRepository interface.
type portfolioGorm struct {
	db *gorm.DB
}

// Compile-time check that portfolioGorm implements PortfolioRepository.
var _ usecase.PortfolioRepository = (*portfolioGorm)(nil)

// NewPortfolioRepository creates a new portfolioGorm instance with the given DB handle.
func NewPortfolioRepository(db *gorm.DB) *portfolioGorm {
	return &portfolioGorm{db: db}
}

// isDuplicateKey reports whether err is a unique-constraint violation,
// covering both GORM's translated error and the raw postgres SQLSTATE.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts a holding. The composite primary key turns a duplicate
// (user, stock) pair into usecase.ErrAlreadyInPortfolio.
func (r *portfolioGorm) Create(ctx context.Context, p *entity.Portfolio) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrAlreadyInPortfolio
		}
		return err
	}
	return nil
}

// Delete removes a holding by its pair.
// It returns usecase.ErrNotInPortfolio when the pair does not exist.
func (r *portfolioGorm) Delete(ctx context.Context, userID, stockID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND stock_id = ?", userID, stockID).
		Delete(&entity.Portfolio{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrNotInPortfolio
	}
	return nil
}

// ListStocks returns the stocks held by the user, oldest holding first.
func (r *portfolioGorm) ListStocks(ctx context.Context, userID uint) ([]stockentity.Stock, error) {
	var stocks []stockentity.Stock
	if err := r.db.WithContext(ctx).
		Model(&stockentity.Stock{}).
		Joins("JOIN portfolios ON portfolios.stock_id = stocks.id").
		Where("portfolios.user_id = ?", userID).
		Order("portfolios.created_at ASC").
		Order("stocks.id ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}
