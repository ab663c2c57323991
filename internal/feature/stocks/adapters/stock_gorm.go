// Package adapters provides the GORM repository implementation for the stocks feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	commententity "portfolio_backend/internal/feature/comments/domain/entity"
	"portfolio_backend/internal/feature/stocks/domain"
	"portfolio_backend/internal/feature/stocks/domain/entity"
	"portfolio_backend/internal/feature/stocks/usecase"
)

// stockGorm is the relational implementation of the StockRepository interface.
type stockGorm struct {
	db *gorm.DB
}

// Compile-time check that stockGorm implements StockRepository.
var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository creates a new stockGorm instance with the given DB handle.
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// escapeLike escapes LIKE metacharacters so filter input is matched literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
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

// List resolves a StockQuery as one plan: filters first, then ordering, then
// offset/limit, so page boundaries are computed over the filtered set.
// ID is always the final sort key, which keeps pagination deterministic for a
// fixed snapshot even when symbols collide in the requested ordering.
func (r *stockGorm) List(ctx context.Context, q domain.StockQuery) ([]entity.Stock, error) {
	tx := r.db.WithContext(ctx).Model(&entity.Stock{})

	if q.Symbol != "" {
		tx = tx.Where(`symbol LIKE ? ESCAPE '\'`, escapeLike(q.Symbol)+"%")
	}
	if q.CompanyName != "" {
		tx = tx.Where(`UPPER(company_name) LIKE UPPER(?) ESCAPE '\'`, escapeLike(q.CompanyName)+"%")
	}

	dir := "ASC"
	if q.Descending {
		dir = "DESC"
	}
	switch q.SortBy {
	case domain.SortBySymbol:
		tx = tx.Order("symbol " + dir).Order("id ASC")
	default:
		tx = tx.Order("id " + dir)
	}

	var stocks []entity.Stock
	if err := tx.Offset(q.Offset()).Limit(q.PageSize).Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindByID retrieves a stock by ID.
// It returns usecase.ErrStockNotFound when no stock matches.
func (r *stockGorm) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	var s entity.Stock
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindBySymbol retrieves a stock by its exact normalized symbol.
func (r *stockGorm) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	var s entity.Stock
	if err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create adds a stock to the database.
// It returns usecase.ErrSymbolAlreadyExists when the symbol is already taken.
func (r *stockGorm) Create(ctx context.Context, s *entity.Stock) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrSymbolAlreadyExists
		}
		return err
	}
	return nil
}

// Update replaces the mutable fields of the identified stock and returns the
// updated row, or usecase.ErrStockNotFound. Callers must branch on the error
// explicitly; there is no nil-success sentinel.
func (r *stockGorm) Update(ctx context.Context, id uint, update usecase.StockUpdate) (*entity.Stock, error) {
	var s entity.Stock
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrStockNotFound
			}
			return err
		}

		s.CompanyName = update.CompanyName
		s.Purchase = update.Purchase
		s.LastDiv = update.LastDiv
		s.Industry = update.Industry
		s.MarketCap = update.MarketCap

		return tx.Save(&s).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the stock and clears the stock reference on its comments in
// the same transaction. Comments outlive their stock as orphans; they are
// never deleted here.
func (r *stockGorm) Delete(ctx context.Context, id uint) (*entity.Stock, error) {
	var s entity.Stock
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrStockNotFound
			}
			return err
		}

		if err := tx.Model(&commententity.Comment{}).
			Where("stock_id = ?", id).
			Update("stock_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&entity.Stock{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Exists reports whether a stock with the given ID exists.
func (r *stockGorm) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Stock{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
