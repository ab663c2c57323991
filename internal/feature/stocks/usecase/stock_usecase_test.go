package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/feature/stocks/domain"
	"portfolio_backend/internal/feature/stocks/domain/entity"
)

// mockStockRepository is a func-field mock for StockRepository.
type mockStockRepository struct {
	ListFunc         func(ctx context.Context, q domain.StockQuery) ([]entity.Stock, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*entity.Stock, error)
	FindBySymbolFunc func(ctx context.Context, symbol string) (*entity.Stock, error)
	CreateFunc       func(ctx context.Context, stock *entity.Stock) error
	UpdateFunc       func(ctx context.Context, id uint, update StockUpdate) (*entity.Stock, error)
	DeleteFunc       func(ctx context.Context, id uint) (*entity.Stock, error)
	ExistsFunc       func(ctx context.Context, id uint) (bool, error)
}

func (m *mockStockRepository) List(ctx context.Context, q domain.StockQuery) ([]entity.Stock, error) {
	return m.ListFunc(ctx, q)
}
func (m *mockStockRepository) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockStockRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	return m.FindBySymbolFunc(ctx, symbol)
}
func (m *mockStockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	return m.CreateFunc(ctx, stock)
}
func (m *mockStockRepository) Update(ctx context.Context, id uint, update StockUpdate) (*entity.Stock, error) {
	return m.UpdateFunc(ctx, id, update)
}
func (m *mockStockRepository) Delete(ctx context.Context, id uint) (*entity.Stock, error) {
	return m.DeleteFunc(ctx, id)
}
func (m *mockStockRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return m.ExistsFunc(ctx, id)
}

func TestNormalizeSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase is uppercased", input: "aapl", want: "AAPL"},
		{name: "mixed case is uppercased", input: "AaPl", want: "AAPL"},
		{name: "surrounding whitespace is trimmed", input: "  TSLA  ", want: "TSLA"},
		{name: "canonical form is unchanged", input: "MSFT", want: "MSFT"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeSymbol(tt.input))
		})
	}
}

func TestStockUsecase_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query domain.StockQuery
		want  domain.StockQuery
	}{
		{
			name:  "zero query gets defaults",
			query: domain.StockQuery{},
			want:  domain.StockQuery{PageNumber: 1, PageSize: domain.DefaultPageSize},
		},
		{
			name:  "oversized page size is clamped",
			query: domain.StockQuery{PageNumber: 3, PageSize: 500},
			want:  domain.StockQuery{PageNumber: 3, PageSize: domain.MaxPageSize},
		},
		{
			name:  "symbol filter is normalized",
			query: domain.StockQuery{Symbol: " aa ", PageNumber: 2, PageSize: 5},
			want:  domain.StockQuery{Symbol: "AA", PageNumber: 2, PageSize: 5},
		},
		{
			name:  "valid query passes through unchanged",
			query: domain.StockQuery{CompanyName: "App", SortBy: domain.SortBySymbol, Descending: true, PageNumber: 2, PageSize: 15},
			want:  domain.StockQuery{CompanyName: "App", SortBy: domain.SortBySymbol, Descending: true, PageNumber: 2, PageSize: 15},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got domain.StockQuery
			repo := &mockStockRepository{
				ListFunc: func(ctx context.Context, q domain.StockQuery) ([]entity.Stock, error) {
					got = q
					return []entity.Stock{}, nil
				},
			}

			_, err := NewStockUsecase(repo).List(context.Background(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "repository must receive the normalized query")
		})
	}
}

func TestStockUsecase_Create(t *testing.T) {
	t.Parallel()

	t.Run("normalizes the symbol before storing", func(t *testing.T) {
		t.Parallel()

		var stored *entity.Stock
		repo := &mockStockRepository{
			CreateFunc: func(ctx context.Context, stock *entity.Stock) error {
				stored = stock
				return nil
			},
		}

		s := &entity.Stock{Symbol: " aapl ", CompanyName: "Apple"}
		err := NewStockUsecase(repo).Create(context.Background(), s)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "AAPL", stored.Symbol)
	})

	t.Run("propagates the duplicate-symbol conflict", func(t *testing.T) {
		t.Parallel()

		repo := &mockStockRepository{
			CreateFunc: func(ctx context.Context, stock *entity.Stock) error {
				return ErrSymbolAlreadyExists
			},
		}

		err := NewStockUsecase(repo).Create(context.Background(), &entity.Stock{Symbol: "AAPL"})

		assert.ErrorIs(t, err, ErrSymbolAlreadyExists)
	})
}

func TestStockUsecase_GetBySymbol(t *testing.T) {
	t.Parallel()

	var lookedUp string
	repo := &mockStockRepository{
		FindBySymbolFunc: func(ctx context.Context, symbol string) (*entity.Stock, error) {
			lookedUp = symbol
			return &entity.Stock{ID: 1, Symbol: symbol}, nil
		},
	}

	got, err := NewStockUsecase(repo).GetBySymbol(context.Background(), "tsla")

	require.NoError(t, err)
	assert.Equal(t, "TSLA", lookedUp, "lookup must use the canonical symbol form")
	assert.Equal(t, uint(1), got.ID)
}

func TestStockUsecase_NotFoundPropagation(t *testing.T) {
	t.Parallel()

	repo := &mockStockRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Stock, error) {
			return nil, ErrStockNotFound
		},
		UpdateFunc: func(ctx context.Context, id uint, update StockUpdate) (*entity.Stock, error) {
			return nil, ErrStockNotFound
		},
		DeleteFunc: func(ctx context.Context, id uint) (*entity.Stock, error) {
			return nil, ErrStockNotFound
		},
	}
	u := NewStockUsecase(repo)

	_, err := u.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrStockNotFound)

	_, err = u.Update(context.Background(), 42, StockUpdate{})
	assert.ErrorIs(t, err, ErrStockNotFound)

	_, err = u.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrStockNotFound)
}
