package adapters

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	commententity "portfolio_backend/internal/feature/comments/domain/entity"
	"portfolio_backend/internal/feature/stocks/domain"
	"portfolio_backend/internal/feature/stocks/domain/entity"
	"portfolio_backend/internal/feature/stocks/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError mirrors the production configuration so duplicate keys
// surface as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Stock{}, &commententity.Comment{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func newStock(symbol, name string) *entity.Stock {
	return &entity.Stock{
		Symbol:      symbol,
		CompanyName: name,
		Purchase:    100.0,
		LastDiv:     1.5,
		Industry:    "Technology",
		MarketCap:   1_000_000_000,
	}
}

// seedStocks inserts the given stocks in order and fails the test on error.
func seedStocks(t *testing.T, repo *stockGorm, stocks ...*entity.Stock) {
	t.Helper()
	for _, s := range stocks {
		require.NoError(t, repo.Create(context.Background(), s), "failed to seed stock %s", s.Symbol)
	}
}

func TestNewStockRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewStockRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestStockGorm_Create(t *testing.T) {
	t.Run("successful stock creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		s := newStock("AAPL", "Apple")
		err := repo.Create(context.Background(), s)

		assert.NoError(t, err, "failed to create stock")
		assert.NotZero(t, s.ID, "ID is not set")
		assert.False(t, s.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate symbol conflict", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		require.NoError(t, repo.Create(context.Background(), newStock("AAPL", "Apple")))

		err := repo.Create(context.Background(), newStock("AAPL", "Apple Clone"))

		assert.Error(t, err, "duplicate symbol must be rejected")
		assert.ErrorIs(t, err, usecase.ErrSymbolAlreadyExists,
			"conflict must be distinguishable from other failures")
	})
}

func TestStockGorm_FindByID(t *testing.T) {
	t.Run("find stock by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		expected := newStock("MSFT", "Microsoft")
		seedStocks(t, repo, expected)

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find stock")
		require.NotNil(t, found, "stock is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, "MSFT", found.Symbol, "symbol does not match")
		assert.Equal(t, "Microsoft", found.CompanyName, "company name does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "stock should be nil")
		assert.ErrorIs(t, err, usecase.ErrStockNotFound, "should return ErrStockNotFound")
	})
}

func TestStockGorm_FindBySymbol(t *testing.T) {
	t.Run("exact match on normalized symbol", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		expected := newStock("TSLA", "Tesla")
		seedStocks(t, repo, expected, newStock("TSL", "Totally Separate Ltd"))

		found, err := repo.FindBySymbol(context.Background(), "TSLA")

		assert.NoError(t, err, "failed to find stock")
		require.NotNil(t, found, "stock is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
	})

	t.Run("no prefix matching on symbol lookups", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		seedStocks(t, repo, newStock("TSLA", "Tesla"))

		found, err := repo.FindBySymbol(context.Background(), "TSL")

		assert.Nil(t, found, "stock should be nil")
		assert.ErrorIs(t, err, usecase.ErrStockNotFound, "should return ErrStockNotFound")
	})
}

func TestStockGorm_List(t *testing.T) {
	// seedListFixture inserts a fixed collection used by the listing tests.
	seedListFixture := func(t *testing.T, repo *stockGorm) {
		t.Helper()
		seedStocks(t, repo,
			newStock("AAPL", "Apple"),
			newStock("AMZN", "Amazon"),
			newStock("GOOG", "Alphabet"),
			newStock("AMD", "Advanced Micro Devices"),
			newStock("MSFT", "Microsoft"),
		)
	}

	t.Run("default order is insertion order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seedListFixture(t, repo)

		got, err := repo.List(context.Background(), domain.StockQuery{}.Normalized())

		require.NoError(t, err)
		symbols := make([]string, 0, len(got))
		for _, s := range got {
			symbols = append(symbols, s.Symbol)
		}
		assert.Equal(t, []string{"AAPL", "AMZN", "GOOG", "AMD", "MSFT"}, symbols)
	})

	t.Run("symbol prefix filter is case-insensitive", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seedListFixture(t, repo)

		q := domain.StockQuery{Symbol: "AM", PageNumber: 1, PageSize: 10}
		got, err := repo.List(context.Background(), q.Normalized())

		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, s := range got {
			assert.Contains(t, []string{"AMZN", "AMD"}, s.Symbol,
				"result must be a subset of prefix-matching symbols")
		}
	})

	t.Run("company name prefix filter", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seedListFixture(t, repo)

		q := domain.StockQuery{CompanyName: "a", PageNumber: 1, PageSize: 10}
		got, err := repo.List(context.Background(), q.Normalized())

		require.NoError(t, err)
		require.Len(t, got, 3)
		for _, s := range got {
			assert.Contains(t, []string{"Apple", "Amazon", "Alphabet", "Advanced Micro Devices"}, s.CompanyName)
		}
	})

	t.Run("filters compose with AND semantics", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seedListFixture(t, repo)

		q := domain.StockQuery{Symbol: "AM", CompanyName: "Ad", PageNumber: 1, PageSize: 10}
		got, err := repo.List(context.Background(), q.Normalized())

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "AMD", got[0].Symbol)
	})

	t.Run("like metacharacters in filters match literally", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seedStocks(t, repo,
			newStock("AAPL", "Apple"),
			newStock("A1", "A%B Holdings"),
		)

		q := domain.StockQuery{CompanyName: "A%", PageNumber: 1, PageSize: 10}
		got, err := repo.List(context.Background(), q.Normalized())

		require.NoError(t, err)
		require.Len(t, got, 1, "percent must not act as a wildcard")
		assert.Equal(t, "A1", got[0].Symbol)
	})

	t.Run("sort by symbol ascending and descending", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seedListFixture(t, repo)

		asc, err := repo.List(context.Background(),
			domain.StockQuery{SortBy: domain.SortBySymbol, PageNumber: 1, PageSize: 10}.Normalized())
		require.NoError(t, err)

		var ascSymbols []string
		for _, s := range asc {
			ascSymbols = append(ascSymbols, s.Symbol)
		}
		assert.Equal(t, []string{"AAPL", "AMD", "AMZN", "GOOG", "MSFT"}, ascSymbols)

		desc, err := repo.List(context.Background(),
			domain.StockQuery{SortBy: domain.SortBySymbol, Descending: true, PageNumber: 1, PageSize: 10}.Normalized())
		require.NoError(t, err)

		var descSymbols []string
		for _, s := range desc {
			descSymbols = append(descSymbols, s.Symbol)
		}
		assert.Equal(t, []string{"MSFT", "GOOG", "AMZN", "AMD", "AAPL"}, descSymbols)
	})

	t.Run("pagination composes over the filtered set", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		// 25 matching stocks plus noise that must not shift page boundaries.
		for i := 1; i <= 25; i++ {
			seedStocks(t, repo, newStock(fmt.Sprintf("FL%02d", i), fmt.Sprintf("Filtered %02d", i)))
			seedStocks(t, repo, newStock(fmt.Sprintf("XX%02d", i), fmt.Sprintf("Noise %02d", i)))
		}

		seen := make(map[string]int)
		total := 0
		for page := 1; ; page++ {
			q := domain.StockQuery{Symbol: "FL", PageNumber: page, PageSize: 10}
			got, err := repo.List(context.Background(), q.Normalized())
			require.NoError(t, err)
			if len(got) == 0 {
				break
			}
			for _, s := range got {
				assert.Equal(t, "FL", s.Symbol[:2], "page contains non-matching stock")
				seen[s.Symbol]++
			}
			total += len(got)
		}

		assert.Equal(t, 25, total, "page sizes must sum to the filtered total")
		for symbol, n := range seen {
			assert.Equal(t, 1, n, "stock %s appeared on more than one page", symbol)
		}
	})

	t.Run("pagination is deterministic across repeated calls", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		// Same company name on every row forces the ID tiebreaker to decide.
		for i := 1; i <= 15; i++ {
			seedStocks(t, repo, &entity.Stock{
				Symbol:      fmt.Sprintf("T%02d", i),
				CompanyName: "Tied Industries",
				Purchase:    10,
				Industry:    "Test",
				MarketCap:   1,
			})
		}

		q := domain.StockQuery{CompanyName: "Tied", SortBy: domain.SortBySymbol, PageNumber: 2, PageSize: 5}
		first, err := repo.List(context.Background(), q.Normalized())
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			again, err := repo.List(context.Background(), q.Normalized())
			require.NoError(t, err)
			assert.Equal(t, first, again, "repeated identical queries must return identical pages")
		}
	})

	t.Run("page beyond the collection is empty, not an error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seedListFixture(t, repo)

		q := domain.StockQuery{PageNumber: 99, PageSize: 10}
		got, err := repo.List(context.Background(), q.Normalized())

		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestStockGorm_Update(t *testing.T) {
	t.Run("replaces the mutable field set", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		s := newStock("AAPL", "Apple")
		seedStocks(t, repo, s)

		updated, err := repo.Update(context.Background(), s.ID, usecase.StockUpdate{
			CompanyName: "Apple Inc.",
			Purchase:    180.5,
			LastDiv:     0.96,
			Industry:    "Consumer Electronics",
			MarketCap:   3_000_000_000,
		})

		require.NoError(t, err, "failed to update stock")
		assert.Equal(t, "Apple Inc.", updated.CompanyName)
		assert.Equal(t, 180.5, updated.Purchase)
		assert.Equal(t, "AAPL", updated.Symbol, "symbol must stay immutable")

		// The new values are persisted, not just echoed back.
		found, err := repo.FindByID(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Equal(t, "Apple Inc.", found.CompanyName)
		assert.Equal(t, int64(3_000_000_000), found.MarketCap)
	})

	t.Run("unknown ID yields ErrStockNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		updated, err := repo.Update(context.Background(), 404, usecase.StockUpdate{CompanyName: "Ghost"})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, usecase.ErrStockNotFound,
			"not-found must be an explicit outcome, never a nil success")
	})
}

func TestStockGorm_Delete(t *testing.T) {
	t.Run("deletes and returns the stock", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		s := newStock("AAPL", "Apple")
		seedStocks(t, repo, s)

		deleted, err := repo.Delete(context.Background(), s.ID)

		require.NoError(t, err, "failed to delete stock")
		assert.Equal(t, s.ID, deleted.ID)

		_, err = repo.FindByID(context.Background(), s.ID)
		assert.ErrorIs(t, err, usecase.ErrStockNotFound, "stock must be gone after delete")
	})

	t.Run("unknown ID yields ErrStockNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		deleted, err := repo.Delete(context.Background(), 404)

		assert.Nil(t, deleted)
		assert.ErrorIs(t, err, usecase.ErrStockNotFound)
	})

	t.Run("comments survive as orphans", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		s := newStock("AAPL", "Apple")
		seedStocks(t, repo, s)

		comment := &commententity.Comment{
			Title:   "great quarter",
			Content: "earnings beat expectations",
			StockID: &s.ID,
			UserID:  1,
		}
		require.NoError(t, db.Create(comment).Error, "failed to seed comment")

		_, err := repo.Delete(context.Background(), s.ID)
		require.NoError(t, err, "failed to delete stock")

		var orphan commententity.Comment
		require.NoError(t, db.First(&orphan, comment.ID).Error,
			"comment must still be retrievable after its stock is deleted")
		assert.Nil(t, orphan.StockID, "orphaned comment must have its stock reference cleared")
		assert.Equal(t, "great quarter", orphan.Title, "comment content must be untouched")
	})
}

func TestStockGorm_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockRepository(db)

	s := newStock("AAPL", "Apple")
	seedStocks(t, repo, s)

	ok, err := repo.Exists(context.Background(), s.ID)
	assert.NoError(t, err)
	assert.True(t, ok, "existing stock must be reported")

	ok, err = repo.Exists(context.Background(), 999)
	assert.NoError(t, err)
	assert.False(t, ok, "missing stock must not be reported")
}
