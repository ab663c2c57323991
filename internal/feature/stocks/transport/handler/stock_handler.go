// Package handler provides the HTTP handlers for the stocks feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/feature/stocks/domain"
	"portfolio_backend/internal/feature/stocks/domain/entity"
	"portfolio_backend/internal/feature/stocks/transport/http/dto"
	"portfolio_backend/internal/feature/stocks/usecase"
)

// StockUsecase defines the stock operations used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type StockUsecase interface {
	List(ctx context.Context, q domain.StockQuery) ([]entity.Stock, error)
	GetByID(ctx context.Context, id uint) (*entity.Stock, error)
	Create(ctx context.Context, stock *entity.Stock) error
	Update(ctx context.Context, id uint, update usecase.StockUpdate) (*entity.Stock, error)
	Delete(ctx context.Context, id uint) (*entity.Stock, error)
}

// StockHandler handles HTTP requests for stock operations.
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler creates a new StockHandler instance.
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// pathID parses the :id route parameter, responding 404 on garbage. A
// non-numeric ID can never name a resource, so not-found fits better than 400.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
		return 0, false
	}
	return uint(id), true
}

// List handles GET /api/stock. Filter, sort and pagination parameters are
// bound from the query string; invalid page values are rejected with the
// offending field named in the error.
func (h *StockHandler) List(c *gin.Context) {
	var req dto.ListStocksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := domain.StockQuery{
		Symbol:      req.Symbol,
		CompanyName: req.CompanyName,
		Descending:  req.IsDescending,
		PageNumber:  req.PageNumber,
		PageSize:    req.PageSize,
	}
	if req.SortBy != "" {
		q.SortBy = domain.SortBySymbol
	}

	stocks, err := h.uc.List(c.Request.Context(), q)
	if err != nil {
		slog.Error("stock list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]dto.StockRes, 0, len(stocks))
	for i := range stocks {
		out = append(out, dto.StockResFromEntity(&stocks[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetByID handles GET /api/stock/:id.
func (h *StockHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	stock, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		slog.Error("stock lookup failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.StockResFromEntity(stock))
}

// Create handles POST /api/stock. On success it responds 201 with the created
// stock and a Location header pointing at GetByID.
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.CreateStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stock := &entity.Stock{
		Symbol:      req.Symbol,
		CompanyName: req.CompanyName,
		Purchase:    req.Purchase,
		LastDiv:     req.LastDiv,
		Industry:    req.Industry,
		MarketCap:   req.MarketCap,
	}
	if err := h.uc.Create(c.Request.Context(), stock); err != nil {
		if errors.Is(err, usecase.ErrSymbolAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "symbol already exists"})
			return
		}
		slog.Error("stock create failed", "error", err, "symbol", req.Symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/stock/%d", stock.ID))
	c.JSON(http.StatusCreated, dto.StockResFromEntity(stock))
}

// Update handles PUT /api/stock/:id, replacing the mutable field set.
func (h *StockHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stock, err := h.uc.Update(c.Request.Context(), id, usecase.StockUpdate{
		CompanyName: req.CompanyName,
		Purchase:    req.Purchase,
		LastDiv:     req.LastDiv,
		Industry:    req.Industry,
		MarketCap:   req.MarketCap,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		slog.Error("stock update failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.StockResFromEntity(stock))
}

// Delete handles DELETE /api/stock/:id, responding 204 on success.
func (h *StockHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		slog.Error("stock delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
