// Package handler provides the HTTP handlers for the portfolio feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioentity "portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/usecase"
	stockentity "portfolio_backend/internal/feature/stocks/domain/entity"
	stockdto "portfolio_backend/internal/feature/stocks/transport/http/dto"
	jwtmw "portfolio_backend/internal/platform/jwt"
)

// PortfolioUsecase defines the portfolio operations used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PortfolioUsecase interface {
	ListStocks(ctx context.Context, userID uint) ([]stockentity.Stock, error)
	Add(ctx context.Context, userID uint, symbol string) (*portfolioentity.Portfolio, error)
	Remove(ctx context.Context, userID uint, symbol string) error
}

// PortfolioHandler handles HTTP requests for portfolio operations.
// The acting user always comes from the verified bearer token.
type PortfolioHandler struct {
	uc PortfolioUsecase
}

// NewPortfolioHandler creates a new PortfolioHandler instance.
func NewPortfolioHandler(uc PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

// List handles GET /api/portfolio, returning the user's held stocks.
func (h *PortfolioHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	stocks, err := h.uc.ListStocks(c.Request.Context(), userID)
	if err != nil {
		slog.Error("portfolio list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]stockdto.StockRes, 0, len(stocks))
	for i := range stocks {
		out = append(out, stockdto.StockResFromEntity(&stocks[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Add handles POST /api/portfolio?symbol=. A missing user or stock yields 404,
// a duplicate holding 409.
func (h *PortfolioHandler) Add(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	if _, err := h.uc.Add(c.Request.Context(), userID, symbol); err != nil {
		switch {
		case errors.Is(err, usecase.ErrStockNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, usecase.ErrAlreadyInPortfolio):
			c.JSON(http.StatusConflict, gin.H{"error": "stock already in portfolio"})
		default:
			slog.Error("portfolio add failed", "error", err, "user_id", userID, "symbol", symbol)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "ok"})
}

// Remove handles DELETE /api/portfolio?symbol=, responding 204 on success.
func (h *PortfolioHandler) Remove(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	if err := h.uc.Remove(c.Request.Context(), userID, symbol); err != nil {
		switch {
		case errors.Is(err, usecase.ErrStockNotFound), errors.Is(err, usecase.ErrNotInPortfolio):
			c.JSON(http.StatusNotFound, gin.H{"error": "holding not found"})
		default:
			slog.Error("portfolio remove failed", "error", err, "user_id", userID, "symbol", symbol)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
