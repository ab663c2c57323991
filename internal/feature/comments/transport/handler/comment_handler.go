// Package handler provides the HTTP handlers for the comments feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/feature/comments/domain/entity"
	"portfolio_backend/internal/feature/comments/transport/http/dto"
	"portfolio_backend/internal/feature/comments/usecase"
	jwtmw "portfolio_backend/internal/platform/jwt"
)

// CommentUsecase defines the comment operations used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CommentUsecase interface {
	List(ctx context.Context, stockID *uint) ([]entity.Comment, error)
	GetByID(ctx context.Context, id uint) (*entity.Comment, error)
	Create(ctx context.Context, stockID, userID uint, title, content string) (*entity.Comment, error)
	Update(ctx context.Context, id uint, title, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id uint) (*entity.Comment, error)
}

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	uc CommentUsecase
}

// NewCommentHandler creates a new CommentHandler instance.
func NewCommentHandler(uc CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(v), true
}

// List handles GET /api/comment, optionally filtered by ?stockId=.
func (h *CommentHandler) List(c *gin.Context) {
	var stockID *uint
	if raw := c.Query("stockId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stockId must be a positive integer"})
			return
		}
		id := uint(v)
		stockID = &id
	}

	comments, err := h.uc.List(c.Request.Context(), stockID)
	if err != nil {
		slog.Error("comment list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]dto.CommentRes, 0, len(comments))
	for i := range comments {
		out = append(out, dto.CommentResFromEntity(&comments[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetByID handles GET /api/comment/:id. An orphaned comment is returned with
// a null stockId rather than an error.
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	comment, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		slog.Error("comment lookup failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.CommentResFromEntity(comment))
}

// Create handles POST /api/comment/:stockId. The author is taken from the
// verified token, so only authenticated users reach this point.
func (h *CommentHandler) Create(c *gin.Context) {
	stockID, ok := parseUintParam(c, "stockId")
	if !ok {
		return
	}

	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	var req dto.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.uc.Create(c.Request.Context(), stockID, userID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		slog.Error("comment create failed", "error", err, "stock_id", stockID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, dto.CommentResFromEntity(comment))
}

// Update handles PUT /api/comment/:id.
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.uc.Update(c.Request.Context(), id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		slog.Error("comment update failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.CommentResFromEntity(comment))
}

// Delete handles DELETE /api/comment/:id, responding 204 on success.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		slog.Error("comment delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
