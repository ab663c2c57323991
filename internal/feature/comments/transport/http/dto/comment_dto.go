// Package dto defines data transfer objects for the comments feature's HTTP transport layer.
package dto

import (
	"time"

	"portfolio_backend/internal/feature/comments/domain/entity"
)

// CreateCommentReq represents the request body for creating a comment.
type CreateCommentReq struct {
	Title   string `json:"title" binding:"required,min=5,max=280"`
	Content string `json:"content" binding:"required,min=5,max=280"`
}

// UpdateCommentReq represents the request body for updating a comment.
type UpdateCommentReq struct {
	Title   string `json:"title" binding:"required,min=5,max=280"`
	Content string `json:"content" binding:"required,min=5,max=280"`
}

// CommentRes is the JSON representation of a comment. StockID is null for
// orphaned comments whose stock has been deleted.
type CommentRes struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedOn time.Time `json:"createdOn"`
	StockID   *uint     `json:"stockId"`
	UserID    uint      `json:"userId"`
}

// CommentResFromEntity converts a domain entity to its response form.
func CommentResFromEntity(c *entity.Comment) CommentRes {
	return CommentRes{
		ID:        c.ID,
		Title:     c.Title,
		Content:   c.Content,
		CreatedOn: c.CreatedOn,
		StockID:   c.StockID,
		UserID:    c.UserID,
	}
}
