// Package adapters provides the GORM repository implementation for the comments feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio_backend/internal/feature/comments/domain/entity"
	"portfolio_backend/internal/feature/comments/usecase"
)

// commentGorm is the relational implementation of the CommentRepository interface.
type commentGorm struct {
	db *gorm.DB
}

// Compile-time check that commentGorm implements CommentRepository.
var _ usecase.CommentRepository = (*commentGorm)(nil)

// NewCommentRepository creates a new commentGorm instance with the given DB handle.
func NewCommentRepository(db *gorm.DB) *commentGorm {
	return &commentGorm{db: db}
}

// List returns comments newest first, optionally restricted to one stock.
// Orphaned comments (nil StockID) only appear in the unfiltered listing.
func (r *commentGorm) List(ctx context.Context, stockID *uint) ([]entity.Comment, error) {
	tx := r.db.WithContext(ctx).Model(&entity.Comment{})
	if stockID != nil {
		tx = tx.Where("stock_id = ?", *stockID)
	}

	var comments []entity.Comment
	if err := tx.Order("created_on DESC").Order("id DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByID retrieves a comment by ID.
// It returns usecase.ErrCommentNotFound when no comment matches.
func (r *commentGorm) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var cm entity.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	return &cm, nil
}

// Create adds a comment to the database.
func (r *commentGorm) Create(ctx context.Context, cm *entity.Comment) error {
	return r.db.WithContext(ctx).Create(cm).Error
}

// Update replaces title and content of the identified comment.
// CreatedOn is never rewritten.
func (r *commentGorm) Update(ctx context.Context, id uint, title, content string) (*entity.Comment, error) {
	var cm entity.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&cm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrCommentNotFound
			}
			return err
		}

		cm.Title = title
		cm.Content = content

		return tx.Model(&entity.Comment{}).Where("id = ?", id).
			Updates(map[string]interface{}{"title": title, "content": content}).Error
	})
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

// Delete removes the comment and returns the deleted row.
func (r *commentGorm) Delete(ctx context.Context, id uint) (*entity.Comment, error) {
	var cm entity.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&cm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrCommentNotFound
			}
			return err
		}
		return tx.Delete(&entity.Comment{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &cm, nil
}
