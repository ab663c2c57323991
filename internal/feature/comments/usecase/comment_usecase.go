package usecase

import (
	"context"

	"portfolio_backend/internal/feature/comments/domain/entity"
)

// CommentRepository abstracts the persistence layer for comment entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CommentRepository interface {
	// List returns comments, optionally restricted to one stock, newest first.
	List(ctx context.Context, stockID *uint) ([]entity.Comment, error)

	// FindByID retrieves a comment by ID, returning ErrCommentNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)

	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update replaces title and content of the identified comment and returns
	// the updated row, or ErrCommentNotFound.
	Update(ctx context.Context, id uint, title, content string) (*entity.Comment, error)

	// Delete removes the comment, returning the deleted row or ErrCommentNotFound.
	Delete(ctx context.Context, id uint) (*entity.Comment, error)
}

// StockChecker is the slice of the stocks feature this usecase depends on.
// It gates comment creation on the referenced stock existing.
type StockChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// CommentUsecase provides the business logic for comment operations.
type CommentUsecase struct {
	repo   CommentRepository
	stocks StockChecker
}

// NewCommentUsecase creates a new CommentUsecase instance.
func NewCommentUsecase(repo CommentRepository, stocks StockChecker) *CommentUsecase {
	return &CommentUsecase{repo: repo, stocks: stocks}
}

// List returns comments, optionally filtered to a single stock.
func (u *CommentUsecase) List(ctx context.Context, stockID *uint) ([]entity.Comment, error) {
	return u.repo.List(ctx, stockID)
}

// GetByID retrieves a single comment. Orphaned comments are returned as-is
// with a nil stock reference; callers handle the absence explicitly.
func (u *CommentUsecase) GetByID(ctx context.Context, id uint) (*entity.Comment, error) {
	return u.repo.FindByID(ctx, id)
}

// Create attaches a new comment to a stock. The stock must exist at creation
// time; the author is the already-authenticated user, so no user check runs.
func (u *CommentUsecase) Create(ctx context.Context, stockID, userID uint, title, content string) (*entity.Comment, error) {
	ok, err := u.stocks.Exists(ctx, stockID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStockNotFound
	}

	comment := &entity.Comment{
		Title:   title,
		Content: content,
		StockID: &stockID,
		UserID:  userID,
	}
	if err := u.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update replaces the title and content of an existing comment.
// CreatedOn and the stock/author references stay untouched.
func (u *CommentUsecase) Update(ctx context.Context, id uint, title, content string) (*entity.Comment, error) {
	return u.repo.Update(ctx, id, title, content)
}

// Delete removes a comment.
func (u *CommentUsecase) Delete(ctx context.Context, id uint) (*entity.Comment, error) {
	return u.repo.Delete(ctx, id)
}
