// Package usecase implements the business logic for the comments feature.
package usecase

import "errors"

var (
	// ErrCommentNotFound is returned when no comment matches the given ID.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrStockNotFound is returned when creating a comment against a stock
	// that does not exist. Orphans can only arise from a later stock deletion,
	// never at creation time.
	ErrStockNotFound = errors.New("stock not found")
)
