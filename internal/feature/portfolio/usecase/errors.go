// Package usecase implements the business logic for the portfolio feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when the holding's user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrStockNotFound is returned when the holding's stock does not exist.
	ErrStockNotFound = errors.New("stock not found")

	// ErrAlreadyInPortfolio is returned when the (user, stock) pair already
	// exists. A duplicate add is a conflict, never a silent duplication.
	ErrAlreadyInPortfolio = errors.New("stock already in portfolio")

	// ErrNotInPortfolio is returned when removing a holding the user does not have.
	ErrNotInPortfolio = errors.New("stock not in portfolio")
)
