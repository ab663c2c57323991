// Package usecase implements the business logic for the stocks feature.
package usecase

import "errors"

var (
	// ErrStockNotFound is returned when no stock matches the given ID or symbol.
	// Not-found is a first-class outcome here, never folded into success.
	ErrStockNotFound = errors.New("stock not found")

	// ErrSymbolAlreadyExists is returned when creating a stock whose symbol is taken.
	ErrSymbolAlreadyExists = errors.New("stock with this symbol already exists")
)
