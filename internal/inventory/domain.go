// Package inventory tracks sellable stock: supplements, merchandise and
// anything else that leaves through the front desk.
package inventory

import (
	"fmt"

	"github.com/tathastu-fit/tathastu-erp/internal/platform/httpx"
)

// Item is one stock line.
type Item struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Stock     int     `json:"stock"`
	Price     float64 `json:"price"`
	Threshold int     `json:"threshold"`
}

// View is an item with the derived reorder flag attached.
type View struct {
	Item
	LowStock bool `json:"low_stock"`
}

// StockAction is the mutation verb for a stock update.
type StockAction string

const (
	// ActionAdd restocks one unit.
	ActionAdd StockAction = "add"
	// ActionSell decrements one unit and books the sale as revenue.
	ActionSell StockAction = "sell"
)

var (
	// ErrNotFound indicates the item does not exist.
	ErrNotFound = fmt.Errorf("inventory: item %w", httpx.ErrNotFound)
	// ErrOutOfStock indicates a sale against an empty shelf.
	ErrOutOfStock = fmt.Errorf("inventory: out of stock: %w", httpx.ErrConflict)
	// ErrUnknownAction indicates an unsupported stock action.
	ErrUnknownAction = fmt.Errorf("inventory: unknown action: %w", httpx.ErrValidation)
)
