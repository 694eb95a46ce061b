// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// SchemaVersion is embedded in every persisted cart record so the
// stored shape can be migrated later without guessing.
const SchemaVersion = 1

// Item is a single cart line. Name, Price and ImageURL are display
// snapshots captured at add time and intentionally never re-synced
// with the catalog; checkout recomputes trusted prices on its own.
type Item struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"` // Unit price snapshot in euros
	ImageURL  string    `json:"imageUrl"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Record is the persisted cart payload. The whole record is replaced
// on every mutation (last writer wins across concurrent sessions).
type Record struct {
	Version   int       `json:"version"`
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Totals represents derived cart aggregates
type Totals struct {
	ItemCount     int     `json:"item_count"`     // Number of distinct lines
	TotalQuantity int     `json:"total_quantity"` // Sum of all quantities
	TotalPrice    float64 `json:"total_price"`    // Sum of snapshot price x quantity, euros
}

// Response represents a cart with items and derived totals
type Response struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	Totals    Totals    `json:"totals"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest represents a quantity update. Zero or negative
// removes the line entirely.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CalculateTotals derives the aggregates from a set of lines
func CalculateTotals(items []Item) Totals {
	var totals Totals
	totals.ItemCount = len(items)
	for _, item := range items {
		totals.TotalQuantity += item.Quantity
		totals.TotalPrice += item.Price * float64(item.Quantity)
	}
	return totals
}
