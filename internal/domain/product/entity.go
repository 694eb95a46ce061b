// internal/domain/product/entity.go
package product

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog entry. The catalog is the single
// source of truth for pricing: checkout always re-reads Price from
// here and never trusts client-submitted amounts.
type Product struct {
	ID          string         `gorm:"primaryKey;size:64" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"` // Unit price in euros
	ImageURL    string         `gorm:"size:500" json:"imageUrl"`
	Category    string         `gorm:"size:100;index" json:"category"`
	Stock       int            `gorm:"default:0" json:"stock"`
	Featured    bool           `gorm:"default:false" json:"featured"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}
