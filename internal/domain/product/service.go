// internal/domain/product/service.go
package product

import (
	"context"
	"fmt"

	"github.com/lepetitmarche/storefront-api/internal/config"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a product id has no catalog entry.
var ErrNotFound = fmt.Errorf("product not found")

// Service handles catalog lookups
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ListProducts returns the full catalog ordered by name
func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.db.WithContext(ctx).Order("name asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns a single product by id
func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &p, nil
}

// ResolveProducts bulk-resolves a set of product ids to their
// authoritative catalog entries. Ids with no catalog match are simply
// absent from the result map; the caller decides whether that is an
// error.
func (s *Service) ResolveProducts(ctx context.Context, ids []string) (map[string]Product, error) {
	resolved := make(map[string]Product, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	var products []Product
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}

	for _, p := range products {
		resolved[p.ID] = p
	}
	return resolved, nil
}
