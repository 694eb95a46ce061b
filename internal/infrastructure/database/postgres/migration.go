// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/lepetitmarche/storefront-api/internal/domain/product"
	"github.com/lepetitmarche/storefront-api/internal/domain/user"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("Running database auto-migrations...")

	models := []interface{}{
		&user.User{},
		&product.Product{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products(featured)",
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
	}

	for _, idx := range indexes {
		if err := m.db.Exec(idx).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedInitialData inserts the demo catalog when the products table is
// empty. Prices are unit prices in euros.
func (m *Migration) SeedInitialData() error {
	var count int64
	if err := m.db.Model(&product.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding product catalog...")

	products := seedProducts()
	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Printf("Seeded %d products", len(products))
	return nil
}

// seedProducts returns the demo catalog
func seedProducts() []product.Product {
	return []product.Product{
		{
			ID:          "baguette-tradition",
			Name:        "Baguette Tradition",
			Description: "Pain traditionnel croustillant, pétri quotidiennement.",
			Price:       1.20,
			ImageURL:    "/images_le_petit_marché/tradition_bread.jpeg",
			Category:    "Boulangerie",
			Stock:       120,
			Featured:    true,
		},
		{
			ID:          "croissant-beurre",
			Name:        "Croissant Beurre",
			Description: "Croissant pur beurre feuilleté et doré au four.",
			Price:       1.50,
			ImageURL:    "/images_le_petit_marché/croissants.jpeg",
			Category:    "Boulangerie",
			Stock:       80,
		},
		{
			ID:          "tomates-bio",
			Name:        "Tomates Bio",
			Description: "Tomates fraîches et juteuses issues de l'agriculture biologique.",
			Price:       2.99,
			ImageURL:    "/images_le_petit_marché/tomatoes_bio.jpeg",
			Category:    "Fruits & Légumes",
			Stock:       60,
			Featured:    true,
		},
		{
			ID:          "fromage-chevre",
			Name:        "Fromage de Chèvre",
			Description: "Fromage de chèvre artisanal, goût doux et crémeux.",
			Price:       4.50,
			ImageURL:    "/images_le_petit_marché/goat.jpeg",
			Category:    "Crèmerie",
			Stock:       35,
		},
		{
			ID:          "confiture-fraise",
			Name:        "Confiture Fraise Maison",
			Description: "Confiture de fraise cuite au chaudron, recette familiale.",
			Price:       3.90,
			ImageURL:    "/images_le_petit_marché/jam_straw.jpeg",
			Category:    "Épicerie",
			Stock:       50,
		},
		{
			ID:          "pates-artisanales",
			Name:        "Pâtes Artisanales",
			Description: "Pâtes sèches artisanales au blé dur, cuisson al dente.",
			Price:       2.50,
			ImageURL:    "/images_le_petit_marché/pastas.webp",
			Category:    "Épicerie",
			Stock:       100,
		},
		{
			ID:          "pommes-locales",
			Name:        "Pommes Locales",
			Description: "Pommes croquantes issues de vergers locaux.",
			Price:       2.10,
			ImageURL:    "/images_le_petit_marché/apples.jpeg",
			Category:    "Fruits & Légumes",
			Stock:       70,
		},
		{
			ID:          "bananes",
			Name:        "Bananes",
			Description: "Bananes mûries naturellement, sucrées et fondantes.",
			Price:       1.80,
			ImageURL:    "/images_le_petit_marché/bananes.jpeg",
			Category:    "Fruits & Légumes",
			Stock:       90,
			Featured:    true,
		},
	}
}
