// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/your-org/sneakstore-backend/internal/domain/catalog"
	"github.com/your-org/sneakstore-backend/internal/domain/order"
	"github.com/your-org/sneakstore-backend/internal/domain/user"
	"github.com/your-org/sneakstore-backend/internal/domain/wishlist"
	"golang.org/x/crypto/bcrypt"
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
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		// User domain - Base tables
		&user.User{},
		&user.Address{},

		// Catalog domain
		&catalog.Sneaker{},
		&catalog.SneakerSize{},
		&catalog.SneakerImage{},
		&catalog.SneakerColor{},

		// Wishlist domain
		&wishlist.Item{},

		// Order domain - Dependent tables
		&order.Order{},
		&order.OrderItem{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at DESC)",

		// Sneaker indexes
		"CREATE INDEX IF NOT EXISTS idx_sneakers_brand_active ON sneakers(brand, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_sneakers_featured ON sneakers(is_featured, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_sneakers_price ON sneakers(price)",
		"CREATE INDEX IF NOT EXISTS idx_sneakers_slug ON sneakers(slug)",
		"CREATE INDEX IF NOT EXISTS idx_sneakers_rating ON sneakers(rating DESC)",

		// Size and image indexes
		"CREATE INDEX IF NOT EXISTS idx_sneaker_sizes_sneaker_size ON sneaker_sizes(sneaker_id, size)",
		"CREATE INDEX IF NOT EXISTS idx_sneaker_images_primary ON sneaker_images(sneaker_id, is_primary)",

		// Wishlist indexes
		"CREATE INDEX IF NOT EXISTS idx_wishlist_items_user ON wishlist_items(user_id, created_at DESC)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_user_status ON orders(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_order_number ON orders(order_number)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",

		// Address indexes
		"CREATE INDEX IF NOT EXISTS idx_addresses_user_default ON addresses(user_id, is_default)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedTestUser(); err != nil {
		return fmt.Errorf("failed to seed test user: %w", err)
	}

	if err := m.seedSneakers(); err != nil {
		return fmt.Errorf("failed to seed sneakers: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedTestUser creates a test user for development
func (m *Migration) seedTestUser() error {
	log.Println("👤 Seeding test user...")

	var existing user.User
	result := m.db.Where("email = ?", "test@sneakstore.com").First(&existing)
	if result.Error == nil {
		log.Println("Test user already exists, skipping")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Test1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	testUser := user.User{
		Email:     "test@sneakstore.com",
		Password:  string(hashedPassword),
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
	}

	if err := m.db.Create(&testUser).Error; err != nil {
		return err
	}

	log.Println("Created test user: test@sneakstore.com / Test1234")
	return nil
}

type seedSneaker struct {
	sku         string
	name        string
	brand       string
	slug        string
	description string
	price       string
	rating      float64
	reviews     int
	stockStatus catalog.StockStatus
	stockCount  int
	featured    bool
	sizes       []float64
	image       string
	colors      []catalog.SneakerColor
}

// seedSneakers creates the initial catalog
func (m *Migration) seedSneakers() error {
	log.Println("👟 Seeding sneakers...")

	seeds := []seedSneaker{
		{
			sku: "NK-AMP-001", name: "Air Max Pulse", brand: "Nike", slug: "air-max-pulse",
			description: "The latest in comfort and style",
			price:       "159.99", rating: 4.5, reviews: 128,
			stockStatus: catalog.StockStatusInStock, stockCount: 120, featured: true,
			sizes: []float64{7, 8, 9, 10, 11},
			image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&q=75&w=600",
			colors: []catalog.SneakerColor{
				{Name: "Black", Hex: "#000000"},
			},
		},
		{
			sku: "AD-UBL-002", name: "Ultraboost Light", brand: "Adidas", slug: "ultraboost-light",
			description: "Epic energy return in the lightest Ultraboost ever",
			price:       "179.99", rating: 4.7, reviews: 204,
			stockStatus: catalog.StockStatusInStock, stockCount: 85, featured: true,
			sizes: []float64{7, 7.5, 8, 9, 10, 11, 12},
			image: "https://images.unsplash.com/photo-1608231387042-66d1773070a5?auto=format&q=75&w=600",
			colors: []catalog.SneakerColor{
				{Name: "Cloud White", Hex: "#F5F5F5"},
				{Name: "Core Black", Hex: "#1A1A1A"},
			},
		},
		{
			sku: "NK-AJ1-003", name: "Air Jordan 1 Retro High", brand: "Nike", slug: "air-jordan-1-retro-high",
			description: "The shoe that started it all, in timeless colorways",
			price:       "189.99", rating: 4.8, reviews: 312,
			stockStatus: catalog.StockStatusLimited, stockCount: 4, featured: true,
			sizes: []float64{8, 8.5, 9, 9.5, 10, 10.5, 11},
			image: "https://images.unsplash.com/photo-1556906781-9a412961c28c?auto=format&q=75&w=600",
			colors: []catalog.SneakerColor{
				{Name: "Chicago", Hex: "#CE1141"},
			},
		},
		{
			sku: "NB-990-004", name: "990v6", brand: "New Balance", slug: "990v6",
			description: "Premium made-in-USA craftsmanship and all-day comfort",
			price:       "199.99", rating: 4.6, reviews: 97,
			stockStatus: catalog.StockStatusInStock, stockCount: 60, featured: false,
			sizes: []float64{7, 8, 9, 10, 11, 12, 13},
			image: "https://images.unsplash.com/photo-1539185441755-769473a23570?auto=format&q=75&w=600",
			colors: []catalog.SneakerColor{
				{Name: "Grey", Hex: "#808080"},
			},
		},
		{
			sku: "PM-RSX-005", name: "RS-X Efekt", brand: "Puma", slug: "rs-x-efekt",
			description: "Bold retro running style with modern cushioning",
			price:       "114.99", rating: 4.2, reviews: 54,
			stockStatus: catalog.StockStatusInStock, stockCount: 75, featured: false,
			sizes: []float64{7, 8, 9, 10, 11},
			image: "https://images.unsplash.com/photo-1608667508764-33cf0726b13a?auto=format&q=75&w=600",
			colors: []catalog.SneakerColor{
				{Name: "White/Blue", Hex: "#4169E1"},
			},
		},
		{
			sku: "VN-OSK-006", name: "Old Skool", brand: "Vans", slug: "old-skool",
			description: "The classic side-stripe skate shoe",
			price:       "69.99", rating: 4.4, reviews: 441,
			stockStatus: catalog.StockStatusOutOfStock, stockCount: 0, featured: false,
			sizes: []float64{6, 7, 8, 9, 10, 11, 12},
			image: "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?auto=format&q=75&w=600",
			colors: []catalog.SneakerColor{
				{Name: "Black/White", Hex: "#000000"},
			},
		},
	}

	for _, seed := range seeds {
		var existing catalog.Sneaker
		result := m.db.Where("sku = ?", seed.sku).First(&existing)
		if result.Error == nil {
			continue
		}

		sneaker := catalog.Sneaker{
			SKU:         seed.sku,
			Name:        seed.name,
			Brand:       seed.brand,
			Slug:        seed.slug,
			Description: seed.description,
			Price:       decimal.RequireFromString(seed.price),
			Rating:      seed.rating,
			ReviewCount: seed.reviews,
			StockStatus: seed.stockStatus,
			StockCount:  seed.stockCount,
			IsFeatured:  seed.featured,
			IsActive:    true,
		}
		for _, size := range seed.sizes {
			sneaker.Sizes = append(sneaker.Sizes, catalog.SneakerSize{Size: size})
		}
		sneaker.Images = append(sneaker.Images, catalog.SneakerImage{URL: seed.image, IsPrimary: true})
		sneaker.Colors = seed.colors

		if err := m.db.Create(&sneaker).Error; err != nil {
			return fmt.Errorf("failed to seed sneaker %s: %w", seed.sku, err)
		}
		log.Printf("Created sneaker: %s %s ($%s)", seed.brand, seed.name, seed.price)
	}

	return nil
}

// DropAllTables drops all tables, for development resets only
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ Dropping all tables...")

	tables := []string{
		"order_items", "orders", "wishlist_items",
		"sneaker_colors", "sneaker_images", "sneaker_sizes", "sneakers",
		"addresses", "users",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	log.Println("✅ All tables dropped")
	return nil
}
