package main

import (
	"fmt"
	"log"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the storefront schema and seeds the homepage content:
// carousel sections, demo products and promo banners.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SADHANA CART - Storefront Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.StoreGorm.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CarouselSection{},
		&models.PromoBanner{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	// login_events is written through pgx, not GORM
	if err := config.StoreGorm.Exec(`
		CREATE TABLE IF NOT EXISTS login_events (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			provider VARCHAR(20) NOT NULL,
			logged_in_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			ip_address VARCHAR(45),
			user_agent TEXT,
			device_type VARCHAR(20),
			browser VARCHAR(50),
			os VARCHAR(50)
		)
	`).Error; err != nil {
		log.Fatalf("Failed to create login_events table: %v", err)
	}
	log.Println("✓ login_events table ready")

	seedSections()
	seedProducts()
	seedBanners()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Storefront Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Fetch sections at GET /api/v1/store/sections")
	fmt.Println("3. Fetch a grid at GET /api/v1/store/sections/:slug/products")
	fmt.Println()
}

func seedSections() {
	sections := []models.CarouselSection{
		{Slug: "pattu-sarees", Title: "Pattu Sarees", CategoryLabel: "Pattu Saree", Background: "#4a0e0e", Foreground: "#ffffff", Accent: "#d4a017", Cached: true, Position: 1},
		{Slug: "cotton-sarees", Title: "Cotton Sarees", CategoryLabel: "Cotton Saree", Background: "#f7f3e9", Foreground: "#222222", Accent: "#1b7a43", Cached: true, Position: 2},
		{Slug: "fancy-sarees", Title: "Fancy Sarees", CategoryLabel: "Fancy Saree", Background: "#2d1b4e", Foreground: "#ffffff", Accent: "#ff6b9d", Position: 3},
		{Slug: "kurtis", Title: "Kurtis & Kurtas", CategoryLabel: "Kurti", Background: "#fff4e6", Foreground: "#3a2410", Accent: "#e07b00", Position: 4},
		{Slug: "lehengas", Title: "Lehengas", CategoryLabel: "Lehenga", Background: "#7a0c2e", Foreground: "#ffffff", Accent: "#ffd700", Position: 5},
		{Slug: "salwar-suits", Title: "Salwar Suits", CategoryLabel: "Salwar Suit", Background: "#e8f4f8", Foreground: "#12343b", Accent: "#0e7c86", Position: 6},
		{Slug: "mens-dhotis", Title: "Men's Dhotis", CategoryLabel: "Dhoti", Background: "#fafafa", Foreground: "#111111", Accent: "#8b0000", Position: 7},
		{Slug: "mens-shirts", Title: "Men's Shirts", CategoryLabel: "Shirt", Background: "#1a2634", Foreground: "#ffffff", Accent: "#4fc3f7", Position: 8},
		{Slug: "kids-wear", Title: "Kids Wear", CategoryLabel: "Kids", Background: "#fff0f5", Foreground: "#4a154b", Accent: "#ff4081", Position: 9},
		{Slug: "jewellery", Title: "Jewellery", CategoryLabel: "Jewellery", Background: "#1c1c14", Foreground: "#f5e6c8", Accent: "#d4a017", Position: 10},
		{Slug: "home-textiles", Title: "Home Textiles", CategoryLabel: "Home Textile", Background: "#eef5ee", Foreground: "#1e3a1e", Accent: "#4caf50", Position: 11},
	}

	for _, s := range sections {
		var existing models.CarouselSection
		if err := config.StoreGorm.Where("slug = ?", s.Slug).First(&existing).Error; err == nil {
			continue
		}
		if err := config.StoreGorm.Create(&s).Error; err != nil {
			log.Fatalf("Failed to seed section %s: %v", s.Slug, err)
		}
	}
	log.Printf("✓ Seeded %d carousel sections", len(sections))
}

func seedProducts() {
	var count int64
	config.StoreGorm.Model(&models.Product{}).Count(&count)
	if count > 0 {
		log.Printf("✓ Products already present (%d), skipping", count)
		return
	}

	products := []models.Product{
		{Name: "Kanchipuram Silk Saree - Maroon Gold", Brand: "Sadhana Weaves", Category: "Pattu Saree", Price: 4999, OriginalPrice: 7999, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/pattu-maroon-gold.jpg"}},
			SearchKeywords: models.KeywordList{"saree", "silk", "pattu", "kanchipuram", "wedding"}},
		{Name: "Mysore Silk Saree - Royal Blue", Brand: "Sadhana Weaves", Category: "Pattu Saree", Price: 3499, OriginalPrice: 5499, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/pattu-royal-blue.jpg"}},
			SearchKeywords: models.KeywordList{"saree", "silk", "pattu", "mysore"}},
		{Name: "Chettinad Cotton Saree - Mustard", Brand: "Sadhana Handlooms", Category: "Cotton Saree", Price: 899, OriginalPrice: 1499, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/cotton-mustard.jpg"}},
			SearchKeywords: models.KeywordList{"saree", "cotton", "chettinad", "daily wear"}},
		{Name: "Mangalagiri Cotton Saree - Teal", Brand: "Sadhana Handlooms", Category: "Cotton Saree", Price: 1099, OriginalPrice: 1799, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/cotton-teal.jpg"}},
			SearchKeywords: models.KeywordList{"saree", "cotton", "mangalagiri"}},
		{Name: "Georgette Party Saree - Rose Pink", Brand: "Sadhana Trends", Category: "Fancy Saree", Price: 1599, OriginalPrice: 2999, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/fancy-rose-pink.jpg"}},
			SearchKeywords: models.KeywordList{"saree", "georgette", "party wear", "fancy"}},
		{Name: "Anarkali Kurti - Indigo Block Print", Brand: "Sadhana Trends", Category: "Kurti", Price: 799, OriginalPrice: 1299, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/kurti-indigo.jpg"}},
			SearchKeywords: models.KeywordList{"kurti", "anarkali", "block print", "indigo"}},
		{Name: "Straight Cut Kurti - Ivory Chikankari", Brand: "Sadhana Trends", Category: "Kurti", Price: 999, OriginalPrice: 1599, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/kurti-ivory.jpg"}},
			SearchKeywords: models.KeywordList{"kurti", "chikankari", "lucknowi"}},
		{Name: "Bridal Lehenga - Crimson Zardozi", Brand: "Sadhana Couture", Category: "Lehenga", Price: 12999, OriginalPrice: 19999, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/lehenga-crimson.jpg"}},
			SearchKeywords: models.KeywordList{"lehenga", "bridal", "zardozi", "wedding"}},
		{Name: "Cotton Salwar Suit - Sage Green", Brand: "Sadhana Handlooms", Category: "Salwar Suit", Price: 1299, OriginalPrice: 2199, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/salwar-sage.jpg"}},
			SearchKeywords: models.KeywordList{"salwar", "suit", "cotton", "dupatta"}},
		{Name: "Pure Cotton Dhoti with Angavastram", Brand: "Sadhana Classics", Category: "Dhoti", Price: 599, OriginalPrice: 899, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/dhoti-white.jpg"}},
			SearchKeywords: models.KeywordList{"dhoti", "veshti", "angavastram", "men"}},
		{Name: "Linen Shirt - Slate Grey", Brand: "Sadhana Classics", Category: "Shirt", Price: 1199, OriginalPrice: 1899, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/shirt-slate.jpg"}},
			SearchKeywords: models.KeywordList{"shirt", "linen", "men", "formal"}},
		{Name: "Kids Pattu Pavadai - Peacock Green", Brand: "Sadhana Littles", Category: "Kids", Price: 1499, OriginalPrice: 2299, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/kids-pavadai.jpg"}},
			SearchKeywords: models.KeywordList{"kids", "pavadai", "pattu", "traditional"}},
		{Name: "Temple Jewellery Necklace Set", Brand: "Sadhana Adornments", Category: "Jewellery", Price: 2499, OriginalPrice: 3999, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/jewellery-temple.jpg"}},
			SearchKeywords: models.KeywordList{"jewellery", "necklace", "temple", "antique"}},
		{Name: "Handloom Bedsheet Set - Terracotta", Brand: "Sadhana Home", Category: "Home Textile", Price: 1399, OriginalPrice: 2099, Status: "Active",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/bedsheet-terracotta.jpg"}},
			SearchKeywords: models.KeywordList{"bedsheet", "handloom", "home", "cotton"}},
		{Name: "Banarasi Silk Saree - Emerald", Brand: "Sadhana Weaves", Category: "Pattu Saree", Price: 5999, OriginalPrice: 8999, Status: "Draft",
			Images:         models.ImageList{{URL: "https://res.cloudinary.com/sadhanacart/image/upload/products/pattu-emerald.jpg"}},
			SearchKeywords: models.KeywordList{"saree", "silk", "banarasi"}},
	}

	for i := range products {
		if err := config.StoreGorm.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", products[i].Name, err)
		}
	}
	log.Printf("✓ Seeded %d products", len(products))
}

func seedBanners() {
	var count int64
	config.StoreGorm.Model(&models.PromoBanner{}).Count(&count)
	if count > 0 {
		log.Printf("✓ Banners already present (%d), skipping", count)
		return
	}

	wedding := "/store/sections/pattu-sarees/products"
	kurti := "/store/sections/kurtis/products"
	banners := []models.PromoBanner{
		{Title: "Wedding Season Sale - Up to 40% Off Pattu Sarees", ImageURL: "https://res.cloudinary.com/sadhanacart/image/upload/banners/wedding-sale.jpg", TargetURL: &wedding, Active: true, Position: 1, DisplaySeconds: 5},
		{Title: "New Kurti Collection", ImageURL: "https://res.cloudinary.com/sadhanacart/image/upload/banners/kurti-launch.jpg", TargetURL: &kurti, Active: true, Position: 2, DisplaySeconds: 5},
		{Title: "Refer a Friend - Earn ₹100 Wallet Credit", ImageURL: "https://res.cloudinary.com/sadhanacart/image/upload/banners/referral.jpg", Active: true, Position: 3, DisplaySeconds: 7},
	}

	for i := range banners {
		if err := config.StoreGorm.Create(&banners[i]).Error; err != nil {
			log.Fatalf("Failed to seed banner %q: %v", banners[i].Title, err)
		}
	}
	log.Printf("✓ Seeded %d banners", len(banners))
}
