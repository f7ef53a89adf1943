package store

import (
	"log"

	"tradepost/internal/domain"
)

func intptr(n int) *int                 { return &n }
func fptr(f float64) *float64           { return &f }
func mptr(m domain.Money) *domain.Money { return &m }

// Seed loads the demo marketplace: four products across three categories and
// four sellers (one pending verification). Safe to call once at startup.
func Seed(c *Catalog) {
	log.Println("[seed] loading demo products/sellers")
	c.Load(seedProducts(), seedSellers())
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:                  2,
			SellerID:            2,
			Name:                "Wireless Headphones",
			Description:         "High-quality wireless headphones with noise cancellation and 20-hour battery life.",
			Category:            "Electronics",
			Price:               domain.ParsePrice("$149.99"),
			Image:               "https://picsum.photos/300/200?random=1",
			Rating:              fptr(4.8),
			ReviewCount:         25,
			StockQuantity:       intptr(50),
			MinPurchaseQuantity: 1,
			MaxPurchaseQuantity: 10,
			SKU:                 "WH002",
			Brand:               "AudioTech",
			Condition:           "new",
			IsOnSale:            true,
			Tags:                []string{"headphones", "wireless", "audio"},
			Variants: []domain.Variant{
				{SKU: "WH002-BK", Color: "Black", Price: mptr(domain.ParsePrice("$149.99"))},
				{SKU: "WH002-WH", Color: "White", Price: mptr(domain.ParsePrice("$149.99"))},
			},
			BulkPricing: []domain.BulkTier{
				{MinQuantity: 5, Price: domain.ParsePrice("$139.99")},
				{MinQuantity: 10, Price: domain.ParsePrice("$129.99")},
			},
		},
		{
			ID:                  3,
			SellerID:            3,
			Name:                "Vintage Leather Jacket",
			Description:         "Classic leather jacket made from genuine leather, perfect for casual and formal wear.",
			Category:            "Fashion",
			Price:               domain.ParsePrice("$199.00"),
			Image:               "https://picsum.photos/300/200?random=4",
			Rating:              fptr(4.2),
			ReviewCount:         15,
			StockQuantity:       intptr(20),
			MinPurchaseQuantity: 1,
			MaxPurchaseQuantity: 5,
			SKU:                 "LJ003",
			Brand:               "RetroWear",
			Condition:           "new",
			IsNew:               true,
			Tags:                []string{"fashion", "jacket", "leather"},
			Variants: []domain.Variant{
				{SKU: "LJ003-M", Size: "Medium", Price: mptr(domain.ParsePrice("$199.00"))},
				{SKU: "LJ003-L", Size: "Large", Price: mptr(domain.ParsePrice("$199.00"))},
			},
		},
		{
			ID:                  4,
			SellerID:            4,
			Name:                "Smart LED Bulb",
			Description:         "Energy-efficient smart LED bulb with app control and color-changing features.",
			Category:            "Home & Living",
			Price:               domain.ParsePrice("$29.99"),
			Image:               "https://picsum.photos/300/200?random=6",
			Rating:              fptr(4.0),
			ReviewCount:         8,
			StockQuantity:       intptr(200),
			MinPurchaseQuantity: 2,
			MaxPurchaseQuantity: 50,
			SKU:                 "SLB004",
			Brand:               "BrightHome",
			Condition:           "new",
			IsNew:               true,
			IsOnSale:            true,
			Tags:                []string{"smart home", "lighting", "LED"},
			Variants: []domain.Variant{
				{SKU: "SLB004-WH", Color: "White", Price: mptr(domain.ParsePrice("$29.99"))},
			},
			BulkPricing: []domain.BulkTier{
				{MinQuantity: 10, Price: domain.ParsePrice("$25.99")},
			},
		},
		{
			ID:                  1,
			SellerID:            2,
			Name:                "Refurbished Laptop",
			Description:         "Refurbished high-performance laptop with SSD and 16GB RAM, ideal for work and gaming.",
			Category:            "Electronics",
			Price:               domain.ParsePrice("$499.00"),
			Image:               "https://picsum.photos/300/200?random=7",
			Rating:              fptr(4.3),
			ReviewCount:         12,
			StockQuantity:       intptr(10),
			MinPurchaseQuantity: 1,
			MaxPurchaseQuantity: 3,
			SKU:                 "RL005",
			Brand:               "TechTrend",
			Condition:           "refurbished",
			Tags:                []string{"laptop", "refurbished", "electronics"},
		},
	}
}

func seedSellers() []domain.Seller {
	return []domain.Seller{
		{
			ID:                     1,
			Name:                   "John Doe",
			Email:                  "john@example.com",
			BusinessName:           "Doe Enterprises",
			WhatsappNumber:         "+1234567890",
			TelegramUsername:       "@DoeEnterprises",
			PreferredCommunication: domain.ChannelEmail,
			PaymentMethods:         []string{"Bank Transfer"},
			VerificationStatus:     domain.VerificationVerified,
		},
		{
			ID:                     2,
			Name:                   "Jane Smith",
			Email:                  "jane@example.com",
			BusinessName:           "Smith Electronics",
			WhatsappNumber:         "+1987654321",
			TelegramUsername:       "@SmithElectronics",
			PreferredCommunication: domain.ChannelWhatsapp,
			PaymentMethods:         []string{"PayPal", "Credit Card"},
			VerificationStatus:     domain.VerificationVerified,
		},
		{
			ID:                     3,
			Name:                   "Marco Rossi",
			Email:                  "marco@example.com",
			BusinessName:           "Rossi Fashion",
			WhatsappNumber:         "+393123456789",
			PreferredCommunication: domain.ChannelEmail,
			PaymentMethods:         []string{"Bank Transfer", "PayPal"},
			VerificationStatus:     domain.VerificationPending,
		},
		{
			ID:                     4,
			Name:                   "Emily Chen",
			Email:                  "emily@example.com",
			BusinessName:           "BrightHome Solutions",
			TelegramUsername:       "@BrightHome",
			PreferredCommunication: domain.ChannelTelegram,
			PaymentMethods:         []string{"Credit Card", "Cryptocurrency"},
			VerificationStatus:     domain.VerificationVerified,
		},
	}
}
