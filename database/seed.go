package database

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vibe-commerce/models"
)

// SeedProducts inserts the fixed sample catalog when the products table is
// empty. The catalog is never mutated afterwards.
func SeedProducts(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Wireless Headphones", Price: decimal.RequireFromString("79.99"), Description: "High-quality wireless headphones with noise cancellation", ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400"},
		{Name: "Smart Watch", Price: decimal.RequireFromString("199.99"), Description: "Fitness tracker with heart rate monitor", ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400"},
		{Name: "Laptop Stand", Price: decimal.RequireFromString("49.99"), Description: "Ergonomic aluminum laptop stand", ImageURL: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400"},
		{Name: "Mechanical Keyboard", Price: decimal.RequireFromString("129.99"), Description: "RGB mechanical gaming keyboard", ImageURL: "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400"},
		{Name: "USB-C Hub", Price: decimal.RequireFromString("39.99"), Description: "Multi-port USB-C hub with HDMI", ImageURL: "https://images.unsplash.com/photo-1625948515291-69613efd103f?w=400"},
		{Name: "Wireless Mouse", Price: decimal.RequireFromString("59.99"), Description: "Ergonomic wireless mouse with precision tracking", ImageURL: "https://images.unsplash.com/photo-1527814050087-3793815479db?w=400"},
		{Name: "Phone Case", Price: decimal.RequireFromString("24.99"), Description: "Protective case with slim design", ImageURL: "https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?w=400"},
		{Name: "Portable Charger", Price: decimal.RequireFromString("44.99"), Description: "High-capacity 20000mAh power bank", ImageURL: "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=400"},
		{Name: "Bluetooth Speaker", Price: decimal.RequireFromString("89.99"), Description: "Waterproof portable speaker with 360 sound", ImageURL: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400"},
		{Name: "Webcam HD", Price: decimal.RequireFromString("69.99"), Description: "1080p webcam with autofocus", ImageURL: "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?w=400"},
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}
	logger.Info("Seeded sample catalog", zap.Int("products", len(products)))
	return nil
}
