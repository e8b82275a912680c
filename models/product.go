package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog row. The catalog is seeded once at startup and never
// mutated by the application.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	ImageURL    string          `gorm:"type:text" json:"image_url"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}
