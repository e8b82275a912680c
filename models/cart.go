package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a row in the single shared cart. The unique index on ProductID
// backs the add-to-cart upsert: at most one row per distinct product.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;uniqueIndex" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

// CartResponse is the payload for GET /cart: items joined with current
// product data plus a cart-level total at today's catalog prices.
type CartResponse struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// AddItemRequest is the body of POST /cart. Quantity is a pointer so an
// omitted field (defaults to 1) is distinguishable from an explicit 0.
type AddItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// UpdateQuantityRequest is the body of PUT /cart/:id.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
