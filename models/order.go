package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Order is an append-only ledger row. OrderData holds the denormalized line
// item snapshot so later catalog or cart changes never affect past orders.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderNumber   string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_number"`
	CustomerName  string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail string          `gorm:"type:varchar(255);not null" json:"customer_email"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	OrderData     datatypes.JSON  `gorm:"type:jsonb" json:"order_data"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// OrderLineItem is one purchased line frozen at checkout time.
type OrderLineItem struct {
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderSnapshot is the structure serialized into Order.OrderData.
type OrderSnapshot struct {
	Items []OrderLineItem `json:"items"`
}
