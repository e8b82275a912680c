package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest is the body of POST /checkout. CartItems is the client's
// snapshot of the cart; its prices are treated as authoritative for the
// order total (deliberate, matching the storefront contract).
type CheckoutRequest struct {
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	CartItems     []CartItem `json:"cartItems"`
}

// Receipt summarizes a completed order back to the caller.
type Receipt struct {
	OrderID       uint            `json:"orderId"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Items         []OrderLineItem `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Timestamp     time.Time       `json:"timestamp"`
}
