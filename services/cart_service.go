package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vibe-commerce/models"
	"vibe-commerce/repository"
)

// CartService defines the business logic for the shared cart.
type CartService interface {
	GetCart(ctx context.Context) (*models.CartResponse, *ServiceError)
	AddItem(ctx context.Context, productID uint, quantity int) (*models.CartItem, *ServiceError)
	UpdateQuantity(ctx context.Context, id uint, quantity int) (*models.CartItem, *ServiceError)
	RemoveItem(ctx context.Context, id uint) (*models.CartItem, *ServiceError)
	ClearCart(ctx context.Context) *ServiceError
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, logger *zap.Logger) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart returns cart rows joined with current product data, newest first,
// plus the cart total at today's catalog prices. Line prices are always the
// current catalog price; only orders freeze prices.
func (s *cartServiceImpl) GetCart(ctx context.Context) (*models.CartResponse, *ServiceError) {
	items, err := s.cartRepo.FindAllWithProducts(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch cart", zap.Error(err))
		return nil, NewStorageError("Failed to fetch cart")
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if items == nil {
		items = []models.CartItem{}
	}
	return &models.CartResponse{
		Items: items,
		Total: total.Round(2),
	}, nil
}

// AddItem puts a product in the cart. Adding an already-present product
// increments its quantity (never replaces it); the increment happens in a
// single upsert statement.
func (s *cartServiceImpl) AddItem(ctx context.Context, productID uint, quantity int) (*models.CartItem, *ServiceError) {
	if quantity < 1 {
		return nil, NewValidationError("Quantity must be at least 1")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Product not found")
		}
		s.logger.Error("Failed to look up product", zap.Uint("product_id", productID), zap.Error(err))
		return nil, NewStorageError("Failed to add item to cart")
	}

	item := &models.CartItem{ProductID: productID, Quantity: quantity}
	if err := s.cartRepo.Upsert(ctx, item); err != nil {
		s.logger.Error("Failed to upsert cart item", zap.Uint("product_id", productID), zap.Error(err))
		return nil, NewStorageError("Failed to add item to cart")
	}

	s.logger.Info("Item added to cart",
		zap.Uint("product_id", productID),
		zap.Int("quantity", item.Quantity),
	)
	return item, nil
}

// UpdateQuantity replaces (not increments) the quantity of an existing entry.
func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, id uint, quantity int) (*models.CartItem, *ServiceError) {
	if quantity < 1 {
		return nil, NewValidationError("Valid quantity is required")
	}

	item, err := s.cartRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Cart item not found")
		}
		s.logger.Error("Failed to look up cart item", zap.Uint("id", id), zap.Error(err))
		return nil, NewStorageError("Failed to update cart item")
	}

	item.Quantity = quantity
	if err := s.cartRepo.Update(ctx, item); err != nil {
		s.logger.Error("Failed to update cart item", zap.Uint("id", id), zap.Error(err))
		return nil, NewStorageError("Failed to update cart item")
	}

	return item, nil
}

// RemoveItem deletes a cart entry and returns it for confirmation.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, id uint) (*models.CartItem, *ServiceError) {
	item, err := s.cartRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Cart item not found")
		}
		s.logger.Error("Failed to look up cart item", zap.Uint("id", id), zap.Error(err))
		return nil, NewStorageError("Failed to remove item from cart")
	}

	if err := s.cartRepo.Delete(ctx, item); err != nil {
		s.logger.Error("Failed to delete cart item", zap.Uint("id", id), zap.Error(err))
		return nil, NewStorageError("Failed to remove item from cart")
	}

	return item, nil
}

// ClearCart empties the cart unconditionally. Clearing an already-empty cart
// succeeds.
func (s *cartServiceImpl) ClearCart(ctx context.Context) *ServiceError {
	if err := s.cartRepo.DeleteAll(ctx); err != nil {
		s.logger.Error("Failed to clear cart", zap.Error(err))
		return NewStorageError("Failed to clear cart")
	}
	return nil
}
