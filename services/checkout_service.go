package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"vibe-commerce/models"
	"vibe-commerce/repository"
)

// checkoutPhase tracks a checkout attempt through its state machine. Any
// failure before phasePersisted leaves the cart untouched; the cart clear is
// strictly after a confirmed order write.
type checkoutPhase string

const (
	phaseReceived    checkoutPhase = "received"
	phaseValidated   checkoutPhase = "validated"
	phasePersisted   checkoutPhase = "persisted"
	phaseCartCleared checkoutPhase = "cart_cleared"
	phaseReceipted   checkoutPhase = "receipted"
)

// emailShape accepts the conventional local@domain.tld form: one @, at least
// one dot after it, no embedded whitespace.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// checkoutInput holds the trimmed customer fields for validation.
type checkoutInput struct {
	CustomerName  string `validate:"required"`
	CustomerEmail string `validate:"required,email_shape"`
}

// CheckoutService converts a cart snapshot into a persisted order.
type CheckoutService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Receipt, *ServiceError)
	ListOrders(ctx context.Context) ([]models.Order, *ServiceError)
}

type checkoutServiceImpl struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, logger *zap.Logger) CheckoutService {
	v := validator.New()
	_ = v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return &checkoutServiceImpl{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		validate:  v,
		logger:    logger,
	}
}

// Checkout validates the submitted snapshot, persists one order row with the
// frozen line items, clears the cart and returns a receipt. The total is
// computed from the prices the caller submitted, not re-fetched from the
// catalog: the snapshot is authoritative at submission time.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Receipt, *ServiceError) {
	phase := phaseReceived
	s.logger.Debug("Checkout received", zap.String("phase", string(phase)), zap.Int("lines", len(req.CartItems)))

	name := strings.TrimSpace(req.CustomerName)
	email := strings.TrimSpace(req.CustomerEmail)

	if name == "" || email == "" || len(req.CartItems) == 0 {
		return nil, NewValidationError("Customer name, email, and cart items are required")
	}
	if err := s.validate.Struct(checkoutInput{CustomerName: name, CustomerEmail: email}); err != nil {
		return nil, NewValidationError("Invalid email format")
	}

	lineItems := make([]models.OrderLineItem, 0, len(req.CartItems))
	total := decimal.Zero
	for _, item := range req.CartItems {
		if item.Product == nil {
			return nil, NewValidationError("Each cart item must include product data")
		}
		subtotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		lineItems = append(lineItems, models.OrderLineItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}
	total = total.Round(2)

	phase = phaseValidated
	s.logger.Debug("Checkout validated", zap.String("phase", string(phase)))

	snapshot, err := json.Marshal(models.OrderSnapshot{Items: lineItems})
	if err != nil {
		s.logger.Error("Failed to serialize order snapshot", zap.Error(err))
		return nil, NewStorageError("Failed to process checkout")
	}

	order := &models.Order{
		OrderNumber:   "ORD-" + uuid.NewString(),
		CustomerName:  name,
		CustomerEmail: email,
		TotalAmount:   total,
		OrderData:     datatypes.JSON(snapshot),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to persist order", zap.Error(err))
		return nil, NewStorageError("Failed to process checkout")
	}

	phase = phasePersisted
	s.logger.Info("Order persisted",
		zap.String("phase", string(phase)),
		zap.Uint("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("total", total.String()),
	)

	// The write-then-clear is two statements across the store boundary. A
	// failure here leaves a persisted order with a non-empty cart; surface it
	// in the logs rather than failing the checkout, since the order exists.
	if err := s.cartRepo.DeleteAll(ctx); err != nil {
		s.logger.Error("Order persisted but cart clear failed; cart needs a manual clear",
			zap.Uint("order_id", order.ID),
			zap.Error(err),
		)
	} else {
		phase = phaseCartCleared
		s.logger.Debug("Cart cleared", zap.String("phase", string(phase)), zap.Uint("order_id", order.ID))
	}

	phase = phaseReceipted
	s.logger.Info("Checkout completed", zap.String("phase", string(phase)), zap.Uint("order_id", order.ID))

	return &models.Receipt{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Items:         lineItems,
		Total:         total,
		Timestamp:     order.CreatedAt,
	}, nil
}

// ListOrders returns the full ledger, newest first.
func (s *checkoutServiceImpl) ListOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		return nil, NewStorageError("Failed to fetch orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
