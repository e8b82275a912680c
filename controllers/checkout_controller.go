package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibe-commerce/models"
	"vibe-commerce/services"
)

// CheckoutController handles HTTP requests for checkout and order history.
type CheckoutController struct {
	checkoutService services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(svc services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: svc}
}

// Checkout handles POST /checkout
func (cc *CheckoutController) Checkout(ctx *gin.Context) {
	var req models.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Customer name, email, and cart items are required"})
		return
	}

	receipt, svcErr := cc.checkoutService.Checkout(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, receipt)
}

// GetOrders handles GET /checkout/orders
func (cc *CheckoutController) GetOrders(ctx *gin.Context) {
	orders, svcErr := cc.checkoutService.ListOrders(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, orders)
}
