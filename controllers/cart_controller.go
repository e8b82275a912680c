package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vibe-commerce/models"
	"vibe-commerce/services"
)

// CartController handles HTTP requests for cart operations.
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(svc services.CartService) *CartController {
	return &CartController{cartService: svc}
}

// GetCart handles GET /cart
func (cc *CartController) GetCart(ctx *gin.Context) {
	cart, svcErr := cc.cartService.GetCart(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// AddItem handles POST /cart
func (cc *CartController) AddItem(ctx *gin.Context) {
	var body models.AddItemRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	quantity := 1
	if body.Quantity != nil {
		quantity = *body.Quantity
	}

	item, svcErr := cc.cartService.AddItem(ctx.Request.Context(), body.ProductID, quantity)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /cart/:id
func (cc *CartController) UpdateItem(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	var body models.UpdateQuantityRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid quantity is required"})
		return
	}

	item, svcErr := cc.cartService.UpdateQuantity(ctx.Request.Context(), uint(id), body.Quantity)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// RemoveItem handles DELETE /cart/:id
func (cc *CartController) RemoveItem(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	item, svcErr := cc.cartService.RemoveItem(ctx.Request.Context(), uint(id))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "item": item})
}

// ClearCart handles DELETE /cart
func (cc *CartController) ClearCart(ctx *gin.Context) {
	if svcErr := cc.cartService.ClearCart(ctx.Request.Context()); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
