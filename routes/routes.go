package routes

import (
	"github.com/gin-gonic/gin"

	"vibe-commerce/controllers"
)

// RegisterRoutes sets up the storefront API surface.
func RegisterRoutes(r *gin.Engine, pc *controllers.ProductController, cc *controllers.CartController, kc *controllers.CheckoutController) {
	products := r.Group("/products")
	products.GET("", pc.GetProducts)
	products.GET("/:id", pc.GetProductByID)

	cart := r.Group("/cart")
	cart.GET("", cc.GetCart)
	cart.POST("", cc.AddItem)
	cart.PUT("/:id", cc.UpdateItem)
	cart.DELETE("/:id", cc.RemoveItem)
	cart.DELETE("", cc.ClearCart)

	checkout := r.Group("/checkout")
	checkout.POST("", kc.Checkout)
	checkout.GET("/orders", kc.GetOrders)
}
