package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vibe-commerce/repository"
)

// ProductController handles HTTP requests for the read-only catalog.
type ProductController struct {
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

// NewProductController creates a new ProductController.
func NewProductController(productRepo repository.ProductRepository, logger *zap.Logger) *ProductController {
	return &ProductController{productRepo: productRepo, logger: logger}
}

// GetProducts handles GET /products
func (pc *ProductController) GetProducts(ctx *gin.Context) {
	products, err := pc.productRepo.FindAll(ctx.Request.Context())
	if err != nil {
		pc.logger.Error("Failed to fetch products", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /products/:id
func (pc *ProductController) GetProductByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	product, err := pc.productRepo.FindByID(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		pc.logger.Error("Failed to fetch product", zap.Uint64("id", id), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	ctx.JSON(http.StatusOK, product)
}
