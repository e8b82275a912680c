package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vibe-commerce/models"
)

// CartRepository defines data-access operations for the shared cart.
type CartRepository interface {
	FindAllWithProducts(ctx context.Context) ([]models.CartItem, error)
	FindByID(ctx context.Context, id uint) (*models.CartItem, error)
	Upsert(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, item *models.CartItem) error
	DeleteAll(ctx context.Context) error
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository.
func NewGormCartRepository(db *gorm.DB) CartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) FindAllWithProducts(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormCartRepository) FindByID(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert inserts a cart row or, when the product is already in the cart,
// increments its quantity in the same statement. The single statement keeps
// concurrent adds for the same product from racing a read-check-write cycle.
func (r *GormCartRepository) Upsert(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			}),
		}).
		Clauses(clause.Returning{}).
		Create(item).Error
}

func (r *GormCartRepository) Update(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *GormCartRepository) Delete(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

func (r *GormCartRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.CartItem{}).Error
}
