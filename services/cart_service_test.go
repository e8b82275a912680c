package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vibe-commerce/models"
	"vibe-commerce/services"
)

// ---- mock cart repository ----

type mockCartRepo struct {
	items        []models.CartItem
	findAllErr   error
	findByIDItem *models.CartItem
	findByIDErr  error
	upsertErr    error
	updateErr    error
	deleteErr    error
	deleteAllErr error

	upserted   *models.CartItem
	updated    *models.CartItem
	deleted    *models.CartItem
	deleteAlls int
}

func (m *mockCartRepo) FindAllWithProducts(_ context.Context) ([]models.CartItem, error) {
	return m.items, m.findAllErr
}
func (m *mockCartRepo) FindByID(_ context.Context, _ uint) (*models.CartItem, error) {
	return m.findByIDItem, m.findByIDErr
}
func (m *mockCartRepo) Upsert(_ context.Context, item *models.CartItem) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	item.ID = 1
	m.upserted = item
	return nil
}
func (m *mockCartRepo) Update(_ context.Context, item *models.CartItem) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = item
	return nil
}
func (m *mockCartRepo) Delete(_ context.Context, item *models.CartItem) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = item
	return nil
}
func (m *mockCartRepo) DeleteAll(_ context.Context) error {
	if m.deleteAllErr != nil {
		return m.deleteAllErr
	}
	m.deleteAlls++
	return nil
}

// ---- mock product repository ----

type mockProductRepo struct {
	product *models.Product
	err     error
}

func (m *mockProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	return nil, m.err
}
func (m *mockProductRepo) FindByID(_ context.Context, _ uint) (*models.Product, error) {
	return m.product, m.err
}

func newCartService(cartRepo *mockCartRepo, productRepo *mockProductRepo) services.CartService {
	return services.NewCartService(cartRepo, productRepo, zap.NewNop())
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ---- tests ----

func TestGetCart_TotalAtCurrentPrices(t *testing.T) {
	cartRepo := &mockCartRepo{items: []models.CartItem{
		{ID: 1, ProductID: 1, Quantity: 3, Product: &models.Product{ID: 1, Name: "Wireless Headphones", Price: price("79.99")}},
		{ID: 2, ProductID: 5, Quantity: 1, Product: &models.Product{ID: 5, Name: "USB-C Hub", Price: price("39.99")}},
	}}
	svc := newCartService(cartRepo, &mockProductRepo{})

	cart, svcErr := svc.GetCart(context.Background())
	assert.Nil(t, svcErr)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "279.96", cart.Total.String())
}

func TestGetCart_EmptyCart(t *testing.T) {
	svc := newCartService(&mockCartRepo{}, &mockProductRepo{})

	cart, svcErr := svc.GetCart(context.Background())
	assert.Nil(t, svcErr)
	assert.NotNil(t, cart.Items)
	assert.Len(t, cart.Items, 0)
	assert.Equal(t, "0", cart.Total.String())
}

func TestGetCart_StorageError(t *testing.T) {
	svc := newCartService(&mockCartRepo{findAllErr: errors.New("db down")}, &mockProductRepo{})

	_, svcErr := svc.GetCart(context.Background())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
}

func TestAddItem_QuantityBelowOne(t *testing.T) {
	cartRepo := &mockCartRepo{}
	svc := newCartService(cartRepo, &mockProductRepo{})

	for _, q := range []int{0, -1} {
		item, svcErr := svc.AddItem(context.Background(), 1, q)
		assert.Nil(t, item)
		assert.NotNil(t, svcErr)
		assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	}
	assert.Nil(t, cartRepo.upserted, "invalid quantity must cause no state change")
}

func TestAddItem_UnknownProduct(t *testing.T) {
	cartRepo := &mockCartRepo{}
	svc := newCartService(cartRepo, &mockProductRepo{err: gorm.ErrRecordNotFound})

	item, svcErr := svc.AddItem(context.Background(), 999, 1)
	assert.Nil(t, item)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Nil(t, cartRepo.upserted, "unknown product must cause no state change")
}

func TestAddItem_Success(t *testing.T) {
	cartRepo := &mockCartRepo{}
	svc := newCartService(cartRepo, &mockProductRepo{product: &models.Product{ID: 1, Price: price("79.99")}})

	item, svcErr := svc.AddItem(context.Background(), 1, 2)
	assert.Nil(t, svcErr)
	assert.Equal(t, uint(1), item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.NotNil(t, cartRepo.upserted)
}

func TestUpdateQuantity_ReplacesNotIncrements(t *testing.T) {
	cartRepo := &mockCartRepo{findByIDItem: &models.CartItem{ID: 1, ProductID: 1, Quantity: 2}}
	svc := newCartService(cartRepo, &mockProductRepo{})

	item, svcErr := svc.UpdateQuantity(context.Background(), 1, 5)
	assert.Nil(t, svcErr)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, 5, cartRepo.updated.Quantity)
}

func TestUpdateQuantity_QuantityBelowOne(t *testing.T) {
	svc := newCartService(&mockCartRepo{}, &mockProductRepo{})

	_, svcErr := svc.UpdateQuantity(context.Background(), 1, 0)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

func TestUpdateQuantity_NotFound(t *testing.T) {
	svc := newCartService(&mockCartRepo{findByIDErr: gorm.ErrRecordNotFound}, &mockProductRepo{})

	_, svcErr := svc.UpdateQuantity(context.Background(), 42, 3)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestRemoveItem_ReturnsRemovedEntry(t *testing.T) {
	cartRepo := &mockCartRepo{findByIDItem: &models.CartItem{ID: 7, ProductID: 3, Quantity: 1}}
	svc := newCartService(cartRepo, &mockProductRepo{})

	item, svcErr := svc.RemoveItem(context.Background(), 7)
	assert.Nil(t, svcErr)
	assert.Equal(t, uint(7), item.ID)
	assert.Equal(t, item, cartRepo.deleted)
}

func TestRemoveItem_NotFound(t *testing.T) {
	svc := newCartService(&mockCartRepo{findByIDErr: gorm.ErrRecordNotFound}, &mockProductRepo{})

	_, svcErr := svc.RemoveItem(context.Background(), 42)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestClearCart_Idempotent(t *testing.T) {
	cartRepo := &mockCartRepo{}
	svc := newCartService(cartRepo, &mockProductRepo{})

	assert.Nil(t, svc.ClearCart(context.Background()))
	assert.Nil(t, svc.ClearCart(context.Background()))
	assert.Equal(t, 2, cartRepo.deleteAlls)
}
