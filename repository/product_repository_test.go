package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"vibe-commerce/repository"
)

func TestProductFindAll_OrderedByID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormProductRepository(gormDB)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "description", "image_url", "created_at"}).
			AddRow(1, "Wireless Headphones", "79.99", "", "", now).
			AddRow(2, "Smart Watch", "199.99", "", "", now))

	products, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "79.99", products[0].Price.String())
}

func TestProductFindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormProductRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	p, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, p)
}
