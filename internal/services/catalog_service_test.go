// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelcleo/storefront/internal/utils"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestCreateProduct(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	product, err := catalog.CreateProduct(&CreateProductRequest{
		Name:  "Raphael Cleo Black T-Shirt",
		Price: int64Ptr(1200),
		Stock: intPtr(20),
		Image: "/static/img/tshirt-black.png",
	})
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, int64(1200), product.Price)
	assert.Equal(t, []string{"S", "M", "L"}, []string(product.Sizes), "sizes default when omitted")
}

func TestCreateProductRequiresAllFields(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	cases := []struct {
		name string
		req  CreateProductRequest
	}{
		{"missing name", CreateProductRequest{Price: int64Ptr(100), Stock: intPtr(1), Image: "x.png"}},
		{"missing price", CreateProductRequest{Name: "Shirt", Stock: intPtr(1), Image: "x.png"}},
		{"missing stock", CreateProductRequest{Name: "Shirt", Price: int64Ptr(100), Image: "x.png"}},
		{"missing image", CreateProductRequest{Name: "Shirt", Price: int64Ptr(100), Stock: intPtr(1)}},
		{"negative price", CreateProductRequest{Name: "Shirt", Price: int64Ptr(-1), Stock: intPtr(1), Image: "x.png"}},
		{"negative stock", CreateProductRequest{Name: "Shirt", Price: int64Ptr(100), Stock: intPtr(-1), Image: "x.png"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.CreateProduct(&tc.req)
			assert.Error(t, err)
		})
	}
}

func TestGetProductNotFound(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	_, err := catalog.GetProduct(uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateProductOverwritesAllFields(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	product := createTestProduct(t, db, "Black T-Shirt", 1200)

	updated, err := catalog.UpdateProduct(product.ID, &UpdateProductRequest{
		Name:  "Purple T-Shirt",
		Price: int64Ptr(1300),
		Stock: intPtr(15),
		Image: "/static/img/tshirt-purple.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "Purple T-Shirt", updated.Name)
	assert.Equal(t, int64(1300), updated.Price)
	assert.Equal(t, 15, updated.Stock)
	assert.Equal(t, "/static/img/tshirt-purple.png", updated.Image)
}

func TestUpdateProductNotFound(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	_, err := catalog.UpdateProduct(uuid.New(), &UpdateProductRequest{
		Name:  "Shirt",
		Price: int64Ptr(100),
		Stock: intPtr(1),
		Image: "x.png",
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	product := createTestProduct(t, db, "Black T-Shirt", 1200)

	require.NoError(t, catalog.DeleteProduct(product.ID))

	_, err := catalog.GetProduct(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, catalog.DeleteProduct(uuid.New()), ErrProductNotFound)
}

func TestListProducts(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	createTestProduct(t, db, "Black T-Shirt", 1200)
	createTestProduct(t, db, "Purple T-Shirt", 1300)
	createTestProduct(t, db, "Tote Bag", 450)

	products, total, err := catalog.ListProducts(utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, products, 3)

	products, total, err = catalog.ListProducts(utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "asc", Search: "shirt"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)

	products, total, err = catalog.ListProducts(utils.PaginationParams{Page: 2, Limit: 2, Sort: "created_at", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, products, 1)
}
