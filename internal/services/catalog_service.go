// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/raphaelcleo/storefront/internal/models"
	"github.com/raphaelcleo/storefront/internal/utils"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService struct {
	db *gorm.DB
}

// All four fields are required on create and edit; price and stock must be
// non-negative. Pointers distinguish an absent field from a zero value.
type CreateProductRequest struct {
	Name  string   `json:"name" validate:"required,min=1,max=255"`
	Price *int64   `json:"price" validate:"required,min=0"`
	Stock *int     `json:"stock" validate:"required,min=0"`
	Image string   `json:"image" validate:"required"`
	Sizes []string `json:"sizes,omitempty"`
}

// The edit form pre-fills from the existing record and overwrites all four
// fields on submit, so update takes the same shape as create.
type UpdateProductRequest = CreateProductRequest

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "stock"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sizes := req.Sizes
	if len(sizes) == 0 {
		sizes = models.DefaultSizes
	}

	product := &models.Product{
		Name:  req.Name,
		Price: *req.Price,
		Stock: *req.Stock,
		Image: req.Image,
		Sizes: pq.StringArray(sizes),
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *CatalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Price = *req.Price
	product.Stock = *req.Stock
	product.Image = req.Image
	if req.Sizes != nil {
		product.Sizes = pq.StringArray(req.Sizes)
	}

	if err := s.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// DeleteProduct removes a product by id. Cart items and reviews referencing
// it are left in place; the cart read path degrades them to unpriced lines.
func (s *CatalogService) DeleteProduct(id uuid.UUID) error {
	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
