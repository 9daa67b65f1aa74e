// internal/services/review_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raphaelcleo/storefront/internal/models"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview inserts the review as submitted. The storefront accepts any
// rating value and does not require the product to exist; a review for a
// vanished product simply never shows up on a detail page.
func (s *ReviewService) CreateReview(productID uuid.UUID, req *CreateReviewRequest) (*models.Review, error) {
	review := &models.Review{
		ProductID: productID,
		Author:    req.Author,
		Content:   req.Content,
		Rating:    req.Rating,
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) ListForProduct(productID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.
		Where("product_id = ?", productID).
		Order("created_at asc").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}
