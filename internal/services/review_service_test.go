// internal/services/review_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewAndListForProduct(t *testing.T) {
	db := newTestDB(t)
	reviews := NewReviewService(db)

	product := createTestProduct(t, db, "Black T-Shirt", 1200)

	review, err := reviews.CreateReview(product.ID, &CreateReviewRequest{
		Author:  "Jana",
		Content: "Perfektní střih.",
		Rating:  5,
	})
	require.NoError(t, err)
	require.NotNil(t, review)

	listed, err := reviews.ListForProduct(product.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Jana", listed[0].Author)
	assert.Equal(t, 5, listed[0].Rating)
}

// The storefront accepts any submission: the product does not need to
// exist and the rating is not range-checked.
func TestCreateReviewIsUnconditional(t *testing.T) {
	db := newTestDB(t)
	reviews := NewReviewService(db)

	ghostProduct := uuid.New()

	review, err := reviews.CreateReview(ghostProduct, &CreateReviewRequest{
		Author:  "Nobody",
		Content: "Reviewing thin air",
		Rating:  999,
	})
	require.NoError(t, err)
	assert.Equal(t, 999, review.Rating)

	listed, err := reviews.ListForProduct(ghostProduct)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestListForProductScopesByProduct(t *testing.T) {
	db := newTestDB(t)
	reviews := NewReviewService(db)

	first := createTestProduct(t, db, "Black T-Shirt", 1200)
	second := createTestProduct(t, db, "Purple T-Shirt", 1300)

	_, err := reviews.CreateReview(first.ID, &CreateReviewRequest{Author: "A", Content: "ok", Rating: 4})
	require.NoError(t, err)
	_, err = reviews.CreateReview(second.ID, &CreateReviewRequest{Author: "B", Content: "ok", Rating: 3})
	require.NoError(t, err)

	listed, err := reviews.ListForProduct(first.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "A", listed[0].Author)
}
