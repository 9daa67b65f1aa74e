// internal/models/review.go
package models

import (
	"github.com/google/uuid"
)

// Review is an append-only storefront submission. ProductID is a plain
// foreign-key field; reviews for a product are fetched with an explicit
// query, there is no bidirectional object graph.
type Review struct {
	BaseModel
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Author    string    `json:"author" gorm:"size:255"`
	Content   string    `json:"content" gorm:"type:text"`
	Rating    int       `json:"rating"`
}
