// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
)

// CartItem is one (product, quantity, size) selection owned by a session.
// A session may hold several rows for the same (product, size) pair; the
// add operation does not merge duplicates.
type CartItem struct {
	BaseModel
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	Size      string    `json:"size" gorm:"size:32"`
	SessionID SessionID `json:"session_id" gorm:"size:64;not null;index"`
}
