// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

// Product is a sellable catalog entry. Price is kept in minor currency
// units, so 1200 means 1200 CZK for a whole-crown catalog.
type Product struct {
	BaseModel
	Name  string         `json:"name" gorm:"size:255;not null"`
	Price int64          `json:"price" gorm:"not null"`
	Stock int            `json:"stock" gorm:"not null;default:0"`
	Image string         `json:"image" gorm:"size:512"`
	Sizes pq.StringArray `json:"sizes" gorm:"type:text"`
}

// DefaultSizes is the variant set offered when the admin does not
// specify one.
var DefaultSizes = []string{"S", "M", "L"}
