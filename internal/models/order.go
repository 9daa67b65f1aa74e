// internal/models/order.go
package models

// Order is the checkout snapshot of a session's cart. Lines carries the
// priced cart lines as they were at checkout time, so later catalog edits
// do not rewrite order history.
type Order struct {
	BaseModel
	SessionID  SessionID `json:"session_id" gorm:"size:64;not null;index"`
	TotalPrice int64     `json:"total_price" gorm:"not null"`
	Lines      JSONB     `json:"lines" gorm:"type:jsonb"`
}
