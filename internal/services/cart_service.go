// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/raphaelcleo/storefront/internal/database"
	"github.com/raphaelcleo/storefront/internal/models"
)

var ErrEmptyCart = errors.New("cart is empty")

type CartService struct {
	db *gorm.DB
}

// CartLine is a cart row joined with its product. Product is nil when the
// referenced product no longer exists; such lines stay visible but carry no
// price.
type CartLine struct {
	Item      models.CartItem `json:"item"`
	Product   *models.Product `json:"product,omitempty"`
	LineTotal int64           `json:"line_total"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// AddItem inserts a cart row for the session. An unknown product makes the
// call a no-op rather than an error, and a quantity below 1 falls back to 1.
// Repeated adds of the same (product, size) deliberately produce separate
// rows instead of bumping the existing quantity; the storefront has always
// behaved that way and the cart view renders each row on its own line.
func (s *CartService) AddItem(sessionID models.SessionID, productID uuid.UUID, quantity int, size string) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithFields(logrus.Fields{
				"session_id": sessionID,
				"product_id": productID,
			}).Info("Add to cart skipped, product does not exist")
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	item := &models.CartItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Size:      size,
		SessionID: sessionID,
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return item, nil
}

// RemoveItem deletes the oldest cart row matching (product, size) for the
// session. A missing row is a no-op.
func (s *CartService) RemoveItem(sessionID models.SessionID, productID uuid.UUID, size string) error {
	var item models.CartItem
	err := s.db.
		Where("session_id = ? AND product_id = ? AND size = ?", sessionID, productID, size).
		Order("created_at asc").
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	return nil
}

// UpdateQuantity sets the quantity on the oldest cart row matching the
// product for the session. Size is not part of the match key here, unlike
// AddItem and RemoveItem: when a session holds the same product in two
// sizes, only the oldest row is touched. The quantity is stored as given.
func (s *CartService) UpdateQuantity(sessionID models.SessionID, productID uuid.UUID, quantity int) error {
	var item models.CartItem
	err := s.db.
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Order("created_at asc").
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("database error: %w", err)
	}

	item.Quantity = quantity
	if err := s.db.Save(&item).Error; err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}

	return nil
}

// ListItems returns the session's cart rows, oldest first, each joined with
// its product. Rows whose product was deleted while in the cart are kept in
// the result with a nil product and a zero line total.
func (s *CartService) ListItems(sessionID models.SessionID) ([]CartLine, error) {
	var items []models.CartItem
	err := s.db.
		Where("session_id = ?", sessionID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		line := CartLine{Item: item}

		var product models.Product
		err := s.db.First(&product, "id = ?", item.ProductID).Error
		switch {
		case err == nil:
			line.Product = &product
			line.LineTotal = product.Price * int64(item.Quantity)
		case errors.Is(err, gorm.ErrRecordNotFound):
			logrus.WithFields(logrus.Fields{
				"session_id":   sessionID,
				"cart_item_id": item.ID,
				"product_id":   item.ProductID,
			}).Warn("Cart item references a missing product")
		default:
			return nil, fmt.Errorf("database error: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// Total sums price × quantity over the session's cart rows whose product
// still exists.
func (s *CartService) Total(sessionID models.SessionID) (int64, error) {
	lines, err := s.ListItems(sessionID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, line := range lines {
		total += line.LineTotal
	}
	return total, nil
}

// Checkout snapshots the session's priced cart lines into an order and
// clears the cart, both inside one transaction.
func (s *CartService) Checkout(sessionID models.SessionID) (*models.Order, error) {
	lines, err := s.ListItems(sessionID)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	snapshot := make([]map[string]interface{}, 0, len(lines))
	for _, line := range lines {
		total += line.LineTotal

		entry := map[string]interface{}{
			"product_id": line.Item.ProductID.String(),
			"quantity":   line.Item.Quantity,
			"size":       line.Item.Size,
			"line_total": line.LineTotal,
		}
		if line.Product != nil {
			entry["name"] = line.Product.Name
			entry["unit_price"] = line.Product.Price
		}
		snapshot = append(snapshot, entry)
	}

	order := &models.Order{
		SessionID:  sessionID,
		TotalPrice: total,
		Lines:      models.JSONB{"lines": snapshot},
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
