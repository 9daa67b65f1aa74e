// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raphaelcleo/storefront/internal/i18n"
	"github.com/raphaelcleo/storefront/internal/middleware"
	"github.com/raphaelcleo/storefront/internal/services"
	"github.com/raphaelcleo/storefront/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

type addToCartRequest struct {
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /kosik
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	lines, err := h.cartService.ListItems(sessionID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	var total int64
	for _, line := range lines {
		total += line.LineTotal
	}

	utils.SuccessResponse(c, gin.H{
		"items": lines,
		"total": total,
	})
}

// POST /add_to_cart/:id
func (h *CartHandler) AddToCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sessionID, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	// A missing or malformed body falls back to quantity 1 and an empty
	// size, matching the optional form fields of the original storefront.
	var req addToCartRequest
	_ = c.ShouldBindJSON(&req)

	item, err := h.cartService.AddItem(sessionID, productID, req.Quantity, req.Size)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if item == nil {
		// Unknown product: the storefront sends the visitor back to the
		// catalog without complaining.
		utils.SuccessResponse(c, gin.H{"added": false})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"added":   true,
		"item":    item,
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
	})
}

// GET /remove_from_cart/:id/:size
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sessionID, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.cartService.RemoveItem(sessionID, productID, c.Param("size")); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemRemoved),
	})
}

// POST /update_cart/:id
func (h *CartHandler) UpdateCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sessionID, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.cartService.UpdateQuantity(sessionID, productID, req.Quantity); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartUpdated),
	})
}

// POST /kosik/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sessionID, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "session not established")
		return
	}

	order, err := h.cartService.Checkout(sessionID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartEmpty), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"order":   order,
		"message": i18n.T(lang, i18n.KeyCartCheckoutComplete),
	})
}
