// internal/handlers/pages.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/raphaelcleo/storefront/internal/utils"
)

// PagesHandler serves the static informational pages of the storefront.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// GET /kontakt
func (h *PagesHandler) Kontakt(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"page":  "kontakt",
		"email": "info@raphaelcleo.cz",
		"phone": "+420 777 123 456",
		"address": gin.H{
			"street": "Vodičkova 12",
			"city":   "Praha 1",
			"zip":    "110 00",
		},
	})
}

// GET /onas
func (h *PagesHandler) ONas(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"page":    "onas",
		"name":    "Raphael Cleo",
		"tagline": "Independent streetwear, printed and shipped from Prague.",
		"founded": 2023,
	})
}
