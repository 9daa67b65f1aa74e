// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"

	// Admin
	KeyAdminAccessDenied = "admin.access_denied"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// Cart
	KeyCartItemAdded        = "cart.item_added"
	KeyCartItemRemoved      = "cart.item_removed"
	KeyCartUpdated          = "cart.updated"
	KeyCartEmpty            = "cart.empty"
	KeyCartCheckoutComplete = "cart.checkout_complete"

	// Reviews
	KeyReviewCreated = "review.created"

	// Validation
	KeyValidationInvalid = "validation.invalid"
)
