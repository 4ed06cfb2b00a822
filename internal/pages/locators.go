package pages

import (
	"fmt"
	"regexp"
)

// DataTest selects elements by their data-test attribute. Use it for ids built at
// run time, such as a product's add-to-cart button.
func DataTest(id string) string {
	return fmt.Sprintf(`[data-test=%q]`, id)
}

// ExactText matches text equal to s, ignoring surrounding whitespace.
func ExactText(s string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*` + regexp.QuoteMeta(s) + `\s*$`)
}

// Common chrome shown on every authenticated screen.
const (
	AppLogo         = `[data-test="app-logo"]`
	PrimaryHeader   = `[data-test="primary-header"]`
	SecondaryHeader = `[data-test="secondary-header"]`
	PageTitle       = `[data-test="title"]`

	BurgerMenuButton      = "#react-burger-menu-btn"
	BurgerMenuCloseButton = "#react-burger-cross-btn"
	MenuAllItemsLink      = `[data-test="inventory-sidebar-link"]`
	MenuAboutLink         = `[data-test="about-sidebar-link"]`
	MenuLogoutLink        = `[data-test="logout-sidebar-link"]`
	MenuResetLink         = `[data-test="reset-sidebar-link"]`

	ShoppingCartLink  = `[data-test="shopping-cart-link"]`
	ShoppingCartBadge = `[data-test="shopping-cart-badge"]`

	Footer         = `[data-test="footer"]`
	FooterTwitter  = `[data-test="social-twitter"]`
	FooterFacebook = `[data-test="social-facebook"]`
	FooterLinkedIn = `[data-test="social-linkedin"]`
	FooterCopy     = `[data-test="footer-copy"]`
)

// Login screen.
const (
	UsernameInput             = `[data-test="username"]`
	PasswordInput             = `[data-test="password"]`
	LoginButton               = `[data-test="login-button"]`
	LoginContainer            = `[data-test="login-container"]`
	LoginCredentialsContainer = `[data-test="login-credentials-container"]`
	LoginCredentials          = `[data-test="login-credentials"]`
	LoginPasswordCredentials  = `[data-test="login-password"]`
)

// Error banner shared by the login and checkout forms.
const (
	ErrorMessage       = `[data-test="error"]`
	ErrorDismissButton = `[data-test="error-button"]`
)

// Inventory screen. Cart and checkout reuse the item locators.
const (
	SortDropdown       = `[data-test="product-sort-container"]`
	ActiveSortOption   = `[data-test="active-option"]`
	InventoryContainer = `[data-test="inventory-container"]`
	InventoryList      = `[data-test="inventory-list"]`
	InventoryItem      = `[data-test="inventory-item"]`
	InventoryItemName  = `[data-test="inventory-item-name"]`
	InventoryItemDesc  = `[data-test="inventory-item-desc"]`
	InventoryItemPrice = `[data-test="inventory-item-price"]`
	InventoryItemImage = `[data-test="inventory-item-img-link"]`
)

// Product detail screen.
const (
	ProductDetailContainer = `[data-test="inventory-item-container"]`
	DetailAddToCartButton  = `[data-test="add-to-cart"]`
	DetailRemoveButton     = `[data-test="remove"]`
	BackToProductsButton   = `[data-test="back-to-products"]`
)

// Cart screen.
const (
	CartList               = `[data-test="cart-list"]`
	CartContentsContainer  = `[data-test="cart-contents-container"]`
	CartItemQuantity       = `[data-test="item-quantity"]`
	CartQuantityLabel      = `[data-test="cart-quantity-label"]`
	CartDescriptionLabel   = `[data-test="cart-desc-label"]`
	ContinueShoppingButton = `[data-test="continue-shopping"]`
	CheckoutButton         = `[data-test="checkout"]`
)

// Checkout step one.
const (
	CheckoutInfoContainer = `[data-test="checkout-info-container"]`
	FirstNameInput        = `[data-test="firstName"]`
	LastNameInput         = `[data-test="lastName"]`
	PostalCodeInput       = `[data-test="postalCode"]`
	ContinueButton        = `[data-test="continue"]`
	CancelButton          = `[data-test="cancel"]`
)

// Checkout step two.
const (
	CheckoutSummaryContainer = `[data-test="checkout-summary-container"]`
	PaymentInfoLabel         = `[data-test="payment-info-label"]`
	PaymentInfoValue         = `[data-test="payment-info-value"]`
	ShippingInfoLabel        = `[data-test="shipping-info-label"]`
	ShippingInfoValue        = `[data-test="shipping-info-value"]`
	TotalInfoLabel           = `[data-test="total-info-label"]`
	SubtotalLabel            = `[data-test="subtotal-label"]`
	TaxLabel                 = `[data-test="tax-label"]`
	TotalLabel               = `[data-test="total-label"]`
	FinishButton             = `[data-test="finish"]`
)

// Checkout complete.
const (
	CheckoutCompleteContainer = `[data-test="checkout-complete-container"]`
	PonyExpressImage          = `[data-test="pony-express"]`
	CompleteHeader            = `[data-test="complete-header"]`
	CompleteText              = `[data-test="complete-text"]`
)
