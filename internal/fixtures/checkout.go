package fixtures

// Step one, customer information
const (
	StepOneTitle = "Checkout: Your Information"
	StepOnePath  = "/checkout-step-one.html"

	FirstNamePlaceholder  = "First Name"
	LastNamePlaceholder   = "Last Name"
	PostalCodePlaceholder = "Zip/Postal Code"

	FirstNameRequiredError  = "Error: First Name is required"
	LastNameRequiredError   = "Error: Last Name is required"
	PostalCodeRequiredError = "Error: Postal Code is required"
)

// Step two, overview
const (
	StepTwoTitle = "Checkout: Overview"
	StepTwoPath  = "/checkout-step-two.html"

	PaymentInfoLabel  = "Payment Information:"
	ShippingInfoLabel = "Shipping Information:"
	TotalInfoLabel    = "Price Total"

	PaymentInfoValue  = "SauceCard #31337"
	ShippingInfoValue = "Free Pony Express Delivery!"

	ItemTotalPrefix = "Item total: "
	TaxPrefix       = "Tax: "
	TotalPrefix     = "Total: "

	// TaxRate applied to the item total, rounded to cents.
	TaxRate = 0.08
)

// Complete, confirmation
const (
	CompleteTitle = "Checkout: Complete!"
	CompletePath  = "/checkout-complete.html"

	CompleteHeader = "Thank you for your order!"
	CompleteBody   = "Your order has been dispatched, and will arrive just as fast as the pony can get there!"
)

// Customer is the information entered on step one.
type Customer struct {
	FirstName  string
	LastName   string
	PostalCode string
}

// CheckoutUser is the customer used by every checkout scenario.
var CheckoutUser = Customer{
	FirstName:  "Test",
	LastName:   "User",
	PostalCode: "12345",
}
