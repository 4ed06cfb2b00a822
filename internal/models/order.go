package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents valid order states
type OrderStatus string

// Order statuses
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// TaxPercent is applied to the item total of every order
const TaxPercent = 8

// Customer is the shipping identity entered on checkout step one
type Customer struct {
	FirstName  string
	LastName   string
	PostalCode string
}

// LineItem is one product in an order, priced in cents
type LineItem struct {
	ProductID  int
	Name       string
	PriceCents int64
}

// Order represents a storefront checkout with business logic
type Order struct {
	ID        string
	Reference string
	Customer  Customer
	Items     []LineItem
	Currency  string
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain errors
var (
	ErrEmptyOrder              = errors.New("order must contain at least one item")
	ErrInvalidItemPrice        = errors.New("item price must be positive")
	ErrInvalidCurrency         = errors.New("currency code must be 3 characters")
	ErrInvalidCustomer         = errors.New("customer first name, last name and postal code are required")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrOrderNotFound           = errors.New("order not found")
)

// NewOrder creates a new pending order with validation
func NewOrder(customer Customer, items []LineItem, currency string) (*Order, error) {
	if err := validateOrderInput(customer, items, currency); err != nil {
		return nil, err
	}

	id := uuid.New()
	now := time.Now()

	return &Order{
		ID:        id.String(),
		Reference: "ORDER-" + strings.ToUpper(id.String()[:8]),
		Customer:  customer,
		Items:     append([]LineItem(nil), items...),
		Currency:  currency,
		Status:    OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// validateOrderInput validates order creation parameters
func validateOrderInput(customer Customer, items []LineItem, currency string) error {
	if len(items) == 0 {
		return ErrEmptyOrder
	}
	for _, item := range items {
		if item.PriceCents <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidItemPrice, item.Name)
		}
	}
	if len(currency) != 3 {
		return ErrInvalidCurrency
	}
	if customer.FirstName == "" || customer.LastName == "" || customer.PostalCode == "" {
		return ErrInvalidCustomer
	}
	return nil
}

// Place marks a pending order as placed
func (o *Order) Place() error {
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: cannot place order with status %s", ErrInvalidStatusTransition, o.Status)
	}

	o.Status = OrderStatusPlaced
	o.UpdatedAt = time.Now()
	return nil
}

// Cancel marks the order as cancelled
func (o *Order) Cancel() error {
	if o.Status == OrderStatusPlaced {
		return fmt.Errorf("%w: cannot cancel a placed order", ErrInvalidStatusTransition)
	}

	o.Status = OrderStatusCancelled
	o.UpdatedAt = time.Now()
	return nil
}

// IsPending returns true if the order is awaiting Finish
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// IsPlaced returns true if the order was finished
func (o *Order) IsPlaced() bool {
	return o.Status == OrderStatusPlaced
}

// IsCancelled returns true if the order is cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

// Subtotal is the sum of the line prices in cents
func (o *Order) Subtotal() int64 {
	var sum int64
	for _, item := range o.Items {
		sum += item.PriceCents
	}
	return sum
}

// Tax is TaxPercent of the subtotal, rounded half up to the cent
func (o *Order) Tax() int64 {
	return TaxOn(o.Subtotal())
}

// Total is subtotal plus tax
func (o *Order) Total() int64 {
	return o.Subtotal() + o.Tax()
}

// TaxOn returns the tax charged on subtotal cents
func TaxOn(subtotal int64) int64 {
	return (subtotal*TaxPercent + 50) / 100
}

// FormatCents renders cents as a dollar amount such as "$29.99"
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// GetFormattedTotal returns the order total formatted for display
func (o *Order) GetFormattedTotal() string {
	return FormatCents(o.Total())
}
