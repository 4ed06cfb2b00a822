package storefront

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/themizzi/swagtest/internal/models"
)

// Checkout information errors, one per required field
const (
	ErrFirstNameRequired  BannerError = "Error: First Name is required"
	ErrLastNameRequired   BannerError = "Error: Last Name is required"
	ErrPostalCodeRequired BannerError = "Error: Postal Code is required"
)

// checkoutForm is the step one form. Fields are validated in declaration
// order and only the first failure is reported.
type checkoutForm struct {
	FirstName  string `validate:"required"`
	LastName   string `validate:"required"`
	PostalCode string `validate:"required"`
}

var formValidator = validator.New()

func parseCheckoutForm(r *http.Request) checkoutForm {
	return checkoutForm{
		FirstName:  r.PostFormValue("firstName"),
		LastName:   r.PostFormValue("lastName"),
		PostalCode: r.PostFormValue("postalCode"),
	}
}

// Validate returns the banner error for the first empty field. Whitespace
// counts as a value.
func (f checkoutForm) Validate() error {
	err := formValidator.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	switch fieldErrs[0].Field() {
	case "FirstName":
		return ErrFirstNameRequired
	case "LastName":
		return ErrLastNameRequired
	default:
		return ErrPostalCodeRequired
	}
}

func (f checkoutForm) Customer() models.Customer {
	return models.Customer{FirstName: f.FirstName, LastName: f.LastName, PostalCode: f.PostalCode}
}
