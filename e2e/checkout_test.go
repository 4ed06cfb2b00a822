package e2e

import (
	"testing"

	"github.com/themizzi/swagtest/internal/fixtures"
	"github.com/themizzi/swagtest/internal/harness"
	"github.com/themizzi/swagtest/internal/pages"
)

// toStepOne logs in, adds the Backpack and checks out from the cart.
func toStepOne(s *harness.Scenario) *pages.CheckoutStepOnePage {
	s.LoginAsStandardUser()
	s.Inventory().
		Visit().
		AddToCart(fixtures.Backpack).
		ClickCart()
	s.Cart().ProceedToCheckout()
	return s.StepOne()
}

// toStepTwo continues from step one with the checkout customer.
func toStepTwo(s *harness.Scenario) *pages.CheckoutStepTwoPage {
	toStepOne(s).SubmitCheckoutInfo(fixtures.CheckoutUser)
	return s.StepTwo()
}

// toComplete finishes the order from step two.
func toComplete(s *harness.Scenario) *pages.CheckoutCompletePage {
	toStepTwo(s).ClickFinish()
	return s.Complete()
}

// TestCheckout tests each checkout screen
// Feature: Checkout
//
//	As a shopper with a filled cart
//	I want to enter my details, review and confirm the order
//	So that my order is placed
func TestCheckout(t *testing.T) {
	spec := newSpec(t)

	// Given I have the Backpack in my cart
	// And I clicked Checkout
	t.Run("Step one page load", func(t *testing.T) {
		spec.Run(t, "loads with all key elements visible", func(s *harness.Scenario) {
			toStepOne(s).AssertPageVisible()
		})

		spec.Run(t, "displays the correct page title", func(s *harness.Scenario) {
			toStepOne(s).AssertTitle()
		})

		spec.Run(t, "renders the first name, last name and postal code inputs", func(s *harness.Scenario) {
			toStepOne(s).AssertFormFields()
		})

		spec.Run(t, "renders the Continue and Cancel buttons", func(s *harness.Scenario) {
			toStepOne(s).AssertActionButtonsVisible()
		})

		spec.Run(t, "does not show an error on initial load", func(s *harness.Scenario) {
			toStepOne(s).AssertNoErrorMessage()
		})

		spec.Run(t, "Cancel navigates back to the cart", func(s *harness.Scenario) {
			toStepOne(s).ClickCancel()
			s.Cart().
				AssertURLContains(fixtures.CartPath).
				AssertItemInCart(fixtures.Backpack.Name)
		})
	})

	// Scenario Outline: One blank field
	//   When I leave <field> blank and click Continue
	//   Then I should see <error>
	t.Run("Step one validation", func(t *testing.T) {
		user := fixtures.CheckoutUser
		tests := []struct {
			name     string
			customer fixtures.Customer
			want     string
		}{
			{name: "no first name", customer: fixtures.Customer{LastName: user.LastName, PostalCode: user.PostalCode}, want: fixtures.FirstNameRequiredError},
			{name: "no last name", customer: fixtures.Customer{FirstName: user.FirstName, PostalCode: user.PostalCode}, want: fixtures.LastNameRequiredError},
			{name: "no postal code", customer: fixtures.Customer{FirstName: user.FirstName, LastName: user.LastName}, want: fixtures.PostalCodeRequiredError},
		}

		for _, tt := range tests {
			spec.Run(t, "shows an error with "+tt.name, func(s *harness.Scenario) {
				toStepOne(s).
					SubmitCheckoutInfo(tt.customer).
					AssertErrorMessage(tt.want).
					AssertURLContains(fixtures.StepOnePath)
			})
		}

		spec.Run(t, "dismiss button removes the error", func(s *harness.Scenario) {
			toStepOne(s).
				ClickContinue().
				AssertErrorMessage(fixtures.FirstNameRequiredError).
				DismissError().
				AssertNoErrorMessage()
		})
	})

	// Given I submitted my details on step one
	t.Run("Step two order overview", func(t *testing.T) {
		spec.Run(t, "loads with all key elements visible", func(s *harness.Scenario) {
			toStepTwo(s).AssertPageVisible()
		})

		spec.Run(t, "displays the correct page title", func(s *harness.Scenario) {
			toStepTwo(s).AssertTitle()
		})

		spec.Run(t, "shows the correct number of order items", func(s *harness.Scenario) {
			toStepTwo(s).AssertOrderItemCount(1)
		})

		spec.Run(t, "shows the item name in the summary", func(s *harness.Scenario) {
			toStepTwo(s).AssertItemInSummary(fixtures.Backpack.Name)
		})

		spec.Run(t, "displays the payment information", func(s *harness.Scenario) {
			toStepTwo(s).AssertPaymentInfoVisible()
		})

		spec.Run(t, "displays the shipping information", func(s *harness.Scenario) {
			toStepTwo(s).AssertShippingInfoVisible()
		})

		spec.Run(t, "displays the price summary", func(s *harness.Scenario) {
			toStepTwo(s).AssertPriceSummaryVisible()
		})

		spec.Run(t, "totals add up", func(s *harness.Scenario) {
			toStepTwo(s).AssertTotalsConsistent()
		})

		spec.Run(t, "renders the Finish and Cancel buttons", func(s *harness.Scenario) {
			toStepTwo(s).AssertActionButtonsVisible()
		})

		spec.Run(t, "Cancel returns to the inventory", func(s *harness.Scenario) {
			toStepTwo(s).ClickCancel()
			s.Inventory().
				AssertURLContains(fixtures.InventoryPath).
				AssertCartBadge(1)
		})
	})

	// Given I clicked Finish on the overview
	t.Run("Complete confirmation", func(t *testing.T) {
		spec.Run(t, "loads with all key elements visible", func(s *harness.Scenario) {
			toComplete(s).AssertPageVisible()
		})

		spec.Run(t, "displays the correct page title", func(s *harness.Scenario) {
			toComplete(s).AssertTitle()
		})

		spec.Run(t, "shows the confirmation header", func(s *harness.Scenario) {
			toComplete(s).AssertCompleteHeader()
		})

		spec.Run(t, "shows the confirmation body", func(s *harness.Scenario) {
			toComplete(s).AssertCompleteBody()
		})

		spec.Run(t, "displays the Pony Express image", func(s *harness.Scenario) {
			toComplete(s).AssertPonyExpressImageVisible()
		})

		spec.Run(t, "empties the cart", func(s *harness.Scenario) {
			toComplete(s).AssertCartBadgeNotVisible()
		})

		spec.Run(t, "Back Home navigates to the inventory", func(s *harness.Scenario) {
			toComplete(s).
				AssertBackToProductsBtnVisible().
				ClickBackToProducts()
			s.Inventory().
				AssertURLContains(fixtures.InventoryPath).
				AssertCartBadgeNotVisible()
		})
	})
}
