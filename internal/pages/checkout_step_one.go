package pages

import "github.com/themizzi/swagtest/internal/fixtures"

// CheckoutStepOnePage collects the customer information.
type CheckoutStepOnePage struct {
	Chrome[*CheckoutStepOnePage]
	d *Driver
}

func NewCheckoutStepOnePage(d *Driver) *CheckoutStepOnePage {
	p := &CheckoutStepOnePage{d: d}
	p.Chrome = newChrome(d, p, fixtures.StepOneTitle)
	return p
}

// Visit opens step one directly; the status of the client-routed screen is not checked.
func (p *CheckoutStepOnePage) Visit() *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.Visit(fixtures.StepOnePath, false)
	return p
}

func (p *CheckoutStepOnePage) AssertPageVisible() *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.ExpectVisible(CheckoutInfoContainer)
	p.AssertTitle()
	p.d.ExpectURLContains(fixtures.StepOnePath)
	return p
}

// AssertFormFields asserts the three inputs and their placeholders.
func (p *CheckoutStepOnePage) AssertFormFields() *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.ExpectAttribute(FirstNameInput, "placeholder", fixtures.FirstNamePlaceholder)
	p.d.ExpectAttribute(LastNameInput, "placeholder", fixtures.LastNamePlaceholder)
	p.d.ExpectAttribute(PostalCodeInput, "placeholder", fixtures.PostalCodePlaceholder)
	return p
}

func (p *CheckoutStepOnePage) AssertActionButtonsVisible() *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.ExpectEnabled(ContinueButton)
	p.d.ExpectEnabled(CancelButton)
	return p
}

func (p *CheckoutStepOnePage) AssertErrorMessage(expected string) *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.ExpectText(ErrorMessage, expected)
	return p
}

func (p *CheckoutStepOnePage) AssertNoErrorMessage() *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.ExpectAbsent(ErrorMessage)
	return p
}

func (p *CheckoutStepOnePage) EnterFirstName(value string) *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.Fill(FirstNameInput, value)
	return p
}

func (p *CheckoutStepOnePage) EnterLastName(value string) *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.Fill(LastNameInput, value)
	return p
}

func (p *CheckoutStepOnePage) EnterPostalCode(value string) *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.Fill(PostalCodeInput, value)
	return p
}

// FillCheckoutInfo enters all three fields without submitting.
func (p *CheckoutStepOnePage) FillCheckoutInfo(c fixtures.Customer) *CheckoutStepOnePage {
	p.d.t.Helper()
	p.EnterFirstName(c.FirstName)
	p.EnterLastName(c.LastName)
	p.EnterPostalCode(c.PostalCode)
	return p
}

func (p *CheckoutStepOnePage) ClickContinue() *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.Click(ContinueButton)
	return p
}

// ClickCancel returns to the cart.
func (p *CheckoutStepOnePage) ClickCancel() *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.Click(CancelButton)
	return p
}

// SubmitCheckoutInfo fills the form and clicks Continue.
func (p *CheckoutStepOnePage) SubmitCheckoutInfo(c fixtures.Customer) *CheckoutStepOnePage {
	p.d.t.Helper()
	p.FillCheckoutInfo(c)
	p.ClickContinue()
	return p
}

func (p *CheckoutStepOnePage) DismissError() *CheckoutStepOnePage {
	p.d.t.Helper()
	p.d.Click(ErrorDismissButton)
	return p
}
