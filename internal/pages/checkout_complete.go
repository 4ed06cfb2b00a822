package pages

import "github.com/themizzi/swagtest/internal/fixtures"

// CheckoutCompletePage confirms the placed order.
type CheckoutCompletePage struct {
	Chrome[*CheckoutCompletePage]
	d *Driver
}

func NewCheckoutCompletePage(d *Driver) *CheckoutCompletePage {
	p := &CheckoutCompletePage{d: d}
	p.Chrome = newChrome(d, p, fixtures.CompleteTitle)
	return p
}

// Visit opens the confirmation directly; the status of the client-routed screen is not checked.
func (p *CheckoutCompletePage) Visit() *CheckoutCompletePage {
	p.d.t.Helper()
	p.d.Visit(fixtures.CompletePath, false)
	return p
}

func (p *CheckoutCompletePage) AssertPageVisible() *CheckoutCompletePage {
	p.d.t.Helper()
	p.d.ExpectVisible(CheckoutCompleteContainer)
	p.AssertTitle()
	p.d.ExpectURLContains(fixtures.CompletePath)
	return p
}

func (p *CheckoutCompletePage) AssertCompleteHeader() *CheckoutCompletePage {
	p.d.t.Helper()
	p.d.ExpectText(CompleteHeader, fixtures.CompleteHeader)
	return p
}

func (p *CheckoutCompletePage) AssertCompleteBody() *CheckoutCompletePage {
	p.d.t.Helper()
	p.d.ExpectText(CompleteText, fixtures.CompleteBody)
	return p
}

func (p *CheckoutCompletePage) AssertPonyExpressImageVisible() *CheckoutCompletePage {
	p.d.t.Helper()
	p.d.ExpectVisible(PonyExpressImage)
	return p
}

func (p *CheckoutCompletePage) AssertBackToProductsBtnVisible() *CheckoutCompletePage {
	p.d.t.Helper()
	p.d.ExpectEnabled(BackToProductsButton)
	return p
}

func (p *CheckoutCompletePage) ClickBackToProducts() *CheckoutCompletePage {
	p.d.t.Helper()
	p.d.Click(BackToProductsButton)
	return p
}
