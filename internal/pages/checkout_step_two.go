package pages

import (
	"math"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
	"github.com/themizzi/swagtest/internal/fixtures"
)

// CheckoutStepTwoPage is the order overview.
type CheckoutStepTwoPage struct {
	Chrome[*CheckoutStepTwoPage]
	d *Driver
}

func NewCheckoutStepTwoPage(d *Driver) *CheckoutStepTwoPage {
	p := &CheckoutStepTwoPage{d: d}
	p.Chrome = newChrome(d, p, fixtures.StepTwoTitle)
	return p
}

// Visit opens step two directly; the status of the client-routed screen is not checked.
func (p *CheckoutStepTwoPage) Visit() *CheckoutStepTwoPage {
	p.d.t.Helper()
	p.d.Visit(fixtures.StepTwoPath, false)
	return p
}

func (p *CheckoutStepTwoPage) AssertPageVisible() *CheckoutStepTwoPage {
	p.d.t.Helper()
	p.d.ExpectVisible(CheckoutSummaryContainer)
	p.AssertTitle()
	p.d.ExpectURLContains(fixtures.StepTwoPath)
	return p
}

func (p *CheckoutStepTwoPage) AssertOrderItemCount(count int) *CheckoutStepTwoPage {
	p.d.t.Helper()
	p.d.ExpectCount(InventoryItem, count)
	return p
}

func (p *CheckoutStepTwoPage) AssertItemInSummary(name string) *CheckoutStepTwoPage {
	p.d.t.Helper()
	l := p.d.Locator(InventoryItemName).Filter(playwright.LocatorFilterOptions{HasText: ExactText(name)})
	p.d.ExpectLocatorVisible(l, name)
	return p
}

func (p *CheckoutStepTwoPage) AssertPaymentInfoVisible() *CheckoutStepTwoPage {
	p.d.t.Helper()
	p.d.ExpectText(PaymentInfoLabel, fixtures.PaymentInfoLabel)
	p.d.ExpectVisible(PaymentInfoValue)
	return p
}

func (p *CheckoutStepTwoPage) AssertShippingInfoVisible() *CheckoutStepTwoPage {
	p.d.t.Helper()
	p.d.ExpectText(ShippingInfoLabel, fixtures.ShippingInfoLabel)
	p.d.ExpectVisible(ShippingInfoValue)
	return p
}

// AssertPriceSummaryVisible asserts the subtotal, tax and total lines are shown.
func (p *CheckoutStepTwoPage) AssertPriceSummaryVisible() *CheckoutStepTwoPage {
	p.d.t.Helper()
	p.d.ExpectVisible(SubtotalLabel)
	p.d.ExpectVisible(TaxLabel)
	p.d.ExpectVisible(TotalLabel)
	return p
}

// AssertTotalsConsistent asserts the item total is the sum of the line prices
// and the total is the item total plus tax, to the cent.
func (p *CheckoutStepTwoPage) AssertTotalsConsistent() *CheckoutStepTwoPage {
	p.d.t.Helper()
	lines, err := ParsePrices(p.d.Texts(InventoryItemPrice))
	require.NoError(p.d.t, err)

	subtotal := p.amount(SubtotalLabel, fixtures.ItemTotalPrefix)
	tax := p.amount(TaxLabel, fixtures.TaxPrefix)
	total := p.amount(TotalLabel, fixtures.TotalPrefix)

	var sum float64
	for _, v := range lines {
		sum += v
	}
	require.Equal(p.d.t, cents(sum), cents(subtotal), "item total should equal the sum of line prices")
	require.Equal(p.d.t, cents(subtotal*fixtures.TaxRate), cents(tax), "tax should be %.0f%% of the item total", fixtures.TaxRate*100)
	require.Equal(p.d.t, cents(subtotal)+cents(tax), cents(total), "total should equal item total plus tax")
	return p
}

func (p *CheckoutStepTwoPage) AssertActionButtonsVisible() *CheckoutStepTwoPage {
	p.d.t.Helper()
	p.d.ExpectEnabled(FinishButton)
	p.d.ExpectEnabled(CancelButton)
	return p
}

// ClickFinish places the order.
func (p *CheckoutStepTwoPage) ClickFinish() *CheckoutStepTwoPage {
	p.d.t.Helper()
	p.d.Click(FinishButton)
	return p
}

// ClickCancel abandons the overview and returns to the inventory.
func (p *CheckoutStepTwoPage) ClickCancel() *CheckoutStepTwoPage {
	p.d.t.Helper()
	p.d.Click(CancelButton)
	return p
}

func (p *CheckoutStepTwoPage) amount(selector, prefix string) float64 {
	p.d.t.Helper()
	texts := p.d.Texts(selector)
	require.Len(p.d.t, texts, 1, selector)
	require.True(p.d.t, strings.HasPrefix(texts[0], prefix), "%s should start with %q, got %q", selector, prefix, texts[0])
	v, err := ParsePrice(strings.TrimPrefix(texts[0], prefix))
	require.NoError(p.d.t, err)
	return v
}

func cents(v float64) int64 {
	return int64(math.Round(v * 100))
}
