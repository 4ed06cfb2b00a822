package pages

import (
	"strconv"

	"github.com/playwright-community/playwright-go"
	"github.com/themizzi/swagtest/internal/fixtures"
)

// CartPage lists the items added from the inventory.
type CartPage struct {
	Chrome[*CartPage]
	d *Driver
}

func NewCartPage(d *Driver) *CartPage {
	p := &CartPage{d: d}
	p.Chrome = newChrome(d, p, fixtures.CartTitle)
	return p
}

// Visit opens the cart directly. The screen is client routed and the server
// answers 404, so the status is not checked.
func (p *CartPage) Visit() *CartPage {
	p.d.t.Helper()
	p.d.Visit(fixtures.CartPath, false)
	return p
}

func (p *CartPage) AssertPageVisible() *CartPage {
	p.d.t.Helper()
	p.d.ExpectVisible(CartList)
	p.AssertTitle()
	p.d.ExpectURLContains(fixtures.CartPath)
	return p
}

func (p *CartPage) AssertCartItemCount(count int) *CartPage {
	p.d.t.Helper()
	p.d.ExpectCount(InventoryItem, count)
	return p
}

// AssertCartIsEmpty asserts no cart rows are rendered.
func (p *CartPage) AssertCartIsEmpty() *CartPage {
	p.d.t.Helper()
	p.d.ExpectAbsent(InventoryItem)
	return p
}

func (p *CartPage) AssertItemInCart(name string) *CartPage {
	p.d.t.Helper()
	p.d.ExpectLocatorVisible(p.name(name), name)
	return p
}

func (p *CartPage) AssertItemNotInCart(name string) *CartPage {
	p.d.t.Helper()
	p.d.ExpectLocatorCount(p.name(name), 0, name)
	return p
}

// AssertItemQuantity asserts the quantity shown on the row of the item named name.
func (p *CartPage) AssertItemQuantity(name string, quantity int) *CartPage {
	p.d.t.Helper()
	p.d.ExpectLocatorText(p.row(name).Locator(CartItemQuantity), strconv.Itoa(quantity), name+" quantity")
	return p
}

// AssertItemPrice asserts the price shown on the row of the item named name.
func (p *CartPage) AssertItemPrice(name, price string) *CartPage {
	p.d.t.Helper()
	p.d.ExpectLocatorText(p.row(name).Locator(InventoryItemPrice), price, name+" price")
	return p
}

func (p *CartPage) AssertColumnHeadersVisible() *CartPage {
	p.d.t.Helper()
	p.d.ExpectText(CartQuantityLabel, fixtures.CartQuantityLabel)
	p.d.ExpectText(CartDescriptionLabel, fixtures.CartDescriptionLabel)
	return p
}

func (p *CartPage) AssertActionButtonsVisible() *CartPage {
	p.d.t.Helper()
	p.d.ExpectEnabled(ContinueShoppingButton)
	p.d.ExpectEnabled(CheckoutButton)
	return p
}

func (p *CartPage) RemoveItem(product fixtures.Product) *CartPage {
	p.d.t.Helper()
	p.d.Click(DataTest(product.RemoveID()))
	return p
}

func (p *CartPage) ContinueShopping() *CartPage {
	p.d.t.Helper()
	p.d.Click(ContinueShoppingButton)
	return p
}

func (p *CartPage) ProceedToCheckout() *CartPage {
	p.d.t.Helper()
	p.d.Click(CheckoutButton)
	return p
}

func (p *CartPage) name(name string) playwright.Locator {
	return p.d.Locator(InventoryItemName).Filter(playwright.LocatorFilterOptions{HasText: ExactText(name)})
}

func (p *CartPage) row(name string) playwright.Locator {
	return p.d.Locator(InventoryItem).Filter(playwright.LocatorFilterOptions{
		Has: p.name(name),
	})
}
