package pages

import (
	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
	"github.com/themizzi/swagtest/internal/fixtures"
)

// InventoryPage lists the product catalog.
type InventoryPage struct {
	Chrome[*InventoryPage]
	d *Driver
}

func NewInventoryPage(d *Driver) *InventoryPage {
	p := &InventoryPage{d: d}
	p.Chrome = newChrome(d, p, fixtures.InventoryTitle)
	return p
}

// Visit opens the inventory directly. The route is server rendered, so a
// non-2xx status fails the test.
func (p *InventoryPage) Visit() *InventoryPage {
	p.d.t.Helper()
	p.d.Visit(fixtures.InventoryPath, true)
	return p
}

// AssertPageVisible asserts the container, title and URL of the inventory.
func (p *InventoryPage) AssertPageVisible() *InventoryPage {
	p.d.t.Helper()
	p.d.ExpectVisible(InventoryContainer)
	p.AssertTitle()
	p.d.ExpectURLContains(fixtures.InventoryPath)
	return p
}

func (p *InventoryPage) AssertProductCount(count int) *InventoryPage {
	p.d.t.Helper()
	p.d.ExpectCount(InventoryItem, count)
	return p
}

func (p *InventoryPage) AssertProductVisible(name string) *InventoryPage {
	p.d.t.Helper()
	p.d.ExpectLocatorVisible(p.itemName(name), name)
	return p
}

func (p *InventoryPage) AssertSortedByNameAsc() *InventoryPage {
	p.d.t.Helper()
	names := p.d.Texts(InventoryItemName)
	require.Equal(p.d.t, SortedAsc(names), names, "product names should be sorted A to Z")
	return p
}

func (p *InventoryPage) AssertSortedByNameDesc() *InventoryPage {
	p.d.t.Helper()
	names := p.d.Texts(InventoryItemName)
	require.Equal(p.d.t, SortedDesc(names), names, "product names should be sorted Z to A")
	return p
}

func (p *InventoryPage) AssertSortedByPriceAsc() *InventoryPage {
	p.d.t.Helper()
	prices := p.prices()
	require.Equal(p.d.t, SortedAsc(prices), prices, "product prices should be sorted low to high")
	return p
}

func (p *InventoryPage) AssertSortedByPriceDesc() *InventoryPage {
	p.d.t.Helper()
	prices := p.prices()
	require.Equal(p.d.t, SortedDesc(prices), prices, "product prices should be sorted high to low")
	return p
}

// AddToCart clicks the product's Add to cart button.
func (p *InventoryPage) AddToCart(product fixtures.Product) *InventoryPage {
	p.d.t.Helper()
	p.d.Click(DataTest(product.AddToCartID()))
	return p
}

// RemoveFromCart clicks the product's Remove button.
func (p *InventoryPage) RemoveFromCart(product fixtures.Product) *InventoryPage {
	p.d.t.Helper()
	p.d.Click(DataTest(product.RemoveID()))
	return p
}

// AssertAddToCartVisible asserts the product is not in the cart.
func (p *InventoryPage) AssertAddToCartVisible(product fixtures.Product) *InventoryPage {
	p.d.t.Helper()
	p.d.ExpectVisible(DataTest(product.AddToCartID()))
	return p
}

// AssertRemoveVisible asserts the product is in the cart.
func (p *InventoryPage) AssertRemoveVisible(product fixtures.Product) *InventoryPage {
	p.d.t.Helper()
	p.d.ExpectVisible(DataTest(product.RemoveID()))
	return p
}

// SortBy selects a sort option by its value attribute.
func (p *InventoryPage) SortBy(option fixtures.SortOption) *InventoryPage {
	p.d.t.Helper()
	p.d.Select(SortDropdown, string(option))
	return p
}

// AssertActiveSort asserts the dropdown value and the label it shows.
func (p *InventoryPage) AssertActiveSort(option fixtures.SortOption) *InventoryPage {
	p.d.t.Helper()
	p.d.ExpectValue(SortDropdown, string(option))
	p.d.ExpectText(ActiveSortOption, option.Label())
	return p
}

// ClickProductName opens the detail screen of the product named name.
func (p *InventoryPage) ClickProductName(name string) *InventoryPage {
	p.d.t.Helper()
	p.d.ClickLocator(p.itemName(name), name)
	return p
}

func (p *InventoryPage) itemName(name string) playwright.Locator {
	return p.d.Locator(InventoryItemName).Filter(playwright.LocatorFilterOptions{
		HasText: ExactText(name),
	})
}

func (p *InventoryPage) prices() []float64 {
	p.d.t.Helper()
	prices, err := ParsePrices(p.d.Texts(InventoryItemPrice))
	require.NoError(p.d.t, err)
	return prices
}
