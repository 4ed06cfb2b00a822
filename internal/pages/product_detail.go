package pages

import "github.com/themizzi/swagtest/internal/fixtures"

// ProductDetailPage shows a single product reached from the inventory.
type ProductDetailPage struct {
	Chrome[*ProductDetailPage]
	d *Driver
}

func NewProductDetailPage(d *Driver) *ProductDetailPage {
	p := &ProductDetailPage{d: d}
	p.Chrome = newChrome(d, p, "")
	return p
}

// AssertShowsProduct asserts the detail screen renders product.
func (p *ProductDetailPage) AssertShowsProduct(product fixtures.Product) *ProductDetailPage {
	p.d.t.Helper()
	p.d.ExpectVisible(ProductDetailContainer)
	p.d.ExpectURLContains(fixtures.ProductDetailPath)
	p.d.ExpectText(InventoryItemName, product.Name)
	p.d.ExpectText(InventoryItemPrice, product.Price)
	return p
}

// AddToCart adds the shown product.
func (p *ProductDetailPage) AddToCart() *ProductDetailPage {
	p.d.t.Helper()
	p.d.Click(DetailAddToCartButton)
	return p
}

// AssertRemoveVisible asserts the shown product is in the cart.
func (p *ProductDetailPage) AssertRemoveVisible() *ProductDetailPage {
	p.d.t.Helper()
	p.d.ExpectVisible(DetailRemoveButton)
	return p
}

func (p *ProductDetailPage) ClickBackToProducts() *ProductDetailPage {
	p.d.t.Helper()
	p.d.Click(BackToProductsButton)
	return p
}
