package fixtures

const (
	InventoryTitle = "Products"
	InventoryPath  = "/inventory.html"

	// ProductDetailPath is reached by clicking a product name.
	ProductDetailPath = "/inventory-item.html"
)

// SortOption is the value attribute of an option in the product sort dropdown.
type SortOption string

const (
	SortNameAsc   SortOption = "az"
	SortNameDesc  SortOption = "za"
	SortPriceAsc  SortOption = "lohi"
	SortPriceDesc SortOption = "hilo"
)

// Label is the text the dropdown shows for the option.
func (o SortOption) Label() string {
	switch o {
	case SortNameAsc:
		return "Name (A to Z)"
	case SortNameDesc:
		return "Name (Z to A)"
	case SortPriceAsc:
		return "Price (low to high)"
	case SortPriceDesc:
		return "Price (high to low)"
	}
	return string(o)
}

// SortOptions in dropdown order.
var SortOptions = []SortOption{SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc}

// Product is one catalog entry as the storefront renders it.
type Product struct {
	ID    int
	Name  string
	Slug  string
	Price string
}

// AddToCartID is the data-test id of the product's Add to cart button.
func (p Product) AddToCartID() string {
	return "add-to-cart-" + p.Slug
}

// RemoveID is the data-test id of the product's Remove button.
func (p Product) RemoveID() string {
	return "remove-" + p.Slug
}

var (
	Backpack     = Product{ID: 4, Name: "Sauce Labs Backpack", Slug: "sauce-labs-backpack", Price: "$29.99"}
	BikeLight    = Product{ID: 0, Name: "Sauce Labs Bike Light", Slug: "sauce-labs-bike-light", Price: "$9.99"}
	BoltTShirt   = Product{ID: 1, Name: "Sauce Labs Bolt T-Shirt", Slug: "sauce-labs-bolt-t-shirt", Price: "$15.99"}
	FleeceJacket = Product{ID: 5, Name: "Sauce Labs Fleece Jacket", Slug: "sauce-labs-fleece-jacket", Price: "$49.99"}
	Onesie       = Product{ID: 2, Name: "Sauce Labs Onesie", Slug: "sauce-labs-onesie", Price: "$7.99"}
	RedTShirt    = Product{ID: 3, Name: "Test.allTheThings() T-Shirt (Red)", Slug: "test.allthethings()-t-shirt-(red)", Price: "$15.99"}
)

// Products holds the full catalog.
var Products = []Product{Backpack, BikeLight, BoltTShirt, FleeceJacket, Onesie, RedTShirt}

// TotalProductCount is the number of products the inventory renders.
var TotalProductCount = len(Products)
