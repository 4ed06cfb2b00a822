package e2e

import (
	"testing"

	"github.com/themizzi/swagtest/internal/fixtures"
	"github.com/themizzi/swagtest/internal/harness"
	"github.com/themizzi/swagtest/internal/pages"
)

// TestInventory tests the product list
// Feature: Inventory
//
//	As a logged in shopper
//	I want to browse, sort and pick products
//	So that I can fill my cart
func TestInventory(t *testing.T) {
	spec := newSpec(t)

	// Given I am logged in as the standard user
	// And I am on the inventory page
	open := func(s *harness.Scenario) *pages.InventoryPage {
		s.LoginAsStandardUser()
		return s.Inventory().Visit()
	}

	t.Run("Page load", func(t *testing.T) {
		spec.Run(t, "displays the inventory page with all key elements", func(s *harness.Scenario) {
			open(s).AssertPageVisible()
		})

		spec.Run(t, "displays the correct page title", func(s *harness.Scenario) {
			open(s).AssertTitle()
		})

		spec.Run(t, "renders all six products", func(s *harness.Scenario) {
			open(s).AssertProductCount(fixtures.TotalProductCount)
		})

		spec.Run(t, "does not show a cart badge on initial load", func(s *harness.Scenario) {
			open(s).AssertCartBadgeNotVisible()
		})

		spec.Run(t, "shows the header and footer", func(s *harness.Scenario) {
			open(s).
				AssertHeaderVisible().
				AssertFooterVisible()
		})

		spec.Run(t, "lists every catalog product", func(s *harness.Scenario) {
			page := open(s)
			for _, product := range fixtures.Products {
				page.AssertProductVisible(product.Name).AssertAddToCartVisible(product)
			}
		})
	})

	// Scenario Outline: Sorting
	//   When I choose <option> in the sort dropdown
	//   Then the products should be ordered by <order>
	t.Run("Sorting", func(t *testing.T) {
		tests := []struct {
			name   string
			option fixtures.SortOption
			assert func(*pages.InventoryPage) *pages.InventoryPage
		}{
			{name: "sorts products by name A to Z", option: fixtures.SortNameAsc, assert: (*pages.InventoryPage).AssertSortedByNameAsc},
			{name: "sorts products by name Z to A", option: fixtures.SortNameDesc, assert: (*pages.InventoryPage).AssertSortedByNameDesc},
			{name: "sorts products by price low to high", option: fixtures.SortPriceAsc, assert: (*pages.InventoryPage).AssertSortedByPriceAsc},
			{name: "sorts products by price high to low", option: fixtures.SortPriceDesc, assert: (*pages.InventoryPage).AssertSortedByPriceDesc},
		}

		for _, tt := range tests {
			spec.Run(t, tt.name, func(s *harness.Scenario) {
				page := open(s).SortBy(tt.option)
				tt.assert(page).AssertActiveSort(tt.option)
			})
		}

		spec.Run(t, "defaults to name A to Z", func(s *harness.Scenario) {
			open(s).
				AssertActiveSort(fixtures.SortNameAsc).
				AssertSortedByNameAsc()
		})
	})

	t.Run("Cart interactions", func(t *testing.T) {
		spec.Run(t, "updates the cart badge to 1 after adding a single item", func(s *harness.Scenario) {
			open(s).
				AddToCart(fixtures.Backpack).
				AssertCartBadge(1)
		})

		spec.Run(t, "increments the cart badge when multiple items are added", func(s *harness.Scenario) {
			open(s).
				AddToCart(fixtures.Backpack).
				AddToCart(fixtures.BikeLight).
				AssertCartBadge(2)
		})

		spec.Run(t, "decrements the cart badge after removing an item", func(s *harness.Scenario) {
			open(s).
				AddToCart(fixtures.Backpack).
				AddToCart(fixtures.BikeLight).
				RemoveFromCart(fixtures.Backpack).
				AssertCartBadge(1)
		})

		spec.Run(t, "shows the Remove button after adding an item", func(s *harness.Scenario) {
			open(s).
				AddToCart(fixtures.Backpack).
				AssertRemoveVisible(fixtures.Backpack)
		})

		spec.Run(t, "shows the Add to cart button again after removing an item", func(s *harness.Scenario) {
			open(s).
				AddToCart(fixtures.Backpack).
				RemoveFromCart(fixtures.Backpack).
				AssertAddToCartVisible(fixtures.Backpack)
		})

		spec.Run(t, "clears the cart badge when the last item is removed", func(s *harness.Scenario) {
			open(s).
				AddToCart(fixtures.Backpack).
				RemoveFromCart(fixtures.Backpack).
				AssertCartBadgeNotVisible()
		})

		// Scenario Outline: Badge shows added minus removed
		//   When I add <added> and remove <removed>
		//   Then the badge should show the difference
		badges := []struct {
			name    string
			added   []fixtures.Product
			removed []fixtures.Product
		}{
			{name: "three added one removed", added: []fixtures.Product{fixtures.Backpack, fixtures.Onesie, fixtures.FleeceJacket}, removed: []fixtures.Product{fixtures.Onesie}},
			{name: "all added two removed", added: fixtures.Products, removed: []fixtures.Product{fixtures.RedTShirt, fixtures.BoltTShirt}},
		}
		for _, tt := range badges {
			spec.Run(t, "badge "+tt.name, func(s *harness.Scenario) {
				page := open(s)
				for _, p := range tt.added {
					page.AddToCart(p)
				}
				for _, p := range tt.removed {
					page.RemoveFromCart(p)
				}
				page.AssertCartBadge(len(tt.added) - len(tt.removed))
			})
		}

		spec.Run(t, "reset app state empties the cart", func(s *harness.Scenario) {
			open(s).
				AddToCart(fixtures.Backpack).
				AddToCart(fixtures.BikeLight).
				ResetAppState().
				AssertCartBadgeNotVisible().
				Visit().
				AssertCartBadgeNotVisible().
				AssertAddToCartVisible(fixtures.Backpack).
				AssertAddToCartVisible(fixtures.BikeLight)
		})
	})

	t.Run("Navigation", func(t *testing.T) {
		spec.Run(t, "navigates to the cart when the cart icon is clicked", func(s *harness.Scenario) {
			open(s).ClickCart()
			s.Cart().AssertURLContains(fixtures.CartPath)
		})

		spec.Run(t, "navigates to a product detail page when a product name is clicked", func(s *harness.Scenario) {
			open(s).ClickProductName(fixtures.Backpack.Name)
			s.ProductDetail().AssertURLContains(fixtures.ProductDetailPath)
		})

		spec.Run(t, "logs out via the burger menu and returns to the login page", func(s *harness.Scenario) {
			open(s).Logout()
			s.Login().
				AssertOnEntryScreen().
				AssertLoginPageVisible()
		})
	})

	// Scenario: Product detail
	//   When I open the Backpack from the inventory
	//   And I add it to the cart
	//   Then the badge should show 1
	//   And going back should show the Backpack as in the cart
	t.Run("Product detail", func(t *testing.T) {
		spec.Run(t, "shows the product and adds it to the cart", func(s *harness.Scenario) {
			open(s).ClickProductName(fixtures.Backpack.Name)
			s.ProductDetail().
				AssertShowsProduct(fixtures.Backpack).
				AddToCart().
				AssertRemoveVisible().
				AssertCartBadge(1).
				ClickBackToProducts()
			s.Inventory().
				AssertPageVisible().
				AssertRemoveVisible(fixtures.Backpack)
		})
	})
}
