package pages

import (
	"strconv"

	"github.com/themizzi/swagtest/internal/fixtures"
)

// Chrome is the header, burger menu, cart badge and footer present on every
// authenticated screen. Screens embed it; its methods return the embedding
// page object so chains continue across chrome and screen methods.
type Chrome[P any] struct {
	d     *Driver
	self  P
	title string
}

func newChrome[P any](d *Driver, self P, title string) Chrome[P] {
	return Chrome[P]{d: d, self: self, title: title}
}

// AssertCartBadge asserts the badge is visible and shows count.
func (c Chrome[P]) AssertCartBadge(count int) P {
	c.d.t.Helper()
	c.d.ExpectText(ShoppingCartBadge, strconv.Itoa(count))
	return c.self
}

// AssertCartBadgeNotVisible asserts the badge is not rendered at all.
func (c Chrome[P]) AssertCartBadgeNotVisible() P {
	c.d.t.Helper()
	c.d.ExpectAbsent(ShoppingCartBadge)
	return c.self
}

// ClickCart opens the cart.
func (c Chrome[P]) ClickCart() P {
	c.d.t.Helper()
	c.d.Click(ShoppingCartLink)
	return c.self
}

func (c Chrome[P]) OpenBurgerMenu() P {
	c.d.t.Helper()
	c.d.Click(BurgerMenuButton)
	return c.self
}

func (c Chrome[P]) CloseBurgerMenu() P {
	c.d.t.Helper()
	c.d.Click(BurgerMenuCloseButton)
	return c.self
}

// Logout signs out through the menu; the browser lands on the entry screen.
func (c Chrome[P]) Logout() P {
	c.d.t.Helper()
	c.OpenBurgerMenu()
	c.d.Click(MenuLogoutLink)
	return c.self
}

// GoToAllItems navigates to the inventory through the menu.
func (c Chrome[P]) GoToAllItems() P {
	c.d.t.Helper()
	c.OpenBurgerMenu()
	c.d.Click(MenuAllItemsLink)
	return c.self
}

// ResetAppState empties the cart through the menu and closes the menu again.
func (c Chrome[P]) ResetAppState() P {
	c.d.t.Helper()
	c.OpenBurgerMenu()
	c.d.Click(MenuResetLink)
	c.CloseBurgerMenu()
	return c.self
}

// AssertTitle asserts the secondary header title of the screen.
func (c Chrome[P]) AssertTitle() P {
	c.d.t.Helper()
	c.d.ExpectText(PageTitle, c.title)
	return c.self
}

func (c Chrome[P]) AssertHeaderVisible() P {
	c.d.t.Helper()
	c.d.ExpectVisible(PrimaryHeader)
	c.d.ExpectText(AppLogo, fixtures.AppLogoText)
	c.d.ExpectVisible(SecondaryHeader)
	c.d.ExpectVisible(BurgerMenuButton)
	c.d.ExpectVisible(ShoppingCartLink)
	return c.self
}

func (c Chrome[P]) AssertFooterVisible() P {
	c.d.t.Helper()
	c.d.ExpectVisible(Footer)
	c.d.ExpectVisible(FooterTwitter)
	c.d.ExpectVisible(FooterFacebook)
	c.d.ExpectVisible(FooterLinkedIn)
	c.d.ExpectContainsText(FooterCopy, fixtures.FooterCopyFragment)
	return c.self
}

// AssertOnEntryScreen asserts the browser is at the application root.
func (c Chrome[P]) AssertOnEntryScreen() P {
	c.d.t.Helper()
	c.d.ExpectURL(c.d.BaseURL())
	return c.self
}

// AssertURLContains asserts the current URL contains path.
func (c Chrome[P]) AssertURLContains(path string) P {
	c.d.t.Helper()
	c.d.ExpectURLContains(path)
	return c.self
}
