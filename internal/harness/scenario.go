package harness

import (
	"testing"

	"github.com/themizzi/swagtest/internal/fixtures"
	"github.com/themizzi/swagtest/internal/pages"
	"github.com/themizzi/swagtest/internal/session"
)

// Spec groups the scenarios of one spec file
type Spec struct {
	env      *Env
	sessions *session.Cache
}

// Sessions returns the spec's login cache
func (s *Spec) Sessions() *session.Cache {
	return s.sessions
}

// Run runs fn as subtest name, retrying it as configured.
func (s *Spec) Run(t *testing.T, name string, fn func(*Scenario)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		Retry(t, s.env.cfg.Retries, func(tb pages.TB) {
			fn(&Scenario{T: tb, spec: s})
		})
	})
}

// Scenario is one attempt of one test. All page objects it hands out share a
// single tab.
type Scenario struct {
	T      pages.TB
	spec   *Spec
	driver *pages.Driver
}

// Driver returns the scenario's tab, opening an anonymous one on first use.
func (s *Scenario) Driver() *pages.Driver {
	s.T.Helper()
	if s.driver == nil {
		s.driver = s.spec.sessions.Open(s.T, nil)
	}
	return s.driver
}

// LoginAs replaces the scenario's tab with one signed in as creds.
func (s *Scenario) LoginAs(creds fixtures.Credentials) *pages.Driver {
	s.T.Helper()
	s.driver = s.spec.sessions.Login(s.T, creds)
	return s.driver
}

func (s *Scenario) LoginAsStandardUser() *pages.Driver {
	s.T.Helper()
	return s.LoginAs(fixtures.StandardUser)
}

func (s *Scenario) Login() *pages.LoginPage {
	return pages.NewLoginPage(s.Driver())
}

func (s *Scenario) Inventory() *pages.InventoryPage {
	return pages.NewInventoryPage(s.Driver())
}

func (s *Scenario) ProductDetail() *pages.ProductDetailPage {
	return pages.NewProductDetailPage(s.Driver())
}

func (s *Scenario) Cart() *pages.CartPage {
	return pages.NewCartPage(s.Driver())
}

func (s *Scenario) StepOne() *pages.CheckoutStepOnePage {
	return pages.NewCheckoutStepOnePage(s.Driver())
}

func (s *Scenario) StepTwo() *pages.CheckoutStepTwoPage {
	return pages.NewCheckoutStepTwoPage(s.Driver())
}

func (s *Scenario) Complete() *pages.CheckoutCompletePage {
	return pages.NewCheckoutCompletePage(s.Driver())
}
