package e2e

import (
	"testing"

	"github.com/themizzi/swagtest/internal/fixtures"
	"github.com/themizzi/swagtest/internal/harness"
	"github.com/themizzi/swagtest/internal/pages"
)

// TestLogin tests the entry screen
// Feature: Login
//
//	As a shopper
//	I want to sign in with one of the advertised accounts
//	So that I can browse the store
func TestLogin(t *testing.T) {
	spec := newSpec(t)

	// Given I am on the login page
	visit := func(s *harness.Scenario) *pages.LoginPage {
		return s.Login().Visit()
	}

	t.Run("Page load", func(t *testing.T) {
		spec.Run(t, "displays all login elements on load", func(s *harness.Scenario) {
			visit(s).AssertLoginPageVisible()
		})

		spec.Run(t, "displays all login credentials elements on load", func(s *harness.Scenario) {
			visit(s).
				AssertLoginPageCredentialsVisible().
				AssertLoginCredentialsContainerText()
		})

		spec.Run(t, "shows the login button as enabled by default", func(s *harness.Scenario) {
			visit(s).AssertLoginButtonEnabled()
		})

		spec.Run(t, "loads with an empty username field", func(s *harness.Scenario) {
			visit(s).AssertUsernameValue("")
		})

		spec.Run(t, "does not show an error banner on initial load", func(s *harness.Scenario) {
			visit(s).AssertNoErrorMessage()
		})

		spec.Run(t, "shows the correct placeholders and button label", func(s *harness.Scenario) {
			visit(s).AssertLoginFormFields()
		})

		spec.Run(t, "displays the correct page title", func(s *harness.Scenario) {
			visit(s).AssertPageTitle()
		})
	})

	// Scenario Outline: Unsuccessful login
	//   When I submit <username> and <password>
	//   Then I should see <error>
	//   And I should stay on the login page
	t.Run("Unsuccessful login validation", func(t *testing.T) {
		spec.Run(t, "fails with missing username", func(s *harness.Scenario) {
			visit(s).LoginWithNoUsername()
		})

		spec.Run(t, "fails with missing password", func(s *harness.Scenario) {
			visit(s).LoginWithNoPassword()
		})

		spec.Run(t, "fails with invalid credentials", func(s *harness.Scenario) {
			visit(s).LoginWithInvalidCredentials(fixtures.InvalidUser.Username, fixtures.InvalidUser.Password)
		})

		spec.Run(t, "rejects the locked out user", func(s *harness.Scenario) {
			visit(s).
				LoginWithCredentials(fixtures.LockedOutUser.Username, fixtures.LockedOutUser.Password).
				AssertErrorMessage(fixtures.LockedOutError).
				AssertLoginPageVisible()
		})

		spec.Run(t, "keeps the username after a rejected login", func(s *harness.Scenario) {
			visit(s).
				LoginWithInvalidCredentials(fixtures.InvalidUser.Username, fixtures.InvalidUser.Password).
				AssertUsernameValue(fixtures.InvalidUser.Username)
		})

		spec.Run(t, "dismissing the error removes the banner", func(s *harness.Scenario) {
			visit(s).
				LoginWithNoUsername().
				DismissError().
				AssertNoErrorMessage()
		})
	})

	// Scenario: Successful login
	//   When I submit valid standard user credentials
	//   Then I should be redirected to the inventory
	t.Run("Successful login with standard user", func(t *testing.T) {
		spec.Run(t, "logs in and redirects to inventory", func(s *harness.Scenario) {
			visit(s).
				LoginWithCredentials(fixtures.StandardUser.Username, fixtures.StandardUser.Password).
				AssertLoginSuccess()
		})
	})

	// Scenario: Deep link without a session
	//   Given I am not logged in
	//   When I open an authenticated page directly
	//   Then I should land on the login page with an explanation
	t.Run("Logged out access", func(t *testing.T) {
		for _, path := range []string{fixtures.InventoryPath, fixtures.CartPath} {
			spec.Run(t, path, func(s *harness.Scenario) {
				s.Driver().Visit(path, false)
				s.Login().
					AssertLoginPageVisible().
					AssertErrorMessage(fixtures.LoggedOutAccessError(path))
			})
		}
	})
}
