package pages

import "github.com/themizzi/swagtest/internal/fixtures"

// LoginPage is the entry screen. It has no authenticated chrome.
type LoginPage struct {
	d *Driver
}

func NewLoginPage(d *Driver) *LoginPage {
	return &LoginPage{d: d}
}

// Visit opens the entry screen.
func (p *LoginPage) Visit() *LoginPage {
	p.d.t.Helper()
	p.d.Visit(fixtures.EntryPath, true)
	return p
}

// AssertLoginPageVisible asserts the form container and its three controls are visible.
func (p *LoginPage) AssertLoginPageVisible() *LoginPage {
	p.d.t.Helper()
	p.d.ExpectVisible(LoginContainer)
	p.d.ExpectVisible(UsernameInput)
	p.d.ExpectVisible(PasswordInput)
	p.d.ExpectVisible(LoginButton)
	return p
}

func (p *LoginPage) AssertLoginPageCredentialsVisible() *LoginPage {
	p.d.t.Helper()
	p.d.ExpectVisible(LoginCredentialsContainer)
	p.d.ExpectVisible(LoginCredentials)
	p.d.ExpectVisible(LoginPasswordCredentials)
	return p
}

// AssertLoginCredentialsContainerText asserts the helper panel lists every
// accepted username and the shared password.
func (p *LoginPage) AssertLoginCredentialsContainerText() *LoginPage {
	p.d.t.Helper()
	p.d.ExpectContainsText(LoginCredentials, fixtures.CredentialsHeading)
	p.d.ExpectContainsText(LoginPasswordCredentials, fixtures.PasswordHeading)
	for _, user := range fixtures.AcceptedUsers {
		p.d.ExpectContainsText(LoginCredentialsContainer, user.Username)
	}
	p.d.ExpectContainsText(LoginCredentialsContainer, fixtures.SharedPassword)
	return p
}

// AssertLoginFormFields asserts the input placeholders and the button label.
func (p *LoginPage) AssertLoginFormFields() *LoginPage {
	p.d.t.Helper()
	p.d.ExpectAttribute(UsernameInput, "placeholder", fixtures.UsernamePlaceholder)
	p.d.ExpectAttribute(PasswordInput, "placeholder", fixtures.PasswordPlaceholder)
	p.d.ExpectAttribute(LoginButton, "value", fixtures.LoginButtonValue)
	return p
}

func (p *LoginPage) AssertLoginButtonEnabled() *LoginPage {
	p.d.t.Helper()
	p.d.ExpectEnabled(LoginButton)
	return p
}

func (p *LoginPage) AssertUsernameValue(expected string) *LoginPage {
	p.d.t.Helper()
	p.d.ExpectValue(UsernameInput, expected)
	return p
}

// AssertErrorMessage asserts the error banner is visible with exactly expected.
func (p *LoginPage) AssertErrorMessage(expected string) *LoginPage {
	p.d.t.Helper()
	p.d.ExpectText(ErrorMessage, expected)
	return p
}

func (p *LoginPage) AssertNoErrorMessage() *LoginPage {
	p.d.t.Helper()
	p.d.ExpectAbsent(ErrorMessage)
	return p
}

// AssertLoginSuccess asserts the browser reached the inventory.
func (p *LoginPage) AssertLoginSuccess() *LoginPage {
	p.d.t.Helper()
	p.d.ExpectVisible(InventoryContainer)
	p.d.ExpectURLContains(fixtures.InventoryPath)
	return p
}

// AssertPageTitle asserts the document title.
func (p *LoginPage) AssertPageTitle() *LoginPage {
	p.d.t.Helper()
	p.d.ExpectDocumentTitle(fixtures.DocumentTitle)
	return p
}

// AssertOnEntryScreen asserts the browser is at the application root.
func (p *LoginPage) AssertOnEntryScreen() *LoginPage {
	p.d.t.Helper()
	p.d.ExpectURL(p.d.BaseURL())
	return p
}

func (p *LoginPage) SetUsernameValue(username string) *LoginPage {
	p.d.t.Helper()
	p.d.Fill(UsernameInput, username)
	return p
}

func (p *LoginPage) SetPasswordValue(password string) *LoginPage {
	p.d.t.Helper()
	p.d.Fill(PasswordInput, password)
	return p
}

func (p *LoginPage) ClickLoginButton() *LoginPage {
	p.d.t.Helper()
	p.d.Click(LoginButton)
	return p
}

// LoginWithCredentials fills both fields and submits.
func (p *LoginPage) LoginWithCredentials(username, password string) *LoginPage {
	p.d.t.Helper()
	p.SetUsernameValue(username)
	p.SetPasswordValue(password)
	p.ClickLoginButton()
	return p
}

// LoginWithNoUsername submits only the shared password and asserts the username error.
func (p *LoginPage) LoginWithNoUsername() *LoginPage {
	p.d.t.Helper()
	p.SetPasswordValue(fixtures.SharedPassword)
	p.ClickLoginButton()
	p.AssertErrorMessage(fixtures.UsernameRequiredError)
	return p
}

// LoginWithNoPassword submits only the standard username and asserts the password error.
func (p *LoginPage) LoginWithNoPassword() *LoginPage {
	p.d.t.Helper()
	p.SetUsernameValue(fixtures.StandardUser.Username)
	p.ClickLoginButton()
	p.AssertErrorMessage(fixtures.PasswordRequiredError)
	return p
}

// LoginWithInvalidCredentials submits unknown credentials and asserts the mismatch error.
func (p *LoginPage) LoginWithInvalidCredentials(username, password string) *LoginPage {
	p.d.t.Helper()
	p.LoginWithCredentials(username, password)
	p.AssertErrorMessage(fixtures.InvalidCredentialsError)
	return p
}

// DismissError closes the error banner.
func (p *LoginPage) DismissError() *LoginPage {
	p.d.t.Helper()
	p.d.Click(ErrorDismissButton)
	return p
}
