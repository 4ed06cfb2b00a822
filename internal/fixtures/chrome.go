package fixtures

// Header and footer copy shared by every authenticated screen.
const (
	AppLogoText = "Swag Labs"

	// FooterCopyFragment appears in the footer regardless of the copyright year.
	FooterCopyFragment = "Sauce Labs. All Rights Reserved."
)

// EntryPath is the login screen, where logout lands.
const EntryPath = "/"
