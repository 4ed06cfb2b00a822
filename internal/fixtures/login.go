package fixtures

import "fmt"

// Login screen copy
const (
	DocumentTitle = "Swag Labs"

	UsernamePlaceholder = "Username"
	PasswordPlaceholder = "Password"
	LoginButtonValue    = "Login"

	CredentialsHeading = "Accepted usernames are:"
	PasswordHeading    = "Password for all users:"
)

// Login form errors
const (
	UsernameRequiredError   = "Epic sadface: Username is required"
	PasswordRequiredError   = "Epic sadface: Password is required"
	InvalidCredentialsError = "Epic sadface: Username and password do not match any user in this service"
	LockedOutError          = "Epic sadface: Sorry, this user has been locked out."
)

// LoggedOutAccessError is shown on the entry screen after an unauthenticated
// visit to an authenticated path.
func LoggedOutAccessError(path string) string {
	return fmt.Sprintf("Epic sadface: You can only access '%s' when you are logged in.", path)
}

// Credentials identify one account of the demo store.
type Credentials struct {
	Username string
	Password string
}

// SharedPassword is accepted for every listed account.
const SharedPassword = "secret_sauce"

var (
	StandardUser          = Credentials{Username: "standard_user", Password: SharedPassword}
	LockedOutUser         = Credentials{Username: "locked_out_user", Password: SharedPassword}
	ProblemUser           = Credentials{Username: "problem_user", Password: SharedPassword}
	PerformanceGlitchUser = Credentials{Username: "performance_glitch_user", Password: SharedPassword}
	ErrorUser             = Credentials{Username: "error_user", Password: SharedPassword}
	VisualUser            = Credentials{Username: "visual_user", Password: SharedPassword}

	InvalidUser = Credentials{Username: "invalid_user", Password: "invalid_password"}
)

// AcceptedUsers lists the accounts advertised on the login screen, in display order.
var AcceptedUsers = []Credentials{
	StandardUser,
	LockedOutUser,
	ProblemUser,
	PerformanceGlitchUser,
	ErrorUser,
	VisualUser,
}
