package storefront

import "fmt"

// BannerError is a validation failure shown verbatim in a form's error banner
type BannerError string

func (e BannerError) Error() string { return string(e) }

// Login errors, in the order the form checks them
const (
	ErrUsernameRequired   BannerError = "Epic sadface: Username is required"
	ErrPasswordRequired   BannerError = "Epic sadface: Password is required"
	ErrLockedOut          BannerError = "Epic sadface: Sorry, this user has been locked out."
	ErrInvalidCredentials BannerError = "Epic sadface: Username and password do not match any user in this service"
)

const password = "secret_sauce"

// lockedOutUser exists but may not sign in
const lockedOutUser = "locked_out_user"

// Usernames advertised on the login screen, in display order
var Usernames = []string{
	"standard_user",
	lockedOutUser,
	"problem_user",
	"performance_glitch_user",
	"error_user",
	"visual_user",
}

// Password is accepted for every listed username
func Password() string { return password }

// Authenticate checks a login attempt and returns the banner error to show
func Authenticate(user, pass string) error {
	switch {
	case user == "":
		return ErrUsernameRequired
	case pass == "":
		return ErrPasswordRequired
	case user == lockedOutUser && pass == password:
		return ErrLockedOut
	}
	for _, u := range Usernames {
		if u == user && pass == password {
			return nil
		}
	}
	return ErrInvalidCredentials
}

func loggedOutAccess(path string) string {
	return fmt.Sprintf("Epic sadface: You can only access '%s' when you are logged in.", path)
}
