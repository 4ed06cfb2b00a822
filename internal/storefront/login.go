package storefront

import (
	"net/http"
	"sync/atomic"

	"go.uber.org/zap"
)

// LoginHandler renders the entry screen and signs users in
type LoginHandler struct {
	*renderer
	logins atomic.Int64
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		v := loginView()
		if path := readCookie(r, FlashCookie); path != "" {
			clearCookie(w, FlashCookie)
			v.Error = loggedOutAccess(path)
		}
		h.render(w, http.StatusOK, "login.html", v)
	case http.MethodPost:
		h.submit(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *LoginHandler) submit(w http.ResponseWriter, r *http.Request) {
	user := r.PostFormValue("user-name")
	pass := r.PostFormValue("password")

	if err := Authenticate(user, pass); err != nil {
		h.logger.Info("login rejected", zap.String("username", user), zap.Error(err))
		v := loginView()
		v.Username = user
		v.Error = err.Error()
		h.render(w, http.StatusOK, "login.html", v)
		return
	}

	h.logins.Add(1)
	h.logger.Info("user logged in", zap.String("username", user))
	setCookie(w, UsernameCookie, user)
	http.Redirect(w, r, "/inventory.html", http.StatusSeeOther)
}

func loginView() view {
	return view{Usernames: Usernames, Password: password}
}

// LogoutHandler ends the session and returns to the entry screen
type LogoutHandler struct{}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, UsernameCookie)
	clearCookie(w, OrderCookie)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
