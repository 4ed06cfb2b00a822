package storefront

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Cookie names. The cart cookie is written by app.js and read by the server.
const (
	UsernameCookie = "session-username"
	CartCookie     = "cart-contents"
	OrderCookie    = "checkout-order"
	FlashCookie    = "login-required"
)

func setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:   name,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

func readCookie(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return v
}

// cartIDs returns the product ids in the cart, in the order they were added
func cartIDs(r *http.Request) []int {
	raw := readCookie(r, CartCookie)
	if raw == "" {
		return nil
	}

	var ids []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(raw, ".") {
		id, err := strconv.Atoi(part)
		if err != nil || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// encodeCart renders ids in the cart cookie format
func encodeCart(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ".")
}

func username(r *http.Request) string {
	return readCookie(r, UsernameCookie)
}
