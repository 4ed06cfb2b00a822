// Package session signs test users in once and hands every later test a fresh
// browser context restored from the captured storage state.
package session

import (
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
	"github.com/themizzi/swagtest/internal/fixtures"
	"github.com/themizzi/swagtest/internal/pages"
)

// ContextFactory opens a browser context. A nil state opens an anonymous one.
type ContextFactory func(state *playwright.StorageState) (playwright.BrowserContext, error)

// Cache holds the storage state of each username that has logged in.
type Cache struct {
	mu         sync.Mutex
	newContext ContextFactory
	baseURL    string
	timeout    time.Duration
	states     map[string]*playwright.StorageState
	logins     map[string]int
}

// NewCache creates an empty cache. Drivers it returns resolve paths against
// baseURL and bound every wait by timeout.
func NewCache(newContext ContextFactory, baseURL string, timeout time.Duration) *Cache {
	return &Cache{
		newContext: newContext,
		baseURL:    baseURL,
		timeout:    timeout,
		states:     make(map[string]*playwright.StorageState),
		logins:     make(map[string]int),
	}
}

// Login returns a driver on a blank tab that is already signed in as creds.
// The login form runs only the first time a username is seen; a failed login
// fails t and caches nothing.
func (c *Cache) Login(t pages.TB, creds fixtures.Credentials) *pages.Driver {
	t.Helper()
	state := c.establish(t, creds)
	return c.Open(t, state)
}

// Open returns a driver in a new context seeded with state, closed when t ends.
func (c *Cache) Open(t pages.TB, state *playwright.StorageState) *pages.Driver {
	t.Helper()
	ctx, err := c.newContext(state)
	require.NoError(t, err, "failed to open browser context")
	t.Cleanup(func() {
		_ = ctx.Close()
	})

	page, err := ctx.NewPage()
	require.NoError(t, err, "failed to open page")
	return pages.NewDriver(t, page, c.baseURL, c.timeout)
}

func (c *Cache) establish(t pages.TB, creds fixtures.Credentials) *playwright.StorageState {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()

	if state, ok := c.states[creds.Username]; ok {
		t.Logf("session: restoring %s", creds.Username)
		return state
	}

	ctx, err := c.newContext(nil)
	require.NoError(t, err, "failed to open login context")
	defer ctx.Close()

	page, err := ctx.NewPage()
	require.NoError(t, err, "failed to open login page")

	d := pages.NewDriver(t, page, c.baseURL, c.timeout)
	pages.NewLoginPage(d).
		Visit().
		LoginWithCredentials(creds.Username, creds.Password).
		AssertLoginSuccess()

	state, err := ctx.StorageState()
	require.NoError(t, err, "failed to capture storage state")

	c.states[creds.Username] = state
	c.logins[creds.Username]++
	t.Logf("session: logged in as %s", creds.Username)
	return state
}

// Has reports whether username has a cached session.
func (c *Cache) Has(username string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.states[username]
	return ok
}

// Logins counts how many times the login form ran for username.
func (c *Cache) Logins(username string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logins[username]
}

// Reset drops every cached session; the next Login runs the form again.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states = make(map[string]*playwright.StorageState)
}
