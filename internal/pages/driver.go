package pages

import (
	"regexp"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// TB is the subset of testing.TB page objects report through. A failed
// assertion calls Errorf and then FailNow, ending the current test case.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
	Logf(format string, args ...any)
	Cleanup(func())
}

// Driver binds one browser tab to the test that drives it.
type Driver struct {
	t       TB
	page    playwright.Page
	expect  playwright.PlaywrightAssertions
	baseURL string
}

// NewDriver creates a Driver for page. Every wait and assertion is bounded by timeout.
func NewDriver(t TB, page playwright.Page, baseURL string, timeout time.Duration) *Driver {
	page.SetDefaultTimeout(float64(timeout.Milliseconds()))
	return &Driver{
		t:       t,
		page:    page,
		expect:  playwright.NewPlaywrightAssertions(float64(timeout.Milliseconds())),
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
	}
}

// T returns the test the driver reports to.
func (d *Driver) T() TB { return d.t }

// Page returns the underlying tab.
func (d *Driver) Page() playwright.Page { return d.page }

// BaseURL returns the application root, always ending in a slash.
func (d *Driver) BaseURL() string { return d.baseURL }

// URL resolves an application path against the base URL.
func (d *Driver) URL(path string) string {
	return d.baseURL + strings.TrimPrefix(path, "/")
}

// Locator returns a locator for selector on the current page.
func (d *Driver) Locator(selector string) playwright.Locator {
	return d.page.Locator(selector)
}

// Visit opens path. With strictStatus a non-2xx response fails the test;
// client-routed screens answer 404 and are visited without it.
func (d *Driver) Visit(path string, strictStatus bool) {
	d.t.Helper()
	resp, err := d.page.Goto(d.URL(path))
	require.NoError(d.t, err, "navigate to %s", path)
	if strictStatus && resp != nil && !resp.Ok() {
		require.Failf(d.t, "unexpected status", "GET %s returned %d", path, resp.Status())
	}
}

// Click clicks the first element matching selector once it is actionable.
func (d *Driver) Click(selector string) {
	d.t.Helper()
	require.NoError(d.t, d.page.Locator(selector).Click(), "click %s", selector)
}

// ClickLocator clicks an already narrowed locator.
func (d *Driver) ClickLocator(l playwright.Locator, what string) {
	d.t.Helper()
	require.NoError(d.t, l.Click(), "click %s", what)
}

// Fill replaces the value of the input matching selector.
func (d *Driver) Fill(selector, value string) {
	d.t.Helper()
	l := d.page.Locator(selector)
	require.NoError(d.t, l.Clear(), "clear %s", selector)
	if value == "" {
		return
	}
	require.NoError(d.t, l.Fill(value), "fill %s", selector)
}

// Select picks the option with the given value attribute.
func (d *Driver) Select(selector, value string) {
	d.t.Helper()
	_, err := d.page.Locator(selector).SelectOption(playwright.SelectOptionValues{
		Values: &[]string{value},
	})
	require.NoError(d.t, err, "select %q in %s", value, selector)
}

// Texts waits for selector to render and returns the inner text of every match in DOM order.
func (d *Driver) Texts(selector string) []string {
	d.t.Helper()
	l := d.page.Locator(selector)
	require.NoError(d.t, d.expect.Locator(l.First()).ToBeVisible(), "%s visible", selector)
	texts, err := l.AllInnerTexts()
	require.NoError(d.t, err, "read %s", selector)
	return texts
}

// ExpectVisible asserts the first match of selector is visible.
func (d *Driver) ExpectVisible(selector string) {
	d.t.Helper()
	d.ExpectLocatorVisible(d.page.Locator(selector).First(), selector)
}

// ExpectLocatorVisible asserts l is visible.
func (d *Driver) ExpectLocatorVisible(l playwright.Locator, what string) {
	d.t.Helper()
	require.NoError(d.t, d.expect.Locator(l).ToBeVisible(), "%s should be visible", what)
}

// ExpectText asserts selector is visible and its text equals text.
func (d *Driver) ExpectText(selector, text string) {
	d.t.Helper()
	l := d.page.Locator(selector)
	d.ExpectLocatorVisible(l, selector)
	require.NoError(d.t, d.expect.Locator(l).ToHaveText(text), "%s text", selector)
}

// ExpectLocatorText asserts the text of l equals text.
func (d *Driver) ExpectLocatorText(l playwright.Locator, text, what string) {
	d.t.Helper()
	require.NoError(d.t, d.expect.Locator(l).ToHaveText(text), "%s text", what)
}

// ExpectContainsText asserts the text of selector contains text.
func (d *Driver) ExpectContainsText(selector, text string) {
	d.t.Helper()
	require.NoError(d.t, d.expect.Locator(d.page.Locator(selector)).ToContainText(text),
		"%s should contain %q", selector, text)
}

// ExpectAttribute asserts selector is visible and carries attribute name with value.
func (d *Driver) ExpectAttribute(selector, name, value string) {
	d.t.Helper()
	l := d.page.Locator(selector)
	d.ExpectLocatorVisible(l, selector)
	require.NoError(d.t, d.expect.Locator(l).ToHaveAttribute(name, value), "%s[%s]", selector, name)
}

// ExpectValue asserts the current value of an input.
func (d *Driver) ExpectValue(selector, value string) {
	d.t.Helper()
	require.NoError(d.t, d.expect.Locator(d.page.Locator(selector)).ToHaveValue(value), "%s value", selector)
}

// ExpectEnabled asserts selector is visible and enabled.
func (d *Driver) ExpectEnabled(selector string) {
	d.t.Helper()
	l := d.page.Locator(selector)
	d.ExpectLocatorVisible(l, selector)
	require.NoError(d.t, d.expect.Locator(l).ToBeEnabled(), "%s should be enabled", selector)
}

// ExpectCount asserts exactly n elements match selector.
func (d *Driver) ExpectCount(selector string, n int) {
	d.t.Helper()
	d.ExpectLocatorCount(d.page.Locator(selector), n, selector)
}

// ExpectLocatorCount asserts exactly n elements match l.
func (d *Driver) ExpectLocatorCount(l playwright.Locator, n int, what string) {
	d.t.Helper()
	require.NoError(d.t, d.expect.Locator(l).ToHaveCount(n), "%s count", what)
}

// ExpectAbsent asserts nothing matches selector.
func (d *Driver) ExpectAbsent(selector string) {
	d.t.Helper()
	require.NoError(d.t, d.expect.Locator(d.page.Locator(selector)).ToHaveCount(0), "%s should not exist", selector)
}

// ExpectURLContains asserts the current URL contains fragment.
func (d *Driver) ExpectURLContains(fragment string) {
	d.t.Helper()
	pattern := regexp.MustCompile(regexp.QuoteMeta(fragment))
	require.NoError(d.t, d.expect.Page(d.page).ToHaveURL(pattern), "url should contain %s", fragment)
}

// ExpectURL asserts the current URL equals url.
func (d *Driver) ExpectURL(url string) {
	d.t.Helper()
	require.NoError(d.t, d.expect.Page(d.page).ToHaveURL(url), "url should be %s", url)
}

// ExpectDocumentTitle asserts the document title.
func (d *Driver) ExpectDocumentTitle(title string) {
	d.t.Helper()
	require.NoError(d.t, d.expect.Page(d.page).ToHaveTitle(title), "document title")
}
