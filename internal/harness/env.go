// Package harness owns the browser for a suite run and runs each scenario in
// its own context, retrying failed scenarios from scratch.
package harness

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/themizzi/swagtest/internal/config"
	"github.com/themizzi/swagtest/internal/session"
)

// Env is a running Playwright instance with one launched browser
type Env struct {
	cfg     *config.RunConfig
	pw      *playwright.Playwright
	browser playwright.Browser
}

// Start launches the browser named in cfg
func Start(cfg *config.RunConfig) (*Env, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browserType, err := selectBrowser(pw, cfg.Browser)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMo.Milliseconds())),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Browser, err)
	}

	return &Env{cfg: cfg, pw: pw, browser: browser}, nil
}

func selectBrowser(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case "chromium", "":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	}
	return nil, fmt.Errorf("unsupported browser %q", name)
}

// Config returns the configuration the browser was started with
func (e *Env) Config() *config.RunConfig {
	return e.cfg
}

// NewContext opens an isolated context at the configured base URL and
// viewport. A non-nil state restores cookies and local storage.
func (e *Env) NewContext(state *playwright.StorageState) (playwright.BrowserContext, error) {
	opts := playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(e.cfg.BaseURL),
		Viewport: &playwright.Size{
			Width:  e.cfg.ViewportWidth,
			Height: e.cfg.ViewportHeight,
		},
	}
	if state != nil {
		opts.StorageState = state.ToOptionalStorageState()
	}

	ctx, err := e.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	return ctx, nil
}

// Spec starts a spec file: its scenarios share one session cache, so each
// username logs in once per spec file.
func (e *Env) Spec() *Spec {
	return &Spec{
		env:      e,
		sessions: session.NewCache(e.NewContext, e.cfg.BaseURL, e.cfg.Timeout),
	}
}

// Close shuts the browser and the Playwright driver down
func (e *Env) Close() error {
	return errors.Join(e.browser.Close(), e.pw.Stop())
}
