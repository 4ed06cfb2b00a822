package cli

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// InstallBrowsers downloads the Playwright driver and the named browsers
func InstallBrowsers(browsers ...string) error {
	if len(browsers) == 0 {
		browsers = []string{"chromium"}
	}
	if err := playwright.Install(&playwright.RunOptions{Browsers: browsers}); err != nil {
		return fmt.Errorf("failed to install playwright browsers %v: %w", browsers, err)
	}
	return nil
}
