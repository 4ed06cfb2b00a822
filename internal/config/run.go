package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// Environment variables read by LoadRunConfig.
const (
	EnvBaseURL        = "SWAGTEST_BASE_URL"
	EnvBrowser        = "SWAGTEST_BROWSER"
	EnvHeadless       = "SWAGTEST_HEADLESS"
	EnvViewportWidth  = "SWAGTEST_VIEWPORT_WIDTH"
	EnvViewportHeight = "SWAGTEST_VIEWPORT_HEIGHT"
	EnvTimeout        = "SWAGTEST_TIMEOUT"
	EnvRetries        = "SWAGTEST_RETRIES"
	EnvSlowMo         = "SWAGTEST_SLOW_MO"
)

// FixtureTarget as SWAGTEST_BASE_URL runs the suite against the in-process
// fixture storefront instead of a hosted application.
const FixtureTarget = "fixture"

// RunConfig holds the settings of one suite run
type RunConfig struct {
	BaseURL        string        `default:"https://www.saucedemo.com/" validate:"required,url"`
	Browser        string        `default:"chromium" validate:"oneof=chromium firefox webkit"`
	Headless       bool          `default:"true"`
	ViewportWidth  int           `default:"1280" validate:"gt=0"`
	ViewportHeight int           `default:"720" validate:"gt=0"`
	Timeout        time.Duration `default:"8s" validate:"gt=0"`
	Retries        int           `default:"1" validate:"gte=0"`
	SlowMo         time.Duration `default:"0s" validate:"gte=0"`
	// Fixture is set when FixtureTarget was requested; BaseURL then still holds
	// the default until the caller points it at the started fixture.
	Fixture bool
}

// LoadRunConfig builds a RunConfig from defaults overridden by environment variables
func LoadRunConfig(getenv func(string) string) (*RunConfig, error) {
	cfg := &RunConfig{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply run config defaults: %w", err)
	}

	switch v := getenv(EnvBaseURL); {
	case strings.EqualFold(v, FixtureTarget):
		cfg.Fixture = true
	case v != "":
		cfg.BaseURL = v
	}
	if v := getenv(EnvBrowser); v != "" {
		cfg.Browser = strings.ToLower(v)
	}

	var err error
	if v := getenv(EnvHeadless); v != "" {
		if cfg.Headless, err = cast.ToBoolE(v); err != nil {
			return nil, fmt.Errorf("%s must be a boolean: %w", EnvHeadless, err)
		}
	}
	if v := getenv(EnvViewportWidth); v != "" {
		if cfg.ViewportWidth, err = cast.ToIntE(v); err != nil {
			return nil, fmt.Errorf("%s must be an integer: %w", EnvViewportWidth, err)
		}
	}
	if v := getenv(EnvViewportHeight); v != "" {
		if cfg.ViewportHeight, err = cast.ToIntE(v); err != nil {
			return nil, fmt.Errorf("%s must be an integer: %w", EnvViewportHeight, err)
		}
	}
	if v := getenv(EnvTimeout); v != "" {
		if cfg.Timeout, err = cast.ToDurationE(v); err != nil {
			return nil, fmt.Errorf("%s must be a duration: %w", EnvTimeout, err)
		}
	}
	if v := getenv(EnvRetries); v != "" {
		if cfg.Retries, err = cast.ToIntE(v); err != nil {
			return nil, fmt.Errorf("%s must be an integer: %w", EnvRetries, err)
		}
	}
	if v := getenv(EnvSlowMo); v != "" {
		if cfg.SlowMo, err = cast.ToDurationE(v); err != nil {
			return nil, fmt.Errorf("%s must be a duration: %w", EnvSlowMo, err)
		}
	}

	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints
func (c *RunConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid run config: %w", err)
	}
	return nil
}

// Environ renders the config as KEY=value pairs understood by LoadRunConfig
func (c *RunConfig) Environ() []string {
	return []string{
		EnvBaseURL + "=" + c.Target(),
		EnvBrowser + "=" + c.Browser,
		EnvHeadless + "=" + cast.ToString(c.Headless),
		EnvViewportWidth + "=" + cast.ToString(c.ViewportWidth),
		EnvViewportHeight + "=" + cast.ToString(c.ViewportHeight),
		EnvTimeout + "=" + c.Timeout.String(),
		EnvRetries + "=" + cast.ToString(c.Retries),
		EnvSlowMo + "=" + c.SlowMo.String(),
	}
}

// Target names what the suite runs against: a URL or FixtureTarget
func (c *RunConfig) Target() string {
	if c.Fixture {
		return FixtureTarget
	}
	return c.BaseURL
}
