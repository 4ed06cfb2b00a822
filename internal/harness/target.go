package harness

import (
	"fmt"
	"net/http/httptest"

	"github.com/themizzi/swagtest/internal/config"
	"github.com/themizzi/swagtest/internal/storefront"
	"go.uber.org/zap"
)

// ServeTarget leaves cfg alone unless the fixture storefront was requested, in
// which case it serves one in-process and points cfg.BaseURL at it. The returned
// stop func is never nil.
func ServeTarget(cfg *config.RunConfig, logger *zap.Logger) (func(), error) {
	if !cfg.Fixture {
		return func() {}, nil
	}

	store, err := storefront.New(storefront.Options{Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to create fixture storefront: %w", err)
	}
	srv := httptest.NewServer(store.Handler())
	cfg.BaseURL = srv.URL + "/"
	logger.Info("serving fixture storefront", zap.String("url", cfg.BaseURL))
	return srv.Close, nil
}
