package harness

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// WaitReachable polls url with exponential backoff until it answers below 500
// or maxElapsed passes.
func WaitReachable(ctx context.Context, url string, maxElapsed time.Duration, logger *zap.Logger) error {
	client := &http.Client{Timeout: 10 * time.Second}

	probe := func() (int, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return 0, backoff.Permanent(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return 0, err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= http.StatusInternalServerError {
			return resp.StatusCode, fmt.Errorf("%s answered %d", url, resp.StatusCode)
		}
		return resp.StatusCode, nil
	}

	status, err := backoff.Retry(ctx, probe,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(maxElapsed),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warn("target not reachable yet", zap.Error(err), zap.Duration("retry_in", next))
		}),
	)
	if err != nil {
		return fmt.Errorf("target %s unreachable: %w", url, err)
	}

	logger.Info("target reachable", zap.String("url", url), zap.Int("status", status))
	return nil
}
