package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/themizzi/swagtest/internal/config"
	"go.uber.org/zap"
)

// DefaultShutdownTimeout bounds how long in-flight storefront requests may run after a signal.
const DefaultShutdownTimeout = 30 * time.Second

// ServerDependencies is everything the serve command wires together.
type ServerDependencies struct {
	ServerConfig config.ServerConfig
	Logger       *zap.Logger
	Storefront   http.Handler
}

func (d ServerDependencies) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.L()
	}
	return d.Logger
}

// RunServe serves the storefront until SIGINT or SIGTERM.
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil)
}

// StartServer binds the configured port and serves the storefront in the background.
// Port "0" picks a free port; read it back from the listener.
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	if deps.Storefront == nil {
		return nil, nil, errors.New("no storefront handler")
	}
	logger := deps.logger()

	listener, err := net.Listen("tcp", ":"+deps.ServerConfig.Port)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on port %s: %w", deps.ServerConfig.Port, err)
	}

	server := &http.Server{
		Handler:           deps.Storefront,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(logger.Named("http")),
	}

	go func() {
		logger.Info("storefront listening", zap.String("addr", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("storefront stopped serving", zap.Error(err))
		}
	}()

	return listener, server, nil
}

// WaitForShutdown blocks until a signal arrives on shutdown, then drains the server.
// A nil channel subscribes to SIGINT and SIGTERM.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, DefaultShutdownTimeout)
}

// WaitForShutdownWithTimeout is WaitForShutdown with a custom drain deadline.
// Requests still running at the deadline are cut off.
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, timeout time.Duration) error {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	zap.L().Info("shutting down storefront", zap.Stringer("signal", sig), zap.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.L().Warn("drain timed out, closing connections", zap.Error(err))
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop storefront: %w", err)
		}
	}

	zap.L().Info("storefront stopped")
	return nil
}
