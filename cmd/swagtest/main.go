package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	internalcli "github.com/themizzi/swagtest/internal/cli"
	"github.com/themizzi/swagtest/internal/config"
	"github.com/themizzi/swagtest/internal/database"
	"github.com/themizzi/swagtest/internal/repository"
	"github.com/themizzi/swagtest/internal/services"
	"github.com/themizzi/swagtest/internal/storefront"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var version = "0.1.0"

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// openOrderRepository uses PostgreSQL when it is configured and memory otherwise.
// The returned close func is never nil.
func openOrderRepository(logger *zap.Logger) (services.OrderRepository, func(), error) {
	if !config.PostgresConfigured(os.Getenv) {
		logger.Info("storing orders in memory")
		return repository.NewMemoryOrderRepository(), func() {}, nil
	}

	pgConfig, err := config.LoadPostgresConfig(os.Getenv)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	db, err := database.Connect(pgConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	logger.Info("storing orders in postgres", zap.String("host", pgConfig.Host), zap.String("database", pgConfig.Database))
	return repository.NewOrderRepositoryWithDB(db), closeDB(db, logger), nil
}

func closeDB(db *sql.DB, logger *zap.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the fixture storefront",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "listen port (overrides PORT)"},
			&cli.BoolFlag{Name: "dev", Usage: "human-readable debug logging"},
		},
		Action: func(c *cli.Context) error {
			serverConfig := config.LoadServerConfig(os.Getenv)
			if c.IsSet("port") {
				serverConfig.Port = c.String("port")
			}
			if c.Bool("dev") {
				serverConfig.Development = true
			}

			logger, err := newLogger(serverConfig.Development)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()
			zap.ReplaceGlobals(logger)

			repo, closeRepo, err := openOrderRepository(logger)
			if err != nil {
				return err
			}
			defer closeRepo()

			store, err := storefront.New(storefront.Options{
				Orders: services.NewOrderService(repo),
				Logger: logger,
			})
			if err != nil {
				return fmt.Errorf("failed to create storefront: %w", err)
			}

			return internalcli.RunServe(internalcli.ServerDependencies{
				ServerConfig: serverConfig,
				Logger:       logger,
				Storefront:   store.Handler(),
			})
		},
	}
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the browser suite",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "base-url", Usage: "application under test", EnvVars: []string{config.EnvBaseURL}},
			&cli.BoolFlag{Name: "fixture", Usage: "run against the in-process fixture storefront"},
			&cli.StringFlag{Name: "browser", Usage: "chromium, firefox or webkit", EnvVars: []string{config.EnvBrowser}},
			&cli.BoolFlag{Name: "headed", Usage: "show the browser window"},
			&cli.IntFlag{Name: "retries", Usage: "whole-test retries", EnvVars: []string{config.EnvRetries}},
			&cli.StringFlag{Name: "run", Aliases: []string{"r"}, Usage: "only run tests matching `REGEXP`"},
			&cli.StringFlag{Name: "package", Value: internalcli.DefaultSuitePackage, Usage: "package holding the specs"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "do not pass -v to go test"},
		},
		Action: func(c *cli.Context) error {
			overrides := map[string]string{}
			if c.IsSet("base-url") {
				overrides[config.EnvBaseURL] = c.String("base-url")
			}
			if c.Bool("fixture") {
				overrides[config.EnvBaseURL] = config.FixtureTarget
			}
			if c.IsSet("browser") {
				overrides[config.EnvBrowser] = c.String("browser")
			}
			if c.Bool("headed") {
				overrides[config.EnvHeadless] = "false"
			}
			if c.IsSet("retries") {
				overrides[config.EnvRetries] = strconv.Itoa(c.Int("retries"))
			}

			cfg, err := config.LoadRunConfig(func(key string) string {
				if v, ok := overrides[key]; ok {
					return v
				}
				return os.Getenv(key)
			})
			if err != nil {
				return err
			}

			return internalcli.RunSuite(c.Context, cfg, internalcli.RunOptions{
				Package: c.String("package"),
				Filter:  c.String("run"),
				Verbose: !c.Bool("quiet"),
			})
		},
	}
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     "Install the Playwright driver and browsers",
		ArgsUsage: "[browser...]",
		Action: func(c *cli.Context) error {
			return internalcli.InstallBrowsers(c.Args().Slice()...)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "swagtest",
		Usage:   "Browser suite for the Swag Labs demo store",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			RunCommand(),
			InstallCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
