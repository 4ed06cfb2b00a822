package config

// ServerConfig holds settings of the fixture storefront server
type ServerConfig struct {
	Port string
	// Development switches the request logger to zap's development encoder
	Development bool
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	port := getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	return ServerConfig{
		Port:        port,
		Development: getenv("SWAGTEST_DEV") != "",
	}
}
