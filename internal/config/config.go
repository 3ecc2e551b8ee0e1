package config

import "os"

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Identity provider (Auth0 tenant)
	Auth0Domain   string
	Auth0ClientID string

	// AuthEnforce gates the bearer middleware on /api routes. Off by default:
	// the workout/routine endpoints historically ran unauthenticated.
	AuthEnforce bool

	// Server
	Port        string
	SecretKey   string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "fittrack_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		Auth0Domain:   getEnv("AUTH0_DOMAIN", ""),
		Auth0ClientID: getEnv("AUTH0_CLIENT_ID", ""),
		AuthEnforce:   getEnv("AUTH_ENFORCE", "false") == "true",

		Port:        getEnv("PORT", "8080"),
		SecretKey:   getEnv("SECRET_KEY", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// Issuer returns the expected iss claim of tokens minted by the tenant.
func (c *Config) Issuer() string {
	return "https://" + c.Auth0Domain + "/"
}

// JWKSURL returns the tenant's well-known JWKS endpoint.
func (c *Config) JWKSURL() string {
	return "https://" + c.Auth0Domain + "/.well-known/jwks.json"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
