// Package spotmarket provides a client for the spot electricity price GraphQL API.
package spotmarket

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration for the spot market API client.
type Config struct {
	APIToken       string        // Bearer token for authentication
	Endpoint       string        // GraphQL endpoint URL
	Timeout        time.Duration // HTTP request timeout
	LookaheadHours int           // How many hours of quotes to request
}

// LoadConfig loads spot market configuration from environment variables.
func LoadConfig() Config {
	lookahead := 24
	if v, err := strconv.Atoi(os.Getenv("SPOT_LOOKAHEAD_HOURS")); err == nil && v > 0 {
		lookahead = v
	}
	return Config{
		APIToken:       os.Getenv("SPOT_API_TOKEN"),
		Endpoint:       os.Getenv("SPOT_GRAPHQL_URL"),
		Timeout:        10 * time.Second,
		LookaheadHours: lookahead,
	}
}
