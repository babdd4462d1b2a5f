// Package config defines the environment variable and command-line flags
// supported by the checkout front end and the admin bootstrap command, and
// includes default values for particular fields.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/companieshouse/gofigure"
	"github.com/joho/godotenv"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr      string `env:"BIND_ADDR"      flag:"bind-addr"      flagDesc:"Bind address"`
	APIBaseURL    string `env:"API_BASE_URL"   flag:"api-base-url"   flagDesc:"Base URL of the shop backend API"`
	PublicOrigin  string `env:"PUBLIC_ORIGIN"  flag:"public-origin"  flagDesc:"Origin the checkout pages are served from, used for return and cancel URLs"`
	APITimeout    string `env:"API_TIMEOUT"    flag:"api-timeout"    flagDesc:"Timeout in seconds for backend API calls, 0 for none"`
	SecureCookies string `env:"SECURE_COOKIES" flag:"secure-cookies" flagDesc:"Mark session cookies as Secure"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:      ":3000",
		APIBaseURL:    "http://localhost:8082",
		PublicOrigin:  "http://localhost:3000",
		APITimeout:    "0",
		SecureCookies: "false",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided. A .env file in the working directory is
// loaded into the environment first when one exists.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	// a missing .env file is not an error
	_ = godotenv.Load()

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.APIBaseURL, "/")
}

// Origin returns the public origin without a trailing slash.
func (c *Config) Origin() string {
	return strings.TrimRight(c.PublicOrigin, "/")
}

// Timeout parses APITimeout. An empty value or zero means no timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if c.APITimeout == "" {
		return 0, nil
	}

	seconds, err := strconv.Atoi(c.APITimeout)
	if err != nil {
		return 0, fmt.Errorf("error parsing api timeout [%s]: [%w]", c.APITimeout, err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("api timeout must not be negative: [%d]", seconds)
	}

	return time.Duration(seconds) * time.Second, nil
}

// UseSecureCookies reports whether session cookies should carry the Secure
// attribute. Unparseable values are treated as false.
func (c *Config) UseSecureCookies() bool {
	secure, err := strconv.ParseBool(c.SecureCookies)
	return err == nil && secure
}
