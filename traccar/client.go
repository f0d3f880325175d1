// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// DefaultTimeout is the HTTP timeout applied when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Config holds the settings needed to construct a Client.
type Config struct {
	// BaseURL is the Traccar server URL, e.g. "https://demo.traccar.org".
	// The "/api" prefix is appended by the client.
	BaseURL string `validate:"required,url"`

	// Timeout bounds each HTTP round trip. Zero means DefaultTimeout.
	// Ignored when HTTPClient is supplied.
	Timeout time.Duration

	// HTTPClient optionally replaces the default transport. The client
	// copies it and installs a cookie jar if none is present, since the
	// Traccar session cookie must survive across calls.
	HTTPClient *http.Client

	// Logger receives one debug event per request. Nil disables logging.
	Logger *zerolog.Logger
}

// endpoints is the fixed resource path table, computed once at construction.
type endpoints struct {
	session       string
	devices       string
	geofences     string
	notifications string
	reportsEvents string
	reportsRoute  string
	reportsTrips  string
	positions     string
	users         string
	groups        string
	permissions   string
}

func newEndpoints(baseURL string) endpoints {
	api := baseURL + "/api"
	return endpoints{
		session:       api + "/session",
		devices:       api + "/devices",
		geofences:     api + "/geofences",
		notifications: api + "/notifications",
		reportsEvents: api + "/reports/events",
		reportsRoute:  api + "/reports/route",
		reportsTrips:  api + "/reports/trips",
		positions:     api + "/positions",
		users:         api + "/users",
		groups:        api + "/groups",
		permissions:   api + "/permissions",
	}
}

// validate is the shared validator instance for Config and request payloads.
var validate = validator.New()

// Client talks to a single Traccar server. It holds the endpoint table, an
// HTTP client with a cookie jar for the server session, and the token cached
// by a successful LoginWithToken.
//
// The cached token is mutex-guarded; beyond that the client relies on
// net/http's own concurrency guarantees.
type Client struct {
	urls       endpoints
	httpClient *http.Client
	log        zerolog.Logger

	mu    sync.Mutex
	token string
}

// New builds a Client from cfg. It validates the configuration, normalizes
// the base URL and computes the endpoint table.
func New(cfg Config) (*Client, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	if cfg.HTTPClient != nil {
		clone := *cfg.HTTPClient
		httpClient = &clone
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Client{
		urls:       newEndpoints(baseURL),
		httpClient: httpClient,
		log:        logger,
	}, nil
}

// Token returns the session token cached by the last successful
// LoginWithToken, or the empty string if none.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}
