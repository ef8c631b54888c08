// Package monnify is a client for the Monnify payment API.
//
// A Client resolves its credentials once, exchanges them for a bearer token
// and sends authenticated JSON requests:
//
//	client, err := monnify.New(config.MonnifyConfig{Environment: "sandbox"})
//	if err != nil { ... }
//	res, err := client.Transactions.Initialize(ctx, monnify.InitializeTransactionParams{...})
package monnify

import (
	"net/http"
	"net/url"
	"strings"

	"monnifyease/pkg/cache"
	"monnifyease/pkg/config"
	apperrors "monnifyease/pkg/errors"
	"monnifyease/pkg/logger"

	"golang.org/x/time/rate"
)

// Client talks to one Monnify environment with one credential set.
// It is safe for concurrent use.
type Client struct {
	config     config.MonnifyConfig
	baseURL    *url.URL
	httpClient *http.Client
	auth       Authenticator
	log        *logger.Logger
	limiter    *rate.Limiter

	tokenStore        cache.TokenStore
	disableTokenCache bool

	Transactions *TransactionsService
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client. A zero timeout is replaced by the
// configured one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		copied := *hc
		c.httpClient = &copied
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTokenStore shares a token store, e.g. a Redis store, between clients.
func WithTokenStore(store cache.TokenStore) Option {
	return func(c *Client) { c.tokenStore = store }
}

// WithoutTokenCache makes every request perform its own login.
func WithoutTokenCache() Option {
	return func(c *Client) { c.disableTokenCache = true }
}

// WithAuthenticator replaces the token exchange.
func WithAuthenticator(a Authenticator) Option {
	return func(c *Client) { c.auth = a }
}

// WithSecretKeyAuth sends the secret key as the bearer credential instead of
// exchanging it for a token.
func WithSecretKeyAuth() Option {
	return func(c *Client) { c.auth = StaticKey(c.config.SecretKey) }
}

// WithRateLimit throttles outbound calls, login included.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// New resolves cfg and builds a client. Missing credentials are looked up in
// the environment; see config.ResolveCredentials.
func New(cfg config.MonnifyConfig, opts ...Option) (*Client, error) {
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	base := resolved.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, apperrors.Configuration("invalid base URL "+resolved.BaseURL, err)
	}
	resolved.BaseURL = base

	c := &Client{
		config:  resolved,
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.httpClient.Timeout == 0 {
		c.httpClient.Timeout = resolved.Timeout
	}
	if c.log == nil {
		c.log = logger.Default()
	}
	if c.auth == nil {
		var store cache.TokenStore
		if !c.disableTokenCache {
			store = c.tokenStore
			if store == nil {
				store = cache.NewMemoryStore()
			}
		}
		c.auth = newTokenExchange(c, store)
	}

	c.Transactions = &TransactionsService{client: c}
	return c, nil
}

// Config returns the resolved configuration.
func (c *Client) Config() config.MonnifyConfig {
	return c.config
}

// BaseURL returns the API base URL, always ending in "/".
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}
