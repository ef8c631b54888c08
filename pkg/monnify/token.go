package monnify

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"monnifyease/pkg/cache"
	apperrors "monnifyease/pkg/errors"
	"monnifyease/pkg/metrics"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/blake2b"
)

const (
	loginPath = "v1/auth/login"

	// tokens are treated as expired this long before the server says they are.
	tokenExpirySkew = 30 * time.Second
)

// loginResponse is the shape of the login handshake response.
type loginResponse struct {
	RequestSuccessful bool   `json:"requestSuccessful"`
	ResponseMessage   string `json:"responseMessage"`
	ResponseBody      *struct {
		AccessToken string `json:"accessToken"`
		ExpiresIn   int64  `json:"expiresIn"`
	} `json:"responseBody"`
}

// TokenExchange exchanges the API key and secret key for a bearer token via
// the login endpoint. With a store configured, tokens are reused until shortly
// before they expire; without one, every request performs a fresh login.
type TokenExchange struct {
	client *Client
	key    string
	store  cache.TokenStore
	now    func() time.Time
}

func newTokenExchange(c *Client, store cache.TokenStore) *TokenExchange {
	return &TokenExchange{
		client: c,
		key:    cache.TokenKey(credentialFingerprint(c.config.BaseURL, c.config.APIKey, c.config.SecretKey)),
		store:  store,
		now:    time.Now,
	}
}

// credentialFingerprint identifies a credential set without exposing it.
func credentialFingerprint(baseURL, apiKey, secretKey string) string {
	sum := blake2b.Sum256([]byte(baseURL + "|" + apiKey + "|" + secretKey))
	return hex.EncodeToString(sum[:])
}

func (t *TokenExchange) Authorization(ctx context.Context) (string, error) {
	token, err := t.Token(ctx)
	if err != nil {
		return "", err
	}
	return "Bearer " + token.AccessToken, nil
}

// Token returns a cached token when one is valid, otherwise logs in.
func (t *TokenExchange) Token(ctx context.Context) (cache.Token, error) {
	log := t.client.log
	if t.store != nil {
		token, ok, err := t.store.Get(ctx, t.key)
		if err != nil {
			log.Warnf("Token cache lookup failed, logging in: retryable=%t, error=%v", cache.IsRetryable(err), err)
			if !cache.IsRetryable(err) {
				if err := t.store.Delete(ctx, t.key); err != nil {
					log.Warnf("Failed to drop unreadable cached token: error=%v", err)
				}
			}
		}
		if ok && token.Valid(t.now()) {
			metrics.TokenCacheHitsTotal.Inc()
			return token, nil
		}
		metrics.TokenCacheMissesTotal.Inc()
	}

	token, err := t.acquireToken(ctx)
	if err != nil {
		return cache.Token{}, err
	}

	if t.store != nil {
		cached := token
		cached.ExpiresAt = token.ExpiresAt.Add(-tokenExpirySkew)
		if err := t.store.Set(ctx, t.key, cached); err != nil {
			log.Warnf("Failed to cache access token: error=%v", err)
		}
	}
	return token, nil
}

// Invalidate drops the cached token, if any. The client calls it when the API
// answers 401 so the next request logs in again.
func (t *TokenExchange) Invalidate(ctx context.Context) error {
	if t.store == nil {
		return nil
	}
	return t.store.Delete(ctx, t.key)
}

// buildTokenRequest constructs the login request with Basic credentials.
func (t *TokenExchange) buildTokenRequest(ctx context.Context, loginURL string) (*http.Request, error) {
	payload, _ := json.Marshal(map[string]string{"grant_type": "authorization_code"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, bytes.NewReader(payload))
	if err != nil {
		t.client.log.Errorf("Failed to create token request: url=%s, error=%v", loginURL, err)
		return nil, apperrors.Authentication("failed to create token request", err)
	}
	req.SetBasicAuth(t.client.config.APIKey, t.client.config.SecretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

// acquireToken performs the login handshake.
func (t *TokenExchange) acquireToken(ctx context.Context) (cache.Token, error) {
	c := t.client
	loginURL := c.joinURL(loginPath).String()

	req, err := t.buildTokenRequest(ctx, loginURL)
	if err != nil {
		return cache.Token{}, err
	}

	issued := t.now()
	resp, err := c.send(ctx, req)
	if err != nil {
		metrics.TokenRequestsTotal.WithLabelValues("transport_error").Inc()
		c.log.Errorf("Failed to send token request: url=%s, error=%v", loginURL, err)
		return cache.Token{}, apperrors.Authentication("failed to send token request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.TokenRequestsTotal.WithLabelValues("transport_error").Inc()
		c.log.Errorf("Failed to read token response body: url=%s, status=%s, error=%v", loginURL, resp.Status, err)
		return cache.Token{}, apperrors.Authentication("failed to read token response body", err)
	}

	var login loginResponse
	if err := json.Unmarshal(body, &login); err != nil {
		metrics.TokenRequestsTotal.WithLabelValues("decode_error").Inc()
		c.log.Errorf("Failed to decode token response: url=%s, status=%s, error=%v", loginURL, resp.Status, err)
		return cache.Token{}, apperrors.Authentication("failed to decode token response", err)
	}
	if login.ResponseBody == nil || login.ResponseBody.AccessToken == "" {
		metrics.TokenRequestsTotal.WithLabelValues("missing_token").Inc()
		c.log.Errorf("Token response has no responseBody.accessToken: url=%s, status=%s, message=%s",
			loginURL, resp.Status, login.ResponseMessage)
		e := apperrors.Authentication("token response has no responseBody.accessToken", nil)
		e.StatusCode = resp.StatusCode
		return cache.Token{}, e
	}

	token := cache.Token{
		AccessToken: login.ResponseBody.AccessToken,
		ExpiresAt:   tokenExpiry(login.ResponseBody.AccessToken, login.ResponseBody.ExpiresIn, issued),
	}
	metrics.TokenRequestsTotal.WithLabelValues("success").Inc()
	c.log.Debugf("Retrieved Monnify access token: expires_at=%s", token.ExpiresAt.Format(time.RFC3339))
	return token, nil
}

// tokenExpiry prefers the expiresIn field and falls back to the JWT exp claim.
// A zero time means the expiry is unknown.
func tokenExpiry(accessToken string, expiresIn int64, issued time.Time) time.Time {
	if expiresIn > 0 {
		return issued.Add(time.Duration(expiresIn) * time.Second)
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	return time.Time{}
}
