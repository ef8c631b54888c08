package monnify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	apperrors "monnifyease/pkg/errors"
	"monnifyease/pkg/metrics"
)

const userAgent = "monnifyease/0.1.0"

var supportedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// Execute sends an authenticated request and returns the decoded response.
//
// The response is returned whatever its HTTP status, as long as the body is
// valid JSON. Params with nil values are left out of the query string. body is
// serialized as JSON when non-nil.
func (c *Client) Execute(ctx context.Context, method, path string, body any, params map[string]any) (*Response, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	if !supportedMethods[method] {
		c.log.Errorf("Rejected request: method=%s, path=%s", method, path)
		return nil, apperrors.UnsupportedMethod(method)
	}

	u := c.joinURL(path)
	if query := filterParams(params); len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	endpoint := u.String()
	metricPath := u.Path

	var reader io.Reader
	if _, ok := deref(body); ok {
		payload, err := json.Marshal(body)
		if err != nil {
			c.log.Errorf("Failed to marshal request body: url=%s, error=%v", endpoint, err)
			return nil, apperrors.Validation("request body cannot be encoded as JSON", err)
		}
		reader = bytes.NewReader(payload)
	}

	authorization, err := c.auth.Authorization(ctx)
	if err != nil {
		c.recordError(method, metricPath, err)
		return nil, err
	}
	if authorization == "" {
		err := apperrors.Authentication("authenticator returned an empty authorization header", nil)
		c.recordError(method, metricPath, err)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		c.log.Errorf("Failed to create request: url=%s, error=%v", endpoint, err)
		return nil, apperrors.Transport("failed to create request", err)
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.send(ctx, req)
	if err != nil {
		c.log.Errorf("Failed to send request: method=%s, url=%s, error=%v", method, endpoint, err)
		terr := apperrors.Transport("failed to send request", err)
		c.recordError(method, metricPath, terr)
		return nil, terr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	metrics.APIRequestDuration.WithLabelValues(method, metricPath).Observe(time.Since(start).Seconds())
	metrics.APIRequestsTotal.WithLabelValues(method, metricPath, strconv.Itoa(resp.StatusCode)).Inc()
	if err != nil {
		c.log.Errorf("Failed to read response body: url=%s, status=%s, error=%v", endpoint, resp.Status, err)
		terr := apperrors.Transport("failed to read response body", err)
		terr.StatusCode = resp.StatusCode
		c.recordError(method, metricPath, terr)
		return nil, terr
	}

	c.log.Printf("Monnify response: method=%s, url=%s, status=%d", method, endpoint, resp.StatusCode)
	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateCredential(ctx)
	}
	c.log.Debugf("Monnify response body: url=%s, body=%s", endpoint, raw)

	if !json.Valid(raw) {
		derr := apperrors.Decode("response body is not valid JSON", resp.StatusCode, nil)
		c.recordError(method, metricPath, derr)
		return nil, derr
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Raw:        json.RawMessage(raw),
	}, nil
}

// send waits for the rate limiter, if any, then performs the request.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}
	return c.httpClient.Do(req)
}

// invalidateCredential discards a cached token the API no longer accepts.
// The current call is not retried.
func (c *Client) invalidateCredential(ctx context.Context) {
	inv, ok := c.auth.(invalidator)
	if !ok {
		return
	}
	if err := inv.Invalidate(ctx); err != nil {
		c.log.Warnf("Failed to drop rejected access token: error=%v", err)
		return
	}
	c.log.Warnf("Access token rejected, cached token dropped")
}

func (c *Client) recordError(method, path string, err error) {
	metrics.APIErrorsTotal.WithLabelValues(method, path, apperrors.CodeOf(err)).Inc()
}

// joinURL resolves path against the base URL after dropping one leading "/".
func (c *Client) joinURL(path string) *url.URL {
	path = strings.TrimPrefix(path, "/")
	return c.baseURL.ResolveReference(&url.URL{Path: path})
}

// filterParams drops nil entries and renders the rest as query values.
func filterParams(params map[string]any) url.Values {
	values := url.Values{}
	for key, value := range params {
		v, ok := deref(value)
		if !ok {
			continue
		}
		values.Set(key, formatParam(v))
	}
	return values
}

// deref unwraps pointers and interfaces; ok is false when the value is nil,
// including typed nils such as nil pointers, slices and maps.
func deref(value any) (any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	for {
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return nil, false
			}
			rv = rv.Elem()
			continue
		case reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			if rv.IsNil() {
				return nil, false
			}
		}
		return rv.Interface(), true
	}
}

func formatParam(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format(time.DateOnly)
	case Amount:
		return t.StringFixed(2)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
