package fakeapi

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// failure writes a Monnify-shaped error envelope.
func failure(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"requestSuccessful": false,
		"responseMessage":   message,
		"responseCode":      code,
	})
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		s.log.Debugf("fakeapi: %s %s %d %v", method, path, c.Writer.Status(), time.Since(start))
	}
}

// recordMiddleware keeps a copy of every API call apart from logins.
func (s *Server) recordMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if c.Request.URL.Path == loginRoute {
			s.mu.Lock()
			s.logins++
			s.mu.Unlock()
			c.Next()
			return
		}

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:   c.Request.Method,
			Path:     c.Request.URL.Path,
			RawQuery: c.Request.URL.RawQuery,
			Header:   c.Request.Header.Clone(),
			Body:     body,
		})
		s.mu.Unlock()
		c.Next()
	}
}

// overrideMiddleware answers with a canned response when one is registered
// for the path.
func (s *Server) overrideMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		o, ok := s.overrides[c.Request.URL.Path]
		s.mu.Unlock()
		if !ok {
			c.Next()
			return
		}
		c.Data(o.status, o.contentType, []byte(o.body))
		c.Abort()
	}
}

// basicAuthMiddleware guards the login route.
func (s *Server) basicAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || user != s.apiKey || pass != s.secretKey {
			failure(c, http.StatusUnauthorized, "99", "Invalid client credentials")
			return
		}
		c.Next()
	}
}

// bearerMiddleware accepts an issued access token or, for clients using
// secret-key auth, the secret key itself.
func (s *Server) bearerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			failure(c, http.StatusUnauthorized, "99", "authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			failure(c, http.StatusUnauthorized, "99", "invalid authorization header format")
			return
		}

		if parts[1] == s.secretKey {
			c.Set("api_key", s.apiKey)
			c.Next()
			return
		}

		claims, err := ValidateToken(parts[1], s.secretKey)
		if err != nil {
			failure(c, http.StatusUnauthorized, "99", err.Error())
			return
		}
		c.Set("api_key", claims.APIKey)
		c.Next()
	}
}
