// Package fakeapi is an in-process stand-in for the Monnify API. It issues
// real JWT access tokens, enforces Basic and Bearer auth the way the live API
// does and records every call for inspection.
package fakeapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"monnifyease/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	loginRoute = "/api/v1/auth/login"

	DefaultTokenTTL = time.Hour
)

// RecordedRequest is an API call as the server received it.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

type override struct {
	status      int
	contentType string
	body        string
}

// Server is a running fake API.
type Server struct {
	// URL is the API base URL, ending in "/api/".
	URL string

	apiKey        string
	secretKey     string
	tokenTTL      time.Duration
	omitExpiresIn bool
	log           *logger.Logger

	httpServer *httptest.Server

	mu        sync.Mutex
	logins    int
	requests  []RecordedRequest
	overrides map[string]override
}

// Option configures a Server.
type Option func(*Server)

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) { s.tokenTTL = ttl }
}

// WithoutExpiresIn leaves expiresIn out of login responses, so clients must
// read the expiry from the token itself.
func WithoutExpiresIn() Option {
	return func(s *Server) { s.omitExpiresIn = true }
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// Start runs a fake API accepting apiKey and secretKey.
func Start(apiKey, secretKey string, opts ...Option) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		apiKey:    apiKey,
		secretKey: secretKey,
		tokenTTL:  DefaultTokenTTL,
		overrides: make(map[string]override),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.New(io.Discard, "ERROR")
	}

	s.httpServer = httptest.NewServer(s.routes())
	s.URL = s.httpServer.URL + "/api/"
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.loggingMiddleware(), s.recordMiddleware(), s.overrideMiddleware())
	r.NoRoute(func(c *gin.Context) {
		failure(c, http.StatusNotFound, "99", "resource not found")
	})

	v1 := r.Group("/api/v1")
	v1.POST("/auth/login", s.basicAuthMiddleware(), s.login)

	api := v1.Group("", s.bearerMiddleware())
	api.POST("/merchant/transactions/init-transaction", s.initTransaction)
	api.POST("/merchant/bank-transfer/init-payment", s.initBankTransfer)
	api.GET("/transactions/search", s.searchTransactions)
	return r
}

// Close shuts the server down.
func (s *Server) Close() {
	s.httpServer.Close()
}

// Logins reports how many login calls were received.
func (s *Server) Logins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logins
}

// Requests returns the recorded non-login calls in arrival order.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Respond makes the server answer path (relative to the base URL) with the
// given status and raw body instead of its normal handler.
func (s *Server) Respond(path string, status int, contentType, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides["/api/"+strings.TrimPrefix(path, "/")] = override{status: status, contentType: contentType, body: body}
}

func success(c *gin.Context, body any) {
	c.JSON(http.StatusOK, gin.H{
		"requestSuccessful": true,
		"responseMessage":   "success",
		"responseCode":      "0",
		"responseBody":      body,
	})
}

func (s *Server) login(c *gin.Context) {
	token, err := GenerateToken(s.apiKey, s.secretKey, s.tokenTTL)
	if err != nil {
		s.log.Errorf("fakeapi: failed to issue token: error=%v", err)
		failure(c, http.StatusInternalServerError, "99", "failed to issue token")
		return
	}
	body := gin.H{"accessToken": token}
	if !s.omitExpiresIn {
		body["expiresIn"] = int64(s.tokenTTL / time.Second)
	}
	success(c, body)
}

type initTransactionBody struct {
	Amount             decimal.Decimal `json:"amount"`
	CustomerName       string          `json:"customerName" binding:"required"`
	CustomerEmail      string          `json:"customerEmail" binding:"required,email"`
	PaymentReference   string          `json:"paymentReference" binding:"required"`
	PaymentDescription string          `json:"paymentDescription"`
	CurrencyCode       string          `json:"currencyCode" binding:"required"`
	ContractCode       string          `json:"contractCode" binding:"required"`
	RedirectURL        string          `json:"redirectUrl"`
	PaymentMethods     []string        `json:"paymentMethods"`
}

func (s *Server) initTransaction(c *gin.Context) {
	var body initTransactionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		failure(c, http.StatusBadRequest, "99", err.Error())
		return
	}
	if !body.Amount.IsPositive() {
		failure(c, http.StatusBadRequest, "99", "amount must be greater than zero")
		return
	}
	methods := body.PaymentMethods
	if len(methods) == 0 {
		methods = []string{"CARD", "ACCOUNT_TRANSFER"}
	}
	ref := "MNFY|" + strings.ToUpper(uuid.NewString()[:8])
	success(c, gin.H{
		"transactionReference": ref,
		"paymentReference":     body.PaymentReference,
		"merchantName":         "Fake Merchant",
		"apiKey":               s.apiKey,
		"enabledPaymentMethod": methods,
		"checkoutUrl":          "https://sandbox.sdk.monnify.com/checkout/" + ref,
	})
}

type bankTransferBody struct {
	TransactionReference string `json:"transactionReference" binding:"required"`
	BankCode             string `json:"bankCode"`
}

func (s *Server) initBankTransfer(c *gin.Context) {
	var body bankTransferBody
	if err := c.ShouldBindJSON(&body); err != nil {
		failure(c, http.StatusBadRequest, "99", err.Error())
		return
	}
	now := time.Now()
	success(c, gin.H{
		"accountNumber":          "5000000011",
		"accountName":            "Fake Merchant",
		"bankName":               "Wema bank",
		"bankCode":               "035",
		"accountDurationSeconds": 1800,
		"ussdPayment":            "*" + body.BankCode + "*000*5000000011#",
		"requestTime":            now.Format(time.RFC3339),
		"expiresOn":              now.Add(30 * time.Minute).Format(time.RFC3339),
		"transactionReference":   body.TransactionReference,
		"paymentReference":       "",
		"amount":                 1000.00,
		"fee":                    10.75,
		"totalPayable":           1010.75,
		"collectionChannel":      "API_NOTIFICATION",
	})
}

func (s *Server) searchTransactions(c *gin.Context) {
	name := c.DefaultQuery("customer_name", "John Doe")
	content := []gin.H{{
		"transactionReference": "MNFY|" + strings.ToUpper(uuid.NewString()[:8]),
		"paymentReference":     "jky234esqd",
		"amountPaid":           1000.00,
		"totalPayable":         1000.00,
		"settlementAmount":     989.25,
		"paymentStatus":        c.DefaultQuery("payment_status", "PAID"),
		"paymentDescription":   "Testing this transaction init",
		"currency":             "NGN",
		"paymentMethod":        "ACCOUNT_TRANSFER",
		"customer":             gin.H{"name": name, "email": c.DefaultQuery("customer_email", "johndoe@email.com")},
	}}
	success(c, gin.H{
		"content":          content,
		"totalElements":    len(content),
		"totalPages":       1,
		"size":             10,
		"number":           0,
		"numberOfElements": len(content),
		"first":            true,
		"last":             true,
		"empty":            false,
	})
}
