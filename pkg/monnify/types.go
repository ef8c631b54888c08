package monnify

import "time"

// InitializeTransactionParams describes a transaction to initialize.
type InitializeTransactionParams struct {
	Amount             Amount          `validate:"gt=0"`
	CustomerName       string          `validate:"required"`
	CustomerEmail      string          `validate:"required,email"`
	PaymentReference   string          `validate:"required"`
	PaymentDescription string          `validate:"required"`
	Currency           Currency        `validate:"required"`
	ContractCode       string          `validate:"required"`
	RedirectURL        string          `validate:"omitempty,url"`
	PaymentMethods     []PaymentMethod `validate:"omitempty,dive,required"`
	IncomeSplitConfig  []IncomeSplit   `validate:"omitempty,dive"`
	Metadata           map[string]any
}

// IncomeSplit routes part of a payment to a sub account.
type IncomeSplit struct {
	SubAccountCode  string   `json:"subAccountCode" validate:"required"`
	FeePercentage   *float64 `json:"feePercentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	SplitAmount     *Amount  `json:"splitAmount,omitempty"`
	SplitPercentage *float64 `json:"splitPercentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	FeeBearer       bool     `json:"feeBearer"`
}

// initTransactionRequest is the wire body of init-transaction.
type initTransactionRequest struct {
	Amount             Amount          `json:"amount"`
	CustomerName       string          `json:"customerName"`
	CustomerEmail      string          `json:"customerEmail"`
	PaymentReference   string          `json:"paymentReference"`
	PaymentDescription string          `json:"paymentDescription"`
	CurrencyCode       Currency        `json:"currencyCode"`
	ContractCode       string          `json:"contractCode"`
	RedirectURL        string          `json:"redirectUrl,omitempty"`
	PaymentMethods     []PaymentMethod `json:"paymentMethods,omitempty"`
	IncomeSplitConfig  []IncomeSplit   `json:"incomeSplitConfig,omitempty"`
	Metadata           map[string]any  `json:"metadata,omitempty"`
}

// InitTransactionResult is the responseBody of init-transaction.
type InitTransactionResult struct {
	TransactionReference string          `json:"transactionReference"`
	PaymentReference     string          `json:"paymentReference"`
	MerchantName         string          `json:"merchantName"`
	APIKey               string          `json:"apiKey"`
	EnabledPaymentMethod []PaymentMethod `json:"enabledPaymentMethod"`
	CheckoutURL          string          `json:"checkoutUrl"`
}

// BankTransferParams starts a bank-transfer collection for an initialized transaction.
type BankTransferParams struct {
	TransactionReference string `validate:"required"`
	BankCode             string
}

type bankTransferRequest struct {
	TransactionReference string `json:"transactionReference"`
	BankCode             string `json:"bankCode,omitempty"`
}

// BankTransferResult is the responseBody of init-payment.
type BankTransferResult struct {
	AccountNumber        string `json:"accountNumber"`
	AccountName          string `json:"accountName"`
	BankName             string `json:"bankName"`
	BankCode             string `json:"bankCode"`
	AccountDurationSecs  int    `json:"accountDurationSeconds"`
	USSDPayment          string `json:"ussdPayment"`
	RequestTime          string `json:"requestTime"`
	ExpiresOn            string `json:"expiresOn"`
	TransactionReference string `json:"transactionReference"`
	PaymentReference     string `json:"paymentReference"`
	Amount               Amount `json:"amount"`
	Fee                  Amount `json:"fee"`
	TotalPayable         Amount `json:"totalPayable"`
	CollectionChannel    string `json:"collectionChannel"`
	ProductInformation   any    `json:"productInformation"`
}

// SearchTransactionsParams filters a transaction search. Nil fields are not sent.
type SearchTransactionsParams struct {
	PerPage              *int
	PageSize             *int
	PaymentReference     *string
	TransactionReference *string
	FromAmount           *Amount
	ToAmount             *Amount
	Amount               *Amount
	CustomerName         *string
	CustomerEmail        *string
	PaymentStatus        *PaymentStatus
	FromDate             *time.Time
	ToDate               *time.Time
}

func (p SearchTransactionsParams) query() map[string]any {
	return map[string]any{
		"per_page":              p.PerPage,
		"page_size":             p.PageSize,
		"payment_reference":     p.PaymentReference,
		"transaction_reference": p.TransactionReference,
		"from_amount":           p.FromAmount,
		"to_amount":             p.ToAmount,
		"amount":                p.Amount,
		"customer_name":         p.CustomerName,
		"customer_email":        p.CustomerEmail,
		"payment_status":        p.PaymentStatus,
		"from_date":             p.FromDate,
		"to_date":               p.ToDate,
	}
}

// TransactionPage is the responseBody of a search.
type TransactionPage struct {
	Content          []Transaction `json:"content"`
	TotalElements    int           `json:"totalElements"`
	TotalPages       int           `json:"totalPages"`
	Size             int           `json:"size"`
	Number           int           `json:"number"`
	NumberOfElements int           `json:"numberOfElements"`
	First            bool          `json:"first"`
	Last             bool          `json:"last"`
	Empty            bool          `json:"empty"`
}

// Transaction is one search result.
type Transaction struct {
	TransactionReference string        `json:"transactionReference"`
	PaymentReference     string        `json:"paymentReference"`
	AmountPaid           Amount        `json:"amountPaid"`
	TotalPayable         Amount        `json:"totalPayable"`
	SettlementAmount     Amount        `json:"settlementAmount"`
	PaidOn               string        `json:"paidOn"`
	PaymentStatus        PaymentStatus `json:"paymentStatus"`
	PaymentDescription   string        `json:"paymentDescription"`
	Currency             Currency      `json:"currency"`
	PaymentMethod        PaymentMethod `json:"paymentMethod"`
	CreatedOn            string        `json:"createdOn"`
	Customer             Customer      `json:"customer"`
}

type Customer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
