package monnify

import (
	"context"
	"net/http"
)

const (
	initTransactionPath = "v1/merchant/transactions/init-transaction"
	bankTransferPath    = "v1/merchant/bank-transfer/init-payment"
	searchPath          = "v1/transactions/search"
)

// TransactionsService wraps the transactions endpoints.
//
// Envelopes are returned for any JSON response, including ones where
// RequestSuccessful is false; callers inspect the envelope for API-level
// failures.
type TransactionsService struct {
	client *Client
}

// Initialize creates a transaction and returns its checkout details.
func (s *TransactionsService) Initialize(ctx context.Context, p InitializeTransactionParams) (*Envelope[InitTransactionResult], error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}
	body := initTransactionRequest{
		Amount:             p.Amount,
		CustomerName:       p.CustomerName,
		CustomerEmail:      p.CustomerEmail,
		PaymentReference:   p.PaymentReference,
		PaymentDescription: p.PaymentDescription,
		CurrencyCode:       p.Currency,
		ContractCode:       p.ContractCode,
		RedirectURL:        p.RedirectURL,
		PaymentMethods:     p.PaymentMethods,
		IncomeSplitConfig:  p.IncomeSplitConfig,
		Metadata:           p.Metadata,
	}
	resp, err := s.client.Execute(ctx, http.MethodPost, initTransactionPath, body, nil)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[InitTransactionResult](resp)
}

// PayWithBankTransfer requests a dynamic account the customer can pay into.
func (s *TransactionsService) PayWithBankTransfer(ctx context.Context, p BankTransferParams) (*Envelope[BankTransferResult], error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}
	body := bankTransferRequest{
		TransactionReference: p.TransactionReference,
		BankCode:             p.BankCode,
	}
	resp, err := s.client.Execute(ctx, http.MethodPost, bankTransferPath, body, nil)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[BankTransferResult](resp)
}

// Search lists transactions matching the non-nil filters.
func (s *TransactionsService) Search(ctx context.Context, p SearchTransactionsParams) (*Envelope[TransactionPage], error) {
	resp, err := s.client.Execute(ctx, http.MethodGet, searchPath, nil, p.query())
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[TransactionPage](resp)
}
