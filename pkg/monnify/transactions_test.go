package monnify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	apperrors "monnifyease/pkg/errors"
)

func sampleTransaction() InitializeTransactionParams {
	return InitializeTransactionParams{
		Amount:             NewAmount(1000.00),
		CustomerName:       "John Doe",
		CustomerEmail:      "johndoe@email.com",
		PaymentReference:   "jky234esqd",
		PaymentDescription: "Testing this transaction init",
		Currency:           CurrencyNGN,
		ContractCode:       "9498021956",
	}
}

func TestInitializeTransactionBody(t *testing.T) {
	srv := startFake(t)
	c := newTestClient(t, srv.URL)

	env, err := c.Transactions.Initialize(context.Background(), sampleTransaction())
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if !env.RequestSuccessful || !strings.HasPrefix(env.ResponseBody.TransactionReference, "MNFY|") {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if env.ResponseBody.PaymentReference != "jky234esqd" {
		t.Errorf("PaymentReference = %q", env.ResponseBody.PaymentReference)
	}

	req := srv.Requests()[0]
	if req.Method != http.MethodPost || req.Path != "/api/v1/merchant/transactions/init-transaction" {
		t.Fatalf("unexpected request %s %s", req.Method, req.Path)
	}
	if !strings.Contains(string(req.Body), `"amount":1000.00`) {
		t.Errorf("body does not carry the amount with two decimals: %s", req.Body)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	want := map[string]string{
		"currencyCode":       `"NGN"`,
		"contractCode":       `"9498021956"`,
		"customerName":       `"John Doe"`,
		"customerEmail":      `"johndoe@email.com"`,
		"paymentReference":   `"jky234esqd"`,
		"paymentDescription": `"Testing this transaction init"`,
	}
	for key, value := range want {
		if got := string(body[key]); got != value {
			t.Errorf("%s = %s, want %s", key, got, value)
		}
	}
	for _, key := range []string{"redirectUrl", "paymentMethods", "incomeSplitConfig", "metadata"} {
		if _, ok := body[key]; ok {
			t.Errorf("absent optional field %s was sent", key)
		}
	}
}

func TestInitializeTransactionOptionalFields(t *testing.T) {
	srv := startFake(t)
	c := newTestClient(t, srv.URL)

	p := sampleTransaction()
	p.RedirectURL = "https://merchant.example/return"
	p.PaymentMethods = []PaymentMethod{PaymentMethodCard, PaymentMethodAccountTransfer}
	p.IncomeSplitConfig = []IncomeSplit{{SubAccountCode: "MFY_SUB_1", SplitAmount: AmountPtr(200), FeeBearer: true}}
	p.Metadata = map[string]any{"orderId": "A-17"}

	env, err := c.Transactions.Initialize(context.Background(), p)
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if len(env.ResponseBody.EnabledPaymentMethod) != 2 {
		t.Errorf("EnabledPaymentMethod = %v", env.ResponseBody.EnabledPaymentMethod)
	}

	body := string(srv.Requests()[0].Body)
	for _, fragment := range []string{
		`"redirectUrl":"https://merchant.example/return"`,
		`"paymentMethods":["CARD","ACCOUNT_TRANSFER"]`,
		`"incomeSplitConfig":[{"subAccountCode":"MFY_SUB_1","splitAmount":200.00,"feeBearer":true}]`,
		`"metadata":{"orderId":"A-17"}`,
	} {
		if !strings.Contains(body, fragment) {
			t.Errorf("body %s does not contain %s", body, fragment)
		}
	}
}

func TestInitializeTransactionValidation(t *testing.T) {
	srv := startFake(t)
	c := newTestClient(t, srv.URL)

	tests := []struct {
		name   string
		mutate func(*InitializeTransactionParams)
	}{
		{"zero amount", func(p *InitializeTransactionParams) { p.Amount = NewAmount(0) }},
		{"negative amount", func(p *InitializeTransactionParams) { p.Amount = NewAmount(-5) }},
		{"missing contract code", func(p *InitializeTransactionParams) { p.ContractCode = "" }},
		{"bad email", func(p *InitializeTransactionParams) { p.CustomerEmail = "john" }},
		{"bad redirect", func(p *InitializeTransactionParams) { p.RedirectURL = "not a url" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sampleTransaction()
			tt.mutate(&p)
			_, err := c.Transactions.Initialize(context.Background(), p)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
	if srv.Logins() != 0 || len(srv.Requests()) != 0 {
		t.Fatalf("expected no network activity, got %d logins and %d requests", srv.Logins(), len(srv.Requests()))
	}
}

func TestInitializeTransactionAPIFailureIsReturned(t *testing.T) {
	srv := startFake(t)
	srv.Respond("v1/merchant/transactions/init-transaction", http.StatusUnprocessableEntity, "application/json",
		`{"requestSuccessful":false,"responseMessage":"Duplicate payment reference","responseCode":"99"}`)
	c := newTestClient(t, srv.URL)

	env, err := c.Transactions.Initialize(context.Background(), sampleTransaction())
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if env.RequestSuccessful || env.ResponseMessage != "Duplicate payment reference" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestPayWithBankTransfer(t *testing.T) {
	srv := startFake(t)
	c := newTestClient(t, srv.URL)

	env, err := c.Transactions.PayWithBankTransfer(context.Background(), BankTransferParams{
		TransactionReference: "MNFY|20240101|000001",
		BankCode:             "945",
	})
	if err != nil {
		t.Fatalf("PayWithBankTransfer() error = %v", err)
	}
	if env.ResponseBody.TransactionReference != "MNFY|20240101|000001" || env.ResponseBody.AccountNumber == "" {
		t.Fatalf("unexpected envelope: %+v", env.ResponseBody)
	}
	if env.ResponseBody.TotalPayable.StringFixed(2) != "1010.75" {
		t.Errorf("TotalPayable = %s", env.ResponseBody.TotalPayable)
	}

	req := srv.Requests()[0]
	if req.Path != "/api/v1/merchant/bank-transfer/init-payment" {
		t.Fatalf("unexpected path %s", req.Path)
	}
	if got := string(req.Body); got != `{"transactionReference":"MNFY|20240101|000001","bankCode":"945"}` {
		t.Errorf("body = %s", got)
	}
}

func TestPayWithBankTransferOmitsBankCode(t *testing.T) {
	srv := startFake(t)
	c := newTestClient(t, srv.URL)

	if _, err := c.Transactions.PayWithBankTransfer(context.Background(), BankTransferParams{TransactionReference: "MNFY|1"}); err != nil {
		t.Fatalf("PayWithBankTransfer() error = %v", err)
	}
	if got := string(srv.Requests()[0].Body); got != `{"transactionReference":"MNFY|1"}` {
		t.Errorf("body = %s", got)
	}

	_, err := c.Transactions.PayWithBankTransfer(context.Background(), BankTransferParams{})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSearchSendsOnlyPresentFilters(t *testing.T) {
	srv := startFake(t)
	c := newTestClient(t, srv.URL)

	name := "John Doe"
	env, err := c.Transactions.Search(context.Background(), SearchTransactionsParams{CustomerName: &name})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	req := srv.Requests()[0]
	if req.Method != http.MethodGet || req.Path != "/api/v1/transactions/search" {
		t.Fatalf("unexpected request %s %s", req.Method, req.Path)
	}
	if req.RawQuery != "customer_name=John+Doe" {
		t.Fatalf("query = %q", req.RawQuery)
	}
	if len(env.ResponseBody.Content) != 1 || env.ResponseBody.Content[0].Customer.Name != "John Doe" {
		t.Fatalf("unexpected page: %+v", env.ResponseBody)
	}
	if !env.ResponseBody.Content[0].PaymentStatus.Final() {
		t.Errorf("expected a final status, got %s", env.ResponseBody.Content[0].PaymentStatus)
	}
}

func TestSearchWithoutFiltersSendsNoQuery(t *testing.T) {
	srv := startFake(t)
	c := newTestClient(t, srv.URL)

	if _, err := c.Transactions.Search(context.Background(), SearchTransactionsParams{}); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if q := srv.Requests()[0].RawQuery; q != "" {
		t.Fatalf("expected empty query, got %q", q)
	}
}
