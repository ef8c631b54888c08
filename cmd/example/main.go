// Command example initializes a transaction and requests a bank-transfer
// account for it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	apperrors "monnifyease/pkg/errors"
	"monnifyease/pkg/logger"
	"monnifyease/pkg/monnify"
)

func main() {
	useFake := flag.Bool("fake", false, "run against an in-process fake API")
	bankCode := flag.String("bank-code", "945", "bank code for the transfer")
	flag.Parse()

	cfg := loadConfiguration()
	ctx := context.Background()

	app, err := NewApp(ctx, cfg, *useFake)
	if err != nil {
		fail(err)
	}
	err = run(ctx, app.Client, *bankCode)
	app.Close()
	if err != nil {
		fail(err)
	}
}

func run(ctx context.Context, client *monnify.Client, bankCode string) error {
	created, err := client.Transactions.Initialize(ctx, monnify.InitializeTransactionParams{
		Amount:             monnify.NewAmount(1000.00),
		CustomerName:       "John Doe",
		CustomerEmail:      "johndoe@email.com",
		PaymentReference:   monnify.NewPaymentReference(),
		PaymentDescription: "Testing this transaction init",
		Currency:           monnify.CurrencyNGN,
		ContractCode:       "9498021956",
	})
	if err != nil {
		return err
	}
	fmt.Printf("Transaction success: %t, message: %s\n", created.RequestSuccessful, created.ResponseMessage)
	if !created.RequestSuccessful {
		return nil
	}
	fmt.Printf("Transaction reference: %s\n", created.ResponseBody.TransactionReference)
	fmt.Printf("Checkout URL: %s\n", created.ResponseBody.CheckoutURL)

	transfer, err := client.Transactions.PayWithBankTransfer(ctx, monnify.BankTransferParams{
		TransactionReference: created.ResponseBody.TransactionReference,
		BankCode:             bankCode,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Pay with bank transfer success: %t, account: %s (%s), total payable: %s\n",
		transfer.RequestSuccessful, transfer.ResponseBody.AccountNumber, transfer.ResponseBody.BankName,
		transfer.ResponseBody.TotalPayable.StringFixed(2))
	return nil
}

func fail(err error) {
	logger.GlobalLogger.Errorf("Example failed: code=%s, error=%v", apperrors.CodeOf(err), err)
	fmt.Fprintln(os.Stderr, apperrors.UserMessage(apperrors.CodeOf(err)))
	os.Exit(1)
}
