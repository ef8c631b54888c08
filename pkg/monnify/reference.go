package monnify

import (
	"strings"

	"github.com/google/uuid"
)

// NewPaymentReference returns a unique payment reference suitable for
// InitializeTransactionParams.PaymentReference.
func NewPaymentReference() string {
	return "MNFY-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
