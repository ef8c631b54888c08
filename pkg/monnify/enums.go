package monnify

// Currency is an ISO 4217 currency code accepted by Monnify.
type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyUSD Currency = "USD"
)

// PaymentMethod is a channel a customer can pay through.
type PaymentMethod string

const (
	PaymentMethodAccountTransfer PaymentMethod = "ACCOUNT_TRANSFER"
	PaymentMethodCard            PaymentMethod = "CARD"
	PaymentMethodDirectDebit     PaymentMethod = "DIRECT_DEBIT"
	PaymentMethodPhoneNumber     PaymentMethod = "PHONE_NUMBER"
	PaymentMethodUSSD            PaymentMethod = "USSD"
)

// PaymentStatus is the lifecycle state of a transaction.
type PaymentStatus string

const (
	PaymentStatusPaid          PaymentStatus = "PAID"
	PaymentStatusOverpaid      PaymentStatus = "OVERPAID"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusAbandoned     PaymentStatus = "ABANDONED"
	PaymentStatusCancelled     PaymentStatus = "CANCELLED"
	PaymentStatusFailed        PaymentStatus = "FAILED"
	PaymentStatusReversed      PaymentStatus = "REVERSED"
	PaymentStatusExpired       PaymentStatus = "EXPIRED"
)

// Final reports whether no further status change is expected.
func (s PaymentStatus) Final() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartiallyPaid:
		return false
	default:
		return s != ""
	}
}
