package models

// Payment methods accepted at the register. "wallet" is the Nequi-style
// mobile wallet.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentWallet = "wallet"
)

// PaymentMethods lists every accepted method, in display order.
func PaymentMethods() []string {
	return []string{PaymentCash, PaymentCard, PaymentWallet}
}

// KnownPaymentMethod reports whether m is one of the accepted methods.
func KnownPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentWallet:
		return true
	}
	return false
}
