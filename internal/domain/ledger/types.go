package ledger

type TransactionType string

const (
	TransactionSpend  TransactionType = "spend"
	TransactionCredit TransactionType = "credit"
)

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionSpend, TransactionCredit:
		return true
	default:
		return false
	}
}

// PaymentMethodTokens marks transactions paid from the token balance itself.
const PaymentMethodTokens = "tokens"
