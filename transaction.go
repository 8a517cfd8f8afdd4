package payledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is a typed string identifying the type of a transaction record.
type Kind string

// The closed set of transaction kinds. Anything else on the wire is a
// structural error, not a business rejection.
const (
	Deposit    Kind = "deposit"
	Withdrawal Kind = "withdrawal"
	Dispute    Kind = "dispute"
	Resolve    Kind = "resolve"
	Chargeback Kind = "chargeback"
)

// ParseKind parses a wire token into a Kind. Tokens are case-insensitive
// and surrounding whitespace is ignored.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Deposit, Withdrawal, Dispute, Resolve, Chargeback:
		return k, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is one immutable record of the input stream.
//
// Amount is only meaningful for deposits and withdrawals; for the dispute
// family the field carries no information and its value (or absence) is
// ignored everywhere.
type Transaction struct {
	Kind   Kind
	Client uint16
	Tx     uint32
	Amount decimal.NullDecimal
}

// NewTransaction creates a record with an amount set.
func NewTransaction(kind Kind, client uint16, tx uint32, amount decimal.Decimal) Transaction {
	return Transaction{
		Kind:   kind,
		Client: client,
		Tx:     tx,
		Amount: decimal.NullDecimal{Decimal: amount, Valid: true},
	}
}

// NewReference creates a dispute/resolve/chargeback record pointing at a
// previously posted transaction id.
func NewReference(kind Kind, client uint16, tx uint32) Transaction {
	return Transaction{Kind: kind, Client: client, Tx: tx}
}

// Validate reports whether t is semantically fit to apply to an account.
//
// A deposit or withdrawal is fit only if its amount is present and strictly
// positive. Dispute, resolve and chargeback are always fit. Returning false
// means "discard silently": it is an expected property of noisy upstream
// data, never an error of this system.
func (t Transaction) Validate() bool {
	switch t.Kind {
	case Deposit, Withdrawal:
		return t.Amount.Valid && t.Amount.Decimal.IsPositive()
	case Dispute, Resolve, Chargeback:
		return true
	default:
		return false
	}
}

// amount returns the stored amount, zero when absent.
func (t Transaction) amount() decimal.Decimal {
	if !t.Amount.Valid {
		return decimal.Zero
	}
	return t.Amount.Decimal
}
