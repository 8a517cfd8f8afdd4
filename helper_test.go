package payledger

import "github.com/shopspring/decimal"

// dec is a test helper to build an exact decimal from a constant.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// depositOf is a test helper for a deposit record.
func depositOf(client uint16, tx uint32, amount string) Transaction {
	return NewTransaction(Deposit, client, tx, dec(amount))
}

// withdrawalOf is a test helper for a withdrawal record.
func withdrawalOf(client uint16, tx uint32, amount string) Transaction {
	return NewTransaction(Withdrawal, client, tx, dec(amount))
}

// refOf is a test helper for a dispute, resolve or chargeback record.
func refOf(kind Kind, client uint16, tx uint32) Transaction {
	return NewReference(kind, client, tx)
}
