package payledger

import "github.com/shopspring/decimal"

// Account holds one client's balances and the accepted transactions behind
// them. It is the only type that mutates balances.
//
// A transaction id lives in at most one of the two maps: in posted once a
// deposit or successful withdrawal is applied, in held while it is under
// dispute. A resolve moves it back to posted; a chargeback removes it for
// good and freezes the account.
type Account struct {
	clientID  uint16
	available decimal.Decimal
	posted    map[uint32]Transaction
	held      map[uint32]Transaction
	frozen    bool
}

// NewAccount returns an empty, unfrozen account for the given client.
func NewAccount(clientID uint16) *Account {
	return &Account{
		clientID: clientID,
		posted:   make(map[uint32]Transaction),
		held:     make(map[uint32]Transaction),
	}
}

// known reports whether a transaction id was already accepted, posted or
// held. A reused id is rejected rather than overwritten.
func (a *Account) known(tx uint32) bool {
	if _, ok := a.posted[tx]; ok {
		return true
	}
	_, ok := a.held[tx]
	return ok
}

// deposit credits the available balance and records the transaction.
func (a *Account) deposit(t Transaction) bool {
	if a.known(t.Tx) {
		return false
	}
	a.available = a.available.Add(t.amount())
	a.posted[t.Tx] = t
	return true
}

// withdrawal debits the available balance if it covers the amount.
// A failed withdrawal leaves no trace: no balance change, no record.
func (a *Account) withdrawal(t Transaction) bool {
	if a.known(t.Tx) {
		return false
	}
	amount := t.amount()
	if a.available.LessThan(amount) {
		return false
	}
	a.available = a.available.Sub(amount)
	a.posted[t.Tx] = t
	return true
}

// dispute relocates the referenced posted transaction into held, moving its
// stored amount (never the dispute record's own field) from available to
// held. Total balance is unchanged. Unknown references are no-ops.
//
// Disputing a withdrawal subtracts its amount a second time, so available
// can go negative.
func (a *Account) dispute(ref Transaction) {
	t, ok := a.posted[ref.Tx]
	if !ok {
		return
	}
	delete(a.posted, ref.Tx)
	a.available = a.available.Sub(t.amount())
	a.held[t.Tx] = t
}

// resolve is the exact inverse of dispute for a currently held transaction:
// the stored amount returns to available and the transaction to posted.
// Unknown references are no-ops.
func (a *Account) resolve(ref Transaction) {
	t, ok := a.held[ref.Tx]
	if !ok {
		return
	}
	delete(a.held, ref.Tx)
	a.available = a.available.Add(t.amount())
	a.posted[t.Tx] = t
}

// chargeback removes the referenced held transaction for good, forfeiting
// its amount from the total balance, and freezes the account. Unknown
// references are no-ops and do not freeze.
func (a *Account) chargeback(ref Transaction) {
	if _, ok := a.held[ref.Tx]; !ok {
		return
	}
	delete(a.held, ref.Tx)
	a.frozen = true
}

// Process applies one validated, already-routed transaction to this account.
// Every precondition failure is a silent no-op. A frozen account accepts
// nothing, of any kind.
func (a *Account) Process(t Transaction) {
	if a.frozen {
		return
	}
	switch t.Kind {
	case Deposit:
		a.deposit(t)
	case Withdrawal:
		a.withdrawal(t)
	case Dispute:
		a.dispute(t)
	case Resolve:
		a.resolve(t)
	case Chargeback:
		a.chargeback(t)
	}
}

// ClientID returns the client identifier of this account.
func (a *Account) ClientID() uint16 { return a.clientID }

// Available returns the funds the client may withdraw right now.
func (a *Account) Available() decimal.Decimal { return a.available }

// Held returns the sum of amounts of all currently disputed transactions.
func (a *Account) Held() decimal.Decimal {
	total := decimal.Zero
	for _, t := range a.held {
		total = total.Add(t.amount())
	}
	return total
}

// Total returns available plus held funds.
func (a *Account) Total() decimal.Decimal {
	return a.available.Add(a.Held())
}

// IsFrozen reports whether the account processed a chargeback and therefore
// accepts no further transactions.
func (a *Account) IsFrozen() bool { return a.frozen }
