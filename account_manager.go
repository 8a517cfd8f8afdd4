package payledger

import (
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// AccountManager owns all accounts of a run, keyed by client id. It routes
// each validated transaction to its account, creating accounts lazily, and
// renders the final report.
type AccountManager struct {
	accounts map[uint16]*Account
}

// NewAccountManager creates an empty manager.
func NewAccountManager() *AccountManager {
	return &AccountManager{accounts: make(map[uint16]*Account)}
}

// Process consumes one transaction in arrival order.
//
// Records rejected by validation are discarded before any account is looked
// up or created. A frozen account drops everything addressed to it,
// including disputes and resolves referencing pre-freeze history: the freeze
// is account-wide and permanent.
func (m *AccountManager) Process(t Transaction) {
	if !t.Validate() {
		return
	}
	account, ok := m.accounts[t.Client]
	if !ok {
		account = NewAccount(t.Client)
		m.accounts[t.Client] = account
	}
	if account.IsFrozen() {
		return
	}
	account.Process(t)
}

// Account returns the account for the given client id, if it exists.
func (m *AccountManager) Account(client uint16) (*Account, bool) {
	account, ok := m.accounts[client]
	return account, ok
}

// Len returns the number of known accounts.
func (m *AccountManager) Len() int { return len(m.accounts) }

// Accounts iterates over all known accounts in ascending client id order,
// so that reports are reproducible.
func (m *AccountManager) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, id := range slices.Sorted(maps.Keys(m.accounts)) {
			if !yield(m.accounts[id]) {
				return
			}
		}
	}
}

// Summary is the rendered final state of one account. Balances are already
// truncated to the reporting precision.
type Summary struct {
	Client    uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// Summaries returns one summary per known account, ascending client id.
func (m *AccountManager) Summaries() []Summary {
	summaries := make([]Summary, 0, len(m.accounts))
	for account := range m.Accounts() {
		summaries = append(summaries, Summary{
			Client:    account.ClientID(),
			Available: Truncate4(account.Available()),
			Held:      Truncate4(account.Held()),
			Total:     Truncate4(account.Total()),
			Locked:    account.IsFrozen(),
		})
	}
	return summaries
}

// WriteSummaries writes the final report for all known accounts to w.
func (m *AccountManager) WriteSummaries(w io.Writer) error {
	return EncodeSummaries(w, m.Summaries())
}
