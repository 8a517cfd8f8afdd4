package payledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTransaction(t *testing.T) {
	testCases := []struct {
		name    string
		record  []string
		want    Transaction
		wantErr bool
	}{
		{
			name:   "deposit",
			record: []string{"deposit", "1", "1", "100.0"},
			want:   depositOf(1, 1, "100.0"),
		},
		{
			name:   "whitespace and case",
			record: []string{" Deposit ", " 1", "12 ", " 44.99 "},
			want:   depositOf(1, 12, "44.99"),
		},
		{
			name:   "withdrawal",
			record: []string{"withdrawal", "65535", "4294967295", "0.0001"},
			want:   withdrawalOf(65535, 4294967295, "0.0001"),
		},
		{
			name:   "dispute without amount field",
			record: []string{"dispute", "1", "1"},
			want:   refOf(Dispute, 1, 1),
		},
		{
			name:   "resolve with empty amount field",
			record: []string{"resolve", "1", "1", ""},
			want:   refOf(Resolve, 1, 1),
		},
		{
			name:   "chargeback with whitespace amount field",
			record: []string{"chargeback", "1", "1", "   "},
			want:   refOf(Chargeback, 1, 1),
		},
		{
			// A non-finite amount is not a structural error: it decodes as
			// absent and validation drops the record later.
			name:   "deposit with NaN amount",
			record: []string{"deposit", "1", "1", "NaN"},
			want:   refOf(Deposit, 1, 1),
		},
		{
			name:   "deposit with infinite amount",
			record: []string{"deposit", "1", "1", "+Inf"},
			want:   refOf(Deposit, 1, 1),
		},
		{
			name:   "deposit with negative infinite amount",
			record: []string{"deposit", "1", "1", "-inf"},
			want:   refOf(Deposit, 1, 1),
		},
		{
			name:    "deposit with non-numeric amount",
			record:  []string{"deposit", "1", "1", "ten"},
			wantErr: true,
		},
		{
			name:    "unknown type",
			record:  []string{"transfer", "1", "1", "10"},
			wantErr: true,
		},
		{
			name:    "client out of range",
			record:  []string{"deposit", "70000", "1", "10"},
			wantErr: true,
		},
		{
			name:    "negative client",
			record:  []string{"deposit", "-1", "1", "10"},
			wantErr: true,
		},
		{
			name:    "tx out of range",
			record:  []string{"deposit", "1", "4294967296", "10"},
			wantErr: true,
		},
		{
			name:    "non-numeric tx",
			record:  []string{"deposit", "1", "abc", "10"},
			wantErr: true,
		},
		{
			name:    "too few fields",
			record:  []string{"deposit", "1"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeTransaction(tc.record)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want.Kind, got.Kind)
			assert.Equal(t, tc.want.Client, got.Client)
			assert.Equal(t, tc.want.Tx, got.Tx)
			assert.Equal(t, tc.want.Amount.Valid, got.Amount.Valid)
			if tc.want.Amount.Valid {
				assert.True(t, tc.want.Amount.Decimal.Equal(got.Amount.Decimal),
					"amount = %s, want %s", got.Amount.Decimal, tc.want.Amount.Decimal)
			}
		})
	}
}

func TestDecodeTransactions(t *testing.T) {
	input := "type, client, tx, amount\n" +
		"deposit, 1, 1, 100.0\n" +
		"withdrawal,1,2,25.5\n" +
		"dispute, 1, 1,\n"

	var got []Transaction
	for tx, err := range DecodeTransactions(strings.NewReader(input)) {
		require.NoError(t, err)
		got = append(got, tx)
	}

	require.Len(t, got, 3)
	assert.Equal(t, Deposit, got[0].Kind)
	assert.Equal(t, Withdrawal, got[1].Kind)
	assert.Equal(t, Dispute, got[2].Kind)
	assert.False(t, got[2].Amount.Valid)
}

func TestDecodeTransactionsStopsAtStructuralError(t *testing.T) {
	input := "type, client, tx, amount\n" +
		"deposit, 1, 1, 100.0\n" +
		"transfer, 1, 2, 50\n" +
		"deposit, 1, 3, 25\n"

	var got []Transaction
	var streamErr error
	for tx, err := range DecodeTransactions(strings.NewReader(input)) {
		if err != nil {
			streamErr = err
			break
		}
		got = append(got, tx)
	}

	// The record before the failure was yielded; nothing after it was.
	require.Error(t, streamErr)
	assert.Contains(t, streamErr.Error(), "transfer")
	require.Len(t, got, 1)
	assert.Equal(t, uint32(1), got[0].Tx)
}

func TestDecodeTransactionsStopsAtNonNumericAmount(t *testing.T) {
	// A wrong-typed amount field ends consumption like any other
	// structural failure: records before it stand, records after it are
	// never seen.
	input := "type, client, tx, amount\n" +
		"deposit, 1, 1, 100\n" +
		"deposit, 1, 2, ten\n" +
		"deposit, 1, 3, 50\n"

	manager := NewAccountManager()
	var streamErr error
	for tx, err := range DecodeTransactions(strings.NewReader(input)) {
		if err != nil {
			streamErr = err
			break
		}
		manager.Process(tx)
	}

	require.Error(t, streamErr)
	assert.Contains(t, streamErr.Error(), "invalid amount")

	account, ok := manager.Account(1)
	require.True(t, ok)
	assert.True(t, account.Available().Equal(dec("100")),
		"available = %s, want 100", account.Available())
}

func TestDecodeTransactionsHeaderOnly(t *testing.T) {
	count := 0
	for _, err := range DecodeTransactions(strings.NewReader("type, client, tx, amount\n")) {
		require.NoError(t, err)
		count++
	}
	assert.Zero(t, count)
}

func TestEncodeSummaries(t *testing.T) {
	summaries := []Summary{
		{Client: 1, Available: dec("1.5"), Held: dec("0"), Total: dec("1.5")},
		{Client: 2, Available: dec("0"), Held: dec("0"), Total: dec("0"), Locked: true},
	}

	var b strings.Builder
	require.NoError(t, EncodeSummaries(&b, summaries))

	want := "client, available, held, total, locked\n" +
		"1, 1.5000, 0.0000, 1.5000, false\n" +
		"2, 0.0000, 0.0000, 0.0000, true\n"
	assert.Equal(t, want, b.String())
}
