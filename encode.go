package payledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DecodeTransaction decodes a single delimited record into a Transaction.
// Fields come in fixed order: type, client, tx, amount; amount may be absent
// entirely. Whitespace around every field is ignored.
//
// An unknown type token, an out-of-range integer, a missing field or a
// non-numeric amount is a structural error. A NaN or infinite amount is
// NOT: it is a number, just not one a ledger accepts, so it decodes as an
// absent amount and validation then drops the deposits and withdrawals
// that carry it.
func DecodeTransaction(record []string) (Transaction, error) {
	if len(record) < 3 {
		return Transaction{}, fmt.Errorf("record has %d fields, want at least type, client, tx", len(record))
	}

	kind, err := ParseKind(record[0])
	if err != nil {
		return Transaction{}, err
	}
	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid client id %q: %w", record[1], err)
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction id %q: %w", record[2], err)
	}

	t := Transaction{Kind: kind, Client: uint16(client), Tx: uint32(tx)}
	if len(record) > 3 {
		if raw := strings.TrimSpace(record[3]); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				// Non-finite numbers are for validation to reject, not a
				// reason to stop the stream. Anything else is structural.
				if f, ferr := strconv.ParseFloat(raw, 64); ferr != nil || (!math.IsNaN(f) && !math.IsInf(f, 0)) {
					return Transaction{}, fmt.Errorf("invalid amount %q: %w", record[3], err)
				}
				return t, nil
			}
			t.Amount = decimal.NullDecimal{Decimal: amount, Valid: true}
		}
	}
	return t, nil
}

// DecodeTransactions decodes a stream of delimited text records from r, one
// transaction per line, skipping the leading header line. It yields each
// transaction in arrival order.
//
// On the first structural failure the sequence yields the error once and
// stops; everything decoded before it has already been yielded. The caller
// decides what to do with the partial stream.
func DecodeTransactions(r io.Reader) iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true

		header := true
		for {
			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Transaction{}, fmt.Errorf("malformed record: %w", err))
				return
			}
			if header {
				header = false
				continue
			}
			t, err := DecodeTransaction(record)
			if err != nil {
				yield(Transaction{}, err)
				return
			}
			if !yield(t, nil) {
				return
			}
		}
	}
}

// EncodeSummaries writes the final report: a header line followed by one
// line per account, balances with exactly 4 fractional digits, truncated.
func EncodeSummaries(w io.Writer, summaries []Summary) error {
	if _, err := fmt.Fprintln(w, "client, available, held, total, locked"); err != nil {
		return err
	}
	for _, s := range summaries {
		_, err := fmt.Fprintf(w, "%d, %s, %s, %s, %t\n",
			s.Client,
			FormatAmount(s.Available),
			FormatAmount(s.Held),
			FormatAmount(s.Total),
			s.Locked,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
