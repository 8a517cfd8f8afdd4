// Package renderer turns ledger state into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/payx/payledger"
)

// Balances renders the final account summaries as a markdown table,
// one row per client in the order given.
func Balances(summaries []payledger.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Account Balances")
	balancesTable(doc, summaries)

	return doc.String()
}

// CheckStats summarizes the consumption of one stream for the check report.
type CheckStats struct {
	Decoded   int   // structurally valid records read
	Discarded int   // records dropped by business validation
	Stopped   error // structural error that ended consumption, if any
}

// Check renders the dry-run report: consumption statistics followed by the
// resulting balances.
func Check(summaries []payledger.Summary, stats CheckStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stream Check")
	doc.PlainText(fmt.Sprintf("%d records decoded, %d discarded by validation, %d accounts.",
		stats.Decoded, stats.Discarded, len(summaries)))
	if stats.Stopped != nil {
		doc.PlainText(fmt.Sprintf("Consumption stopped early: %v. Balances below cover the records applied before that point.", stats.Stopped))
	}

	doc.H2("Account Balances")
	balancesTable(doc, summaries)

	return doc.String()
}

func balancesTable(doc *md.Markdown, summaries []payledger.Summary) {
	if len(summaries) == 0 {
		doc.PlainText("No accounts.")
		return
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Client),
			payledger.FormatAmount(s.Available),
			payledger.FormatAmount(s.Held),
			payledger.FormatAmount(s.Total),
			fmt.Sprintf("%t", s.Locked),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Client", "Available", "Held", "Total", "Locked"},
		Rows:   rows,
	})
}
