package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/payx/payledger"
	"github.com/payx/payledger/renderer"
)

type checkCmd struct {
	plain bool
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "dry-run a transaction stream and report what it would do"
}
func (*checkCmd) Usage() string {
	return `plg check [-plain] <transactions.csv>

  Consumes the transaction stream without writing the summary CSV, then
  reports how many records were applied, how many were discarded by
  validation, where consumption stopped if the input is malformed, and the
  resulting balances as a readable table.

Usage Example:
$ plg check transactions.csv
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering for the terminal.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	manager := payledger.NewAccountManager()
	stats, err := consumeFile(f.Arg(0), manager)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := renderer.Check(manager.Summaries(), renderer.CheckStats{
		Decoded:   stats.Decoded,
		Discarded: stats.Discarded,
		Stopped:   stats.Err,
	})

	if c.plain {
		fmt.Print(report)
	} else {
		printMarkdown(report)
	}

	if stats.Err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
