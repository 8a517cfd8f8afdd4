package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/payx/payledger"
	"github.com/payx/payledger/renderer"
)

type processCmd struct {
	outputFile string
	markdown   bool

	// out overrides the destination of the report; defaults to stdout.
	out io.Writer
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "apply a transaction stream and print the final per-client balances"
}
func (*processCmd) Usage() string {
	return `plg process [-o <file>] [-md] <transactions.csv>

  Reads the transaction stream from the given file, applies every record in
  arrival order and prints the final balance summary of every account as
  CSV, one line per client. With -md the summary is a markdown table
  instead.

  A record that cannot be decoded stops consumption at that point; the
  summary still covers everything applied before it.

Usage Example:
$ plg process transactions.csv > accounts.csv
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Write the summary to this file instead of stdout.")
	f.BoolVar(&c.markdown, "md", false, "Render the summary as a markdown table instead of CSV.")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if stats.Err != nil {
		log.Printf("warning, stopping at malformed record: %v", stats.Err)
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	if c.outputFile != "" {
		file, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot create output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if c.markdown {
		if _, err := fmt.Fprint(out, renderer.Balances(manager.Summaries())); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing summary: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := manager.WriteSummaries(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing summary: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
