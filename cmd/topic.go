package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/payx/payledger/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `plg topic [<topic>]

Show documentation for a given topic. Without argument, shows the list of
available topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := topicDoc(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}

// topicDoc returns the markdown to show: the named topic, or the list of
// available topics when no name is given.
func topicDoc(args []string) (string, error) {
	if len(args) > 0 {
		return docs.Get(args[0])
	}

	names, err := docs.All()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("# Topics\n")
	for _, name := range names {
		fmt.Fprintf(&b, "\n* %s", name)
	}
	b.WriteString("\n\nShow one with `plg topic <name>`; `plg topic readme` for the overview.\n")
	return b.String(), nil
}
