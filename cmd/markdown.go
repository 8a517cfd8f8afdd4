package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering markdown: %v\n", err)
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
