// Package cmd implements the plg subcommands.
package cmd

import "github.com/google/subcommands"

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&processCmd{}, "ledger")
	c.Register(&checkCmd{}, "ledger")

	c.Register(&topicCmd{}, "documentation")
}
