// Package cmd wires the portfolio system's subcommands.
package cmd

import "github.com/google/subcommands"

// Commands lists the subcommands to register, in display order.
var Commands = []subcommands.Command{
	&shellCmd{},
	&quoteCmd{},
}
