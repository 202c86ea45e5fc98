package main

import (
	"fmt"

	"github.com/stefw/cardex"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	total, err := deps.Store.Count(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Total products in store: %d\n", total)
	return nil
}
