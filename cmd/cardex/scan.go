package main

import (
	"fmt"

	"github.com/stefw/cardex"
	"github.com/stefw/cardex/scan"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	result, err := deps.Scanner.Run(deps.Ctx, func(event scan.ProgressEvent) {
		switch event.Type {
		case scan.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scanning %d pages...\n", event.Total)
		case scan.ProgressPage:
			fmt.Fprintf(deps.Stdout, "Processed %s: found %d products (%d new)\n",
				event.Page, event.Found, event.New)
		case scan.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "Skipped %s: duplicate page content\n", event.Page)
		case scan.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "Error processing %s: %v\n", event.Page, event.Error)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardex.ErrorMessage(err))
		return err
	}

	if len(result.Novel) == 0 {
		fmt.Fprintln(deps.Stdout, "\nNo new products found to add.")
	} else {
		fmt.Fprintf(deps.Stdout, "\nAdded %d new products to the store\n", len(result.Novel))
		c.printSamples(deps, result.Novel)
	}

	total, err := deps.Store.Count(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "\nTotal products in store: %d\n", total)

	return nil
}

// printSamples previews the first few extracted products.
func (c *ScanCmd) printSamples(deps *Dependencies, products []*cardex.Product) {
	n := c.Sample
	if n <= 0 {
		return
	}
	if n > len(products) {
		n = len(products)
	}

	fmt.Fprintln(deps.Stdout, "\nSample products:")
	for i, p := range products[:n] {
		fmt.Fprintf(deps.Stdout, "\nProduct %d:\n", i+1)
		for j, value := range p.Row() {
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", cardex.Columns[j], value)
		}
	}
}
