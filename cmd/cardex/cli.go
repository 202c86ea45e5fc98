package main

import (
	"context"
	"io"

	"github.com/stefw/cardex"
	"github.com/stefw/cardex/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Store   cardex.RecordStore
	Scanner *scan.Scanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scan  ScanCmd  `cmd:"" help:"Extract products from listing pages and append novel records to the store"`
	Stats StatsCmd `cmd:"" help:"Show the total number of stored records"`
}

// StoreFlags selects the record store shared by commands.
type StoreFlags struct {
	Out string `short:"o" help:"CSV store path (default products.csv, $CARDEX_STORE overrides)"`
	DB  string `help:"Use a SQLite store at this path instead of CSV"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	StoreFlags

	Dir      string   `arg:"" optional:"" default:"pages" help:"Directory of saved listing pages"`
	URL      []string `short:"u" help:"Fetch listing pages from these URLs instead of a directory (repeatable)"`
	Glob     string   `default:"*.html" help:"File pattern for saved pages"`
	Pages    int      `short:"n" help:"Process at most this many pages (0 = all)"`
	Rate     float64  `default:"1.0" help:"Request rate limit for URL fetching (requests/s)"`
	BaseURL  string   `help:"Origin product links are resolved against"`
	Platform string   `help:"Marketplace brand name for first-party seller detection"`
	Sample   int      `default:"2" help:"Number of sample products to print after the run"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	StoreFlags
}
