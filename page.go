package cardex

import "context"

// Page represents one saved catalog-listing document.
type Page struct {
	// Name identifies the page to the operator (file name or URL).
	Name string

	// HTML is the raw document content.
	HTML string
}

// PageSource supplies listing documents, one per logical input page.
// List and Read are separate so a run can skip an unreadable document
// and continue with the next one.
type PageSource interface {
	// List returns the names of all available pages in processing order.
	List(ctx context.Context) ([]string, error)

	// Read returns the page with the given name.
	Read(ctx context.Context, name string) (*Page, error)
}
