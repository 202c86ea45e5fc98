package cardex

import (
	"context"
	"strconv"
)

// Unknown is the sentinel value for fields that no extraction strategy
// could resolve. Absence of a signal is not an error; optional fields
// degrade to Unknown without invalidating the record.
const Unknown = "unknown"

// Product represents one extracted product record. Identity is the
// natural key: a normalized absolute URL (scheme+host+path, no query).
type Product struct {
	Identity       string `json:"identity"`
	Title          string `json:"title"`
	Brand          string `json:"brand"`
	Price          string `json:"price"`
	Rating         string `json:"rating"`
	ReviewCount    int    `json:"reviewCount"`
	Inventory      string `json:"inventoryLevel"`
	SoldByPlatform bool   `json:"soldByPlatform"`
	Seller         string `json:"sellerName"`
	ExternalID     string `json:"externalId"`
}

// Validate returns an error if the product lacks a mandatory field.
// Identity, a non-empty title, and a price are required; every other
// field may be Unknown or zero.
func (p *Product) Validate() error {
	if p.Identity == "" {
		return Errorf(EINVALID, "product identity required")
	}
	if p.Title == "" {
		return Errorf(EINVALID, "product title required")
	}
	if p.Price == "" {
		return Errorf(EINVALID, "product price required")
	}
	return nil
}

// Columns is the fixed column order used by tabular stores.
var Columns = []string{
	"identity",
	"title",
	"brand",
	"price",
	"rating",
	"review_count",
	"inventory_level",
	"sold_by_platform",
	"seller_name",
	"external_id",
}

// Row returns the product's field values in Columns order.
func (p *Product) Row() []string {
	return []string{
		p.Identity,
		p.Title,
		p.Brand,
		p.Price,
		p.Rating,
		strconv.Itoa(p.ReviewCount),
		p.Inventory,
		strconv.FormatBool(p.SoldByPlatform),
		p.Seller,
		p.ExternalID,
	}
}

// RecordStore persists product records keyed by identity.
// Appends are immutable: re-scraping never mutates a stored record.
type RecordStore interface {
	// Identities returns every identity already present in the store.
	// Called once at run start to seed the identity set.
	Identities(ctx context.Context) ([]string, error)

	// AppendRecords appends novel records in order.
	AppendRecords(ctx context.Context, records []*Product) error

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int, error)
}
