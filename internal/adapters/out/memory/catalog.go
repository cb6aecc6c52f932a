// Package memory provides the in-memory merchant catalog. The simulation has
// no persistence: the merchant set is constructed once at startup and read
// for the process lifetime.
package memory

import (
	"context"

	"foodorder/internal/core/domain/model/merchant"
	"foodorder/internal/pkg/errs"
)

// ErrMerchantsAreRequired is returned when a catalog is created without any
// merchants.
var ErrMerchantsAreRequired = errs.NewValueIsRequiredError("merchants")

// Catalog implements ports.MerchantCatalog over a fixed slice of merchants.
// The catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	merchants []*merchant.Merchant
}

// NewCatalog creates a catalog from the given merchants.
// At least one merchant is required and every merchant must be constructed.
// The slice is copied so the caller cannot mutate the catalog afterwards.
func NewCatalog(merchants ...*merchant.Merchant) (*Catalog, error) {
	if len(merchants) == 0 {
		return nil, ErrMerchantsAreRequired
	}
	for _, m := range merchants {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	catalog := &Catalog{
		merchants: make([]*merchant.Merchant, len(merchants)),
	}
	copy(catalog.merchants, merchants)

	return catalog, nil
}

// All returns the configured merchants in their registration order.
// The returned slice is a copy; the catalog itself never changes.
func (c *Catalog) All(_ context.Context) ([]*merchant.Merchant, error) {
	merchants := make([]*merchant.Merchant, len(c.merchants))
	copy(merchants, c.merchants)
	return merchants, nil
}
