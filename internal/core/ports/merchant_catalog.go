package ports

import (
	"context"

	"foodorder/internal/core/domain/model/merchant"
)

// MerchantCatalog provides access to the configured merchant set.
//
// The catalog is read-mostly process-wide state established at startup. It is
// passed into the search handler explicitly rather than living as ambient
// global state, so tests can run against fake merchant sets.
type MerchantCatalog interface {
	All(ctx context.Context) ([]*merchant.Merchant, error)
}
