package queries

import (
	"context"
	"strings"

	"foodorder/internal/core/domain/model/merchant"
	"foodorder/internal/core/ports"
)

// SearchMerchantsQueryHandler filters the configured merchant catalog by the
// query keyword.
//
// The handler returns exactly the subset of catalog merchants whose name
// contains the keyword, preserving catalog ordering so the numbered selection
// list is stable across runs.
type SearchMerchantsQueryHandler struct {
	catalog ports.MerchantCatalog
}

// NewSearchMerchantsQueryHandler creates a handler over the given catalog.
func NewSearchMerchantsQueryHandler(catalog ports.MerchantCatalog) SearchMerchantsQueryHandler {
	return SearchMerchantsQueryHandler{catalog: catalog}
}

// Handle executes the search.
// Returns the matching merchants in catalog order; the slice is empty when
// nothing matches, which callers treat as a domain early-exit rather than an
// error.
func (h SearchMerchantsQueryHandler) Handle(
	ctx context.Context,
	query SearchMerchantsQuery,
) ([]*merchant.Merchant, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]*merchant.Merchant, 0, len(all))
	for _, m := range all {
		if strings.Contains(m.Name(), query.Keyword()) {
			matches = append(matches, m)
		}
	}

	return matches, nil
}
