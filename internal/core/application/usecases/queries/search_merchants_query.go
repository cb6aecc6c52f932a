// Package queries contains read operations for retrieving system state.
// Queries never mutate anything; handlers filter the configured catalog into
// results for the interactive session.
package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrSearchMerchantsQueryIsNotConstructed = errors.New(
	"SearchMerchantsQuery must be created via NewSearchMerchantsQuery constructor",
)

// SearchMerchantsQuery finds merchants whose name contains a keyword.
//
// The match is a case-sensitive substring test on the merchant name only.
// An empty keyword matches every merchant, which gives the user a full
// listing at the search prompt.
//
// Example:
//
//	query, err := NewSearchMerchantsQuery("Chicken")
//	if err != nil {
//	    return err
//	}
//	matches, err := handler.Handle(ctx, query)
type SearchMerchantsQuery struct {
	keyword string

	guard guard.ConstructorGuard
}

// NewSearchMerchantsQuery creates a search query for the given keyword.
// Any keyword is accepted, including the empty string.
func NewSearchMerchantsQuery(keyword string) (SearchMerchantsQuery, error) {
	return SearchMerchantsQuery{
		keyword: keyword,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchMerchantsQueryIsNotConstructed if validation fails.
func (q SearchMerchantsQuery) Validate() error {
	return q.guard.Validate(ErrSearchMerchantsQueryIsNotConstructed)
}

// Keyword returns the search keyword.
func (q SearchMerchantsQuery) Keyword() string {
	return q.keyword
}
