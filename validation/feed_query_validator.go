package validation

import (
	"context"

	"skillbridge/domain"
	"skillbridge/utils/constants"

	"github.com/google/uuid"
)

// FeedQueryParams are the raw query-string inputs of a feed request, before
// they become a domain.FeedQuery.
type FeedQueryParams struct {
	Category string
	Cursor   string
	Search   string
}

// FeedQueryValidator checks raw feed request parameters: the category must
// belong to the closed set, the cursor must be a UUID, and the search string
// must fit the length bound.
type FeedQueryValidator struct{}

func (v *FeedQueryValidator) Validate(ctx context.Context, value interface{}) ValidationResult {
	params, ok := value.(FeedQueryParams)
	if !ok {
		return invalid("params", "feed query parameters required", "")
	}

	if !domain.FeedCategory(params.Category).IsValid() {
		return invalid("category", "unknown feed category", params.Category)
	}

	if params.Cursor != "" {
		if _, err := uuid.Parse(params.Cursor); err != nil {
			return invalid("cursor", "cursor must be a valid UUID", params.Cursor)
		}
	}

	if len(params.Search) > constants.MaxSearchQueryLength {
		return invalid("q", "search query too long", "")
	}

	return ValidationResult{Valid: true}
}

// ToFeedQuery converts validated parameters into the domain request contract.
// Call only after Validate reported success.
func (params FeedQueryParams) ToFeedQuery() domain.FeedQuery {
	query := domain.FeedQuery{
		Category: domain.FeedCategory(params.Category),
		Search:   params.Search,
	}
	if params.Cursor != "" {
		if id, err := uuid.Parse(params.Cursor); err == nil {
			query.Cursor = &id
		}
	}
	return query
}
