package domain

import (
	"strings"

	"github.com/google/uuid"
)

// FeedQuery is the read-path request contract: caller role comes from the
// user context, everything else from query parameters.
type FeedQuery struct {
	Category FeedCategory
	Cursor   *uuid.UUID
	Search   string
}

// IsFirstPage reports whether the request carries no pagination cursor.
func (q FeedQuery) IsFirstPage() bool {
	return q.Cursor == nil
}

// HasSearch reports whether a non-blank free-text search was supplied.
func (q FeedQuery) HasSearch() bool {
	return strings.TrimSpace(q.Search) != ""
}

// IsAllCategories reports whether the caller asked for the discovery view.
func (q FeedQuery) IsAllCategories() bool {
	return q.Category == "" || q.Category == FeedCategoryAll
}

// AllowsInjection is the single guard for first-page-only enrichment:
// injected items are recomputed from live data and cannot back a cursor or a
// search result, so they only appear on an unfiltered first page of the
// "all" or "recommendation" views. The orchestrator evaluates this once and
// passes it down as a capability flag.
func (q FeedQuery) AllowsInjection() bool {
	if !q.IsFirstPage() || q.HasSearch() {
		return false
	}
	return q.IsAllCategories() || q.Category == FeedCategoryRecommendation
}

// SearchTokens splits the free-text query on whitespace. Every token must
// independently match at least one searchable field; tokens combine with AND.
func (q FeedQuery) SearchTokens() []string {
	return strings.Fields(q.Search)
}

// MatchesSearch implements the token semantics over an item's searchable
// fields: case-insensitive substring, each token satisfied by any field.
// The organic SQL applies the same semantics at the database; this helper
// backs the injected path and the property tests.
func MatchesSearch(item FeedItem, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	fields := []string{
		item.Title,
		item.Body,
		item.CTAText,
		item.AgencyName,
		item.UserFirstName,
		item.UserLastName,
	}
	for i := range fields {
		fields[i] = strings.ToLower(fields[i])
	}
	for _, token := range tokens {
		token = strings.ToLower(token)
		matched := false
		for _, field := range fields {
			if field != "" && strings.Contains(field, token) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
