package rest

import "skillbridge/domain"

// FeedResponse is the read-path payload: ordered items plus the opaque
// cursor for the next page, or null when the organic stream is exhausted.
type FeedResponse struct {
	Data       []domain.RankedItem `json:"data"`
	NextCursor *string             `json:"next_cursor"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
