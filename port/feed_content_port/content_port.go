package feed_content_port

import (
	"context"

	"skillbridge/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=content_port.go -destination=../../mocks/mock_feed_content_port.go -package=mocks

// OrganicPageQuery carries everything the content repository needs for one
// organic page: role-based audience filtering, optional category narrowing,
// keyset cursor, and pre-tokenized search terms.
type OrganicPageQuery struct {
	Role         domain.UserRole
	Category     domain.FeedCategory
	Cursor       *uuid.UUID
	SearchTokens []string
	Limit        int
}

type FetchOrganicContentPort interface {
	FetchOrganicPage(ctx context.Context, query OrganicPageQuery) ([]domain.FeedItem, error)
}
