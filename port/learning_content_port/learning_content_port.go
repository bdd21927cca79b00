package learning_content_port

import (
	"context"

	"skillbridge/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=learning_content_port.go -destination=../../mocks/mock_learning_content_port.go -package=mocks

// FetchLearningContentPort filters the learn-and-grow pool by skill-name
// targeting metadata for skill-gap injections.
type FetchLearningContentPort interface {
	FetchLearningResources(ctx context.Context, skillNames []string, limit int) ([]domain.FeedItem, error)
}
