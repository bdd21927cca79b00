package rest

import (
	"context"
	"net/http"

	"skillbridge/domain"
	"skillbridge/usecase/assemble_feed_usecase"
	"skillbridge/validation"

	"github.com/labstack/echo/v4"
)

// FeedAssembler is the single read-path operation the REST layer depends on.
type FeedAssembler interface {
	Execute(ctx context.Context, user *domain.UserContext, query domain.FeedQuery) (*assemble_feed_usecase.FeedPage, error)
}

var feedQueryValidator = &validation.FeedQueryValidator{}

// RestHandleFetchFeed serves GET /v1/feed. Identity is resolved upstream by
// the identity middleware; category, cursor and search arrive as query
// parameters.
func RestHandleFetchFeed(assembler FeedAssembler) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		user, err := domain.GetUserFromContext(ctx)
		if err != nil {
			return handleError(c, domain.ErrInvalidUserContext, "fetch_feed")
		}

		params := validation.FeedQueryParams{
			Category: c.QueryParam("category"),
			Cursor:   c.QueryParam("cursor"),
			Search:   c.QueryParam("q"),
		}
		if result := feedQueryValidator.Validate(ctx, params); !result.Valid {
			return handleValidationError(c, result)
		}

		page, err := assembler.Execute(ctx, user, params.ToFeedQuery())
		if err != nil {
			return handleError(c, err, "fetch_feed")
		}

		response := FeedResponse{Data: page.Items}
		if response.Data == nil {
			response.Data = []domain.RankedItem{}
		}
		if page.NextCursor != nil {
			cursor := page.NextCursor.String()
			response.NextCursor = &cursor
		}

		return c.JSON(http.StatusOK, response)
	}
}
