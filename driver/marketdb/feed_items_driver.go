package marketdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skillbridge/domain"
	"skillbridge/utils/logger"
	utilsql "skillbridge/utils/sql"

	"github.com/google/uuid"
)

// OrganicPageParams parameterizes one organic page fetch. SearchTokens are
// AND-combined; each token may match any searchable field.
type OrganicPageParams struct {
	Audience     domain.Audience
	Category     domain.FeedCategory
	Cursor       *uuid.UUID
	SearchTokens []string
	Limit        int
}

const selectFeedItemsSQL = `
	SELECT
		f.id,
		f.item_type,
		f.category,
		f.audience,
		f.title,
		f.body,
		f.cta_text,
		f.cta_link,
		f.image_url,
		f.agency_id,
		a.name AS agency_name,
		f.user_id,
		u.first_name,
		u.last_name,
		COALESCE(f.target_skills, '{}') AS target_skills,
		f.is_active,
		f.created_at
	FROM feed_items f
	LEFT JOIN agencies a ON a.id = f.agency_id
	LEFT JOIN users u ON u.id = f.user_id
`

// FetchOrganicPage returns one keyset page of active feed items visible to
// the audience, newest first. The cursor is the id of the last row of the
// previous page; rows strictly older than it (by created_at, id) qualify.
func (r *MarketDBRepository) FetchOrganicPage(ctx context.Context, params OrganicPageParams) ([]domain.FeedItem, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := selectFeedItemsSQL + `	WHERE f.is_active = TRUE AND f.audience = ANY($1)`
	args := []any{[]string{string(domain.AudienceAll), string(params.Audience)}}

	if params.Category != "" && params.Category != domain.FeedCategoryAll {
		args = append(args, string(params.Category))
		query += fmt.Sprintf(" AND f.category = $%d", len(args))
	}

	if params.Cursor != nil {
		args = append(args, *params.Cursor)
		query += fmt.Sprintf(" AND (f.created_at, f.id) < (SELECT created_at, id FROM feed_items WHERE id = $%d)", len(args))
	}

	query, args = appendSearchFilter(query, args, params.SearchTokens)

	args = append(args, params.Limit)
	query += fmt.Sprintf(" ORDER BY f.created_at DESC, f.id DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching organic page", "error", err, "category", params.Category, "limit", params.Limit)
		return nil, errors.New("error fetching organic page")
	}
	defer rows.Close()

	var items []domain.FeedItem
	for rows.Next() {
		item, err := scanFeedItem(rows)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning feed item", "error", err)
			return nil, errors.New("error scanning feed item")
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// appendSearchFilter adds one AND clause per token. A token satisfies the
// clause by matching any of title, body, CTA text, agency name, or the
// owner's first/last name, case-insensitively.
func appendSearchFilter(query string, args []any, tokens []string) (string, []any) {
	for _, token := range tokens {
		args = append(args, "%"+token+"%")
		n := len(args)
		query += fmt.Sprintf(
			" AND (f.title ILIKE $%d OR f.body ILIKE $%d OR f.cta_text ILIKE $%d OR a.name ILIKE $%d OR u.first_name ILIKE $%d OR u.last_name ILIKE $%d)",
			n, n, n, n, n, n,
		)
	}
	return query, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFeedItem(row rowScanner) (domain.FeedItem, error) {
	var (
		item               domain.FeedItem
		ctaText, ctaLink   sql.NullString
		imageURL           sql.NullString
		agencyID, userID   uuid.NullUUID
		agencyName         sql.NullString
		firstName, surname sql.NullString
	)

	err := row.Scan(
		&item.ID,
		&item.Type,
		&item.Category,
		&item.Audience,
		&item.Title,
		&item.Body,
		&ctaText,
		&ctaLink,
		&imageURL,
		&agencyID,
		&agencyName,
		&userID,
		&firstName,
		&surname,
		&item.TargetSkills,
		&item.IsActive,
		&item.CreatedAt,
	)
	if err != nil {
		return domain.FeedItem{}, err
	}

	item.CTAText = utilsql.NullString(ctaText)
	item.CTALink = utilsql.NullString(ctaLink)
	item.ImageURL = utilsql.NullString(imageURL)
	item.AgencyID = utilsql.NullUUIDPtr(agencyID)
	item.AgencyName = utilsql.NullString(agencyName)
	item.UserID = utilsql.NullUUIDPtr(userID)
	item.UserFirstName = utilsql.NullString(firstName)
	item.UserLastName = utilsql.NullString(surname)

	return item, nil
}
