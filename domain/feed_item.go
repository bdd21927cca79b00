package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedItemType distinguishes the editorial content variants. Injected items
// reuse these types so serialized responses stay uniform.
type FeedItemType string

const (
	FeedItemTypeArticle      FeedItemType = "article"
	FeedItemTypeJobPost      FeedItemType = "job_post"
	FeedItemTypeEvent        FeedItemType = "event"
	FeedItemTypeWebinar      FeedItemType = "webinar"
	FeedItemTypeInsight      FeedItemType = "insight"
	FeedItemTypeSuccessStory FeedItemType = "success_story"
	FeedItemTypeSpotlight    FeedItemType = "spotlight"
)

// FeedCategory is the closed set of feed sections. The empty string and
// "all" both mean the unfiltered discovery view.
type FeedCategory string

const (
	FeedCategoryAll            FeedCategory = "all"
	FeedCategoryNews           FeedCategory = "news"
	FeedCategoryLearnAndGrow   FeedCategory = "learn_and_grow"
	FeedCategoryCommunity      FeedCategory = "community"
	FeedCategoryRecommendation FeedCategory = "recommendation"
	FeedCategorySuccessStories FeedCategory = "success_stories"
	FeedCategoryEvents         FeedCategory = "events"
)

// IsValid reports whether the category is one of the served sections.
func (c FeedCategory) IsValid() bool {
	switch c {
	case "", FeedCategoryAll, FeedCategoryNews, FeedCategoryLearnAndGrow,
		FeedCategoryCommunity, FeedCategoryRecommendation,
		FeedCategorySuccessStories, FeedCategoryEvents:
		return true
	}
	return false
}

// Audience restricts who may see an item.
type Audience string

const (
	AudienceAll        Audience = "all"
	AudienceCandidates Audience = "candidates"
	AudienceAgencies   Audience = "agencies"
)

// AudienceForRole maps a caller role to the audience slice it can see,
// in addition to AudienceAll.
func AudienceForRole(role UserRole) Audience {
	if role == UserRoleAgency {
		return AudienceAgencies
	}
	return AudienceCandidates
}

// FeedItem is an editorial content entry. Ownership is either an agency or a
// user, never both; the ranking path never sees inactive items.
type FeedItem struct {
	ID            uuid.UUID    `json:"id"`
	Type          FeedItemType `json:"item_type"`
	Category      FeedCategory `json:"category"`
	Audience      Audience     `json:"audience"`
	Title         string       `json:"title"`
	Body          string       `json:"body"`
	CTAText       string       `json:"cta_text,omitempty"`
	CTALink       string       `json:"cta_link,omitempty"`
	ImageURL      string       `json:"image_url,omitempty"`
	AgencyID      *uuid.UUID   `json:"agency_id,omitempty"`
	AgencyName    string       `json:"agency_name,omitempty"`
	UserID        *uuid.UUID   `json:"user_id,omitempty"`
	UserFirstName string       `json:"user_first_name,omitempty"`
	UserLastName  string       `json:"user_last_name,omitempty"`
	TargetSkills  []string     `json:"target_skills,omitempty"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
}
