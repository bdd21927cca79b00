package domain

import (
	"time"

	"github.com/google/uuid"
)

// PriorityBand makes the Promoted > Injected > Organic ordering an explicit
// invariant instead of an artifact of score spacing. Bands are compared
// before scores; scores only rank items within one band.
type PriorityBand int

const (
	BandOrganic PriorityBand = iota
	BandInjected
	BandPromoted
)

func (b PriorityBand) String() string {
	switch b {
	case BandPromoted:
		return "promoted"
	case BandInjected:
		return "injected"
	default:
		return "organic"
	}
}

// Scores within bands. Injected scores express personalization confidence:
// closing a known skill gap outranks a candidate spotlight, which outranks a
// generic job match. Organic items start from the base score and promotions
// add their tier bonus on top.
const (
	ScoreOrganicBase   = 1
	ScoreJobMatch      = 3
	ScoreSpotlight     = 4
	ScoreLearningMatch = 5
	ScoreStandardBoost = 500
	ScorePremiumBoost  = 1000
)

// InjectionKind identifies the synthetic item variants produced per request.
type InjectionKind string

const (
	InjectionJobMatch           InjectionKind = "job_match"
	InjectionLearningMatch      InjectionKind = "learning_match"
	InjectionCandidateSpotlight InjectionKind = "candidate_spotlight"
)

// virtualIDNamespace is the UUIDv5 namespace for injected item identities.
// Deriving ids from (kind, source id) keeps them stable within a request and
// disjoint from content repository ids by construction.
var virtualIDNamespace = uuid.MustParse("8f1d6f3a-2a54-4c86-9d8e-5b0c7a1e4f2d")

// VirtualID derives the namespaced identity of an injected item.
func VirtualID(kind InjectionKind, sourceID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(virtualIDNamespace, []byte(string(kind)+":"+sourceID.String()))
}

// RankedItem is the common post-ranking shape: an item plus the band, score
// and sort key the ordering policies operate on.
type RankedItem struct {
	Item      FeedItem      `json:"item"`
	Band      PriorityBand  `json:"-"`
	Source    string        `json:"source"`
	Injection InjectionKind `json:"injection_kind,omitempty"`
	Score     int           `json:"score"`
	SortKey   time.Time     `json:"sort_key"`
	Promoted  bool          `json:"promoted"`
	Tier      PromotionTier `json:"promotion_tier,omitempty"`
}

// NewOrganicRankedItem scores an organic item, applying the live promotion
// bonus when one is attached.
func NewOrganicRankedItem(item FeedItem, promo *Promotion) RankedItem {
	ranked := RankedItem{
		Item:    item,
		Band:    BandOrganic,
		Source:  "organic",
		Score:   ScoreOrganicBase,
		SortKey: item.CreatedAt,
	}
	if promo != nil {
		ranked.Band = BandPromoted
		ranked.Promoted = true
		ranked.Tier = promo.Tier
		if promo.Tier == PromotionTierPremium {
			ranked.Score += ScorePremiumBoost
		} else {
			ranked.Score += ScoreStandardBoost
		}
	}
	return ranked
}

// NewInjectedRankedItem wraps a synthesized item in the injected band.
// The sort key is the underlying source's timestamp, not request time.
func NewInjectedRankedItem(item FeedItem, kind InjectionKind, score int, sortKey time.Time) RankedItem {
	return RankedItem{
		Item:      item,
		Band:      BandInjected,
		Source:    "injected",
		Injection: kind,
		Score:     score,
		SortKey:   sortKey,
	}
}
