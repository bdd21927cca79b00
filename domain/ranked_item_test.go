package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVirtualID_DeterministicAndNamespaced(t *testing.T) {
	sourceID := uuid.New()

	a := VirtualID(InjectionJobMatch, sourceID)
	b := VirtualID(InjectionJobMatch, sourceID)
	assert.Equal(t, a, b, "same kind and source must derive the same identity")

	c := VirtualID(InjectionLearningMatch, sourceID)
	assert.NotEqual(t, a, c, "different kinds over the same source must not collide")
	assert.NotEqual(t, a, sourceID, "derived identity must differ from the source id")
}

func TestNewOrganicRankedItem_Scoring(t *testing.T) {
	now := time.Now()
	item := FeedItem{ID: uuid.New(), CreatedAt: now}

	plain := NewOrganicRankedItem(item, nil)
	assert.Equal(t, BandOrganic, plain.Band)
	assert.Equal(t, ScoreOrganicBase, plain.Score)
	assert.Equal(t, now, plain.SortKey)
	assert.False(t, plain.Promoted)

	standard := NewOrganicRankedItem(item, &Promotion{Tier: PromotionTierStandard})
	assert.Equal(t, BandPromoted, standard.Band)
	assert.Equal(t, ScoreOrganicBase+ScoreStandardBoost, standard.Score)

	premium := NewOrganicRankedItem(item, &Promotion{Tier: PromotionTierPremium})
	assert.Equal(t, ScoreOrganicBase+ScorePremiumBoost, premium.Score)
	assert.Equal(t, PromotionTierPremium, premium.Tier)
}

// The band ordering is the invariant; score spacing is not load-bearing.
func TestPriorityBand_Ordering(t *testing.T) {
	assert.Greater(t, int(BandPromoted), int(BandInjected))
	assert.Greater(t, int(BandInjected), int(BandOrganic))
}

func TestInjectedScores_WithinInjectedBandRange(t *testing.T) {
	for _, score := range []int{ScoreJobMatch, ScoreSpotlight, ScoreLearningMatch} {
		assert.Greater(t, score, ScoreOrganicBase)
		assert.Less(t, score, ScoreStandardBoost)
	}
	assert.Greater(t, ScoreLearningMatch, ScoreSpotlight)
	assert.Greater(t, ScoreSpotlight, ScoreJobMatch)
}
