package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileContext is the per-request, read-only personalization snapshot
// consumed by the recommendation injectors. It is recomputed on every call
// and never persisted.
//
// A missing profile or agency record yields the empty-context sentinel
// (HasProfile false): downstream stages must degrade, never fail.
type ProfileContext struct {
	Role       UserRole
	HasProfile bool

	// Candidate fields.
	SkillIDs         []uuid.UUID
	FailedSkillIDs   []uuid.UUID
	FailedSkillNames []string
	// Blank marks a profile with zero skills, zero work history and zero
	// education entries; the injector falls back to the latest public
	// positions for it instead of returning nothing.
	Blank bool

	// Agency fields.
	AgencyID         uuid.UUID
	RequiredSkillIDs []uuid.UUID
}

// EmptyProfileContext is the sentinel for callers without a profile or org
// record. Personalization is impossible; organic content still flows.
func EmptyProfileContext(role UserRole) ProfileContext {
	return ProfileContext{Role: role}
}

// CanPersonalize reports whether any injection input exists for this caller.
func (pc ProfileContext) CanPersonalize() bool {
	return pc.HasProfile
}

// OpenPosition is the read model behind candidate job-match injections.
type OpenPosition struct {
	ID          uuid.UUID
	AgencyID    uuid.UUID
	AgencyName  string
	Title       string
	Description string
	CreatedAt   time.Time
}

// CandidateSummary is the read model behind agency spotlight injections.
type CandidateSummary struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Headline  string
	UpdatedAt time.Time
}
