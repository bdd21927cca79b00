package constants

// Feed assembly constants. Page sizes differ by view: the discovery page
// pulls more raw material so category diversity survives the merge.
const (
	// AllCategoriesPageSize is the organic page size for the "all" view.
	AllCategoriesPageSize = 30

	// CategoryPageSize is the organic page size when a category filter is present.
	CategoryPageSize = 10

	// MaxJobMatchInjections caps synthetic job-match items per page.
	MaxJobMatchInjections = 10

	// MaxLearningInjections caps skill-gap learning items per page.
	MaxLearningInjections = 3

	// MaxSpotlightInjections caps agency candidate spotlights per page.
	MaxSpotlightInjections = 5

	// FailedAssessmentWindowDays bounds how far back failed assessment
	// attempts count as "recent" for skill-gap targeting.
	FailedAssessmentWindowDays = 90

	// MaxSearchQueryLength bounds the free-text search input.
	MaxSearchQueryLength = 1000
)
