package dto

type SimilaritySearchQuery struct {
	MinScore int `query:"min_score" validate:"gte=0,lte=100"`
	Limit    int `query:"limit" validate:"gte=0,lte=200"`
}

type SimilarJobsQuery struct {
	MinScore int `query:"min_score" validate:"gte=0,lte=100"`
	Limit    int `query:"limit" validate:"gte=0,lte=200"`

	// Pointer so an omitted param is distinguishable from an explicit
	// exclude_applied=false; omitted means applied jobs are excluded.
	ExcludeApplied *bool `query:"exclude_applied"`
}

type RecommendationQuery struct {
	Algorithm string `query:"algorithm" validate:"omitempty,oneof=skills_based behavior_based hybrid"`
	Limit     int    `query:"limit" validate:"gte=0,lte=100"`
}

type TrendingSkillsQuery struct {
	Limit      int `query:"limit" validate:"gte=0,lte=100"`
	WindowDays int `query:"days" validate:"gte=0,lte=365"`
}
