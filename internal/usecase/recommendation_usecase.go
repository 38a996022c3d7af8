package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type Algorithm string

const (
	AlgorithmSkillsBased   Algorithm = "skills_based"
	AlgorithmBehaviorBased Algorithm = "behavior_based"
	AlgorithmHybrid        Algorithm = "hybrid"
)

const (
	DefaultRecommendationLimit = 20

	// Skills-based recommendations use a lower floor than plain similarity
	// search so near-matches still surface.
	skillsBasedMinScore = 50

	// Behavior-based items are not scored by the weighted formula; every
	// match gets this flat score. Hybrid merging relies on it.
	behaviorBasedScore = 70
)

type Recommendation struct {
	JobID          uuid.UUID
	Title          string
	CompanyName    string
	CompanyLogoURL string
	EmploymentType string
	WorkType       matching.WorkType
	CityName       string
	SalaryMin      *float64
	SalaryMax      *float64
	PostedAt       time.Time
	Score          int
	Type           Algorithm
	Reason         string
}

type RecommendationParams struct {
	Algorithm Algorithm
	Limit     int
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) ([]Recommendation, error)
}

type similarJobsFinder interface {
	FindSimilarJobs(ctx context.Context, candidateID uuid.UUID, params SimilarJobsParams) ([]JobMatch, error)
}

type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Recommender struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	similar    similarJobsFinder
	cache      RecommendationCache
	cacheTTL   time.Duration
	logger     *log.Logger
}

func NewRecommendationUsecase(
	candidates repository.CandidateRepository,
	jobs repository.JobRepository,
	similar similarJobsFinder,
	cache RecommendationCache,
	cacheTTL time.Duration,
	logger *log.Logger,
) *Recommender {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommender{
		candidates: candidates,
		jobs:       jobs,
		similar:    similar,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

func (u *Recommender) GetRecommendations(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) ([]Recommendation, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if params.Limit < 0 {
		return nil, ErrInvalidInput
	}

	limit := params.Limit
	if limit == 0 {
		limit = DefaultRecommendationLimit
	}
	algorithm := params.Algorithm
	switch algorithm {
	case AlgorithmSkillsBased, AlgorithmBehaviorBased, AlgorithmHybrid:
	case "":
		algorithm = AlgorithmHybrid
	default:
		return nil, ErrInvalidInput
	}

	// The candidate must resolve before any strategy runs; the skills
	// strategy would surface the same error, but behavior-based alone would
	// silently return an empty list for an unknown ID.
	if _, err := u.candidates.FindByID(ctx, candidateID); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("load candidate: %w", err)
	}

	key := RecommendationsCacheKey(candidateID, string(algorithm), limit)
	if u.cache != nil {
		var cached []Recommendation
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	var out []Recommendation
	var err error
	switch algorithm {
	case AlgorithmSkillsBased:
		out, err = u.skillsBased(ctx, candidateID, limit)
	case AlgorithmBehaviorBased:
		out, err = u.behaviorBased(ctx, candidateID, limit)
	default:
		out, err = u.hybrid(ctx, candidateID, limit)
	}
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, u.cacheTTL); err != nil {
			u.logger.Printf("[Recommendations] cache write failed key=%s err=%v", key, err)
		}
	}
	return out, nil
}

func (u *Recommender) skillsBased(ctx context.Context, candidateID uuid.UUID, limit int) ([]Recommendation, error) {
	jobs, err := u.similar.FindSimilarJobs(ctx, candidateID, SimilarJobsParams{
		MinScore: skillsBasedMinScore,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]Recommendation, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, Recommendation{
			JobID:          j.JobID,
			Title:          j.Title,
			CompanyName:    j.CompanyName,
			CompanyLogoURL: j.CompanyLogoURL,
			EmploymentType: j.EmploymentType,
			WorkType:       j.WorkType,
			CityName:       j.CityName,
			SalaryMin:      j.SalaryMin,
			SalaryMax:      j.SalaryMax,
			PostedAt:       j.PostedAt,
			Score:          j.Score,
			Type:           AlgorithmSkillsBased,
			Reason:         "Based on your skills and experience",
		})
	}
	return out, nil
}

func (u *Recommender) behaviorBased(ctx context.Context, candidateID uuid.UUID, limit int) ([]Recommendation, error) {
	jobs, err := u.jobs.ListSimilarToApplied(ctx, candidateID, limit)
	if err != nil {
		return nil, fmt.Errorf("list similar to applied: %w", err)
	}

	out := make([]Recommendation, 0, len(jobs))
	for _, item := range jobs {
		j := item.Job
		out = append(out, Recommendation{
			JobID:          j.ID,
			Title:          j.Title,
			CompanyName:    j.CompanyName,
			CompanyLogoURL: j.CompanyLogoURL,
			EmploymentType: j.EmploymentType,
			WorkType:       j.WorkType,
			CityName:       j.CityName,
			SalaryMin:      j.SalaryMin,
			SalaryMax:      j.SalaryMax,
			PostedAt:       j.PostedAt,
			Score:          behaviorBasedScore,
			Type:           AlgorithmBehaviorBased,
			Reason:         "Based on your application history",
		})
	}
	return out, nil
}

// hybrid allocates 60% of the requested count to the skills strategy and 40%
// to the behavior strategy, keeping the first occurrence on duplicate job
// IDs. A failure in either branch fails the whole call.
func (u *Recommender) hybrid(ctx context.Context, candidateID uuid.UUID, limit int) ([]Recommendation, error) {
	skillsLimit := (limit*6 + 9) / 10 // ceil(limit * 0.6)
	behaviorLimit := limit * 4 / 10   // floor(limit * 0.4)

	skills, err := u.skillsBased(ctx, candidateID, skillsLimit)
	if err != nil {
		return nil, err
	}

	var behavior []Recommendation
	if behaviorLimit > 0 {
		behavior, err = u.behaviorBased(ctx, candidateID, behaviorLimit)
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[uuid.UUID]struct{}, len(skills)+len(behavior))
	merged := make([]Recommendation, 0, len(skills)+len(behavior))
	for _, rec := range append(skills, behavior...) {
		if _, dup := seen[rec.JobID]; dup {
			continue
		}
		seen[rec.JobID] = struct{}{}
		rec.Type = AlgorithmHybrid
		rec.Reason = "Based on skills, experience, and behavior"
		merged = append(merged, rec)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}
