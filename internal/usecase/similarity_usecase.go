package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

const (
	DefaultSimilarityMinScore = 60
	DefaultSimilarityLimit    = 50
)

type SimilarCandidatesParams struct {
	MinScore int
	Limit    int
}

type SimilarJobsParams struct {
	MinScore int
	Limit    int

	// Jobs the candidate already applied to are excluded unless this is
	// set, so the zero value matches the default behavior.
	IncludeApplied bool
}

type CandidateMatch struct {
	CandidateID     uuid.UUID
	FullName        string
	YearsExperience int
	Education       matching.Education
	ExpectedSalary  *float64
	Score           int
}

type JobMatch struct {
	JobID          uuid.UUID
	Title          string
	CompanyName    string
	CompanyLogoURL string
	EmploymentType string
	WorkType       matching.WorkType
	CityName       string
	SalaryMin      *float64
	SalaryMax      *float64
	Deadline       *time.Time
	PostedAt       time.Time
	Score          int
}

type SimilarityUsecase interface {
	FindSimilarCandidates(ctx context.Context, jobID uuid.UUID, params SimilarCandidatesParams) ([]CandidateMatch, error)
	FindSimilarJobs(ctx context.Context, candidateID uuid.UUID, params SimilarJobsParams) ([]JobMatch, error)
}

type Similarity struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
}

func NewSimilarityUsecase(candidates repository.CandidateRepository, jobs repository.JobRepository) *Similarity {
	return &Similarity{candidates: candidates, jobs: jobs}
}

// FindSimilarCandidates ranks every candidate eligible for the job by the
// pairwise formula. Ties on score break by candidate ID ascending so the
// ordering is deterministic run to run.
func (u *Similarity) FindSimilarCandidates(ctx context.Context, jobID uuid.UUID, params SimilarCandidatesParams) ([]CandidateMatch, error) {
	if jobID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	minScore, limit, err := normalizeSimilarityParams(params.MinScore, params.Limit)
	if err != nil {
		return nil, err
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("load job: %w", err)
	}

	candidates, err := u.candidates.ListEligibleForJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	out := make([]CandidateMatch, 0, len(candidates))
	for _, c := range candidates {
		score := matching.TotalScore(c, job)
		if score < minScore {
			continue
		}
		out = append(out, CandidateMatch{
			CandidateID:     c.ID,
			FullName:        c.FullName,
			YearsExperience: c.YearsExperience,
			Education:       c.Education,
			ExpectedSalary:  c.ExpectedSalary,
			Score:           score,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CandidateID.String() < out[j].CandidateID.String()
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// FindSimilarJobs ranks open jobs for the candidate. Ties on score break by
// posting recency (newest first), then job ID.
func (u *Similarity) FindSimilarJobs(ctx context.Context, candidateID uuid.UUID, params SimilarJobsParams) ([]JobMatch, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	minScore, limit, err := normalizeSimilarityParams(params.MinScore, params.Limit)
	if err != nil {
		return nil, err
	}

	candidate, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("load candidate: %w", err)
	}

	jobs, err := u.jobs.ListOpenForCandidate(ctx, candidateID, !params.IncludeApplied)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	out := make([]JobMatch, 0, len(jobs))
	for _, j := range jobs {
		score := matching.TotalScore(candidate, j)
		if score < minScore {
			continue
		}
		out = append(out, JobMatch{
			JobID:          j.ID,
			Title:          j.Title,
			CompanyName:    j.CompanyName,
			CompanyLogoURL: j.CompanyLogoURL,
			EmploymentType: j.EmploymentType,
			WorkType:       j.WorkType,
			CityName:       j.CityName,
			SalaryMin:      j.SalaryMin,
			SalaryMax:      j.SalaryMax,
			Deadline:       j.Deadline,
			PostedAt:       j.PostedAt,
			Score:          score,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if !out[i].PostedAt.Equal(out[j].PostedAt) {
			return out[i].PostedAt.After(out[j].PostedAt)
		}
		return out[i].JobID.String() < out[j].JobID.String()
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func normalizeSimilarityParams(minScore, limit int) (int, int, error) {
	if minScore < 0 || minScore > 100 || limit < 0 {
		return 0, 0, ErrInvalidInput
	}
	if minScore == 0 {
		minScore = DefaultSimilarityMinScore
	}
	if limit == 0 {
		limit = DefaultSimilarityLimit
	}
	return minScore, limit, nil
}
