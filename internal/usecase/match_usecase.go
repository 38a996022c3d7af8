package usecase

import (
	"context"
	"errors"
	"fmt"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

// MatchResult is the detailed pairwise score plus the denormalized job
// display fields callers want alongside it. The display fields are a
// convenience, not part of the scoring contract.
type MatchResult struct {
	CandidateID uuid.UUID
	JobID       uuid.UUID

	TotalScore int
	Grade      matching.Grade

	SkillScore      int
	ExperienceScore int
	EducationScore  int
	LocationScore   int
	SalaryScore     int

	MatchedSkills        int
	TotalRequiredSkills  int
	TotalCandidateSkills int

	JobTitle       string
	CompanyName    string
	CompanyLogoURL string
	EmploymentType string
	WorkType       matching.WorkType
	CityName       string
	SalaryMin      *float64
	SalaryMax      *float64

	HasApplied bool
}

type MatchUsecase interface {
	CalculateMatch(ctx context.Context, candidateID, jobID uuid.UUID) (MatchResult, error)
}

type Match struct {
	candidates   repository.CandidateRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
}

func NewMatchUsecase(candidates repository.CandidateRepository, jobs repository.JobRepository, applications repository.ApplicationRepository) *Match {
	return &Match{candidates: candidates, jobs: jobs, applications: applications}
}

func (u *Match) CalculateMatch(ctx context.Context, candidateID, jobID uuid.UUID) (MatchResult, error) {
	if candidateID == uuid.Nil || jobID == uuid.Nil {
		return MatchResult{}, ErrInvalidInput
	}

	candidate, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return MatchResult{}, ErrCandidateNotFound
		}
		return MatchResult{}, fmt.Errorf("load candidate: %w", err)
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return MatchResult{}, ErrJobNotFound
		}
		return MatchResult{}, fmt.Errorf("load job: %w", err)
	}

	applied, err := u.applications.HasApplied(ctx, candidateID, jobID)
	if err != nil {
		return MatchResult{}, fmt.Errorf("check application: %w", err)
	}

	score := matching.Calculate(candidate, job)

	return MatchResult{
		CandidateID: candidateID,
		JobID:       jobID,

		TotalScore: score.Total,
		Grade:      score.Grade,

		SkillScore:      score.SkillScore,
		ExperienceScore: score.ExperienceScore,
		EducationScore:  score.EducationScore,
		LocationScore:   score.LocationScore,
		SalaryScore:     score.SalaryScore,

		MatchedSkills:        score.Skills.MatchedSkills,
		TotalRequiredSkills:  score.Skills.TotalRequiredSkills,
		TotalCandidateSkills: score.Skills.TotalCandidateSkills,

		JobTitle:       job.Title,
		CompanyName:    job.CompanyName,
		CompanyLogoURL: job.CompanyLogoURL,
		EmploymentType: job.EmploymentType,
		WorkType:       job.WorkType,
		CityName:       job.CityName,
		SalaryMin:      job.SalaryMin,
		SalaryMax:      job.SalaryMax,

		HasApplied: applied,
	}, nil
}
