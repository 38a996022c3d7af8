package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

func testCandidate(skillIDs ...uuid.UUID) matching.Candidate {
	c := matching.Candidate{
		ID:              uuid.New(),
		FullName:        "Test Candidate",
		YearsExperience: 5,
		Education:       matching.EducationBachelor,
	}
	for _, id := range skillIDs {
		c.Skills = append(c.Skills, matching.CandidateSkill{SkillID: id, Proficiency: matching.ProficiencyExpert})
	}
	return c
}

func testJob(skillIDs ...uuid.UUID) matching.Job {
	j := matching.Job{
		ID:          uuid.New(),
		Title:       "Backend Engineer",
		CompanyName: "Acme",
		WorkType:    matching.WorkTypeRemote,
	}
	for _, id := range skillIDs {
		j.Skills = append(j.Skills, matching.JobSkill{SkillID: id, IsRequired: true})
	}
	return j
}

func TestMatchUsecase_NilIDs(t *testing.T) {
	uc := NewMatchUsecase(mockCandidateRepo{}, mockJobRepo{}, mockApplicationRepo{})

	if _, err := uc.CalculateMatch(context.Background(), uuid.Nil, uuid.New()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.CalculateMatch(context.Background(), uuid.New(), uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchUsecase_CandidateNotFound(t *testing.T) {
	job := testJob(uuid.New())
	uc := NewMatchUsecase(mockCandidateRepo{}, mockJobRepo{job: job}, mockApplicationRepo{})

	_, err := uc.CalculateMatch(context.Background(), uuid.New(), job.ID)
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestMatchUsecase_JobNotFound(t *testing.T) {
	cand := testCandidate(uuid.New())
	uc := NewMatchUsecase(mockCandidateRepo{candidate: cand}, mockJobRepo{}, mockApplicationRepo{})

	_, err := uc.CalculateMatch(context.Background(), cand.ID, uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestMatchUsecase_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	uc := NewMatchUsecase(mockCandidateRepo{findErr: storeErr}, mockJobRepo{}, mockApplicationRepo{})

	_, err := uc.CalculateMatch(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestMatchUsecase_Success(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	cand := testCandidate(a, b)
	job := testJob(a, b)
	job.ExperienceRequired = 3

	uc := NewMatchUsecase(
		mockCandidateRepo{candidate: cand},
		mockJobRepo{job: job},
		mockApplicationRepo{applied: true},
	)

	res, err := uc.CalculateMatch(context.Background(), cand.ID, job.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// 40 (2/2 skills) + 25 (5>=3) + 15 (no edu requirement) + 10 (remote) + 10 (no band)
	if res.TotalScore != 100 {
		t.Fatalf("expected total 100, got %d", res.TotalScore)
	}
	if res.Grade != matching.GradeExcellent {
		t.Fatalf("expected EXCELLENT, got %s", res.Grade)
	}
	sum := res.SkillScore + res.ExperienceScore + res.EducationScore + res.LocationScore + res.SalaryScore
	if sum != res.TotalScore {
		t.Fatalf("sub-scores sum %d != total %d", sum, res.TotalScore)
	}
	if !res.HasApplied {
		t.Fatalf("expected has_applied=true")
	}
	if res.JobTitle != "Backend Engineer" || res.CompanyName != "Acme" {
		t.Fatalf("missing denormalized job fields: %+v", res)
	}
}
