package usecase

import (
	"context"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockCandidateRepo struct {
	candidate matching.Candidate
	findErr   error
	eligible  []matching.Candidate
	listErr   error
}

func (m mockCandidateRepo) FindByID(_ context.Context, id uuid.UUID) (matching.Candidate, error) {
	if m.findErr != nil {
		return matching.Candidate{}, m.findErr
	}
	if m.candidate.ID != id {
		return matching.Candidate{}, repository.ErrCandidateNotFound
	}
	return m.candidate, nil
}

func (m mockCandidateRepo) ListEligibleForJob(context.Context, uuid.UUID) ([]matching.Candidate, error) {
	return m.eligible, m.listErr
}

type mockJobRepo struct {
	job         matching.Job
	findErr     error
	open        []matching.Job
	openErr     error
	behavior    []repository.BehaviorSimilarJob
	behaviorErr error
}

func (m mockJobRepo) FindByID(_ context.Context, id uuid.UUID) (matching.Job, error) {
	if m.findErr != nil {
		return matching.Job{}, m.findErr
	}
	if m.job.ID != id {
		return matching.Job{}, repository.ErrJobNotFound
	}
	return m.job, nil
}

func (m mockJobRepo) ListOpenForCandidate(context.Context, uuid.UUID, bool) ([]matching.Job, error) {
	return m.open, m.openErr
}

func (m mockJobRepo) ListSimilarToApplied(context.Context, uuid.UUID, int) ([]repository.BehaviorSimilarJob, error) {
	return m.behavior, m.behaviorErr
}

type mockApplicationRepo struct {
	applied bool
	err     error
}

func (m mockApplicationRepo) HasApplied(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return m.applied, m.err
}

type mockSimilarFinder struct {
	jobs       []JobMatch
	err        error
	lastParams SimilarJobsParams
	calls      int
}

func (m *mockSimilarFinder) FindSimilarJobs(_ context.Context, _ uuid.UUID, params SimilarJobsParams) ([]JobMatch, error) {
	m.calls++
	m.lastParams = params
	if m.err != nil {
		return nil, m.err
	}
	limit := params.Limit
	if limit > len(m.jobs) {
		limit = len(m.jobs)
	}
	return m.jobs[:limit], nil
}

type mockSkillMarketRepo struct {
	trending    []repository.TrendingSkillRow
	trendingErr error
	stats       repository.SkillStatsRow
	statsErr    error
	levels      []repository.LevelCount
	industries  []repository.IndustryCount
	locations   []repository.LocationCount
}

func (m mockSkillMarketRepo) TrendingSkills(context.Context, int, int) ([]repository.TrendingSkillRow, error) {
	return m.trending, m.trendingErr
}

func (m mockSkillMarketRepo) SkillStats(context.Context, uuid.UUID) (repository.SkillStatsRow, error) {
	if m.statsErr != nil {
		return repository.SkillStatsRow{}, m.statsErr
	}
	return m.stats, nil
}

func (m mockSkillMarketRepo) LevelDistribution(context.Context, uuid.UUID) ([]repository.LevelCount, error) {
	return m.levels, nil
}

func (m mockSkillMarketRepo) IndustryDistribution(context.Context, uuid.UUID) ([]repository.IndustryCount, error) {
	return m.industries, nil
}

func (m mockSkillMarketRepo) LocationDistribution(context.Context, uuid.UUID) ([]repository.LocationCount, error) {
	return m.locations, nil
}

type mockCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	return false, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = nil
	return nil
}
