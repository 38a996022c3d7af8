package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

func behaviorJob(id uuid.UUID, shared int) repository.BehaviorSimilarJob {
	return repository.BehaviorSimilarJob{
		Job: matching.Job{
			ID:          id,
			Title:       "Similar Job",
			CompanyName: "Acme",
			WorkType:    matching.WorkTypeOnsite,
		},
		SharedAttributes: shared,
	}
}

func TestRecommendations_CandidateNotFound(t *testing.T) {
	uc := NewRecommendationUsecase(mockCandidateRepo{}, mockJobRepo{}, &mockSimilarFinder{}, nil, 0, nil)

	_, err := uc.GetRecommendations(context.Background(), uuid.New(), RecommendationParams{})
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestRecommendations_UnknownAlgorithm(t *testing.T) {
	cand := testCandidate()
	uc := NewRecommendationUsecase(mockCandidateRepo{candidate: cand}, mockJobRepo{}, &mockSimilarFinder{}, nil, 0, nil)

	_, err := uc.GetRecommendations(context.Background(), cand.ID, RecommendationParams{Algorithm: "collaborative"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecommendations_SkillsBased_UsesLoweredFloor(t *testing.T) {
	cand := testCandidate()
	finder := &mockSimilarFinder{jobs: []JobMatch{{JobID: uuid.New(), Score: 55}}}
	uc := NewRecommendationUsecase(mockCandidateRepo{candidate: cand}, mockJobRepo{}, finder, nil, 0, nil)

	out, err := uc.GetRecommendations(context.Background(), cand.ID, RecommendationParams{Algorithm: AlgorithmSkillsBased, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if finder.lastParams.MinScore != 50 {
		t.Fatalf("expected min score 50, got %d", finder.lastParams.MinScore)
	}
	if finder.lastParams.IncludeApplied {
		t.Fatalf("expected applied jobs excluded")
	}
	if len(out) != 1 || out[0].Type != AlgorithmSkillsBased {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestRecommendations_BehaviorBased_FlatScore(t *testing.T) {
	cand := testCandidate()
	uc := NewRecommendationUsecase(
		mockCandidateRepo{candidate: cand},
		mockJobRepo{behavior: []repository.BehaviorSimilarJob{
			behaviorJob(uuid.New(), 3),
			behaviorJob(uuid.New(), 1),
		}},
		&mockSimilarFinder{},
		nil, 0, nil,
	)

	out, err := uc.GetRecommendations(context.Background(), cand.ID, RecommendationParams{Algorithm: AlgorithmBehaviorBased})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out))
	}
	for _, rec := range out {
		if rec.Score != 70 {
			t.Fatalf("expected flat score 70, got %d", rec.Score)
		}
		if rec.Type != AlgorithmBehaviorBased {
			t.Fatalf("expected behavior_based type, got %s", rec.Type)
		}
	}
}

func TestRecommendations_Hybrid_SplitAndDedup(t *testing.T) {
	cand := testCandidate()
	shared := uuid.New()

	finder := &mockSimilarFinder{jobs: []JobMatch{
		{JobID: shared, Score: 95},
		{JobID: uuid.New(), Score: 80},
	}}
	uc := NewRecommendationUsecase(
		mockCandidateRepo{candidate: cand},
		mockJobRepo{behavior: []repository.BehaviorSimilarJob{
			behaviorJob(shared, 2), // duplicate of a skills-based hit
			behaviorJob(uuid.New(), 1),
		}},
		finder,
		nil, 0, nil,
	)

	out, err := uc.GetRecommendations(context.Background(), cand.ID, RecommendationParams{Algorithm: AlgorithmHybrid, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// ceil(10*0.6) = 6 skills slots requested
	if finder.lastParams.Limit != 6 {
		t.Fatalf("expected skills limit 6, got %d", finder.lastParams.Limit)
	}

	seen := map[uuid.UUID]bool{}
	for _, rec := range out {
		if seen[rec.JobID] {
			t.Fatalf("duplicate job id %s in hybrid results", rec.JobID)
		}
		seen[rec.JobID] = true
		if rec.Type != AlgorithmHybrid {
			t.Fatalf("expected hybrid type, got %s", rec.Type)
		}
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 unique results, got %d", len(out))
	}
	// skills-based occurrence of the shared job wins, keeping its real score
	if out[0].JobID != shared || out[0].Score != 95 {
		t.Fatalf("expected shared job first at score 95, got %+v", out[0])
	}
	for i := 1; i < len(out); i++ {
		if out[i].Score > out[i-1].Score {
			t.Fatalf("results not sorted descending: %+v", out)
		}
	}
}

func TestRecommendations_Hybrid_SubStrategyFailureFailsAll(t *testing.T) {
	cand := testCandidate()
	storeErr := errors.New("connection reset")

	uc := NewRecommendationUsecase(
		mockCandidateRepo{candidate: cand},
		mockJobRepo{behaviorErr: storeErr},
		&mockSimilarFinder{jobs: []JobMatch{{JobID: uuid.New(), Score: 90}}},
		nil, 0, nil,
	)

	_, err := uc.GetRecommendations(context.Background(), cand.ID, RecommendationParams{Algorithm: AlgorithmHybrid, Limit: 10})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected behavior-branch failure to fail the call, got %v", err)
	}
}

func TestRecommendations_DefaultAlgorithmIsHybrid(t *testing.T) {
	cand := testCandidate()
	finder := &mockSimilarFinder{}
	uc := NewRecommendationUsecase(mockCandidateRepo{candidate: cand}, mockJobRepo{}, finder, nil, 0, nil)

	out, err := uc.GetRecommendations(context.Background(), cand.ID, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %+v", out)
	}
	if finder.calls != 1 {
		t.Fatalf("expected skills branch to run under default hybrid, calls=%d", finder.calls)
	}
}

func TestRecommendations_CacheWriteOnSuccess(t *testing.T) {
	cand := testCandidate()
	cache := &mockCache{}
	uc := NewRecommendationUsecase(
		mockCandidateRepo{candidate: cand},
		mockJobRepo{},
		&mockSimilarFinder{jobs: []JobMatch{{JobID: uuid.New(), Score: 75}}},
		cache, 0, nil,
	)

	if _, err := uc.GetRecommendations(context.Background(), cand.ID, RecommendationParams{Algorithm: AlgorithmSkillsBased, Limit: 5}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.gets != 1 || cache.sets != 1 {
		t.Fatalf("expected one cache read and one write, got gets=%d sets=%d", cache.gets, cache.sets)
	}
}
