package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"talent-match/internal/repository"

	"github.com/google/uuid"
)

const (
	DefaultTrendingLimit      = 20
	DefaultTrendingWindowDays = 30
)

type TrendingSkill struct {
	SkillID           uuid.UUID
	SkillName         string
	Category          string
	JobDemand         int
	CandidateSupply   int
	DemandSupplyRatio *float64
	RecentJobDemand   int
	AvgSalaryMax      *int
}

type TrendingSkillsParams struct {
	Limit      int
	WindowDays int
}

type SkillInsights struct {
	SkillID   uuid.UUID
	SkillName string
	Category  string

	TotalJobs         int
	TotalCandidates   int
	RecentJobs        int
	WeeklyJobs        int
	DemandSupplyRatio *float64

	AvgSalaryMin *int
	AvgSalaryMax *int
	MinSalary    *int
	MaxSalary    *int

	LevelDistribution    []repository.LevelCount
	IndustryDistribution []repository.IndustryCount
	LocationDistribution []repository.LocationCount
}

type MarketUsecase interface {
	TrendingSkills(ctx context.Context, params TrendingSkillsParams) ([]TrendingSkill, error)
	SkillInsights(ctx context.Context, skillID uuid.UUID) (SkillInsights, error)
}

type Market struct {
	skills repository.SkillMarketRepository
}

func NewMarketUsecase(skills repository.SkillMarketRepository) *Market {
	return &Market{skills: skills}
}

func (u *Market) TrendingSkills(ctx context.Context, params TrendingSkillsParams) ([]TrendingSkill, error) {
	if params.Limit < 0 || params.WindowDays < 0 {
		return nil, ErrInvalidInput
	}
	limit := params.Limit
	if limit == 0 {
		limit = DefaultTrendingLimit
	}
	days := params.WindowDays
	if days == 0 {
		days = DefaultTrendingWindowDays
	}

	rows, err := u.skills.TrendingSkills(ctx, limit, days)
	if err != nil {
		return nil, fmt.Errorf("trending skills: %w", err)
	}

	out := make([]TrendingSkill, 0, len(rows))
	for _, r := range rows {
		out = append(out, TrendingSkill{
			SkillID:           r.SkillID,
			SkillName:         r.SkillName,
			Category:          r.Category,
			JobDemand:         r.JobDemand,
			CandidateSupply:   r.CandidateSupply,
			DemandSupplyRatio: demandSupplyRatio(r.JobDemand, r.CandidateSupply),
			RecentJobDemand:   r.RecentJobDemand,
			AvgSalaryMax:      roundSalary(r.AvgSalaryMax),
		})
	}
	return out, nil
}

func (u *Market) SkillInsights(ctx context.Context, skillID uuid.UUID) (SkillInsights, error) {
	if skillID == uuid.Nil {
		return SkillInsights{}, ErrInvalidInput
	}

	stats, err := u.skills.SkillStats(ctx, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SkillInsights{}, ErrSkillNotFound
		}
		return SkillInsights{}, fmt.Errorf("skill stats: %w", err)
	}

	levels, err := u.skills.LevelDistribution(ctx, skillID)
	if err != nil {
		return SkillInsights{}, fmt.Errorf("level distribution: %w", err)
	}
	industries, err := u.skills.IndustryDistribution(ctx, skillID)
	if err != nil {
		return SkillInsights{}, fmt.Errorf("industry distribution: %w", err)
	}
	locations, err := u.skills.LocationDistribution(ctx, skillID)
	if err != nil {
		return SkillInsights{}, fmt.Errorf("location distribution: %w", err)
	}

	return SkillInsights{
		SkillID:   stats.SkillID,
		SkillName: stats.SkillName,
		Category:  stats.Category,

		TotalJobs:         stats.TotalJobs,
		TotalCandidates:   stats.TotalCandidates,
		RecentJobs:        stats.RecentJobs,
		WeeklyJobs:        stats.WeeklyJobs,
		DemandSupplyRatio: demandSupplyRatio(stats.TotalJobs, stats.TotalCandidates),

		AvgSalaryMin: roundSalary(stats.AvgSalaryMin),
		AvgSalaryMax: roundSalary(stats.AvgSalaryMax),
		MinSalary:    roundSalary(stats.MinSalary),
		MaxSalary:    roundSalary(stats.MaxSalary),

		LevelDistribution:    levels,
		IndustryDistribution: industries,
		LocationDistribution: locations,
	}, nil
}

// demandSupplyRatio is nil when nobody on the candidate side has the skill;
// a ratio against zero supply is meaningless, not infinite demand.
func demandSupplyRatio(demand, supply int) *float64 {
	if supply <= 0 {
		return nil
	}
	ratio := math.Round(float64(demand)/float64(supply)*100) / 100
	return &ratio
}

func roundSalary(v *float64) *int {
	if v == nil {
		return nil
	}
	r := int(math.Round(*v))
	return &r
}
