package dto

import "github.com/google/uuid"

type TrendingSkillResponse struct {
	SkillID           uuid.UUID `json:"skill_id"`
	SkillName         string    `json:"skill_name"`
	Category          string    `json:"category,omitempty"`
	JobDemand         int       `json:"job_demand"`
	CandidateSupply   int       `json:"candidate_supply"`
	DemandSupplyRatio *float64  `json:"demand_supply_ratio"`
	RecentJobDemand   int       `json:"recent_job_demand"`
	AvgSalaryMax      *int      `json:"avg_salary_max"`
}

type LevelCountResponse struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

type IndustryCountResponse struct {
	Industry string `json:"industry"`
	Count    int    `json:"count"`
}

type LocationCountResponse struct {
	City    string `json:"city"`
	Country string `json:"country,omitempty"`
	Count   int    `json:"count"`
}

type SkillInsightsResponse struct {
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	Category  string    `json:"category,omitempty"`

	TotalJobs         int      `json:"total_jobs"`
	TotalCandidates   int      `json:"total_candidates"`
	RecentJobs        int      `json:"recent_jobs"`
	WeeklyJobs        int      `json:"weekly_jobs"`
	DemandSupplyRatio *float64 `json:"demand_supply_ratio"`

	AvgSalaryMin *int `json:"avg_salary_min"`
	AvgSalaryMax *int `json:"avg_salary_max"`
	MinSalary    *int `json:"min_salary"`
	MaxSalary    *int `json:"max_salary"`

	LevelDistribution    []LevelCountResponse    `json:"level_distribution"`
	IndustryDistribution []IndustryCountResponse `json:"industry_distribution"`
	LocationDistribution []LocationCountResponse `json:"location_distribution"`
}
