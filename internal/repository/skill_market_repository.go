package repository

import (
	"context"
	"errors"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound = errors.New("skill not found")
)

type TrendingSkillRow struct {
	SkillID         uuid.UUID
	SkillName       string
	Category        string
	JobDemand       int
	CandidateSupply int
	RecentJobDemand int
	AvgSalaryMax    *float64
}

type SkillStatsRow struct {
	SkillID         uuid.UUID
	SkillName       string
	Category        string
	TotalJobs       int
	TotalCandidates int
	RecentJobs      int
	WeeklyJobs      int
	AvgSalaryMin    *float64
	AvgSalaryMax    *float64
	MinSalary       *float64
	MaxSalary       *float64
}

type LevelCount struct {
	Level string
	Count int
}

type IndustryCount struct {
	Industry string
	Count    int
}

type LocationCount struct {
	City    string
	Country string
	Count   int
}

type SkillMarketRepository interface {
	TrendingSkills(ctx context.Context, limit, windowDays int) ([]TrendingSkillRow, error)
	SkillStats(ctx context.Context, skillID uuid.UUID) (SkillStatsRow, error)
	LevelDistribution(ctx context.Context, skillID uuid.UUID) ([]LevelCount, error)
	IndustryDistribution(ctx context.Context, skillID uuid.UUID) ([]IndustryCount, error)
	LocationDistribution(ctx context.Context, skillID uuid.UUID) ([]LocationCount, error)
}

type PostgresSkillMarketRepository struct {
	db database.DB
}

func NewPostgresSkillMarketRepository(db database.DB) *PostgresSkillMarketRepository {
	return &PostgresSkillMarketRepository{db: db}
}

func (r *PostgresSkillMarketRepository) TrendingSkills(ctx context.Context, limit, windowDays int) ([]TrendingSkillRow, error) {
	if limit <= 0 {
		limit = 20
	}
	if windowDays <= 0 {
		windowDays = 30
	}

	rows, err := r.db.Query(ctx,
		`SELECT s.skill_id, s.skill_name, COALESCE(s.category, ''),
		        COUNT(DISTINCT j.job_id) AS job_demand,
		        COUNT(DISTINCT cs.profile_id) AS candidate_supply,
		        COUNT(DISTINCT j.job_id) FILTER (
		          WHERE j.created_at >= NOW() - make_interval(days => $2)
		        ) AS recent_job_demand,
		        AVG(j.salary_max) AS avg_salary_max
		 FROM skills s
		 LEFT JOIN job_skills js ON js.skill_id = s.skill_id
		 LEFT JOIN jobs j ON j.job_id = js.job_id AND j.status = 'ACTIVE'
		 LEFT JOIN candidate_skills cs ON cs.skill_id = s.skill_id
		 GROUP BY s.skill_id, s.skill_name, s.category
		 HAVING COUNT(DISTINCT j.job_id) > 0
		 ORDER BY recent_job_demand DESC,
		          COUNT(DISTINCT j.job_id)::float / NULLIF(COUNT(DISTINCT cs.profile_id), 0) DESC NULLS LAST,
		          s.skill_name ASC
		 LIMIT $1`,
		limit, windowDays,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TrendingSkillRow, 0)
	for rows.Next() {
		var t TrendingSkillRow
		if err := rows.Scan(&t.SkillID, &t.SkillName, &t.Category,
			&t.JobDemand, &t.CandidateSupply, &t.RecentJobDemand, &t.AvgSalaryMax); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillMarketRepository) SkillStats(ctx context.Context, skillID uuid.UUID) (SkillStatsRow, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE skill_id = $1)`, skillID)
	if err := row.Scan(&exists); err != nil {
		return SkillStatsRow{}, err
	}
	if !exists {
		return SkillStatsRow{}, ErrSkillNotFound
	}

	row = r.db.QueryRow(ctx,
		`SELECT s.skill_id, s.skill_name, COALESCE(s.category, ''),
		        COUNT(DISTINCT j.job_id) AS total_jobs,
		        COUNT(DISTINCT cs.profile_id) AS total_candidates,
		        COUNT(DISTINCT j.job_id) FILTER (WHERE j.created_at >= NOW() - INTERVAL '30 days') AS recent_jobs,
		        COUNT(DISTINCT j.job_id) FILTER (WHERE j.created_at >= NOW() - INTERVAL '7 days') AS weekly_jobs,
		        AVG(j.salary_min), AVG(j.salary_max), MIN(j.salary_min), MAX(j.salary_max)
		 FROM skills s
		 LEFT JOIN job_skills js ON js.skill_id = s.skill_id
		 LEFT JOIN jobs j ON j.job_id = js.job_id AND j.status = 'ACTIVE'
		 LEFT JOIN candidate_skills cs ON cs.skill_id = s.skill_id
		 WHERE s.skill_id = $1
		 GROUP BY s.skill_id, s.skill_name, s.category`,
		skillID,
	)

	var st SkillStatsRow
	if err := row.Scan(&st.SkillID, &st.SkillName, &st.Category,
		&st.TotalJobs, &st.TotalCandidates, &st.RecentJobs, &st.WeeklyJobs,
		&st.AvgSalaryMin, &st.AvgSalaryMax, &st.MinSalary, &st.MaxSalary); err != nil {
		return SkillStatsRow{}, err
	}
	return st, nil
}

func (r *PostgresSkillMarketRepository) LevelDistribution(ctx context.Context, skillID uuid.UUID) ([]LevelCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(js.required_level, ''), COUNT(*) AS job_count
		 FROM job_skills js
		 JOIN jobs j ON j.job_id = js.job_id
		 WHERE js.skill_id = $1 AND j.status = 'ACTIVE'
		 GROUP BY js.required_level
		 ORDER BY job_count DESC
		 LIMIT 5`,
		skillID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LevelCount, 0)
	for rows.Next() {
		var lc LevelCount
		if err := rows.Scan(&lc.Level, &lc.Count); err != nil {
			return nil, err
		}
		out = append(out, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillMarketRepository) IndustryDistribution(ctx context.Context, skillID uuid.UUID) ([]IndustryCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(c.industry, ''), COUNT(DISTINCT j.job_id) AS job_count
		 FROM job_skills js
		 JOIN jobs j ON j.job_id = js.job_id
		 JOIN companies c ON c.company_id = j.company_id
		 WHERE js.skill_id = $1 AND j.status = 'ACTIVE'
		 GROUP BY c.industry
		 ORDER BY job_count DESC
		 LIMIT 5`,
		skillID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]IndustryCount, 0)
	for rows.Next() {
		var ic IndustryCount
		if err := rows.Scan(&ic.Industry, &ic.Count); err != nil {
			return nil, err
		}
		out = append(out, ic)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillMarketRepository) LocationDistribution(ctx context.Context, skillID uuid.UUID) ([]LocationCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ci.city_name, COALESCE(ci.country_name, ''), COUNT(DISTINCT j.job_id) AS job_count
		 FROM job_skills js
		 JOIN jobs j ON j.job_id = js.job_id
		 JOIN cities ci ON ci.city_id = j.city_id
		 WHERE js.skill_id = $1 AND j.status = 'ACTIVE'
		 GROUP BY ci.city_name, ci.country_name
		 ORDER BY job_count DESC
		 LIMIT 5`,
		skillID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LocationCount, 0)
	for rows.Next() {
		var lc LocationCount
		if err := rows.Scan(&lc.City, &lc.Country, &lc.Count); err != nil {
			return nil, err
		}
		out = append(out, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
