package repository

import (
	"context"
	"database/sql"
	"errors"

	"talent-match/internal/database"
	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

// BehaviorSimilarJob is a job sharing employment type, work mode, or company
// with something the candidate already applied to, plus how many of those
// attributes it shares.
type BehaviorSimilarJob struct {
	Job             matching.Job
	SharedAttributes int
}

type JobRepository interface {
	FindByID(ctx context.Context, jobID uuid.UUID) (matching.Job, error)
	// ListOpenForCandidate returns ACTIVE jobs with a future deadline, skills
	// pre-aggregated. When excludeApplied is set, jobs the candidate already
	// applied to are filtered store-side.
	ListOpenForCandidate(ctx context.Context, candidateID uuid.UUID, excludeApplied bool) ([]matching.Job, error)
	ListSimilarToApplied(ctx context.Context, candidateID uuid.UUID, limit int) ([]BehaviorSimilarJob, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, jobID uuid.UUID) (matching.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT j.job_id, COALESCE(j.title, ''), c.company_name, COALESCE(c.logo_url, ''),
		        COALESCE(j.employment_type, ''), COALESCE(j.work_type, 'ONSITE'), j.city_id,
		        COALESCE(ci.city_name, ''), COALESCE(j.experience_required, 0), j.education_required,
		        j.salary_min, j.salary_max, j.deadline, j.created_at
		 FROM jobs j
		 JOIN companies c ON c.company_id = j.company_id
		 LEFT JOIN cities ci ON ci.city_id = j.city_id
		 WHERE j.job_id = $1`,
		jobID,
	)

	j, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return matching.Job{}, ErrJobNotFound
		}
		return matching.Job{}, err
	}

	skills, err := r.findSkills(ctx, jobID)
	if err != nil {
		return matching.Job{}, err
	}
	j.Skills = skills
	return j, nil
}

func (r *PostgresJobRepository) findSkills(ctx context.Context, jobID uuid.UUID) ([]matching.JobSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT js.skill_id, s.skill_name, COALESCE(js.required_level, ''), COALESCE(js.is_required, TRUE)
		 FROM job_skills js
		 JOIN skills s ON s.skill_id = js.skill_id
		 WHERE js.job_id = $1
		 ORDER BY s.skill_name ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.JobSkill, 0)
	for rows.Next() {
		var js matching.JobSkill
		var level string
		if err := rows.Scan(&js.SkillID, &js.SkillName, &level, &js.IsRequired); err != nil {
			return nil, err
		}
		js.RequiredLevel = matching.ParseProficiency(level)
		out = append(out, js)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) ListOpenForCandidate(ctx context.Context, candidateID uuid.UUID, excludeApplied bool) ([]matching.Job, error) {
	query := `SELECT j.job_id, COALESCE(j.title, ''), c.company_name, COALESCE(c.logo_url, ''),
	                 COALESCE(j.employment_type, ''), COALESCE(j.work_type, 'ONSITE'), j.city_id,
	                 COALESCE(ci.city_name, ''), COALESCE(j.experience_required, 0), j.education_required,
	                 j.salary_min, j.salary_max, j.deadline, j.created_at,
	                 COALESCE(js.skill_ids, ARRAY[]::uuid[])
	          FROM jobs j
	          JOIN companies c ON c.company_id = j.company_id
	          LEFT JOIN cities ci ON ci.city_id = j.city_id
	          LEFT JOIN (
	            SELECT job_id, array_agg(skill_id) AS skill_ids
	            FROM job_skills
	            GROUP BY job_id
	          ) js ON js.job_id = j.job_id
	          WHERE j.status = 'ACTIVE'
	            AND j.deadline > NOW()`
	if excludeApplied {
		query += `
	            AND NOT EXISTS (
	              SELECT 1 FROM applications a
	              WHERE a.job_id = j.job_id AND a.candidate_id = $1
	            )`
	} else {
		query += `
	            AND $1::uuid IS NOT NULL`
	}
	query += `
	          ORDER BY j.created_at DESC, j.job_id ASC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Job, 0)
	for rows.Next() {
		var j matching.Job
		var education sql.NullString
		var workType string
		var skillIDs []uuid.UUID
		if err := rows.Scan(&j.ID, &j.Title, &j.CompanyName, &j.CompanyLogoURL,
			&j.EmploymentType, &workType, &j.CityID, &j.CityName,
			&j.ExperienceRequired, &education, &j.SalaryMin, &j.SalaryMax,
			&j.Deadline, &j.PostedAt, &skillIDs); err != nil {
			return nil, err
		}
		j.WorkType = matching.WorkType(workType)
		j.EducationRequired = parseEducationRequired(education)
		j.Skills = make([]matching.JobSkill, 0, len(skillIDs))
		for _, id := range skillIDs {
			j.Skills = append(j.Skills, matching.JobSkill{SkillID: id, IsRequired: true})
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) ListSimilarToApplied(ctx context.Context, candidateID uuid.UUID, limit int) ([]BehaviorSimilarJob, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(ctx,
		`WITH candidate_applications AS (
		   SELECT DISTINCT j.job_id, j.company_id, j.employment_type, j.work_type
		   FROM applications a
		   JOIN jobs j ON j.job_id = a.job_id
		   WHERE a.candidate_id = $1
		 )
		 SELECT j.job_id, COALESCE(j.title, ''), c.company_name, COALESCE(c.logo_url, ''),
		        COALESCE(j.employment_type, ''), COALESCE(j.work_type, 'ONSITE'), j.city_id,
		        COALESCE(ci.city_name, ''), COALESCE(j.experience_required, 0), j.education_required,
		        j.salary_min, j.salary_max, j.deadline, j.created_at,
		        COUNT(*) AS shared_attributes
		 FROM jobs j
		 JOIN companies c ON c.company_id = j.company_id
		 LEFT JOIN cities ci ON ci.city_id = j.city_id
		 JOIN candidate_applications ca ON (
		   j.employment_type = ca.employment_type OR
		   j.work_type = ca.work_type OR
		   j.company_id = ca.company_id
		 )
		 WHERE j.status = 'ACTIVE'
		   AND j.deadline > NOW()
		   AND NOT EXISTS (
		     SELECT 1 FROM applications a2
		     WHERE a2.job_id = j.job_id AND a2.candidate_id = $1
		   )
		 GROUP BY j.job_id, j.title, c.company_name, c.logo_url, j.employment_type,
		          j.work_type, j.city_id, ci.city_name, j.experience_required,
		          j.education_required, j.salary_min, j.salary_max, j.deadline, j.created_at
		 ORDER BY shared_attributes DESC, j.created_at DESC, j.job_id ASC
		 LIMIT $2`,
		candidateID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BehaviorSimilarJob, 0)
	for rows.Next() {
		var item BehaviorSimilarJob
		var education sql.NullString
		var workType string
		if err := rows.Scan(&item.Job.ID, &item.Job.Title, &item.Job.CompanyName, &item.Job.CompanyLogoURL,
			&item.Job.EmploymentType, &workType, &item.Job.CityID, &item.Job.CityName,
			&item.Job.ExperienceRequired, &education, &item.Job.SalaryMin, &item.Job.SalaryMax,
			&item.Job.Deadline, &item.Job.PostedAt, &item.SharedAttributes); err != nil {
			return nil, err
		}
		item.Job.WorkType = matching.WorkType(workType)
		item.Job.EducationRequired = parseEducationRequired(education)
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type jobRow interface {
	Scan(dest ...any) error
}

func scanJob(row jobRow) (matching.Job, error) {
	var j matching.Job
	var education sql.NullString
	var workType string
	if err := row.Scan(&j.ID, &j.Title, &j.CompanyName, &j.CompanyLogoURL,
		&j.EmploymentType, &workType, &j.CityID, &j.CityName,
		&j.ExperienceRequired, &education, &j.SalaryMin, &j.SalaryMax,
		&j.Deadline, &j.PostedAt); err != nil {
		return matching.Job{}, err
	}
	j.WorkType = matching.WorkType(workType)
	j.EducationRequired = parseEducationRequired(education)
	return j, nil
}

func parseEducationRequired(v sql.NullString) *matching.Education {
	if !v.Valid || v.String == "" {
		return nil
	}
	e := matching.ParseEducation(v.String)
	if e == matching.EducationUnknown {
		return nil
	}
	return &e
}
