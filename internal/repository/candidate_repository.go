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
	ErrCandidateNotFound = errors.New("candidate not found")
)

type CandidateRepository interface {
	FindByID(ctx context.Context, profileID uuid.UUID) (matching.Candidate, error)
	// ListEligibleForJob returns active candidates without an application for
	// the job, skills pre-aggregated so the whole set costs one round trip.
	ListEligibleForJob(ctx context.Context, jobID uuid.UUID) ([]matching.Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, profileID uuid.UUID) (matching.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT cp.profile_id, COALESCE(cp.full_name, ''), COALESCE(cp.years_experience, 0),
		        COALESCE(cp.education_level, ''), cp.expected_salary, cp.city_id
		 FROM candidate_profiles cp
		 JOIN users u ON u.user_id = cp.user_id
		 WHERE cp.profile_id = $1`,
		profileID,
	)

	var c matching.Candidate
	var education string
	if err := row.Scan(&c.ID, &c.FullName, &c.YearsExperience, &education, &c.ExpectedSalary, &c.CityID); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return matching.Candidate{}, ErrCandidateNotFound
		}
		return matching.Candidate{}, err
	}
	c.Education = matching.ParseEducation(education)

	skills, err := r.findSkills(ctx, profileID)
	if err != nil {
		return matching.Candidate{}, err
	}
	c.Skills = skills
	return c, nil
}

func (r *PostgresCandidateRepository) findSkills(ctx context.Context, profileID uuid.UUID) ([]matching.CandidateSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cs.skill_id, s.skill_name, COALESCE(cs.proficiency_level, ''), COALESCE(cs.years_experience, 0)
		 FROM candidate_skills cs
		 JOIN skills s ON s.skill_id = cs.skill_id
		 WHERE cs.profile_id = $1
		 ORDER BY s.skill_name ASC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.CandidateSkill, 0)
	for rows.Next() {
		var cs matching.CandidateSkill
		var level string
		if err := rows.Scan(&cs.SkillID, &cs.SkillName, &level, &cs.YearsExperience); err != nil {
			return nil, err
		}
		cs.Proficiency = matching.ParseProficiency(level)
		out = append(out, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) ListEligibleForJob(ctx context.Context, jobID uuid.UUID) ([]matching.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cp.profile_id, COALESCE(cp.full_name, ''), COALESCE(cp.years_experience, 0),
		        COALESCE(cp.education_level, ''), cp.expected_salary, cp.city_id,
		        COALESCE(cs.skill_ids, ARRAY[]::uuid[])
		 FROM candidate_profiles cp
		 JOIN users u ON u.user_id = cp.user_id
		 LEFT JOIN (
		   SELECT profile_id, array_agg(skill_id) AS skill_ids
		   FROM candidate_skills
		   GROUP BY profile_id
		 ) cs ON cs.profile_id = cp.profile_id
		 WHERE u.status = 'ACTIVE'
		   AND u.role = 'CANDIDATE'
		   AND NOT EXISTS (
		     SELECT 1 FROM applications a
		     WHERE a.job_id = $1 AND a.candidate_id = cp.profile_id
		   )
		 ORDER BY cp.profile_id ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Candidate, 0)
	for rows.Next() {
		var c matching.Candidate
		var education string
		var skillIDs []uuid.UUID
		if err := rows.Scan(&c.ID, &c.FullName, &c.YearsExperience, &education, &c.ExpectedSalary, &c.CityID, &skillIDs); err != nil {
			return nil, err
		}
		c.Education = matching.ParseEducation(education)
		c.Skills = make([]matching.CandidateSkill, 0, len(skillIDs))
		for _, id := range skillIDs {
			c.Skills = append(c.Skills, matching.CandidateSkill{SkillID: id})
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
