package dto

import (
	"time"

	"github.com/google/uuid"
)

type SimilarCandidateResponse struct {
	CandidateID     uuid.UUID `json:"candidate_id"`
	FullName        string    `json:"full_name"`
	YearsExperience int       `json:"years_experience"`
	Education       string    `json:"education"`
	ExpectedSalary  *float64  `json:"expected_salary"`
	Score           int       `json:"score"`
}

type SimilarJobResponse struct {
	JobID          uuid.UUID  `json:"job_id"`
	Title          string     `json:"title"`
	CompanyName    string     `json:"company_name"`
	CompanyLogoURL string     `json:"company_logo_url,omitempty"`
	EmploymentType string     `json:"employment_type"`
	WorkType       string     `json:"work_type"`
	CityName       string     `json:"city_name,omitempty"`
	SalaryMin      *float64   `json:"salary_min"`
	SalaryMax      *float64   `json:"salary_max"`
	Deadline       *time.Time `json:"deadline"`
	PostedAt       time.Time  `json:"posted_at"`
	Score          int        `json:"score"`
}
