package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationResponse struct {
	JobID          uuid.UUID `json:"job_id"`
	Title          string    `json:"title"`
	CompanyName    string    `json:"company_name"`
	CompanyLogoURL string    `json:"company_logo_url,omitempty"`
	EmploymentType string    `json:"employment_type"`
	WorkType       string    `json:"work_type"`
	CityName       string    `json:"city_name,omitempty"`
	SalaryMin      *float64  `json:"salary_min"`
	SalaryMax      *float64  `json:"salary_max"`
	PostedAt       time.Time `json:"posted_at"`
	Score          int       `json:"score"`
	Type           string    `json:"type"`
	Reason         string    `json:"reason"`
}

type RecommendationListResponse struct {
	Algorithm       string                   `json:"algorithm"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}
