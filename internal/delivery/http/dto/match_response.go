package dto

import "github.com/google/uuid"

type MatchScoresResponse struct {
	SkillScore      int `json:"skill_score"`
	ExperienceScore int `json:"experience_score"`
	EducationScore  int `json:"education_score"`
	LocationScore   int `json:"location_score"`
	SalaryScore     int `json:"salary_score"`
}

type MatchSkillAnalysisResponse struct {
	MatchedSkills        int `json:"matched_skills"`
	TotalRequiredSkills  int `json:"total_required_skills"`
	TotalCandidateSkills int `json:"total_candidate_skills"`
}

type MatchJobResponse struct {
	Title          string   `json:"title"`
	CompanyName    string   `json:"company_name"`
	CompanyLogoURL string   `json:"company_logo_url,omitempty"`
	EmploymentType string   `json:"employment_type"`
	WorkType       string   `json:"work_type"`
	CityName       string   `json:"city_name,omitempty"`
	SalaryMin      *float64 `json:"salary_min"`
	SalaryMax      *float64 `json:"salary_max"`
}

type MatchResultResponse struct {
	CandidateID   uuid.UUID                  `json:"candidate_id"`
	JobID         uuid.UUID                  `json:"job_id"`
	TotalScore    int                        `json:"total_score"`
	Grade         string                     `json:"grade"`
	Scores        MatchScoresResponse        `json:"scores"`
	SkillAnalysis MatchSkillAnalysisResponse `json:"skill_analysis"`
	Job           MatchJobResponse           `json:"job"`
	HasApplied    bool                       `json:"has_applied"`
}
