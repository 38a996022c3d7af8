package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:job_id/candidates/:candidate_id/match", h.GetMatch)
}

func (h *MatchHandler) GetMatch(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}
	candidateID, err := parseUUIDParam(c, "candidate_id")
	if err != nil {
		return err
	}

	res, err := h.uc.CalculateMatch(c.Context(), candidateID, jobID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.MatchResultResponse{
		CandidateID: res.CandidateID,
		JobID:       res.JobID,
		TotalScore:  res.TotalScore,
		Grade:       string(res.Grade),
		Scores: dto.MatchScoresResponse{
			SkillScore:      res.SkillScore,
			ExperienceScore: res.ExperienceScore,
			EducationScore:  res.EducationScore,
			LocationScore:   res.LocationScore,
			SalaryScore:     res.SalaryScore,
		},
		SkillAnalysis: dto.MatchSkillAnalysisResponse{
			MatchedSkills:        res.MatchedSkills,
			TotalRequiredSkills:  res.TotalRequiredSkills,
			TotalCandidateSkills: res.TotalCandidateSkills,
		},
		Job: dto.MatchJobResponse{
			Title:          res.JobTitle,
			CompanyName:    res.CompanyName,
			CompanyLogoURL: res.CompanyLogoURL,
			EmploymentType: res.EmploymentType,
			WorkType:       string(res.WorkType),
			CityName:       res.CityName,
			SalaryMin:      res.SalaryMin,
			SalaryMax:      res.SalaryMax,
		},
		HasApplied: res.HasApplied,
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
