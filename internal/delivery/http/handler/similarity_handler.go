package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SimilarityHandler struct {
	uc usecase.SimilarityUsecase
}

func NewSimilarityHandler(uc usecase.SimilarityUsecase) *SimilarityHandler {
	return &SimilarityHandler{uc: uc}
}

func (h *SimilarityHandler) RegisterJobRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:job_id/similar-candidates", h.GetSimilarCandidates)
}

func (h *SimilarityHandler) RegisterCandidateRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:candidate_id/similar-jobs", h.GetSimilarJobs)
}

func (h *SimilarityHandler) GetSimilarCandidates(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	var q dto.SimilaritySearchQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	matches, err := h.uc.FindSimilarCandidates(c.Context(), jobID, usecase.SimilarCandidatesParams{
		MinScore: q.MinScore,
		Limit:    q.Limit,
	})
	if err != nil {
		return mapSimilarityUsecaseError(err)
	}

	out := make([]dto.SimilarCandidateResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.SimilarCandidateResponse{
			CandidateID:     m.CandidateID,
			FullName:        m.FullName,
			YearsExperience: m.YearsExperience,
			Education:       m.Education.String(),
			ExpectedSalary:  m.ExpectedSalary,
			Score:           m.Score,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *SimilarityHandler) GetSimilarJobs(c fiber.Ctx) error {
	candidateID, err := parseUUIDParam(c, "candidate_id")
	if err != nil {
		return err
	}

	var q dto.SimilarJobsQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	matches, err := h.uc.FindSimilarJobs(c.Context(), candidateID, usecase.SimilarJobsParams{
		MinScore:       q.MinScore,
		Limit:          q.Limit,
		IncludeApplied: q.ExcludeApplied != nil && !*q.ExcludeApplied,
	})
	if err != nil {
		return mapSimilarityUsecaseError(err)
	}

	out := make([]dto.SimilarJobResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.SimilarJobResponse{
			JobID:          m.JobID,
			Title:          m.Title,
			CompanyName:    m.CompanyName,
			CompanyLogoURL: m.CompanyLogoURL,
			EmploymentType: m.EmploymentType,
			WorkType:       string(m.WorkType),
			CityName:       m.CityName,
			SalaryMin:      m.SalaryMin,
			SalaryMax:      m.SalaryMax,
			Deadline:       m.Deadline,
			PostedAt:       m.PostedAt,
			Score:          m.Score,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapSimilarityUsecaseError(err error) error {
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
