package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:candidate_id/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	candidateID, err := parseUUIDParam(c, "candidate_id")
	if err != nil {
		return err
	}

	var q dto.RecommendationQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	algorithm := usecase.Algorithm(q.Algorithm)
	if algorithm == "" {
		algorithm = usecase.AlgorithmHybrid
	}

	items, err := h.uc.GetRecommendations(c.Context(), candidateID, usecase.RecommendationParams{
		Algorithm: algorithm,
		Limit:     q.Limit,
	})
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	out := dto.RecommendationListResponse{
		Algorithm:       string(algorithm),
		Recommendations: make([]dto.RecommendationResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Recommendations = append(out.Recommendations, dto.RecommendationResponse{
			JobID:          it.JobID,
			Title:          it.Title,
			CompanyName:    it.CompanyName,
			CompanyLogoURL: it.CompanyLogoURL,
			EmploymentType: it.EmploymentType,
			WorkType:       string(it.WorkType),
			CityName:       it.CityName,
			SalaryMin:      it.SalaryMin,
			SalaryMax:      it.SalaryMax,
			PostedAt:       it.PostedAt,
			Score:          it.Score,
			Type:           string(it.Type),
			Reason:         it.Reason,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
