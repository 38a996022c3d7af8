package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MarketHandler struct {
	uc usecase.MarketUsecase
}

func NewMarketHandler(uc usecase.MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

func (h *MarketHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/trending", h.GetTrendingSkills)
	r.Get("/:skill_id/insights", h.GetSkillInsights)
}

func (h *MarketHandler) GetTrendingSkills(c fiber.Ctx) error {
	var q dto.TrendingSkillsQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	skills, err := h.uc.TrendingSkills(c.Context(), usecase.TrendingSkillsParams{
		Limit:      q.Limit,
		WindowDays: q.WindowDays,
	})
	if err != nil {
		return mapMarketUsecaseError(err)
	}

	out := make([]dto.TrendingSkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, dto.TrendingSkillResponse{
			SkillID:           s.SkillID,
			SkillName:         s.SkillName,
			Category:          s.Category,
			JobDemand:         s.JobDemand,
			CandidateSupply:   s.CandidateSupply,
			DemandSupplyRatio: s.DemandSupplyRatio,
			RecentJobDemand:   s.RecentJobDemand,
			AvgSalaryMax:      s.AvgSalaryMax,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MarketHandler) GetSkillInsights(c fiber.Ctx) error {
	skillID, err := parseUUIDParam(c, "skill_id")
	if err != nil {
		return err
	}

	insights, err := h.uc.SkillInsights(c.Context(), skillID)
	if err != nil {
		return mapMarketUsecaseError(err)
	}

	out := dto.SkillInsightsResponse{
		SkillID:   insights.SkillID,
		SkillName: insights.SkillName,
		Category:  insights.Category,

		TotalJobs:         insights.TotalJobs,
		TotalCandidates:   insights.TotalCandidates,
		RecentJobs:        insights.RecentJobs,
		WeeklyJobs:        insights.WeeklyJobs,
		DemandSupplyRatio: insights.DemandSupplyRatio,

		AvgSalaryMin: insights.AvgSalaryMin,
		AvgSalaryMax: insights.AvgSalaryMax,
		MinSalary:    insights.MinSalary,
		MaxSalary:    insights.MaxSalary,

		LevelDistribution:    make([]dto.LevelCountResponse, 0, len(insights.LevelDistribution)),
		IndustryDistribution: make([]dto.IndustryCountResponse, 0, len(insights.IndustryDistribution)),
		LocationDistribution: make([]dto.LocationCountResponse, 0, len(insights.LocationDistribution)),
	}
	for _, lc := range insights.LevelDistribution {
		out.LevelDistribution = append(out.LevelDistribution, dto.LevelCountResponse{Level: lc.Level, Count: lc.Count})
	}
	for _, ic := range insights.IndustryDistribution {
		out.IndustryDistribution = append(out.IndustryDistribution, dto.IndustryCountResponse{Industry: ic.Industry, Count: ic.Count})
	}
	for _, lc := range insights.LocationDistribution {
		out.LocationDistribution = append(out.LocationDistribution, dto.LocationCountResponse{City: lc.City, Country: lc.Country, Count: lc.Count})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMarketUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
