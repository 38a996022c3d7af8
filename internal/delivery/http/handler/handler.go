package handler

import (
	"talent-match/internal/delivery/http/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindQuery parses query params into out and validates the result. Both
// failure modes are the client's fault.
func bindQuery(c fiber.Ctx, out any) error {
	if err := c.Bind().Query(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid query parameters", nil, err)
	}
	if err := validate.Struct(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid query parameters", nil, err)
	}
	return nil
}

func parseUUIDParam(c fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return id, nil
}
