package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rafidhms/jobtrail/internal/dto"
	"github.com/rafidhms/jobtrail/internal/middleware"
	"github.com/rafidhms/jobtrail/internal/usecase"
	"github.com/rafidhms/jobtrail/internal/util"
)

type AIHandler struct {
	uc *usecase.AIUsecase
}

func NewAIHandler(uc *usecase.AIUsecase) *AIHandler {
	return &AIHandler{uc: uc}
}

func (h *AIHandler) RegisterRoutes(router fiber.Router) {
	grp := router.Group("/ai", middleware.Authenticate())
	grp.Post("/optimize", h.Optimize)
	grp.Post("/cover-letter", h.CoverLetter)
}

// Optimize proxies to the model provider. Upstream failures still answer
// 200 with the fallback payload; the usecase owns that contract.
func (h *AIHandler) Optimize(c *fiber.Ctx) error {
	var req dto.OptimizeResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if errs := util.ValidateStruct(req); errs != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Validation failed",
			Details: errs,
		})
	}

	result := h.uc.OptimizeResume(c.UserContext(), req)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: result,
	})
}

func (h *AIHandler) CoverLetter(c *fiber.Ctx) error {
	var req dto.GenerateCoverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if errs := util.ValidateStruct(req); errs != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Validation failed",
			Details: errs,
		})
	}

	result := h.uc.GenerateCoverLetter(c.UserContext(), req)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: result,
	})
}
