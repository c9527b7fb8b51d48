package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rafidhms/jobtrail/internal/dto"
	"github.com/rafidhms/jobtrail/internal/middleware"
	"github.com/rafidhms/jobtrail/internal/usecase"
	"github.com/rafidhms/jobtrail/internal/util"
)

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(router fiber.Router) {
	grp := router.Group("/applications", middleware.Authenticate())
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	var req dto.CreateApplicationRequest
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

	app, err := h.uc.Create(userID, req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Server error during application creation",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application created successfully",
		Data:    app,
	})
}

// List returns every application owned by the caller, newest first.
// With a page query param the result is paginated instead.
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	if page := c.QueryInt("page"); page > 0 {
		apps, pagination, err := h.uc.ListPaged(userID, page, c.QueryInt("limit"))
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "Server error fetching applications",
			}, err)
		}
		count := len(apps)
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Count:      &count,
			Pagination: pagination,
			Data:       apps,
		})
	}

	apps, err := h.uc.List(userID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Server error fetching applications",
		}, err)
	}

	count := len(apps)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Count: &count,
		Data:  apps,
	})
}

func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	id := c.Params("id")

	var req dto.UpdateApplicationRequest
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

	app, err := h.uc.Update(userID, id, req)
	if err != nil {
		if errors.Is(err, usecase.ErrApplicationNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Application not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Server error updating application",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Application updated successfully",
		Data:    app,
	})
}

func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	id := c.Params("id")

	if err := h.uc.Delete(userID, id); err != nil {
		if errors.Is(err, usecase.ErrApplicationNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Application not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Server error deleting application",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Application deleted successfully",
	})
}
