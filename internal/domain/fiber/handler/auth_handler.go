package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rafidhms/jobtrail/internal/dto"
	"github.com/rafidhms/jobtrail/internal/middleware"
	"github.com/rafidhms/jobtrail/internal/usecase"
	"github.com/rafidhms/jobtrail/internal/util"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	grp := router.Group("/auth")
	grp.Post("/register", h.Register)
	grp.Post("/login", h.Login)
	grp.Get("/profile", middleware.Authenticate(), h.Profile)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
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

	user, token, err := h.uc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "User already exists with this email",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Server error during registration",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "User registered successfully",
		Data: dto.AuthDTO{
			User:  dto.NewUserDTO(user, false),
			Token: token,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
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

	user, token, err := h.uc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid email or password",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Server error during login",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Login successful",
		Data: dto.AuthDTO{
			User:  dto.NewUserDTO(user, false),
			Token: token,
		},
	})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	user, err := h.uc.Profile(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "User not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Server error",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: fiber.Map{"user": dto.NewUserDTO(user, true)},
	})
}
