package handler

import (
	"hireflow/internal/delivery/http/dto"
	"hireflow/internal/delivery/http/middleware"
	"hireflow/internal/domain/user"
	"hireflow/internal/pkg/response"
	"hireflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecruiterHandler struct {
	uc        usecase.RecruiterUsecase
	analytics usecase.AnalyticsUsecase
	auth      *middleware.AuthMiddleware
}

type updateRecruiterProfileRequest struct {
	CompanyName        string `json:"company_name"`
	CompanyWebsite     string `json:"company_website"`
	CompanyDescription string `json:"company_description"`
	CompanyLogoURL     string `json:"company_logo_url"`
	Location           string `json:"location"`
	Industry           string `json:"industry"`
}

func NewRecruiterHandler(uc usecase.RecruiterUsecase, analytics usecase.AnalyticsUsecase, auth *middleware.AuthMiddleware) *RecruiterHandler {
	return &RecruiterHandler{uc: uc, analytics: analytics, auth: auth}
}

func (h *RecruiterHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/recruiters/me",
		h.auth.Middleware(),
		h.auth.RequireRoles(user.RoleRecruiter),
		h.auth.RequireActiveAccount(),
	)
	grp.Get("/", h.Profile)
	grp.Put("/", h.UpdateProfile)
	grp.Get("/statistics", h.Statistics)
	grp.Get("/funnel", h.Funnel)
}

func (h *RecruiterHandler) Profile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	profile, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRecruiterProfile(profile))
}

func (h *RecruiterHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req updateRecruiterProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	profile, err := h.uc.UpdateProfile(c.Context(), userID, usecase.RecruiterProfileInput{
		CompanyName:        req.CompanyName,
		CompanyWebsite:     req.CompanyWebsite,
		CompanyDescription: req.CompanyDescription,
		CompanyLogoURL:     req.CompanyLogoURL,
		Location:           req.Location,
		Industry:           req.Industry,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", dto.FromRecruiterProfile(profile))
}

func (h *RecruiterHandler) Statistics(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	st, err := h.uc.Statistics(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRecruiterStatistics(st))
}

func (h *RecruiterHandler) Funnel(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	funnel, err := h.analytics.HiringFunnel(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromHiringFunnel(funnel))
}
