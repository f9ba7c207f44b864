package handler

import (
	"hireflow/internal/delivery/http/dto"
	"hireflow/internal/delivery/http/middleware"
	"hireflow/internal/domain/user"
	"hireflow/internal/pkg/response"
	"hireflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc        usecase.AdminUsecase
	analytics usecase.AnalyticsUsecase
	auth      *middleware.AuthMiddleware
}

type updateUserStatusRequest struct {
	Status string `json:"status"`
}

type moderateJobRequest struct {
	Status string `json:"status"`
}

func NewAdminHandler(uc usecase.AdminUsecase, analytics usecase.AnalyticsUsecase, auth *middleware.AuthMiddleware) *AdminHandler {
	return &AdminHandler{uc: uc, analytics: analytics, auth: auth}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/admin", h.auth.Middleware(), h.auth.RequireRoles(user.RoleAdmin))
	grp.Get("/users", h.ListUsers)
	grp.Patch("/users/:userID/status", h.UpdateUserStatus)
	grp.Delete("/users/:userID", h.DeleteUser)
	grp.Get("/jobs", h.ListJobs)
	grp.Patch("/jobs/:jobID/status", h.ModerateJob)
	grp.Get("/applications", h.ListApplications)
	grp.Get("/statistics", h.Statistics)
	grp.Get("/activity", h.Activity)
}

func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context(), c.Query("role"), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromUser(u))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AdminHandler) UpdateUserStatus(c fiber.Ctx) error {
	targetID, ok := parseUUIDParam(c, "userID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req updateUserStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.UpdateUserStatus(c.Context(), targetID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "User status updated", dto.FromUser(updated))
}

func (h *AdminHandler) DeleteUser(c fiber.Ctx) error {
	targetID, ok := parseUUIDParam(c, "userID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.DeleteUser(c.Context(), targetID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "User deleted", nil)
}

func (h *AdminHandler) ListJobs(c fiber.Ctx) error {
	jobs, err := h.uc.ListJobs(c.Context(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobsWithCount(jobs))
}

func (h *AdminHandler) ModerateJob(c fiber.Ctx) error {
	jobID, ok := parseUUIDParam(c, "jobID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req moderateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.ModerateJob(c.Context(), jobID, req.Status); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Job status updated", nil)
}

func (h *AdminHandler) ListApplications(c fiber.Ctx) error {
	apps, err := h.uc.ListRecentApplications(c.Context(), fiber.Query[int](c, "limit"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSeekerApplications(apps))
}

func (h *AdminHandler) Statistics(c fiber.Ctx) error {
	st, err := h.analytics.PlatformStatistics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPlatformStatistics(st))
}

func (h *AdminHandler) Activity(c fiber.Ctx) error {
	activity, err := h.analytics.PlatformActivity(c.Context(), fiber.Query[int](c, "days"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPlatformActivity(activity))
}
