package handler

import (
	"hireflow/internal/delivery/http/dto"
	"hireflow/internal/delivery/http/middleware"
	"hireflow/internal/domain/user"
	"hireflow/internal/pkg/response"
	"hireflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc   usecase.ApplicationUsecase
	auth *middleware.AuthMiddleware
}

type applyRequest struct {
	JobID       uuid.UUID `json:"job_id"`
	CoverLetter string    `json:"cover_letter"`
}

type updateApplicationStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase, auth *middleware.AuthMiddleware) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, auth: auth}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	seekerOnly := []any{
		h.auth.Middleware(),
		h.auth.RequireRoles(user.RoleJobSeeker),
		h.auth.RequireActiveAccount(),
	}
	// Fiber v3 runs route handlers in argument order, so the auth chain
	// must come before the terminal handler.
	apps := r.Group("/applications")
	apps.Post("/", h.auth.Middleware(), h.auth.RequireRoles(user.RoleJobSeeker), h.auth.RequireActiveAccount(), h.Apply)
	apps.Get("/mine", h.auth.Middleware(), h.auth.RequireRoles(user.RoleJobSeeker), h.auth.RequireActiveAccount(), h.ListMine)
	apps.Patch("/:applicationID/status", h.auth.Middleware(), h.auth.RequireRoles(user.RoleRecruiter), h.auth.RequireActiveAccount(), h.UpdateStatus)
	apps.Get("/:applicationID", h.auth.Middleware(), h.auth.RequireActiveAccount(), h.Get)

	r.Get("/jobs/:jobID/applications", h.auth.Middleware(), h.auth.RequireRoles(user.RoleRecruiter), h.auth.RequireActiveAccount(), h.ListApplicants)

	saved := r.Group("/saved-jobs", seekerOnly...)
	saved.Get("/", h.ListSaved)
	saved.Post("/:jobID", h.Save)
	saved.Delete("/:jobID", h.Unsave)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if req.JobID == uuid.Nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Apply(c.Context(), userID, usecase.ApplyInput{
		JobID:       req.JobID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted", dto.FromApplication(created))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	apps, err := h.uc.ListMyApplications(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSeekerApplications(apps))
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	applicationID, ok := parseUUIDParam(c, "applicationID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	app, err := h.uc.GetApplication(c.Context(), userID, applicationID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplication(app))
}

func (h *ApplicationHandler) ListApplicants(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	jobID, ok := parseUUIDParam(c, "jobID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	cards, err := h.uc.ListApplicants(c.Context(), userID, jobID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplicants(cards))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	applicationID, ok := parseUUIDParam(c, "applicationID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req updateApplicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.UpdateStatus(c.Context(), userID, applicationID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Application status updated", dto.FromApplication(updated))
}

func (h *ApplicationHandler) Save(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	jobID, ok := parseUUIDParam(c, "jobID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.SaveJob(c.Context(), userID, jobID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Job saved", nil)
}

func (h *ApplicationHandler) Unsave(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	jobID, ok := parseUUIDParam(c, "jobID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.UnsaveJob(c.Context(), userID, jobID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Job unsaved", nil)
}

func (h *ApplicationHandler) ListSaved(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	jobs, err := h.uc.ListSavedJobs(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dto.FromJob(j, nil))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
