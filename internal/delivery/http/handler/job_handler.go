package handler

import (
	"strconv"
	"strings"

	"hireflow/internal/delivery/http/dto"
	"hireflow/internal/delivery/http/middleware"
	"hireflow/internal/domain/user"
	"hireflow/internal/pkg/response"
	"hireflow/internal/repository"
	"hireflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc   usecase.JobUsecase
	auth *middleware.AuthMiddleware
}

type requiredSkillRequest struct {
	SkillID     uuid.UUID `json:"skill_id"`
	IsMandatory bool      `json:"is_mandatory"`
}

type jobRequest struct {
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Requirements   string                  `json:"requirements"`
	Location       string                  `json:"location"`
	JobType        string                  `json:"job_type"`
	SalaryMin      *int64                  `json:"salary_min"`
	SalaryMax      *int64                  `json:"salary_max"`
	Status         string                  `json:"status"`
	RequiredSkills *[]requiredSkillRequest `json:"required_skills"`
}

func NewJobHandler(uc usecase.JobUsecase, auth *middleware.AuthMiddleware) *JobHandler {
	return &JobHandler{uc: uc, auth: auth}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.List)

	// Fiber v3 runs route handlers in argument order, so the auth chain
	// must come before the terminal handler.
	grp.Get("/mine", h.auth.Middleware(), h.auth.RequireRoles(user.RoleRecruiter), h.auth.RequireActiveAccount(), h.ListMine)
	grp.Post("/", h.auth.Middleware(), h.auth.RequireRoles(user.RoleRecruiter), h.auth.RequireActiveAccount(), h.Create)
	grp.Put("/:jobID", h.auth.Middleware(), h.auth.RequireRoles(user.RoleRecruiter), h.auth.RequireActiveAccount(), h.Update)
	grp.Delete("/:jobID", h.auth.Middleware(), h.auth.RequireRoles(user.RoleRecruiter), h.auth.RequireActiveAccount(), h.Delete)

	grp.Get("/:jobID", h.Get)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	filter := repository.JobListFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
		Limit:    fiber.Query[int](c, "limit"),
		Offset:   fiber.Query[int](c, "offset"),
	}
	if v, err := strconv.ParseInt(c.Query("salary_min"), 10, 64); err == nil {
		filter.SalaryMin = &v
	}
	if v, err := strconv.ParseInt(c.Query("salary_max"), 10, 64); err == nil {
		filter.SalaryMax = &v
	}
	for _, raw := range strings.Split(c.Query("skill_ids"), ",") {
		if id, err := uuid.Parse(strings.TrimSpace(raw)); err == nil {
			filter.SkillIDs = append(filter.SkillIDs, id)
		}
	}

	jobs, err := h.uc.ListJobs(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobDetails(jobs))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	jobID, ok := parseUUIDParam(c, "jobID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	detail, err := h.uc.GetJob(c.Context(), jobID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobDetail(detail))
}

func (h *JobHandler) ListMine(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	jobs, err := h.uc.ListMyJobs(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobsWithCount(jobs))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	detail, err := h.uc.CreateJob(c.Context(), userID, toJobInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusCreated, "Job posted", dto.FromJobDetail(detail))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	jobID, ok := parseUUIDParam(c, "jobID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	detail, err := h.uc.UpdateJob(c.Context(), userID, jobID, toJobInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Job updated", dto.FromJobDetail(detail))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	jobID, ok := parseUUIDParam(c, "jobID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.DeleteJob(c.Context(), userID, jobID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted", nil)
}

func toJobInput(req jobRequest) usecase.JobInput {
	in := usecase.JobInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		JobType:      req.JobType,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Status:       req.Status,
	}
	if req.RequiredSkills != nil {
		in.SkillsProvided = true
		for _, s := range *req.RequiredSkills {
			in.RequiredSkills = append(in.RequiredSkills, usecase.RequiredSkillInput{
				SkillID:     s.SkillID,
				IsMandatory: s.IsMandatory,
			})
		}
	}
	return in
}
