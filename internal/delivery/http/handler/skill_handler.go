package handler

import (
	"hireflow/internal/delivery/http/middleware"
	"hireflow/internal/pkg/response"
	"hireflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc   usecase.SkillUsecase
	auth *middleware.AuthMiddleware
}

type createSkillRequest struct {
	Name string `json:"name"`
}

func NewSkillHandler(uc usecase.SkillUsecase, auth *middleware.AuthMiddleware) *SkillHandler {
	return &SkillHandler{uc: uc, auth: auth}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.auth.Middleware(), h.auth.RequireActiveAccount(), h.Create)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	query := c.Query("q")

	var (
		items []usecase.SkillItem
		err   error
	)
	if query != "" {
		items, err = h.uc.SearchSkills(c.Context(), query)
	} else {
		items, err = h.uc.ListSkills(c.Context())
	}
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.AddSkill(c.Context(), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Skill registered", created)
}
