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

type SeekerHandler struct {
	uc   usecase.SeekerUsecase
	recs usecase.RecommendationUsecase
	auth *middleware.AuthMiddleware
}

type updateSeekerProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

type seekerSkillRequest struct {
	SkillID          uuid.UUID `json:"skill_id"`
	ProficiencyLevel string    `json:"proficiency_level"`
}

type setSeekerSkillsRequest struct {
	Skills []seekerSkillRequest `json:"skills"`
}

type seekerProfileResponse struct {
	Profile dto.SeekerProfileResponse `json:"profile"`
	Skills  []dto.SeekerSkillResponse `json:"skills"`
}

func NewSeekerHandler(uc usecase.SeekerUsecase, recs usecase.RecommendationUsecase, auth *middleware.AuthMiddleware) *SeekerHandler {
	return &SeekerHandler{uc: uc, recs: recs, auth: auth}
}

func (h *SeekerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/seekers/me",
		h.auth.Middleware(),
		h.auth.RequireRoles(user.RoleJobSeeker),
		h.auth.RequireActiveAccount(),
	)
	grp.Get("/", h.Profile)
	grp.Put("/", h.UpdateProfile)
	grp.Post("/skills", h.SetSkills)
	grp.Delete("/skills/:skillID", h.RemoveSkill)
	grp.Get("/statistics", h.Statistics)
	grp.Get("/recommendations", h.Recommendations)
}

func (h *SeekerHandler) Profile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	profile, skills, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, seekerProfileResponse{
		Profile: dto.FromSeekerProfile(profile),
		Skills:  dto.FromSeekerSkills(skills),
	})
}

func (h *SeekerHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req updateSeekerProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	profile, err := h.uc.UpdateProfile(c.Context(), userID, usecase.SeekerProfileInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Location: req.Location,
		Bio:      req.Bio,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", dto.FromSeekerProfile(profile))
}

func (h *SeekerHandler) SetSkills(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req setSeekerSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	in := make([]usecase.SeekerSkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		in = append(in, usecase.SeekerSkillInput{SkillID: s.SkillID, ProficiencyLevel: s.ProficiencyLevel})
	}

	skills, err := h.uc.SetSkills(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Skills updated", dto.FromSeekerSkills(skills))
}

func (h *SeekerHandler) RemoveSkill(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}
	skillID, ok := parseUUIDParam(c, "skillID")
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.RemoveSkill(c.Context(), userID, skillID); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Skill removed", nil)
}

func (h *SeekerHandler) Statistics(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	st, err := h.uc.Statistics(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSeekerStatistics(st))
}

func (h *SeekerHandler) Recommendations(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	recs, err := h.recs.Recommend(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRecommendations(recs))
}
