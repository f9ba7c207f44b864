package dto

import (
	"time"

	"hireflow/internal/domain/user"
	"hireflow/internal/repository"
	"hireflow/internal/usecase"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SeekerProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Bio       string    `json:"bio"`
	ResumeURL string    `json:"resume_url"`
}

type RecruiterProfileResponse struct {
	ID                 uuid.UUID `json:"id"`
	CompanyName        string    `json:"company_name"`
	CompanyWebsite     string    `json:"company_website"`
	CompanyDescription string    `json:"company_description"`
	CompanyLogoURL     string    `json:"company_logo_url"`
	Location           string    `json:"location"`
	Industry           string    `json:"industry"`
}

type AccountResponse struct {
	UserResponse
	SeekerProfile    *SeekerProfileResponse    `json:"job_seeker_profile,omitempty"`
	RecruiterProfile *RecruiterProfileResponse `json:"recruiter_profile,omitempty"`
}

type SeekerSkillResponse struct {
	SkillID          uuid.UUID `json:"skill_id"`
	Name             string    `json:"name"`
	ProficiencyLevel string    `json:"proficiency_level"`
}

func FromUser(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

func FromAccount(acc usecase.Account) AccountResponse {
	out := AccountResponse{UserResponse: FromUser(acc.User)}
	if acc.SeekerProfile != nil {
		p := FromSeekerProfile(*acc.SeekerProfile)
		out.SeekerProfile = &p
	}
	if acc.RecruiterProfile != nil {
		p := FromRecruiterProfile(*acc.RecruiterProfile)
		out.RecruiterProfile = &p
	}
	return out
}

func FromSeekerProfile(p repository.SeekerProfile) SeekerProfileResponse {
	return SeekerProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Location:  p.Location,
		Bio:       p.Bio,
		ResumeURL: p.ResumeURL,
	}
}

func FromRecruiterProfile(p repository.RecruiterProfile) RecruiterProfileResponse {
	return RecruiterProfileResponse{
		ID:                 p.ID,
		CompanyName:        p.CompanyName,
		CompanyWebsite:     p.CompanyWebsite,
		CompanyDescription: p.CompanyDescription,
		CompanyLogoURL:     p.CompanyLogoURL,
		Location:           p.Location,
		Industry:           p.Industry,
	}
}

func FromSeekerSkills(skills []repository.SeekerSkill) []SeekerSkillResponse {
	out := make([]SeekerSkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SeekerSkillResponse{
			SkillID:          s.SkillID,
			Name:             s.SkillName,
			ProficiencyLevel: s.ProficiencyLevel,
		})
	}
	return out
}
