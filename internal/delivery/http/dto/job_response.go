package dto

import (
	"time"

	"hireflow/internal/repository"
	"hireflow/internal/usecase"

	"github.com/google/uuid"
)

type RequiredSkillResponse struct {
	SkillID     uuid.UUID `json:"skill_id"`
	Name        string    `json:"name"`
	IsMandatory bool      `json:"is_mandatory"`
}

type JobResponse struct {
	ID             uuid.UUID               `json:"id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Requirements   string                  `json:"requirements,omitempty"`
	Location       string                  `json:"location"`
	JobType        string                  `json:"job_type"`
	SalaryMin      *int64                  `json:"salary_min,omitempty"`
	SalaryMax      *int64                  `json:"salary_max,omitempty"`
	Status         string                  `json:"status"`
	CompanyName    string                  `json:"company_name"`
	CompanyLogoURL string                  `json:"company_logo_url,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	RequiredSkills []RequiredSkillResponse `json:"required_skills"`
}

type JobWithApplicationCountResponse struct {
	JobResponse
	ApplicationCount int `json:"application_count"`
}

type RecommendedJobResponse struct {
	JobResponse
	MatchedSkills   int `json:"matched_skills"`
	TotalRequired   int `json:"total_required_skills"`
	MatchPercentage int `json:"match_percentage"`
}

func FromJob(j repository.Job, reqs []repository.JobRequiredSkill) JobResponse {
	return JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		Requirements:   j.Requirements,
		Location:       j.Location,
		JobType:        j.JobType,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		Status:         j.Status,
		CompanyName:    j.CompanyName,
		CompanyLogoURL: j.CompanyLogoURL,
		CreatedAt:      j.CreatedAt,
		RequiredSkills: fromRequiredSkills(reqs),
	}
}

func FromJobDetail(d usecase.JobDetail) JobResponse {
	return FromJob(d.Job, d.RequiredSkills)
}

func FromJobDetails(details []usecase.JobDetail) []JobResponse {
	out := make([]JobResponse, 0, len(details))
	for _, d := range details {
		out = append(out, FromJobDetail(d))
	}
	return out
}

func FromJobsWithCount(jobs []repository.JobWithApplicationCount) []JobWithApplicationCountResponse {
	out := make([]JobWithApplicationCountResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, JobWithApplicationCountResponse{
			JobResponse:      FromJob(j.Job, nil),
			ApplicationCount: j.ApplicationCount,
		})
	}
	return out
}

func FromRecommendations(recs []usecase.RecommendedJob) []RecommendedJobResponse {
	out := make([]RecommendedJobResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendedJobResponse{
			JobResponse:     FromJob(r.Job, r.RequiredSkills),
			MatchedSkills:   r.Matched,
			TotalRequired:   r.TotalRequired,
			MatchPercentage: r.MatchPercentage,
		})
	}
	return out
}

func fromRequiredSkills(reqs []repository.JobRequiredSkill) []RequiredSkillResponse {
	out := make([]RequiredSkillResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, RequiredSkillResponse{
			SkillID:     r.SkillID,
			Name:        r.SkillName,
			IsMandatory: r.IsMandatory,
		})
	}
	return out
}
