package dto

import (
	"time"

	"hireflow/internal/repository"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SeekerApplicationResponse struct {
	ApplicationResponse
	JobTitle    string `json:"job_title"`
	JobLocation string `json:"job_location"`
	JobType     string `json:"job_type"`
	JobStatus   string `json:"job_status"`
	CompanyName string `json:"company_name"`
}

type ApplicantResponse struct {
	ApplicationResponse
	FullName  string `json:"full_name"`
	Location  string `json:"location"`
	Bio       string `json:"bio,omitempty"`
	ResumeURL string `json:"resume_url,omitempty"`
	Email     string `json:"email"`
}

func FromApplication(a repository.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		CoverLetter: a.CoverLetter,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromSeekerApplications(apps []repository.SeekerApplication) []SeekerApplicationResponse {
	out := make([]SeekerApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, SeekerApplicationResponse{
			ApplicationResponse: FromApplication(a.Application),
			JobTitle:            a.JobTitle,
			JobLocation:         a.JobLocation,
			JobType:             a.JobType,
			JobStatus:           a.JobStatus,
			CompanyName:         a.CompanyName,
		})
	}
	return out
}

func FromApplicants(cards []repository.ApplicantCard) []ApplicantResponse {
	out := make([]ApplicantResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, ApplicantResponse{
			ApplicationResponse: FromApplication(c.Application),
			FullName:            c.SeekerFullName,
			Location:            c.SeekerLocation,
			Bio:                 c.SeekerBio,
			ResumeURL:           c.ResumeURL,
			Email:               c.Email,
		})
	}
	return out
}
