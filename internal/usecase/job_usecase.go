package usecase

import (
	"context"
	"errors"
	"strings"

	"hireflow/internal/repository"

	"github.com/google/uuid"
)

var validJobTypes = map[string]struct{}{
	"full_time":  {},
	"part_time":  {},
	"contract":   {},
	"internship": {},
	"remote":     {},
}

type RequiredSkillInput struct {
	SkillID     uuid.UUID
	IsMandatory bool
}

type JobInput struct {
	Title          string
	Description    string
	Requirements   string
	Location       string
	JobType        string
	SalaryMin      *int64
	SalaryMax      *int64
	Status         string
	RequiredSkills []RequiredSkillInput
	SkillsProvided bool
}

type JobDetail struct {
	Job            repository.Job
	RequiredSkills []repository.JobRequiredSkill
}

type JobUsecase interface {
	ListJobs(ctx context.Context, f repository.JobListFilter) ([]JobDetail, error)
	GetJob(ctx context.Context, id uuid.UUID) (JobDetail, error)
	CreateJob(ctx context.Context, recruiterUserID uuid.UUID, in JobInput) (JobDetail, error)
	UpdateJob(ctx context.Context, recruiterUserID, jobID uuid.UUID, in JobInput) (JobDetail, error)
	DeleteJob(ctx context.Context, recruiterUserID, jobID uuid.UUID) error
	ListMyJobs(ctx context.Context, recruiterUserID uuid.UUID) ([]repository.JobWithApplicationCount, error)
}

type Job struct {
	jobs       repository.JobRepository
	recruiters repository.RecruiterRepository
}

func NewJobUsecase(jobs repository.JobRepository, recruiters repository.RecruiterRepository) *Job {
	return &Job{jobs: jobs, recruiters: recruiters}
}

func (u *Job) ListJobs(ctx context.Context, f repository.JobListFilter) ([]JobDetail, error) {
	jobs, err := u.jobs.ListActive(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return u.attachRequiredSkills(ctx, jobs)
}

func (u *Job) GetJob(ctx context.Context, id uuid.UUID) (JobDetail, error) {
	job, err := u.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobDetail{}, ErrJobNotFound
		}
		return JobDetail{}, ErrInternal
	}

	reqs, err := u.jobs.RequiredSkillsByJobID(ctx, id)
	if err != nil {
		return JobDetail{}, ErrInternal
	}
	return JobDetail{Job: job, RequiredSkills: reqs}, nil
}

func (u *Job) CreateJob(ctx context.Context, recruiterUserID uuid.UUID, in JobInput) (JobDetail, error) {
	profile, err := u.recruiters.FindProfileByUserID(ctx, recruiterUserID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterProfileNotFound) {
			return JobDetail{}, ErrProfileNotFound
		}
		return JobDetail{}, ErrInternal
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.JobType = strings.ToLower(strings.TrimSpace(in.JobType))
	if in.Title == "" || in.Description == "" {
		return JobDetail{}, ErrInvalidInput
	}
	if _, ok := validJobTypes[in.JobType]; !ok {
		return JobDetail{}, ErrInvalidInput
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return JobDetail{}, ErrInvalidInput
	}

	job := repository.Job{
		ID:           uuid.New(),
		RecruiterID:  profile.ID,
		Title:        in.Title,
		Description:  in.Description,
		Requirements: strings.TrimSpace(in.Requirements),
		Location:     strings.TrimSpace(in.Location),
		JobType:      in.JobType,
		SalaryMin:    in.SalaryMin,
		SalaryMax:    in.SalaryMax,
		Status:       repository.JobStatusActive,
	}

	created, err := u.jobs.Create(ctx, job, toRequiredSkills(in.RequiredSkills))
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return JobDetail{}, ErrSkillNotFound
		}
		return JobDetail{}, ErrInternal
	}
	created.CompanyName = profile.CompanyName
	created.CompanyLogoURL = profile.CompanyLogoURL

	reqs, err := u.jobs.RequiredSkillsByJobID(ctx, created.ID)
	if err != nil {
		return JobDetail{}, ErrInternal
	}
	return JobDetail{Job: created, RequiredSkills: reqs}, nil
}

func (u *Job) UpdateJob(ctx context.Context, recruiterUserID, jobID uuid.UUID, in JobInput) (JobDetail, error) {
	profile, err := u.recruiters.FindProfileByUserID(ctx, recruiterUserID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterProfileNotFound) {
			return JobDetail{}, ErrProfileNotFound
		}
		return JobDetail{}, ErrInternal
	}

	job, err := u.jobs.FindOwned(ctx, jobID, profile.ID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobDetail{}, ErrJobNotFound
		}
		return JobDetail{}, ErrInternal
	}

	if v := strings.TrimSpace(in.Title); v != "" {
		job.Title = v
	}
	if v := strings.TrimSpace(in.Description); v != "" {
		job.Description = v
	}
	if v := strings.TrimSpace(in.Requirements); v != "" {
		job.Requirements = v
	}
	if v := strings.TrimSpace(in.Location); v != "" {
		job.Location = v
	}
	if v := strings.ToLower(strings.TrimSpace(in.JobType)); v != "" {
		if _, ok := validJobTypes[v]; !ok {
			return JobDetail{}, ErrInvalidInput
		}
		job.JobType = v
	}
	if in.SalaryMin != nil {
		job.SalaryMin = in.SalaryMin
	}
	if in.SalaryMax != nil {
		job.SalaryMax = in.SalaryMax
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return JobDetail{}, ErrInvalidInput
	}
	if v := strings.TrimSpace(in.Status); v != "" {
		// Recruiters only toggle between open and closed; moderation
		// states belong to admins.
		if v != repository.JobStatusActive && v != repository.JobStatusClosed {
			return JobDetail{}, ErrInvalidInput
		}
		job.Status = v
	}

	err = u.jobs.Update(ctx, job, toRequiredSkills(in.RequiredSkills), in.SkillsProvided)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrJobNotFound):
			return JobDetail{}, ErrJobNotFound
		case errors.Is(err, repository.ErrSkillNotFound):
			return JobDetail{}, ErrSkillNotFound
		}
		return JobDetail{}, ErrInternal
	}

	return u.GetJob(ctx, jobID)
}

func (u *Job) DeleteJob(ctx context.Context, recruiterUserID, jobID uuid.UUID) error {
	profile, err := u.recruiters.FindProfileByUserID(ctx, recruiterUserID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterProfileNotFound) {
			return ErrProfileNotFound
		}
		return ErrInternal
	}

	if err := u.jobs.Delete(ctx, jobID, profile.ID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Job) ListMyJobs(ctx context.Context, recruiterUserID uuid.UUID) ([]repository.JobWithApplicationCount, error) {
	profile, err := u.recruiters.FindProfileByUserID(ctx, recruiterUserID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	jobs, err := u.jobs.ListByRecruiter(ctx, profile.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Job) attachRequiredSkills(ctx context.Context, jobs []repository.Job) ([]JobDetail, error) {
	ids := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}

	byJob, err := u.jobs.RequiredSkillsByJobIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]JobDetail, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, JobDetail{Job: j, RequiredSkills: byJob[j.ID]})
	}
	return out, nil
}

func toRequiredSkills(in []RequiredSkillInput) []repository.JobRequiredSkill {
	out := make([]repository.JobRequiredSkill, 0, len(in))
	for _, s := range in {
		if s.SkillID == uuid.Nil {
			continue
		}
		out = append(out, repository.JobRequiredSkill{SkillID: s.SkillID, IsMandatory: s.IsMandatory})
	}
	return out
}
