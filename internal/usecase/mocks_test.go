package usecase

import (
	"context"

	"hireflow/internal/infrastructure/ranker"
	"hireflow/internal/repository"

	"github.com/google/uuid"
)

type stubSeekerRepo struct {
	profile    repository.SeekerProfile
	profileErr error
	skills     []repository.SeekerSkill
	skillsErr  error
}

func (m stubSeekerRepo) FindProfileByUserID(context.Context, uuid.UUID) (repository.SeekerProfile, error) {
	return m.profile, m.profileErr
}
func (m stubSeekerRepo) FindProfileByID(context.Context, uuid.UUID) (repository.SeekerProfile, error) {
	return m.profile, m.profileErr
}
func (m stubSeekerRepo) UpdateProfile(context.Context, repository.SeekerProfile) error { return nil }
func (m stubSeekerRepo) ListSkills(context.Context, uuid.UUID) ([]repository.SeekerSkill, error) {
	return m.skills, m.skillsErr
}
func (m stubSeekerRepo) UpsertSkill(context.Context, uuid.UUID, uuid.UUID, string) error { return nil }
func (m stubSeekerRepo) DeleteSkill(context.Context, uuid.UUID, uuid.UUID) error         { return nil }

type stubRecruiterRepo struct {
	profile repository.RecruiterProfile
	err     error
}

func (m stubRecruiterRepo) FindProfileByUserID(context.Context, uuid.UUID) (repository.RecruiterProfile, error) {
	return m.profile, m.err
}
func (m stubRecruiterRepo) FindProfileByID(context.Context, uuid.UUID) (repository.RecruiterProfile, error) {
	return m.profile, m.err
}
func (m stubRecruiterRepo) UpdateProfile(context.Context, repository.RecruiterProfile) error {
	return nil
}
func (m stubRecruiterRepo) Statistics(context.Context, uuid.UUID) (repository.RecruiterStatistics, error) {
	return repository.RecruiterStatistics{}, nil
}

type stubJobRepo struct {
	job       repository.Job
	jobErr    error
	unapplied []repository.Job
	reqsByJob map[uuid.UUID][]repository.JobRequiredSkill
	reqsErr   error
}

func (m stubJobRepo) FindByID(context.Context, uuid.UUID) (repository.Job, error) {
	return m.job, m.jobErr
}
func (m stubJobRepo) FindActiveByID(context.Context, uuid.UUID) (repository.Job, error) {
	return m.job, m.jobErr
}
func (m stubJobRepo) FindOwned(context.Context, uuid.UUID, uuid.UUID) (repository.Job, error) {
	return m.job, m.jobErr
}
func (m stubJobRepo) ListActive(context.Context, repository.JobListFilter) ([]repository.Job, error) {
	return m.unapplied, nil
}
func (m stubJobRepo) ListByRecruiter(context.Context, uuid.UUID) ([]repository.JobWithApplicationCount, error) {
	return nil, nil
}
func (m stubJobRepo) ListAll(context.Context, string) ([]repository.JobWithApplicationCount, error) {
	return nil, nil
}
func (m stubJobRepo) ListActiveUnapplied(context.Context, uuid.UUID) ([]repository.Job, error) {
	return m.unapplied, nil
}
func (m stubJobRepo) Create(context.Context, repository.Job, []repository.JobRequiredSkill) (repository.Job, error) {
	return m.job, m.jobErr
}
func (m stubJobRepo) Update(context.Context, repository.Job, []repository.JobRequiredSkill, bool) error {
	return nil
}
func (m stubJobRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error       { return nil }
func (m stubJobRepo) UpdateStatus(context.Context, uuid.UUID, string) error    { return nil }
func (m stubJobRepo) RequiredSkillsByJobID(_ context.Context, jobID uuid.UUID) ([]repository.JobRequiredSkill, error) {
	return m.reqsByJob[jobID], m.reqsErr
}
func (m stubJobRepo) RequiredSkillsByJobIDs(context.Context, []uuid.UUID) (map[uuid.UUID][]repository.JobRequiredSkill, error) {
	return m.reqsByJob, m.reqsErr
}

type stubApplicationRepo struct {
	created   repository.Application
	createErr error
	recruiter uuid.UUID
	updated   repository.Application
}

func (m *stubApplicationRepo) Create(_ context.Context, a repository.Application) (repository.Application, error) {
	if m.createErr != nil {
		return repository.Application{}, m.createErr
	}
	if m.created.ID == uuid.Nil {
		m.created = a
	}
	return m.created, nil
}
func (m *stubApplicationRepo) FindByID(context.Context, uuid.UUID) (repository.Application, error) {
	return m.created, nil
}
func (m *stubApplicationRepo) ListBySeeker(context.Context, uuid.UUID) ([]repository.SeekerApplication, error) {
	return nil, nil
}
func (m *stubApplicationRepo) ListByJob(context.Context, uuid.UUID) ([]repository.ApplicantCard, error) {
	return nil, nil
}
func (m *stubApplicationRepo) ListRecent(context.Context, int) ([]repository.SeekerApplication, error) {
	return nil, nil
}
func (m *stubApplicationRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status string) (repository.Application, error) {
	m.updated.Status = status
	return m.updated, nil
}
func (m *stubApplicationRepo) JobRecruiterID(context.Context, uuid.UUID) (uuid.UUID, error) {
	return m.recruiter, nil
}
func (m *stubApplicationRepo) SaveJob(context.Context, uuid.UUID, uuid.UUID) error   { return nil }
func (m *stubApplicationRepo) UnsaveJob(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (m *stubApplicationRepo) ListSavedJobs(context.Context, uuid.UUID) ([]repository.Job, error) {
	return nil, nil
}

type notifyCall struct {
	userID    uuid.UUID
	notifType string
}

type stubNotifier struct {
	calls []notifyCall
}

func (m *stubNotifier) Dispatch(_ context.Context, userID uuid.UUID, notifType, _, _, _ string) {
	m.calls = append(m.calls, notifyCall{userID: userID, notifType: notifType})
}

type stubRanker struct {
	resp ranker.Response
	err  error
	got  *ranker.Request
}

func (m *stubRanker) Rank(_ context.Context, req ranker.Request) (ranker.Response, error) {
	m.got = &req
	if m.err != nil {
		return ranker.Response{}, m.err
	}
	return m.resp, nil
}
