package usecase

import (
	"context"
	"errors"
	"testing"

	"hireflow/internal/repository"

	"github.com/google/uuid"
)

func TestApply_Success(t *testing.T) {
	goID := uuid.New()
	recruiterUserID := uuid.New()

	seeker := stubSeekerRepo{
		profile: repository.SeekerProfile{ID: uuid.New(), FullName: "Ana"},
		skills:  []repository.SeekerSkill{{SkillID: goID, SkillName: "Go"}},
	}
	job := repository.Job{ID: uuid.New(), Title: "Backend Engineer", RecruiterID: uuid.New(), Status: repository.JobStatusActive}
	jobRepo := stubJobRepo{
		job: job,
		reqsByJob: map[uuid.UUID][]repository.JobRequiredSkill{
			job.ID: {{SkillID: goID, SkillName: "Go", IsMandatory: true}},
		},
	}
	appRepo := &stubApplicationRepo{}
	notifier := &stubNotifier{}
	recruiters := stubRecruiterRepo{profile: repository.RecruiterProfile{ID: job.RecruiterID, UserID: recruiterUserID}}

	uc := NewApplicationUsecase(appRepo, jobRepo, seeker, recruiters, notifier)

	created, err := uc.Apply(context.Background(), uuid.New(), ApplyInput{JobID: job.ID, CoverLetter: "hi"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != repository.ApplicationStatusPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.calls))
	}
	if notifier.calls[0].userID != recruiterUserID {
		t.Fatalf("notification sent to wrong user")
	}
	if notifier.calls[0].notifType != repository.NotificationTypeApplicationReceived {
		t.Fatalf("unexpected notification type %s", notifier.calls[0].notifType)
	}
}

func TestApply_MissingMandatorySkillBlocks(t *testing.T) {
	goID := uuid.New()
	seeker := stubSeekerRepo{profile: repository.SeekerProfile{ID: uuid.New()}}
	job := repository.Job{ID: uuid.New(), RecruiterID: uuid.New(), Status: repository.JobStatusActive}
	jobRepo := stubJobRepo{
		job: job,
		reqsByJob: map[uuid.UUID][]repository.JobRequiredSkill{
			job.ID: {
				{SkillID: goID, SkillName: "Go", IsMandatory: true},
				{SkillID: uuid.New(), SkillName: "Kubernetes", IsMandatory: false},
			},
		},
	}
	appRepo := &stubApplicationRepo{}
	notifier := &stubNotifier{}

	uc := NewApplicationUsecase(appRepo, jobRepo, seeker, stubRecruiterRepo{}, notifier)

	_, err := uc.Apply(context.Background(), uuid.New(), ApplyInput{JobID: job.ID})

	var unmet *UnmetRequirementError
	if !errors.As(err, &unmet) {
		t.Fatalf("expected UnmetRequirementError, got %v", err)
	}
	if len(unmet.Missing) != 1 || unmet.Missing[0] != "Go" {
		t.Fatalf("expected Go reported missing, got %v", unmet.Missing)
	}
	if len(notifier.calls) != 0 {
		t.Fatalf("no notification expected on rejection")
	}
}

func TestApply_InactiveJobIsNotFound(t *testing.T) {
	seeker := stubSeekerRepo{profile: repository.SeekerProfile{ID: uuid.New()}}
	jobRepo := stubJobRepo{jobErr: repository.ErrJobNotFound}

	uc := NewApplicationUsecase(&stubApplicationRepo{}, jobRepo, seeker, stubRecruiterRepo{}, &stubNotifier{})

	_, err := uc.Apply(context.Background(), uuid.New(), ApplyInput{JobID: uuid.New()})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApply_DuplicateIsConflict(t *testing.T) {
	seeker := stubSeekerRepo{profile: repository.SeekerProfile{ID: uuid.New()}}
	job := repository.Job{ID: uuid.New(), RecruiterID: uuid.New(), Status: repository.JobStatusActive}
	jobRepo := stubJobRepo{job: job, reqsByJob: map[uuid.UUID][]repository.JobRequiredSkill{}}
	appRepo := &stubApplicationRepo{createErr: repository.ErrDuplicateApplication}

	uc := NewApplicationUsecase(appRepo, jobRepo, seeker, stubRecruiterRepo{}, &stubNotifier{})

	_, err := uc.Apply(context.Background(), uuid.New(), ApplyInput{JobID: job.ID})
	if !errors.Is(err, ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestGetApplication_ParticipantsOnly(t *testing.T) {
	app := repository.Application{ID: uuid.New(), JobID: uuid.New(), JobSeekerID: uuid.New()}
	appRepo := &stubApplicationRepo{created: app, recruiter: uuid.New()}

	owner := stubSeekerRepo{profile: repository.SeekerProfile{ID: app.JobSeekerID, UserID: uuid.New()}}
	uc := NewApplicationUsecase(appRepo, stubJobRepo{}, owner, stubRecruiterRepo{err: repository.ErrRecruiterProfileNotFound}, &stubNotifier{})

	got, err := uc.GetApplication(context.Background(), owner.profile.UserID, app.ID)
	if err != nil {
		t.Fatalf("owning seeker must see the application, got %v", err)
	}
	if got.ID != app.ID {
		t.Fatalf("wrong application returned")
	}

	stranger := stubSeekerRepo{profile: repository.SeekerProfile{ID: uuid.New()}}
	uc = NewApplicationUsecase(appRepo, stubJobRepo{}, stranger, stubRecruiterRepo{err: repository.ErrRecruiterProfileNotFound}, &stubNotifier{})

	if _, err := uc.GetApplication(context.Background(), uuid.New(), app.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for a non-participant, got %v", err)
	}
}

func TestUpdateStatus_RequiresOwnership(t *testing.T) {
	recruiterProfile := repository.RecruiterProfile{ID: uuid.New(), UserID: uuid.New()}
	appRepo := &stubApplicationRepo{recruiter: uuid.New()} // someone else's job

	uc := NewApplicationUsecase(appRepo, stubJobRepo{}, stubSeekerRepo{}, stubRecruiterRepo{profile: recruiterProfile}, &stubNotifier{})

	_, err := uc.UpdateStatus(context.Background(), recruiterProfile.UserID, uuid.New(), "shortlisted")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUpdateStatus_NotifiesSeeker(t *testing.T) {
	seekerUserID := uuid.New()
	recruiterProfile := repository.RecruiterProfile{ID: uuid.New(), UserID: uuid.New()}
	job := repository.Job{ID: uuid.New(), Title: "Backend Engineer", RecruiterID: recruiterProfile.ID}

	appRepo := &stubApplicationRepo{
		recruiter: recruiterProfile.ID,
		updated: repository.Application{
			ID:          uuid.New(),
			JobID:       job.ID,
			JobSeekerID: uuid.New(),
		},
	}
	seeker := stubSeekerRepo{profile: repository.SeekerProfile{ID: appRepo.updated.JobSeekerID, UserID: seekerUserID}}
	notifier := &stubNotifier{}

	uc := NewApplicationUsecase(appRepo, stubJobRepo{job: job}, seeker, stubRecruiterRepo{profile: recruiterProfile}, notifier)

	updated, err := uc.UpdateStatus(context.Background(), recruiterProfile.UserID, appRepo.updated.ID, "hired")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != repository.ApplicationStatusHired {
		t.Fatalf("expected hired, got %s", updated.Status)
	}
	if len(notifier.calls) != 1 || notifier.calls[0].userID != seekerUserID {
		t.Fatalf("expected seeker to be notified")
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	uc := NewApplicationUsecase(&stubApplicationRepo{}, stubJobRepo{}, stubSeekerRepo{}, stubRecruiterRepo{}, &stubNotifier{})

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), "archived")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
