package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hireflow/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job")
)

const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusInterviewed = "interviewed"
	ApplicationStatusHired       = "hired"
	ApplicationStatusRejected    = "rejected"
)

func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusShortlisted, ApplicationStatusInterviewed,
		ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	JobSeekerID uuid.UUID
	CoverLetter string
	Status      string
	AppliedAt   time.Time
	UpdatedAt   time.Time
}

// SeekerApplication is an application as the seeker sees it, carrying the job
// and company context needed for the application list card.
type SeekerApplication struct {
	Application
	JobTitle    string
	JobLocation string
	JobType     string
	JobStatus   string
	CompanyName string
}

// ApplicantCard is an application as the recruiter sees it, carrying the
// applicant's profile context.
type ApplicantCard struct {
	Application
	SeekerFullName string
	SeekerLocation string
	SeekerBio      string
	ResumeURL      string
	Email          string
}

type ApplicationRepository interface {
	Create(ctx context.Context, a Application) (Application, error)
	FindByID(ctx context.Context, id uuid.UUID) (Application, error)
	ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]SeekerApplication, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]ApplicantCard, error)
	ListRecent(ctx context.Context, limit int) ([]SeekerApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Application, error)
	JobRecruiterID(ctx context.Context, applicationID uuid.UUID) (uuid.UUID, error)
	SaveJob(ctx context.Context, seekerID, jobID uuid.UUID) error
	UnsaveJob(ctx context.Context, seekerID, jobID uuid.UUID) error
	ListSavedJobs(ctx context.Context, seekerID uuid.UUID) ([]Job, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, job_seeker_id, cover_letter, status, applied_at, updated_at`

// Create relies on the UNIQUE (job_id, job_seeker_id) constraint to reject
// duplicates, so two concurrent submissions cannot both land.
func (r *PostgresApplicationRepository) Create(ctx context.Context, a Application) (Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, job_id, job_seeker_id, cover_letter, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+applicationColumns,
		a.ID, a.JobID, a.JobSeekerID, a.CoverLetter, a.Status,
	)
	created, err := scanApplication(row)
	if err != nil {
		if isUniqueViolation(err) {
			return Application{}, ErrDuplicateApplication
		}
		return Application{}, err
	}
	return created, nil
}

func (r *PostgresApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]SeekerApplication, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.job_seeker_id, a.cover_letter, a.status, a.applied_at, a.updated_at,
		        j.title, j.location, j.job_type, j.status, COALESCE(rp.company_name, '')
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN recruiter_profiles rp ON rp.id = j.recruiter_id
		 WHERE a.job_seeker_id = $1
		 ORDER BY a.applied_at DESC`,
		seekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeekerApplications(rows)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]ApplicantCard, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.job_seeker_id, a.cover_letter, a.status, a.applied_at, a.updated_at,
		        sp.full_name, sp.location, sp.bio, sp.resume_url, u.email
		 FROM applications a
		 JOIN job_seeker_profiles sp ON sp.id = a.job_seeker_id
		 JOIN users u ON u.id = sp.user_id
		 WHERE a.job_id = $1
		 ORDER BY a.applied_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ApplicantCard, 0)
	for rows.Next() {
		var c ApplicantCard
		err := rows.Scan(&c.ID, &c.JobID, &c.JobSeekerID, &c.CoverLetter, &c.Status, &c.AppliedAt, &c.UpdatedAt,
			&c.SeekerFullName, &c.SeekerLocation, &c.SeekerBio, &c.ResumeURL, &c.Email)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListRecent(ctx context.Context, limit int) ([]SeekerApplication, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.job_seeker_id, a.cover_letter, a.status, a.applied_at, a.updated_at,
		        j.title, j.location, j.job_type, j.status, COALESCE(rp.company_name, '')
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN recruiter_profiles rp ON rp.id = j.recruiter_id
		 ORDER BY a.applied_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeekerApplications(rows)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications SET status = $1, updated_at = now() WHERE id = $2
		 RETURNING `+applicationColumns,
		status, id,
	)
	return scanApplication(row)
}

// JobRecruiterID resolves which recruiter owns the job an application targets,
// used for status-change authorization.
func (r *PostgresApplicationRepository) JobRecruiterID(ctx context.Context, applicationID uuid.UUID) (uuid.UUID, error) {
	var recruiterID uuid.UUID
	row := r.db.QueryRow(ctx,
		`SELECT j.recruiter_id
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.id = $1`,
		applicationID,
	)
	if err := row.Scan(&recruiterID); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrApplicationNotFound
		}
		return uuid.Nil, err
	}
	return recruiterID, nil
}

func (r *PostgresApplicationRepository) SaveJob(ctx context.Context, seekerID, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (job_seeker_id, job_id) VALUES ($1, $2)
		 ON CONFLICT (job_seeker_id, job_id) DO NOTHING`,
		seekerID, jobID,
	)
	if isForeignKeyViolation(err) {
		return ErrJobNotFound
	}
	return err
}

func (r *PostgresApplicationRepository) UnsaveJob(ctx context.Context, seekerID, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE job_seeker_id = $1 AND job_id = $2`,
		seekerID, jobID,
	)
	return err
}

func (r *PostgresApplicationRepository) ListSavedJobs(ctx context.Context, seekerID uuid.UUID) ([]Job, error) {
	rows, err := r.db.Query(ctx,
		jobSelect+`
		 JOIN saved_jobs sj ON sj.job_id = j.id
		 WHERE sj.job_seeker_id = $1
		 ORDER BY sj.saved_at DESC`,
		seekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func scanApplication(row database.Row) (Application, error) {
	var a Application
	err := row.Scan(&a.ID, &a.JobID, &a.JobSeekerID, &a.CoverLetter, &a.Status, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrApplicationNotFound
		}
		return Application{}, err
	}
	return a, nil
}

func collectSeekerApplications(rows database.Rows) ([]SeekerApplication, error) {
	out := make([]SeekerApplication, 0)
	for rows.Next() {
		var sa SeekerApplication
		err := rows.Scan(&sa.ID, &sa.JobID, &sa.JobSeekerID, &sa.CoverLetter, &sa.Status, &sa.AppliedAt, &sa.UpdatedAt,
			&sa.JobTitle, &sa.JobLocation, &sa.JobType, &sa.JobStatus, &sa.CompanyName)
		if err != nil {
			return nil, err
		}
		out = append(out, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
