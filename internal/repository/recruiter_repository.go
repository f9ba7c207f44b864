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

var ErrRecruiterProfileNotFound = errors.New("recruiter profile not found")

type RecruiterProfile struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	CompanyName        string
	CompanyWebsite     string
	CompanyDescription string
	CompanyLogoURL     string
	Location           string
	Industry           string
	CreatedAt          time.Time
}

type RecruiterStatistics struct {
	TotalJobs               int
	ActiveJobs              int
	ClosedJobs              int
	TotalApplications       int
	PendingApplications     int
	ShortlistedApplications int
	HiredCount              int
}

type RecruiterRepository interface {
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (RecruiterProfile, error)
	FindProfileByID(ctx context.Context, id uuid.UUID) (RecruiterProfile, error)
	UpdateProfile(ctx context.Context, p RecruiterProfile) error
	Statistics(ctx context.Context, recruiterID uuid.UUID) (RecruiterStatistics, error)
}

type PostgresRecruiterRepository struct {
	db database.DB
}

func NewPostgresRecruiterRepository(db database.DB) *PostgresRecruiterRepository {
	return &PostgresRecruiterRepository{db: db}
}

const recruiterProfileColumns = `id, user_id, company_name, company_website, company_description, company_logo_url, location, industry, created_at`

func (r *PostgresRecruiterRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (RecruiterProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+recruiterProfileColumns+` FROM recruiter_profiles WHERE user_id = $1`, userID)
	return scanRecruiterProfile(row)
}

func (r *PostgresRecruiterRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (RecruiterProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+recruiterProfileColumns+` FROM recruiter_profiles WHERE id = $1`, id)
	return scanRecruiterProfile(row)
}

func (r *PostgresRecruiterRepository) UpdateProfile(ctx context.Context, p RecruiterProfile) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE recruiter_profiles
		 SET company_name = $1, company_website = $2, company_description = $3,
		     company_logo_url = $4, location = $5, industry = $6
		 WHERE user_id = $7`,
		p.CompanyName, p.CompanyWebsite, p.CompanyDescription, p.CompanyLogoURL, p.Location, p.Industry, p.UserID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecruiterProfileNotFound
	}
	return nil
}

func (r *PostgresRecruiterRepository) Statistics(ctx context.Context, recruiterID uuid.UUID) (RecruiterStatistics, error) {
	var st RecruiterStatistics

	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'active'),
		        COUNT(*) FILTER (WHERE status = 'closed')
		 FROM jobs WHERE recruiter_id = $1`,
		recruiterID,
	)
	if err := row.Scan(&st.TotalJobs, &st.ActiveJobs, &st.ClosedJobs); err != nil {
		return RecruiterStatistics{}, err
	}

	row = r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE a.status = 'pending'),
		        COUNT(*) FILTER (WHERE a.status = 'shortlisted'),
		        COUNT(*) FILTER (WHERE a.status = 'hired')
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.recruiter_id = $1`,
		recruiterID,
	)
	if err := row.Scan(&st.TotalApplications, &st.PendingApplications, &st.ShortlistedApplications, &st.HiredCount); err != nil {
		return RecruiterStatistics{}, err
	}

	return st, nil
}

func scanRecruiterProfile(row database.Row) (RecruiterProfile, error) {
	var p RecruiterProfile
	err := row.Scan(&p.ID, &p.UserID, &p.CompanyName, &p.CompanyWebsite, &p.CompanyDescription,
		&p.CompanyLogoURL, &p.Location, &p.Industry, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return RecruiterProfile{}, ErrRecruiterProfileNotFound
		}
		return RecruiterProfile{}, err
	}
	return p, nil
}
