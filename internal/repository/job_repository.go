package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hireflow/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

const (
	JobStatusActive          = "active"
	JobStatusClosed          = "closed"
	JobStatusPendingApproval = "pending_approval"
	JobStatusRejected        = "rejected"
)

func ValidJobStatus(status string) bool {
	switch status {
	case JobStatusActive, JobStatusClosed, JobStatusPendingApproval, JobStatusRejected:
		return true
	}
	return false
}

type Job struct {
	ID             uuid.UUID
	RecruiterID    uuid.UUID
	Title          string
	Description    string
	Requirements   string
	Location       string
	JobType        string
	SalaryMin      *int64
	SalaryMax      *int64
	Status         string
	CreatedAt      time.Time
	CompanyName    string
	CompanyLogoURL string
}

type JobRequiredSkill struct {
	SkillID     uuid.UUID
	SkillName   string
	IsMandatory bool
}

type JobWithApplicationCount struct {
	Job
	ApplicationCount int
}

type JobListFilter struct {
	Search    string
	Location  string
	JobType   string
	SalaryMin *int64
	SalaryMax *int64
	SkillIDs  []uuid.UUID
	Limit     int
	Offset    int
}

type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Job, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (Job, error)
	FindOwned(ctx context.Context, id, recruiterID uuid.UUID) (Job, error)
	ListActive(ctx context.Context, f JobListFilter) ([]Job, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]JobWithApplicationCount, error)
	ListAll(ctx context.Context, status string) ([]JobWithApplicationCount, error)
	ListActiveUnapplied(ctx context.Context, seekerID uuid.UUID) ([]Job, error)
	Create(ctx context.Context, j Job, reqs []JobRequiredSkill) (Job, error)
	Update(ctx context.Context, j Job, reqs []JobRequiredSkill, replaceSkills bool) error
	Delete(ctx context.Context, id, recruiterID uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	RequiredSkillsByJobID(ctx context.Context, jobID uuid.UUID) ([]JobRequiredSkill, error)
	RequiredSkillsByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]JobRequiredSkill, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.recruiter_id, j.title, j.description, j.requirements, j.location, j.job_type,
	j.salary_min, j.salary_max, j.status, j.created_at,
	COALESCE(r.company_name, ''), COALESCE(r.company_logo_url, '')`

const jobSelect = `SELECT ` + jobColumns + `
	FROM jobs j
	JOIN recruiter_profiles r ON r.id = j.recruiter_id`

const jobCountSelect = `SELECT ` + jobColumns + `,
	(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)
	FROM jobs j
	JOIN recruiter_profiles r ON r.id = j.recruiter_id`

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1 AND j.status = 'active'`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) FindOwned(ctx context.Context, id, recruiterID uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1 AND j.recruiter_id = $2`, id, recruiterID)
	return scanJob(row)
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, f JobListFilter) ([]Job, error) {
	var sb strings.Builder
	sb.WriteString(jobSelect)
	sb.WriteString(` WHERE j.status = 'active'`)
	args := make([]any, 0, 8)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		sb.WriteString(fmt.Sprintf(" AND (j.title ILIKE %s OR j.description ILIKE %s)", p, p))
	}
	if f.Location != "" {
		sb.WriteString(fmt.Sprintf(" AND j.location ILIKE %s", arg("%"+f.Location+"%")))
	}
	if f.JobType != "" {
		sb.WriteString(fmt.Sprintf(" AND j.job_type = %s", arg(f.JobType)))
	}
	if f.SalaryMin != nil {
		sb.WriteString(fmt.Sprintf(" AND j.salary_max >= %s", arg(*f.SalaryMin)))
	}
	if f.SalaryMax != nil {
		sb.WriteString(fmt.Sprintf(" AND j.salary_min <= %s", arg(*f.SalaryMax)))
	}
	if len(f.SkillIDs) > 0 {
		sb.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM job_required_skills jrs WHERE jrs.job_id = j.id AND jrs.skill_id = ANY(%s))",
			arg(f.SkillIDs),
		))
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	sb.WriteString(fmt.Sprintf(" ORDER BY j.created_at DESC LIMIT %s OFFSET %s", arg(limit), arg(offset)))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]JobWithApplicationCount, error) {
	rows, err := r.db.Query(ctx,
		jobCountSelect+`
		 WHERE j.recruiter_id = $1
		 ORDER BY j.created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobsWithCount(rows)
}

func (r *PostgresJobRepository) ListAll(ctx context.Context, status string) ([]JobWithApplicationCount, error) {
	query := jobCountSelect
	args := make([]any, 0, 1)
	if status != "" {
		query += ` WHERE j.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobsWithCount(rows)
}

// ListActiveUnapplied returns the recommendation candidate set: every active
// job the seeker has not applied to yet, newest first.
func (r *PostgresJobRepository) ListActiveUnapplied(ctx context.Context, seekerID uuid.UUID) ([]Job, error) {
	rows, err := r.db.Query(ctx,
		jobSelect+`
		 WHERE j.status = 'active'
		   AND j.id NOT IN (SELECT job_id FROM applications WHERE job_seeker_id = $1)
		 ORDER BY j.created_at DESC`,
		seekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRepository) Create(ctx context.Context, j Job, reqs []JobRequiredSkill) (Job, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Job{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	row := tx.QueryRow(ctx,
		`INSERT INTO jobs (id, recruiter_id, title, description, requirements, location, job_type, salary_min, salary_max, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at`,
		j.ID, j.RecruiterID, j.Title, j.Description, j.Requirements, j.Location, j.JobType, j.SalaryMin, j.SalaryMax, j.Status,
	)
	if err := row.Scan(&j.CreatedAt); err != nil {
		return Job{}, err
	}

	for _, req := range reqs {
		_, err := tx.Exec(ctx,
			`INSERT INTO job_required_skills (job_id, skill_id, is_mandatory) VALUES ($1, $2, $3)
			 ON CONFLICT (job_id, skill_id) DO UPDATE SET is_mandatory = EXCLUDED.is_mandatory`,
			j.ID, req.SkillID, req.IsMandatory,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return Job{}, ErrSkillNotFound
			}
			return Job{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, j Job, reqs []JobRequiredSkill, replaceSkills bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	affected, err := tx.Exec(ctx,
		`UPDATE jobs
		 SET title = $1, description = $2, requirements = $3, location = $4, job_type = $5,
		     salary_min = $6, salary_max = $7, status = $8
		 WHERE id = $9 AND recruiter_id = $10`,
		j.Title, j.Description, j.Requirements, j.Location, j.JobType, j.SalaryMin, j.SalaryMax, j.Status,
		j.ID, j.RecruiterID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}

	if replaceSkills {
		if _, err := tx.Exec(ctx, `DELETE FROM job_required_skills WHERE job_id = $1`, j.ID); err != nil {
			return err
		}
		for _, req := range reqs {
			_, err := tx.Exec(ctx,
				`INSERT INTO job_required_skills (job_id, skill_id, is_mandatory) VALUES ($1, $2, $3)`,
				j.ID, req.SkillID, req.IsMandatory,
			)
			if err != nil {
				if isForeignKeyViolation(err) {
					return ErrSkillNotFound
				}
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id, recruiterID uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND recruiter_id = $2`, id, recruiterID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	affected, err := r.db.Exec(ctx, `UPDATE jobs SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) RequiredSkillsByJobID(ctx context.Context, jobID uuid.UUID) ([]JobRequiredSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT jrs.skill_id, s.name, jrs.is_mandatory
		 FROM job_required_skills jrs
		 JOIN skills s ON s.id = jrs.skill_id
		 WHERE jrs.job_id = $1
		 ORDER BY s.name ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobRequiredSkill, 0)
	for rows.Next() {
		var req JobRequiredSkill
		if err := rows.Scan(&req.SkillID, &req.SkillName, &req.IsMandatory); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) RequiredSkillsByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]JobRequiredSkill, error) {
	out := make(map[uuid.UUID][]JobRequiredSkill, len(jobIDs))
	if len(jobIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT jrs.job_id, jrs.skill_id, s.name, jrs.is_mandatory
		 FROM job_required_skills jrs
		 JOIN skills s ON s.id = jrs.skill_id
		 WHERE jrs.job_id = ANY($1)
		 ORDER BY s.name ASC`,
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobID uuid.UUID
		var req JobRequiredSkill
		if err := rows.Scan(&jobID, &req.SkillID, &req.SkillName, &req.IsMandatory); err != nil {
			return nil, err
		}
		out[jobID] = append(out[jobID], req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.Requirements, &j.Location,
		&j.JobType, &j.SalaryMin, &j.SalaryMax, &j.Status, &j.CreatedAt, &j.CompanyName, &j.CompanyLogoURL)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}
	return j, nil
}

func collectJobs(rows database.Rows) ([]Job, error) {
	out := make([]Job, 0)
	for rows.Next() {
		var j Job
		err := rows.Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.Requirements, &j.Location,
			&j.JobType, &j.SalaryMin, &j.SalaryMax, &j.Status, &j.CreatedAt, &j.CompanyName, &j.CompanyLogoURL)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func collectJobsWithCount(rows database.Rows) ([]JobWithApplicationCount, error) {
	out := make([]JobWithApplicationCount, 0)
	for rows.Next() {
		var j JobWithApplicationCount
		err := rows.Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.Requirements, &j.Location,
			&j.JobType, &j.SalaryMin, &j.SalaryMax, &j.Status, &j.CreatedAt, &j.CompanyName, &j.CompanyLogoURL,
			&j.ApplicationCount)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
