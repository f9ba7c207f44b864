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

var ErrSeekerProfileNotFound = errors.New("job seeker profile not found")

type SeekerProfile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FullName  string
	Phone     string
	Location  string
	Bio       string
	ResumeURL string
	CreatedAt time.Time
}

type SeekerSkill struct {
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel string
}

type SeekerRepository interface {
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (SeekerProfile, error)
	FindProfileByID(ctx context.Context, id uuid.UUID) (SeekerProfile, error)
	UpdateProfile(ctx context.Context, p SeekerProfile) error
	ListSkills(ctx context.Context, seekerID uuid.UUID) ([]SeekerSkill, error)
	UpsertSkill(ctx context.Context, seekerID, skillID uuid.UUID, proficiency string) error
	DeleteSkill(ctx context.Context, seekerID, skillID uuid.UUID) error
}

type PostgresSeekerRepository struct {
	db database.DB
}

func NewPostgresSeekerRepository(db database.DB) *PostgresSeekerRepository {
	return &PostgresSeekerRepository{db: db}
}

const seekerProfileColumns = `id, user_id, full_name, phone, location, bio, resume_url, created_at`

func (r *PostgresSeekerRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (SeekerProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+seekerProfileColumns+` FROM job_seeker_profiles WHERE user_id = $1`, userID)
	return scanSeekerProfile(row)
}

func (r *PostgresSeekerRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (SeekerProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+seekerProfileColumns+` FROM job_seeker_profiles WHERE id = $1`, id)
	return scanSeekerProfile(row)
}

func (r *PostgresSeekerRepository) UpdateProfile(ctx context.Context, p SeekerProfile) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE job_seeker_profiles
		 SET full_name = $1, phone = $2, location = $3, bio = $4
		 WHERE user_id = $5`,
		p.FullName, p.Phone, p.Location, p.Bio, p.UserID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSeekerProfileNotFound
	}
	return nil
}

func (r *PostgresSeekerRepository) ListSkills(ctx context.Context, seekerID uuid.UUID) ([]SeekerSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT jss.skill_id, s.name, jss.proficiency_level
		 FROM job_seeker_skills jss
		 JOIN skills s ON s.id = jss.skill_id
		 WHERE jss.job_seeker_id = $1
		 ORDER BY s.name ASC`,
		seekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SeekerSkill, 0)
	for rows.Next() {
		var s SeekerSkill
		if err := rows.Scan(&s.SkillID, &s.SkillName, &s.ProficiencyLevel); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertSkill is idempotent per (job_seeker_id, skill_id): re-adding a skill
// only refreshes the proficiency level.
func (r *PostgresSeekerRepository) UpsertSkill(ctx context.Context, seekerID, skillID uuid.UUID, proficiency string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_seeker_skills (job_seeker_id, skill_id, proficiency_level)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (job_seeker_id, skill_id) DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level`,
		seekerID, skillID, proficiency,
	)
	if isForeignKeyViolation(err) {
		return ErrSkillNotFound
	}
	return err
}

func (r *PostgresSeekerRepository) DeleteSkill(ctx context.Context, seekerID, skillID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM job_seeker_skills WHERE job_seeker_id = $1 AND skill_id = $2`,
		seekerID, skillID,
	)
	return err
}

func scanSeekerProfile(row database.Row) (SeekerProfile, error) {
	var p SeekerProfile
	err := row.Scan(&p.ID, &p.UserID, &p.FullName, &p.Phone, &p.Location, &p.Bio, &p.ResumeURL, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return SeekerProfile{}, ErrSeekerProfileNotFound
		}
		return SeekerProfile{}, err
	}
	return p, nil
}
