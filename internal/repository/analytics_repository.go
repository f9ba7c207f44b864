package repository

import (
	"context"
	"time"

	"hireflow/internal/database"

	"github.com/google/uuid"
)

type PlatformStatistics struct {
	TotalUsers        int
	TotalJobSeekers   int
	TotalRecruiters   int
	TotalJobs         int
	ActiveJobs        int
	TotalApplications int
	TotalHires        int
}

type DailyCount struct {
	Day   time.Time
	Count int
}

type PlatformActivity struct {
	Registrations []DailyCount
	JobsPosted    []DailyCount
	Applications  []DailyCount
}

type SeekerStatistics struct {
	TotalApplications int
	Pending           int
	Shortlisted       int
	Interviewed       int
	Hired             int
	Rejected          int
	SavedJobs         int
}

type HiringFunnel struct {
	Applied         int
	Shortlisted     int
	Interviewed     int
	Hired           int
	Rejected        int
	AvgDaysToHire   float64
	HiresWithTiming int
}

type AnalyticsRepository interface {
	PlatformStatistics(ctx context.Context) (PlatformStatistics, error)
	PlatformActivity(ctx context.Context, days int) (PlatformActivity, error)
	SeekerStatistics(ctx context.Context, seekerID uuid.UUID) (SeekerStatistics, error)
	HiringFunnel(ctx context.Context, recruiterID uuid.UUID) (HiringFunnel, error)
}

type PostgresAnalyticsRepository struct {
	db database.DB
}

func NewPostgresAnalyticsRepository(db database.DB) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{db: db}
}

func (r *PostgresAnalyticsRepository) PlatformStatistics(ctx context.Context) (PlatformStatistics, error) {
	var st PlatformStatistics
	row := r.db.QueryRow(ctx,
		`SELECT (SELECT COUNT(*) FROM users),
		        (SELECT COUNT(*) FROM users WHERE role = 'job_seeker'),
		        (SELECT COUNT(*) FROM users WHERE role = 'recruiter'),
		        (SELECT COUNT(*) FROM jobs),
		        (SELECT COUNT(*) FROM jobs WHERE status = 'active'),
		        (SELECT COUNT(*) FROM applications),
		        (SELECT COUNT(*) FROM applications WHERE status = 'hired')`,
	)
	err := row.Scan(&st.TotalUsers, &st.TotalJobSeekers, &st.TotalRecruiters,
		&st.TotalJobs, &st.ActiveJobs, &st.TotalApplications, &st.TotalHires)
	if err != nil {
		return PlatformStatistics{}, err
	}
	return st, nil
}

func (r *PostgresAnalyticsRepository) PlatformActivity(ctx context.Context, days int) (PlatformActivity, error) {
	if days <= 0 || days > 365 {
		days = 30
	}

	var out PlatformActivity
	var err error
	if out.Registrations, err = r.dailyCounts(ctx, "users", "created_at", days); err != nil {
		return PlatformActivity{}, err
	}
	if out.JobsPosted, err = r.dailyCounts(ctx, "jobs", "created_at", days); err != nil {
		return PlatformActivity{}, err
	}
	if out.Applications, err = r.dailyCounts(ctx, "applications", "applied_at", days); err != nil {
		return PlatformActivity{}, err
	}
	return out, nil
}

func (r *PostgresAnalyticsRepository) dailyCounts(ctx context.Context, table, column string, days int) ([]DailyCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT date_trunc('day', `+column+`) AS day, COUNT(*)
		 FROM `+table+`
		 WHERE `+column+` >= now() - make_interval(days => $1)
		 GROUP BY day
		 ORDER BY day ASC`,
		days,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DailyCount, 0)
	for rows.Next() {
		var dc DailyCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAnalyticsRepository) SeekerStatistics(ctx context.Context, seekerID uuid.UUID) (SeekerStatistics, error) {
	var st SeekerStatistics
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'pending'),
		        COUNT(*) FILTER (WHERE status = 'shortlisted'),
		        COUNT(*) FILTER (WHERE status = 'interviewed'),
		        COUNT(*) FILTER (WHERE status = 'hired'),
		        COUNT(*) FILTER (WHERE status = 'rejected'),
		        (SELECT COUNT(*) FROM saved_jobs WHERE job_seeker_id = $1)
		 FROM applications WHERE job_seeker_id = $1`,
		seekerID,
	)
	err := row.Scan(&st.TotalApplications, &st.Pending, &st.Shortlisted,
		&st.Interviewed, &st.Hired, &st.Rejected, &st.SavedJobs)
	if err != nil {
		return SeekerStatistics{}, err
	}
	return st, nil
}

func (r *PostgresAnalyticsRepository) HiringFunnel(ctx context.Context, recruiterID uuid.UUID) (HiringFunnel, error) {
	var f HiringFunnel
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE a.status = 'shortlisted'),
		        COUNT(*) FILTER (WHERE a.status = 'interviewed'),
		        COUNT(*) FILTER (WHERE a.status = 'hired'),
		        COUNT(*) FILTER (WHERE a.status = 'rejected'),
		        COALESCE(AVG(EXTRACT(EPOCH FROM a.updated_at - a.applied_at) / 86400.0)
		                 FILTER (WHERE a.status = 'hired'), 0),
		        COUNT(*) FILTER (WHERE a.status = 'hired')
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.recruiter_id = $1`,
		recruiterID,
	)
	err := row.Scan(&f.Applied, &f.Shortlisted, &f.Interviewed, &f.Hired, &f.Rejected,
		&f.AvgDaysToHire, &f.HiresWithTiming)
	if err != nil {
		return HiringFunnel{}, err
	}
	return f, nil
}
