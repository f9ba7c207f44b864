package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"hireflow/internal/database"

	"github.com/google/uuid"
)

type fakeRows struct {
	values [][]any
	pos    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.values) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.values[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// recordingDB captures every statement text so tests can assert on the SQL
// the repository actually issues.
type recordingDB struct {
	queries []string
	rows    [][]any
}

func (d *recordingDB) Ping(context.Context) error { return nil }
func (d *recordingDB) Close() error               { return nil }
func (d *recordingDB) SQLDB() *sql.DB             { return nil }

func (d *recordingDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	d.queries = append(d.queries, query)
	return 0, nil
}

func (d *recordingDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	d.queries = append(d.queries, query)
	return &fakeRows{values: d.rows}, nil
}

func (d *recordingDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	d.queries = append(d.queries, query)
	return errRow{err: sql.ErrNoRows}
}

func (d *recordingDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func jobCountRow(jobID, recruiterID uuid.UUID, title string, count int) []any {
	return []any{
		jobID, recruiterID, title, "description", "requirements", "Remote", "full_time",
		(*int64)(nil), (*int64)(nil), JobStatusActive, time.Now(),
		"Acme Corp", "", count,
	}
}

// The application count must sit in the SELECT list; a scalar subquery after
// the joined tables lands in the FROM clause and Postgres rejects it.
func assertCountBeforeFrom(t *testing.T, query string) {
	t.Helper()

	countIdx := strings.Index(query, "(SELECT COUNT(*) FROM applications")
	fromIdx := strings.Index(query, "FROM jobs")
	if countIdx < 0 {
		t.Fatalf("query has no application count subquery:\n%s", query)
	}
	if fromIdx < 0 {
		t.Fatalf("query has no FROM clause:\n%s", query)
	}
	if countIdx > fromIdx {
		t.Fatalf("application count subquery placed after FROM:\n%s", query)
	}
}

func TestListByRecruiter_CountSubqueryInSelectList(t *testing.T) {
	jobID := uuid.New()
	recruiterID := uuid.New()
	db := &recordingDB{rows: [][]any{jobCountRow(jobID, recruiterID, "Backend Engineer", 3)}}

	repo := NewPostgresJobRepository(db)
	got, err := repo.ListByRecruiter(context.Background(), recruiterID)
	if err != nil {
		t.Fatalf("ListByRecruiter: %v", err)
	}

	if len(db.queries) != 1 {
		t.Fatalf("expected 1 query, got %d", len(db.queries))
	}
	query := db.queries[0]
	assertCountBeforeFrom(t, query)
	if !strings.Contains(query, "WHERE j.recruiter_id = $1") {
		t.Fatalf("query missing recruiter filter:\n%s", query)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 job, got %d", len(got))
	}
	if got[0].ID != jobID || got[0].Title != "Backend Engineer" {
		t.Fatalf("unexpected job scanned: %+v", got[0])
	}
	if got[0].ApplicationCount != 3 {
		t.Fatalf("ApplicationCount = %d, want 3", got[0].ApplicationCount)
	}
}

func TestListAll_CountSubqueryInSelectList(t *testing.T) {
	jobID := uuid.New()
	recruiterID := uuid.New()
	db := &recordingDB{rows: [][]any{jobCountRow(jobID, recruiterID, "Data Analyst", 0)}}

	repo := NewPostgresJobRepository(db)
	got, err := repo.ListAll(context.Background(), JobStatusActive)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}

	query := db.queries[0]
	assertCountBeforeFrom(t, query)

	whereIdx := strings.Index(query, "WHERE j.status = $1")
	joinIdx := strings.Index(query, "JOIN recruiter_profiles")
	if whereIdx < 0 || joinIdx < 0 || whereIdx < joinIdx {
		t.Fatalf("status filter must follow the joined tables:\n%s", query)
	}
	if !strings.HasSuffix(strings.TrimSpace(query), "ORDER BY j.created_at DESC") {
		t.Fatalf("query must end with the recency ordering:\n%s", query)
	}

	if len(got) != 1 || got[0].ApplicationCount != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListAll_NoStatusFilterWhenEmpty(t *testing.T) {
	db := &recordingDB{}

	repo := NewPostgresJobRepository(db)
	got, err := repo.ListAll(context.Background(), "")
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no jobs, got %d", len(got))
	}

	query := db.queries[0]
	assertCountBeforeFrom(t, query)
	if strings.Contains(query, "WHERE j.status") {
		t.Fatalf("unfiltered listing must not carry a status predicate:\n%s", query)
	}
}
