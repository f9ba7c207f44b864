package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func req(id uuid.UUID, name string, mandatory bool) RequiredSkill {
	return RequiredSkill{SkillID: id, SkillName: name, IsMandatory: mandatory}
}

func TestRank_ScoresOverlap(t *testing.T) {
	goID, sqlID, k8sID := uuid.New(), uuid.New(), uuid.New()
	jobID := uuid.New()

	scored := Rank(
		[]uuid.UUID{goID, sqlID},
		[]Candidate{{
			JobID:     jobID,
			CreatedAt: time.Now(),
			RequiredSkills: []RequiredSkill{
				req(goID, "Go", true),
				req(sqlID, "PostgreSQL", false),
				req(k8sID, "Kubernetes", false),
			},
		}},
	)

	if len(scored) != 1 {
		t.Fatalf("expected 1 result, got %d", len(scored))
	}
	if scored[0].Matched != 2 || scored[0].TotalRequired != 3 {
		t.Fatalf("expected 2/3 matched, got %d/%d", scored[0].Matched, scored[0].TotalRequired)
	}
	if scored[0].MatchPercentage != 67 {
		t.Fatalf("expected 67%%, got %d%%", scored[0].MatchPercentage)
	}
}

func TestRank_NoRequiredSkillsIsNeutral(t *testing.T) {
	scored := Rank(
		[]uuid.UUID{uuid.New()},
		[]Candidate{{JobID: uuid.New(), CreatedAt: time.Now()}},
	)

	if scored[0].MatchPercentage != NeutralPercentage {
		t.Fatalf("expected neutral %d%%, got %d%%", NeutralPercentage, scored[0].MatchPercentage)
	}
}

func TestRank_EmptySeekerSkillsIsNeutralRecency(t *testing.T) {
	older := Candidate{
		JobID:          uuid.New(),
		CreatedAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RequiredSkills: []RequiredSkill{req(uuid.New(), "Go", false)},
	}
	newer := Candidate{
		JobID:          uuid.New(),
		CreatedAt:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		RequiredSkills: []RequiredSkill{req(uuid.New(), "Rust", false)},
	}

	scored := Rank(nil, []Candidate{older, newer})

	for _, s := range scored {
		if s.MatchPercentage != NeutralPercentage {
			t.Fatalf("expected neutral %d%% for all jobs, got %d%%", NeutralPercentage, s.MatchPercentage)
		}
	}
	if scored[0].JobID != newer.JobID {
		t.Fatalf("expected newest job first")
	}
}

func TestRank_OrderingIsDeterministic(t *testing.T) {
	goID := uuid.New()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	idA := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000")
	idB := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000")

	candidates := []Candidate{
		{JobID: idB, CreatedAt: ts, RequiredSkills: []RequiredSkill{req(goID, "Go", false)}},
		{JobID: idA, CreatedAt: ts, RequiredSkills: []RequiredSkill{req(goID, "Go", false)}},
	}

	first := Rank([]uuid.UUID{goID}, candidates)
	second := Rank([]uuid.UUID{goID}, []Candidate{candidates[1], candidates[0]})

	if first[0].JobID != idA || second[0].JobID != idA {
		t.Fatalf("expected job id tiebreak to put %s first", idA)
	}
	for i := range first {
		if first[i].JobID != second[i].JobID {
			t.Fatalf("ordering depends on input order at index %d", i)
		}
	}
}

func TestRank_SortsByMatchedThenRecency(t *testing.T) {
	goID, sqlID := uuid.New(), uuid.New()

	lowMatchNew := Candidate{
		JobID:          uuid.New(),
		CreatedAt:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		RequiredSkills: []RequiredSkill{req(goID, "Go", false), req(uuid.New(), "Rust", false)},
	}
	highMatchOld := Candidate{
		JobID:          uuid.New(),
		CreatedAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RequiredSkills: []RequiredSkill{req(goID, "Go", false), req(sqlID, "PostgreSQL", false)},
	}

	scored := Rank([]uuid.UUID{goID, sqlID}, []Candidate{lowMatchNew, highMatchOld})

	if scored[0].JobID != highMatchOld.JobID {
		t.Fatalf("expected higher skill overlap to beat recency")
	}
}

func TestRank_DeduplicatesRequiredSkills(t *testing.T) {
	goID := uuid.New()
	scored := Rank(
		[]uuid.UUID{goID},
		[]Candidate{{
			JobID:          uuid.New(),
			CreatedAt:      time.Now(),
			RequiredSkills: []RequiredSkill{req(goID, "Go", false), req(goID, "Go", true)},
		}},
	)

	if scored[0].TotalRequired != 1 || scored[0].Matched != 1 {
		t.Fatalf("expected duplicate requirement collapsed, got %d/%d", scored[0].Matched, scored[0].TotalRequired)
	}
	if scored[0].MatchPercentage != 100 {
		t.Fatalf("expected 100%%, got %d%%", scored[0].MatchPercentage)
	}
}

func TestMissingMandatory(t *testing.T) {
	goID, sqlID, k8sID := uuid.New(), uuid.New(), uuid.New()
	reqs := []RequiredSkill{
		req(goID, "Go", true),
		req(sqlID, "PostgreSQL", true),
		req(k8sID, "Kubernetes", false),
	}

	missing := MissingMandatory([]uuid.UUID{goID}, reqs)

	if len(missing) != 1 {
		t.Fatalf("expected 1 missing skill, got %d", len(missing))
	}
	if missing[0].SkillName != "PostgreSQL" {
		t.Fatalf("expected PostgreSQL missing, got %s", missing[0].SkillName)
	}
}

func TestMissingMandatory_OptionalSkillsNeverBlock(t *testing.T) {
	reqs := []RequiredSkill{req(uuid.New(), "Kubernetes", false)}

	if missing := MissingMandatory(nil, reqs); len(missing) != 0 {
		t.Fatalf("optional skills must not block, got %d missing", len(missing))
	}
}
