package usecase

import (
	"context"
	"testing"
	"time"

	"hireflow/internal/infrastructure/ranker"
	"hireflow/internal/repository"

	"github.com/google/uuid"
)

func floatPtr(v float64) *float64 { return &v }

func recommendationFixture(jobCount int) (stubSeekerRepo, stubJobRepo, []repository.Job) {
	goID := uuid.New()
	seeker := stubSeekerRepo{
		profile: repository.SeekerProfile{ID: uuid.New(), UserID: uuid.New()},
		skills:  []repository.SeekerSkill{{SkillID: goID, SkillName: "Go", ProficiencyLevel: "advanced"}},
	}

	jobs := make([]repository.Job, 0, jobCount)
	reqs := make(map[uuid.UUID][]repository.JobRequiredSkill, jobCount)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < jobCount; i++ {
		j := repository.Job{
			ID:        uuid.New(),
			Title:     "Backend Engineer",
			JobType:   "full_time",
			Status:    repository.JobStatusActive,
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
		jobs = append(jobs, j)
		reqs[j.ID] = []repository.JobRequiredSkill{{SkillID: goID, SkillName: "Go", IsMandatory: false}}
	}

	return seeker, stubJobRepo{unapplied: jobs, reqsByJob: reqs}, jobs
}

func TestRecommend_LocalRankingWithoutRanker(t *testing.T) {
	seeker, jobRepo, jobs := recommendationFixture(3)
	uc := NewRecommendationUsecase(jobRepo, seeker, nil, time.Second, nil)

	recs, err := uc.Recommend(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	// Equal overlap everywhere, so recency decides.
	if recs[0].Job.ID != jobs[0].ID {
		t.Fatalf("expected newest job first")
	}
	if recs[0].MatchPercentage != 100 {
		t.Fatalf("expected 100%%, got %d%%", recs[0].MatchPercentage)
	}
}

func TestRecommend_RankerFailureKeepsLocalOrder(t *testing.T) {
	seeker, jobRepo, jobs := recommendationFixture(3)
	rk := &stubRanker{err: ranker.ErrUnavailable}
	uc := NewRecommendationUsecase(jobRepo, seeker, rk, time.Second, nil)

	recs, err := uc.Recommend(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i, r := range recs {
		if r.Job.ID != jobs[i].ID {
			t.Fatalf("local order disturbed at index %d", i)
		}
		if r.MatchPercentage != 100 {
			t.Fatalf("local percentage disturbed at index %d", i)
		}
	}
}

func TestRecommend_RankerReordersAndRescores(t *testing.T) {
	seeker, jobRepo, jobs := recommendationFixture(3)
	rk := &stubRanker{resp: ranker.Response{Recommendations: []ranker.RankedJob{
		{ID: jobs[2].ID, RecommendationScore: floatPtr(0.93)},
		{ID: jobs[0].ID, RecommendationScore: floatPtr(0.41)},
	}}}
	uc := NewRecommendationUsecase(jobRepo, seeker, rk, time.Second, nil)

	recs, err := uc.Recommend(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	if recs[0].Job.ID != jobs[2].ID || recs[0].MatchPercentage != 93 {
		t.Fatalf("expected re-ranked job first at 93%%, got %s at %d%%", recs[0].Job.ID, recs[0].MatchPercentage)
	}
	if recs[1].Job.ID != jobs[0].ID || recs[1].MatchPercentage != 41 {
		t.Fatalf("expected second re-ranked job at 41%%")
	}
	// Unscored job keeps its local percentage and sorts after scored ones.
	if recs[2].Job.ID != jobs[1].ID || recs[2].MatchPercentage != 100 {
		t.Fatalf("expected unscored job to keep local score")
	}
}

func TestRecommend_IgnoresUnknownRankerJobs(t *testing.T) {
	seeker, jobRepo, jobs := recommendationFixture(2)
	rk := &stubRanker{resp: ranker.Response{Recommendations: []ranker.RankedJob{
		{ID: uuid.New(), RecommendationScore: floatPtr(0.99)},
		{ID: jobs[1].ID, RecommendationScore: floatPtr(0.8)},
	}}}
	uc := NewRecommendationUsecase(jobRepo, seeker, rk, time.Second, nil)

	recs, err := uc.Recommend(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Job.ID != jobs[1].ID {
		t.Fatalf("expected known re-ranked job first")
	}
}

func TestRecommend_CapsAtTwenty(t *testing.T) {
	seeker, jobRepo, _ := recommendationFixture(60)
	rk := &stubRanker{resp: ranker.Response{}}
	uc := NewRecommendationUsecase(jobRepo, seeker, rk, time.Second, nil)

	recs, err := uc.Recommend(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 20 {
		t.Fatalf("expected 20 recommendations, got %d", len(recs))
	}
	if rk.got == nil {
		t.Fatalf("expected ranker to be called")
	}
	if len(rk.got.Jobs) != 50 {
		t.Fatalf("expected pool of 50 sent to ranker, got %d", len(rk.got.Jobs))
	}
}

func TestRecommend_NoCandidates(t *testing.T) {
	seeker := stubSeekerRepo{profile: repository.SeekerProfile{ID: uuid.New()}}
	uc := NewRecommendationUsecase(stubJobRepo{}, seeker, nil, time.Second, nil)

	recs, err := uc.Recommend(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty result, got %d", len(recs))
	}
}
