package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"hireflow/internal/domain/matching"
	"hireflow/internal/infrastructure/ranker"
	"hireflow/internal/repository"

	"github.com/google/uuid"
)

const (
	rerankPoolSize     = 50
	recommendationSize = 20
)

// Recommendation is a job scored against the seeker's skill set. Matched and
// TotalRequired always reflect the local skill overlap even when the final
// percentage came from the external ranker.
type RecommendedJob struct {
	Job             repository.Job
	RequiredSkills  []repository.JobRequiredSkill
	Matched         int
	TotalRequired   int
	MatchPercentage int
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, seekerUserID uuid.UUID) ([]RecommendedJob, error)
}

type Recommendation struct {
	jobs    repository.JobRepository
	seekers repository.SeekerRepository
	ranker  ranker.Ranker
	timeout time.Duration
	logger  *log.Logger
}

func NewRecommendationUsecase(
	jobs repository.JobRepository,
	seekers repository.SeekerRepository,
	rk ranker.Ranker,
	timeout time.Duration,
	logger *log.Logger,
) *Recommendation {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Recommendation{jobs: jobs, seekers: seekers, ranker: rk, timeout: timeout, logger: logger}
}

// Recommend ranks every open job the seeker has not applied to by skill
// overlap, offers the top candidates to the external ranker for re-scoring,
// and falls back to the local ordering whenever the ranker is missing, slow,
// or broken.
func (u *Recommendation) Recommend(ctx context.Context, seekerUserID uuid.UUID) ([]RecommendedJob, error) {
	profile, err := u.seekers.FindProfileByUserID(ctx, seekerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	seekerSkills, err := u.seekers.ListSkills(ctx, profile.ID)
	if err != nil {
		return nil, ErrInternal
	}

	candidates, err := u.jobs.ListActiveUnapplied(ctx, profile.ID)
	if err != nil {
		return nil, ErrInternal
	}
	if len(candidates) == 0 {
		return []RecommendedJob{}, nil
	}

	jobsByID := make(map[uuid.UUID]repository.Job, len(candidates))
	ids := make([]uuid.UUID, 0, len(candidates))
	for _, j := range candidates {
		jobsByID[j.ID] = j
		ids = append(ids, j.ID)
	}

	reqsByJob, err := u.jobs.RequiredSkillsByJobIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	scored := matching.Rank(skillIDs(seekerSkills), toMatchingCandidates(candidates, reqsByJob))

	pool := scored
	if len(pool) > rerankPoolSize {
		pool = pool[:rerankPoolSize]
	}

	pool = u.rerank(ctx, seekerSkills, jobsByID, reqsByJob, pool)

	if len(pool) > recommendationSize {
		pool = pool[:recommendationSize]
	}

	out := make([]RecommendedJob, 0, len(pool))
	for _, s := range pool {
		out = append(out, RecommendedJob{
			Job:             jobsByID[s.JobID],
			RequiredSkills:  reqsByJob[s.JobID],
			Matched:         s.Matched,
			TotalRequired:   s.TotalRequired,
			MatchPercentage: s.MatchPercentage,
		})
	}
	return out, nil
}

// rerank asks the external service to re-score the pool. Any failure keeps
// the local ordering untouched; jobs the service does not score keep their
// local percentage and sort after the scored ones in their local order.
func (u *Recommendation) rerank(
	ctx context.Context,
	seekerSkills []repository.SeekerSkill,
	jobsByID map[uuid.UUID]repository.Job,
	reqsByJob map[uuid.UUID][]repository.JobRequiredSkill,
	pool []matching.Scored,
) []matching.Scored {
	if u.ranker == nil || len(pool) == 0 {
		return pool
	}

	rankCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	req := ranker.Request{
		UserSkills: make([]string, 0, len(seekerSkills)),
		Jobs:       make([]ranker.CandidateJob, 0, len(pool)),
	}
	for _, s := range seekerSkills {
		req.UserSkills = append(req.UserSkills, s.SkillName)
	}
	for _, s := range pool {
		job := jobsByID[s.JobID]
		names := make([]string, 0, len(reqsByJob[s.JobID]))
		for _, r := range reqsByJob[s.JobID] {
			names = append(names, r.SkillName)
		}
		req.Jobs = append(req.Jobs, ranker.CandidateJob{
			ID:              job.ID,
			Title:           job.Title,
			Description:     job.Description,
			Location:        job.Location,
			JobType:         job.JobType,
			CompanyName:     job.CompanyName,
			RequiredSkills:  names,
			MatchPercentage: s.MatchPercentage,
		})
	}

	resp, err := u.ranker.Rank(rankCtx, req)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Recommendation] external ranking skipped: %v", err)
		}
		return pool
	}

	localByID := make(map[uuid.UUID]matching.Scored, len(pool))
	for _, s := range pool {
		localByID[s.JobID] = s
	}

	reordered := make([]matching.Scored, 0, len(pool))
	seen := make(map[uuid.UUID]struct{}, len(pool))
	for _, r := range resp.Recommendations {
		local, ok := localByID[r.ID]
		if !ok {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		if r.RecommendationScore != nil {
			pct := int(math.Round(*r.RecommendationScore * 100))
			if pct < 0 {
				pct = 0
			}
			if pct > 100 {
				pct = 100
			}
			local.MatchPercentage = pct
		}
		reordered = append(reordered, local)
	}

	for _, s := range pool {
		if _, ok := seen[s.JobID]; !ok {
			reordered = append(reordered, s)
		}
	}
	return reordered
}

func toMatchingCandidates(jobs []repository.Job, reqsByJob map[uuid.UUID][]repository.JobRequiredSkill) []matching.Candidate {
	out := make([]matching.Candidate, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, matching.Candidate{
			JobID:          j.ID,
			CreatedAt:      j.CreatedAt,
			RequiredSkills: toMatchingSkills(reqsByJob[j.ID]),
		})
	}
	return out
}
