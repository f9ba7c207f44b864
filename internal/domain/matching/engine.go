package matching

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// NeutralPercentage is assigned when a job declares no required skills, or
// when the seeker has no skills to match against. It avoids both penalizing
// and over-favoring skill-less postings.
const NeutralPercentage = 50

type RequiredSkill struct {
	SkillID     uuid.UUID
	SkillName   string
	IsMandatory bool
}

type Candidate struct {
	JobID          uuid.UUID
	CreatedAt      time.Time
	RequiredSkills []RequiredSkill
}

type Scored struct {
	JobID           uuid.UUID
	CreatedAt       time.Time
	Matched         int
	TotalRequired   int
	MatchPercentage int
}

// Rank scores every candidate against the seeker's skill set and returns
// them ordered by (matched desc, created_at desc, job_id asc). With an empty
// seeker skill set all candidates score the neutral percentage and the order
// degrades to pure recency.
func Rank(seekerSkillIDs []uuid.UUID, candidates []Candidate) []Scored {
	skillSet := make(map[uuid.UUID]struct{}, len(seekerSkillIDs))
	for _, id := range seekerSkillIDs {
		if id == uuid.Nil {
			continue
		}
		skillSet[id] = struct{}{}
	}

	out := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		if c.JobID == uuid.Nil {
			continue
		}
		matched, total, pct := score(skillSet, c.RequiredSkills)
		out = append(out, Scored{
			JobID:           c.JobID,
			CreatedAt:       c.CreatedAt,
			Matched:         matched,
			TotalRequired:   total,
			MatchPercentage: pct,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Matched != out[j].Matched {
			return out[i].Matched > out[j].Matched
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].JobID.String() < out[j].JobID.String()
	})

	return out
}

// MissingMandatory returns the mandatory required skills absent from the
// seeker's skill set. A non-empty result blocks application submission.
func MissingMandatory(seekerSkillIDs []uuid.UUID, reqs []RequiredSkill) []RequiredSkill {
	skillSet := make(map[uuid.UUID]struct{}, len(seekerSkillIDs))
	for _, id := range seekerSkillIDs {
		skillSet[id] = struct{}{}
	}

	missing := make([]RequiredSkill, 0)
	for _, r := range reqs {
		if !r.IsMandatory {
			continue
		}
		if _, ok := skillSet[r.SkillID]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}

func score(skillSet map[uuid.UUID]struct{}, reqs []RequiredSkill) (matched, total, pct int) {
	seen := make(map[uuid.UUID]struct{}, len(reqs))
	for _, r := range reqs {
		if r.SkillID == uuid.Nil {
			continue
		}
		if _, dup := seen[r.SkillID]; dup {
			continue
		}
		seen[r.SkillID] = struct{}{}
		total++
		if _, ok := skillSet[r.SkillID]; ok {
			matched++
		}
	}

	if total == 0 || len(skillSet) == 0 {
		return matched, total, NeutralPercentage
	}

	pct = int(math.Round(100 * float64(matched) / float64(total)))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return matched, total, pct
}
