package usecase

import (
	"context"
	"errors"
	"strings"

	"hireflow/internal/infrastructure/cache"
	"hireflow/internal/repository"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	SearchSkills(ctx context.Context, query string) ([]SkillItem, error)
	AddSkill(ctx context.Context, name string) (SkillItem, error)
}

type Skill struct {
	repo  repository.SkillRepository
	cache *cache.Redis
}

func NewSkillUsecase(repo repository.SkillRepository, c *cache.Redis) *Skill {
	return &Skill{repo: repo, cache: c}
}

func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	var cached []SkillItem
	if ok, _ := u.cache.GetJSON(ctx, cache.KeySkillCatalog, &cached); ok {
		return cached, nil
	}

	items, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := toSkillItems(items)
	_ = u.cache.SetJSON(ctx, cache.KeySkillCatalog, out, cache.DefaultTTL)
	return out, nil
}

func (u *Skill) SearchSkills(ctx context.Context, query string) ([]SkillItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return u.ListSkills(ctx)
	}

	key := cache.SkillSearchKey(query)
	var cached []SkillItem
	if ok, _ := u.cache.GetJSON(ctx, key, &cached); ok {
		return cached, nil
	}

	items, err := u.repo.Search(ctx, query, 20)
	if err != nil {
		return nil, ErrInternal
	}

	out := toSkillItems(items)
	_ = u.cache.SetJSON(ctx, key, out, cache.DefaultTTL)
	return out, nil
}

// AddSkill is idempotent on name: re-adding an existing skill returns the
// existing row instead of failing on the unique constraint.
func (u *Skill) AddSkill(ctx context.Context, name string) (SkillItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	existing, err := u.repo.FindByName(ctx, name)
	if err == nil {
		return SkillItem{ID: existing.ID, Name: existing.Name}, nil
	}
	if !errors.Is(err, repository.ErrSkillNotFound) {
		return SkillItem{}, ErrInternal
	}

	created, err := u.repo.Create(ctx, repository.Skill{ID: uuid.New(), Name: name})
	if err != nil {
		// Lost a race with a concurrent insert of the same name.
		if existing, ferr := u.repo.FindByName(ctx, name); ferr == nil {
			return SkillItem{ID: existing.ID, Name: existing.Name}, nil
		}
		return SkillItem{}, ErrInternal
	}

	_ = u.cache.InvalidateSkillCatalog(ctx)
	return SkillItem{ID: created.ID, Name: created.Name}, nil
}

func toSkillItems(items []repository.Skill) []SkillItem {
	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Name: it.Name})
	}
	return out
}
