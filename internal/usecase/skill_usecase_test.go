package usecase

import (
	"context"
	"errors"
	"testing"

	"hireflow/internal/repository"

	"github.com/google/uuid"
)

type stubSkillRepo struct {
	all      []repository.Skill
	byName   map[string]repository.Skill
	created  *repository.Skill
	createFn func(repository.Skill) (repository.Skill, error)
}

func (m *stubSkillRepo) ListAll(context.Context) ([]repository.Skill, error) { return m.all, nil }
func (m *stubSkillRepo) Search(_ context.Context, q string, _ int) ([]repository.Skill, error) {
	return m.all, nil
}
func (m *stubSkillRepo) FindByName(_ context.Context, name string) (repository.Skill, error) {
	if s, ok := m.byName[name]; ok {
		return s, nil
	}
	return repository.Skill{}, repository.ErrSkillNotFound
}
func (m *stubSkillRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) { return true, nil }
func (m *stubSkillRepo) Create(_ context.Context, s repository.Skill) (repository.Skill, error) {
	if m.createFn != nil {
		return m.createFn(s)
	}
	m.created = &s
	return s, nil
}

func TestAddSkill_CreatesNew(t *testing.T) {
	repo := &stubSkillRepo{byName: map[string]repository.Skill{}}
	uc := NewSkillUsecase(repo, nil)

	created, err := uc.AddSkill(context.Background(), "  Go  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Name != "Go" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if repo.created == nil {
		t.Fatalf("expected a row to be created")
	}
}

func TestAddSkill_IdempotentOnExistingName(t *testing.T) {
	existing := repository.Skill{ID: uuid.New(), Name: "Go"}
	repo := &stubSkillRepo{byName: map[string]repository.Skill{"Go": existing}}
	uc := NewSkillUsecase(repo, nil)

	got, err := uc.AddSkill(context.Background(), "Go")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != existing.ID {
		t.Fatalf("expected existing skill returned, got %s", got.ID)
	}
	if repo.created != nil {
		t.Fatalf("no new row expected for an existing name")
	}
}

func TestAddSkill_RecoversFromInsertRace(t *testing.T) {
	winner := repository.Skill{ID: uuid.New(), Name: "Go"}
	repo := &stubSkillRepo{byName: map[string]repository.Skill{}}
	repo.createFn = func(repository.Skill) (repository.Skill, error) {
		// A concurrent insert landed between FindByName and Create.
		repo.byName["Go"] = winner
		return repository.Skill{}, errors.New("unique violation")
	}
	uc := NewSkillUsecase(repo, nil)

	got, err := uc.AddSkill(context.Background(), "Go")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != winner.ID {
		t.Fatalf("expected race winner returned")
	}
}

func TestAddSkill_RejectsEmptyName(t *testing.T) {
	uc := NewSkillUsecase(&stubSkillRepo{}, nil)

	if _, err := uc.AddSkill(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
