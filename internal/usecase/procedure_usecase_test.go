package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
)

type mockProcedureRepo struct {
	items     []portfolio.Procedure
	created   *portfolio.Procedure
	deleteErr error
	listErr   error
}

func (m *mockProcedureRepo) List(context.Context) ([]portfolio.Procedure, error) {
	return m.items, m.listErr
}

func (m *mockProcedureRepo) GetByID(_ context.Context, id uuid.UUID) (portfolio.Procedure, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return portfolio.Procedure{}, repository.ErrNotFound
}

func (m *mockProcedureRepo) Create(_ context.Context, p portfolio.Procedure) (portfolio.Procedure, error) {
	p.ID = uuid.New()
	m.created = &p
	return p, nil
}

func (m *mockProcedureRepo) Update(_ context.Context, p portfolio.Procedure) (portfolio.Procedure, error) {
	return p, nil
}

func (m *mockProcedureRepo) Delete(context.Context, uuid.UUID) error {
	return m.deleteErr
}

func TestProcedureUsecase_Create_MissingFields(t *testing.T) {
	uc := NewProcedureUsecase(&mockProcedureRepo{}, nil)

	cases := []ProcedureInput{
		{Title: "", Description: "d", Content: "c", Category: "System"},
		{Title: "t", Description: " ", Content: "c", Category: "System"},
		{Title: "t", Description: "d", Content: "", Category: "System"},
		{Title: "t", Description: "d", Content: "c", Category: ""},
	}
	for _, in := range cases {
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestProcedureUsecase_Create_UnknownCategory(t *testing.T) {
	uc := NewProcedureUsecase(&mockProcedureRepo{}, nil)
	_, err := uc.Create(context.Background(), ProcedureInput{
		Title: "t", Description: "d", Content: "c", Category: "Cooking",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProcedureUsecase_Create_NormalizesTags(t *testing.T) {
	repo := &mockProcedureRepo{}
	uc := NewProcedureUsecase(repo, nil)

	created, err := uc.Create(context.Background(), ProcedureInput{
		Title:       "  Nginx setup ",
		Description: "d",
		Content:     "c",
		Category:    "Network",
		Tags:        []string{" docker ", "", "ubuntu"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Title != "Nginx setup" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "docker" || created.Tags[1] != "ubuntu" {
		t.Fatalf("unexpected tags: %v", created.Tags)
	}
	if repo.created == nil {
		t.Fatalf("expected repo create call")
	}
}

func TestProcedureUsecase_Delete_NotFound(t *testing.T) {
	uc := NewProcedureUsecase(&mockProcedureRepo{deleteErr: repository.ErrNotFound}, nil)
	if err := uc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProcedureUsecase_Update_UnknownCategory(t *testing.T) {
	id := uuid.New()
	repo := &mockProcedureRepo{items: []portfolio.Procedure{{
		ID: id, Title: "t", Description: "d", Content: "c", Category: "System", Tags: []string{},
	}}}
	uc := NewProcedureUsecase(repo, nil)

	bad := "Cooking"
	if _, err := uc.Update(context.Background(), id, ProcedureUpdate{Category: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNormalizeTags_NeverNil(t *testing.T) {
	out := NormalizeTags(nil)
	if out == nil {
		t.Fatalf("expected non-nil slice")
	}
	if len(out) != 0 {
		t.Fatalf("expected empty slice, got %v", out)
	}
}
