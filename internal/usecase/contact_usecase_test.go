package usecase

import (
	"context"
	"errors"
	"testing"

	"portfolio-api/internal/domain/portfolio"

	"github.com/google/uuid"
)

type mockContactRepo struct {
	created   *portfolio.ContactMessage
	createErr error
}

func (m *mockContactRepo) List(context.Context) ([]portfolio.ContactMessage, error) {
	return nil, nil
}

func (m *mockContactRepo) Create(_ context.Context, msg portfolio.ContactMessage) (portfolio.ContactMessage, error) {
	if m.createErr != nil {
		return portfolio.ContactMessage{}, m.createErr
	}
	msg.ID = uuid.New()
	m.created = &msg
	return msg, nil
}

func (m *mockContactRepo) MarkRead(context.Context, uuid.UUID) error { return nil }
func (m *mockContactRepo) Delete(context.Context, uuid.UUID) error   { return nil }

func TestContactUsecase_Submit_MissingFields(t *testing.T) {
	uc := NewContactUsecase(&mockContactRepo{})

	cases := []ContactMessageInput{
		{Name: "", Email: "a@b.fr", Message: "hi"},
		{Name: "a", Email: "", Message: "hi"},
		{Name: "a", Email: "a@b.fr", Message: "  "},
		{Name: "a", Email: "not-an-email", Message: "hi"},
	}
	for _, in := range cases {
		if _, err := uc.Submit(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestContactUsecase_Submit_Success(t *testing.T) {
	repo := &mockContactRepo{}
	uc := NewContactUsecase(repo)

	created, err := uc.Submit(context.Background(), ContactMessageInput{
		Name: " Alice ", Email: " alice@example.com ", Message: " bonjour ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Name != "Alice" || created.Email != "alice@example.com" || created.Message != "bonjour" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}
	if repo.created == nil {
		t.Fatalf("expected repo create call")
	}
}
