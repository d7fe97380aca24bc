package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/mentorhub/internal/domain/project"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hashes  map[string]map[string]string
	hsetErr error
}

func newMockStore() *mockStore {
	return &mockStore{hashes: make(map[string]map[string]string)}
}

func (m *mockStore) HSet(_ context.Context, key string, fields map[string]string) error {
	if m.hsetErr != nil {
		return m.hsetErr
	}
	h, ok := m.hashes[key]
	if !ok {
		h = make(map[string]string)
		m.hashes[key] = h
	}
	for k, v := range fields {
		h[k] = v
	}
	return nil
}

func (m *mockStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	out := make(map[string]string)
	for k, v := range m.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (m *mockStore) HDel(_ context.Context, key string, fields ...string) error {
	for _, f := range fields {
		delete(m.hashes[key], f)
	}
	return nil
}

func TestSaveList(t *testing.T) {
	s := newMockStore()
	r := New(s)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	apps := []project.Application{
		{ProjectID: 2, StudentName: "Bea", StudentEmail: "bea@example.com", AppliedAt: base.Add(time.Hour)},
		{ProjectID: 2, StudentName: "Al", StudentEmail: "al@example.com", AppliedAt: base},
		{ProjectID: 3, StudentName: "Cy", StudentEmail: "cy@example.com", AppliedAt: base},
	}
	for _, a := range apps {
		if err := r.Save(ctx, a); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	if _, ok := s.hashes["mentorhub:applications:2"]; !ok {
		t.Fatalf("expected hash key mentorhub:applications:2, got %v", s.hashes)
	}

	got, err := r.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].StudentName != "Al" || got[1].StudentName != "Bea" {
		t.Errorf("List(2) = %+v, want Al then Bea", got)
	}
}

func TestSave_ReplacesSameEmail(t *testing.T) {
	r := New(newMockStore())
	ctx := context.Background()

	_ = r.Save(ctx, project.Application{ProjectID: 1, StudentEmail: "a@example.com", Message: "first"})
	_ = r.Save(ctx, project.Application{ProjectID: 1, StudentEmail: "a@example.com", Message: "second"})

	got, _ := r.List(ctx, 1)
	if len(got) != 1 || got[0].Message != "second" {
		t.Errorf("List = %+v, want single application with message second", got)
	}
}

func TestWithdraw(t *testing.T) {
	r := New(newMockStore())
	ctx := context.Background()
	_ = r.Save(ctx, project.Application{ProjectID: 1, StudentEmail: "a@example.com"})

	if err := r.Withdraw(ctx, 1, "a@example.com"); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	got, _ := r.List(ctx, 1)
	if len(got) != 0 {
		t.Errorf("List after Withdraw = %+v, want empty", got)
	}
}

func TestSave_StoreError(t *testing.T) {
	s := newMockStore()
	s.hsetErr = errors.New("down")
	r := New(s)
	if err := r.Save(context.Background(), project.Application{ProjectID: 1}); err == nil {
		t.Fatal("expected error")
	}
}

func TestList_DecodeError(t *testing.T) {
	s := newMockStore()
	s.hashes["mentorhub:applications:1"] = map[string]string{"x": "{bad"}
	if _, err := New(s).List(context.Background(), 1); err == nil {
		t.Fatal("expected decode error")
	}
}
