package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"studybuddy/internal/models"
)

// Integration tests run only against a disposable database.
func newTestPostgres(t *testing.T) *PostgresStorage {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	s, err := NewPostgresStorage(dsn)
	if err != nil {
		t.Fatalf("NewPostgresStorage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPostgresUserRoundtrip(t *testing.T) {
	s := newTestPostgres(t)
	ctx := context.Background()

	username := fmt.Sprintf("asha-%d", time.Now().UnixNano())
	created, err := s.CreateUser(ctx, models.InsertUser{Username: username, Password: "secret"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.Grade != 6 {
		t.Fatalf("grade default not applied: %+v", created)
	}

	got, err := s.GetUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got == nil || *got != *created {
		t.Fatalf("roundtrip mismatch: %+v vs %+v", created, got)
	}

	byName, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if byName == nil || byName.ID != created.ID {
		t.Fatalf("lookup by username mismatch: %+v", byName)
	}
}

func TestPostgresAbsentIDReturnsNilNil(t *testing.T) {
	s := newTestPostgres(t)
	got, err := s.GetUser(context.Background(), -1)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent id, got %+v", got)
	}
}

func TestPostgresPartialUpdate(t *testing.T) {
	s := newTestPostgres(t)
	ctx := context.Background()

	username := fmt.Sprintf("ravi-%d", time.Now().UnixNano())
	user, err := s.CreateUser(ctx, models.InsertUser{Username: username, Password: "secret"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	streak := 3
	updated, err := s.UpdateUser(ctx, user.ID, models.UserUpdate{Streak: &streak})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Streak != 3 || updated.Username != username || updated.Grade != user.Grade {
		t.Fatalf("partial update touched unrelated fields: %+v", updated)
	}
}

func TestPostgresQuestionOptionsRoundtrip(t *testing.T) {
	s := newTestPostgres(t)
	ctx := context.Background()

	subject, err := s.CreateSubject(ctx, models.InsertSubject{
		Name: fmt.Sprintf("Test Subject %d", time.Now().UnixNano()), Icon: "flask",
		Color: "green", TotalChapters: 5, Description: "integration fixture",
	})
	if err != nil {
		t.Fatalf("CreateSubject: %v", err)
	}

	options := []string{"3", "4", "5", "6"}
	created, err := s.CreateQuestion(ctx, models.InsertQuestion{
		SubjectID: subject.ID, Grade: 6, Chapter: "Numbers",
		Question: "What is 2+2?", Options: options, CorrectAnswer: "4",
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if len(created.Options) != len(options) {
		t.Fatalf("options not persisted: %+v", created.Options)
	}
	for i, opt := range created.Options {
		if opt != options[i] {
			t.Fatalf("options out of order: %v", created.Options)
		}
	}
}
