package candidates

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &PGRepo{DB: db}, mock
}

var candidateColumns = []string{"id", "full_name", "email", "total_experience_years", "education_level", "city", "country", "is_active", "created_at"}

func TestPGRepoGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT id, full_name").
		WithArgs("cand-1").
		WillReturnRows(sqlmock.NewRows(candidateColumns).
			AddRow("cand-1", "Ada Example", "ada@example.com", 5.0, "bachelor", "New York", "US", true, now))

	cand, err := repo.GetByID(context.Background(), "cand-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.FullName != "Ada Example" || cand.TotalExperienceYears != 5 || cand.EducationLevel != "bachelor" {
		t.Fatalf("unexpected candidate: %+v", cand)
	}
}

func TestPGRepoGetByIDNullableFields(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT id, full_name").
		WithArgs("cand-2").
		WillReturnRows(sqlmock.NewRows(candidateColumns).
			AddRow("cand-2", "Bo Example", nil, 0.0, nil, nil, nil, true, now))

	cand, err := repo.GetByID(context.Background(), "cand-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.Email != "" || cand.EducationLevel != "" || cand.City != "" || cand.Country != "" {
		t.Fatalf("expected NULL columns mapped to empty strings, got %+v", cand)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, full_name").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListActiveClampsLimit(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, full_name").
		WithArgs(1000, 0).
		WillReturnRows(sqlmock.NewRows(candidateColumns))

	if _, err := repo.ListActive(context.Background(), 5000, -3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGRepoListSkills(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT candidate_id, skill_id").
		WithArgs("cand-1").
		WillReturnRows(sqlmock.NewRows([]string{"candidate_id", "skill_id", "skill_name", "proficiency_level", "years_of_experience"}).
			AddRow("cand-1", "s1", "Go", "advanced", 4.0).
			AddRow("cand-1", "s2", "Postgres", nil, 2.0))

	skills, err := repo.ListSkills(context.Background(), "cand-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(skills))
	}
	if skills[0].ProficiencyLevel != "advanced" {
		t.Fatalf("unexpected first skill: %+v", skills[0])
	}
	if skills[1].ProficiencyLevel != "" {
		t.Fatalf("expected NULL proficiency mapped to empty, got %+v", skills[1])
	}
}
