package candidates

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetByID returns a candidate by id.
func (r *PGRepo) GetByID(ctx context.Context, candidateID string) (Candidate, error) {
	const query = `
SELECT id, full_name, email, total_experience_years, education_level, city, country, is_active, created_at
FROM candidates
WHERE id = $1`
	var cand Candidate
	var email, education, city, country sql.NullString
	err := r.DB.QueryRowContext(ctx, query, candidateID).Scan(
		&cand.ID,
		&cand.FullName,
		&email,
		&cand.TotalExperienceYears,
		&education,
		&city,
		&country,
		&cand.IsActive,
		&cand.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	cand.Email = email.String
	cand.EducationLevel = education.String
	cand.City = city.String
	cand.Country = country.String
	return cand, nil
}

// ListActive lists active candidates ordered by creation time, honoring limit/offset.
func (r *PGRepo) ListActive(ctx context.Context, limit, offset int) ([]Candidate, error) {
	if limit <= 0 {
		limit = 500
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, full_name, email, total_experience_years, education_level, city, country, is_active, created_at
FROM candidates
WHERE is_active = TRUE
ORDER BY created_at ASC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		var cand Candidate
		var email, education, city, country sql.NullString
		if err := rows.Scan(
			&cand.ID,
			&cand.FullName,
			&email,
			&cand.TotalExperienceYears,
			&education,
			&city,
			&country,
			&cand.IsActive,
			&cand.CreatedAt,
		); err != nil {
			return nil, err
		}
		cand.Email = email.String
		cand.EducationLevel = education.String
		cand.City = city.String
		cand.Country = country.String
		out = append(out, cand)
	}
	return out, rows.Err()
}

// ListSkills returns the skills recorded for a candidate.
func (r *PGRepo) ListSkills(ctx context.Context, candidateID string) ([]CandidateSkill, error) {
	const query = `
SELECT candidate_id, skill_id, skill_name, proficiency_level, years_of_experience
FROM candidate_skills
WHERE candidate_id = $1
ORDER BY skill_name ASC`

	rows, err := r.DB.QueryContext(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CandidateSkill
	for rows.Next() {
		var cs CandidateSkill
		var proficiency sql.NullString
		if err := rows.Scan(&cs.CandidateID, &cs.SkillID, &cs.SkillName, &proficiency, &cs.YearsOfExperience); err != nil {
			return nil, err
		}
		cs.ProficiencyLevel = proficiency.String
		out = append(out, cs)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
