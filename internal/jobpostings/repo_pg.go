package jobpostings

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetByID returns a job posting by id.
func (r *PGRepo) GetByID(ctx context.Context, jobPostingID string) (JobPosting, error) {
	const query = `
SELECT id, title, minimum_experience, preferred_experience, required_education_level,
       city, country, location_type,
       skill_weight, experience_weight, education_weight, location_weight,
       is_active, created_at
FROM job_postings
WHERE id = $1`
	var jp JobPosting
	var preferred sql.NullFloat64
	var education, city, country sql.NullString
	var skillW, expW, eduW, locW sql.NullFloat64
	err := r.DB.QueryRowContext(ctx, query, jobPostingID).Scan(
		&jp.ID,
		&jp.Title,
		&jp.MinimumExperience,
		&preferred,
		&education,
		&city,
		&country,
		&jp.LocationType,
		&skillW,
		&expW,
		&eduW,
		&locW,
		&jp.IsActive,
		&jp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobPosting{}, ErrNotFound
		}
		return JobPosting{}, err
	}
	if preferred.Valid {
		jp.PreferredExperience = &preferred.Float64
	}
	jp.RequiredEducationLevel = education.String
	jp.City = city.String
	jp.Country = country.String
	jp.SkillWeight = nullableFloat(skillW)
	jp.ExperienceWeight = nullableFloat(expW)
	jp.EducationWeight = nullableFloat(eduW)
	jp.LocationWeight = nullableFloat(locW)
	return jp, nil
}

// ListRequiredSkills returns the skill requirements of a job posting.
func (r *PGRepo) ListRequiredSkills(ctx context.Context, jobPostingID string) ([]RequiredSkill, error) {
	const query = `
SELECT job_posting_id, skill_id, skill_name, is_required, weight, minimum_proficiency
FROM job_required_skills
WHERE job_posting_id = $1
ORDER BY skill_name ASC`

	rows, err := r.DB.QueryContext(ctx, query, jobPostingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RequiredSkill
	for rows.Next() {
		var rs RequiredSkill
		var minProf sql.NullString
		if err := rows.Scan(&rs.JobPostingID, &rs.SkillID, &rs.SkillName, &rs.IsRequired, &rs.Weight, &minProf); err != nil {
			return nil, err
		}
		rs.MinimumProficiency = minProf.String
		out = append(out, rs)
	}
	return out, rows.Err()
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

var _ Repo = (*PGRepo)(nil)
