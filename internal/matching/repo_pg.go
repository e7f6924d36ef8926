package matching

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements ResultsRepo using Postgres. The breakdown is stored as
// JSONB alongside the scores.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or overwrites the match result for a (candidate, jobPosting)
// pair. The original row id survives an overwrite.
func (r *PGRepo) Upsert(ctx context.Context, result MatchResult) error {
	const query = `
INSERT INTO match_results (
    id,
    candidate_id,
    job_posting_id,
    overall_score,
    skill_score,
    experience_score,
    education_score,
    location_score,
    breakdown,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (candidate_id, job_posting_id) DO UPDATE SET
    overall_score = EXCLUDED.overall_score,
    skill_score = EXCLUDED.skill_score,
    experience_score = EXCLUDED.experience_score,
    education_score = EXCLUDED.education_score,
    location_score = EXCLUDED.location_score,
    breakdown = EXCLUDED.breakdown,
    created_at = EXCLUDED.created_at`

	breakdown, err := json.Marshal(result.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		result.ID,
		result.CandidateID,
		result.JobPostingID,
		result.OverallScore,
		result.SkillScore,
		result.ExperienceScore,
		result.EducationScore,
		result.LocationScore,
		breakdown,
		result.CreatedAt,
	)
	return err
}

// GetByPair returns the persisted result for a (candidate, jobPosting) pair.
func (r *PGRepo) GetByPair(ctx context.Context, candidateID, jobPostingID string) (MatchResult, error) {
	const query = `
SELECT id, candidate_id, job_posting_id, overall_score, skill_score, experience_score, education_score, location_score, breakdown, created_at
FROM match_results
WHERE candidate_id = $1 AND job_posting_id = $2`

	var result MatchResult
	var breakdown []byte
	err := r.DB.QueryRowContext(ctx, query, candidateID, jobPostingID).Scan(
		&result.ID,
		&result.CandidateID,
		&result.JobPostingID,
		&result.OverallScore,
		&result.SkillScore,
		&result.ExperienceScore,
		&result.EducationScore,
		&result.LocationScore,
		&breakdown,
		&result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MatchResult{}, ErrNotFound
		}
		return MatchResult{}, err
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &result.Breakdown); err != nil {
			return MatchResult{}, fmt.Errorf("unmarshal breakdown: %w", err)
		}
	}
	return result, nil
}

// ListScoresByJobPosting returns the overall scores persisted for a job posting.
func (r *PGRepo) ListScoresByJobPosting(ctx context.Context, jobPostingID string) ([]float64, error) {
	const query = `
SELECT overall_score
FROM match_results
WHERE job_posting_id = $1
ORDER BY overall_score DESC`

	rows, err := r.DB.QueryContext(ctx, query, jobPostingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var score float64
		if err := rows.Scan(&score); err != nil {
			return nil, err
		}
		out = append(out, score)
	}
	return out, rows.Err()
}

var _ ResultsRepo = (*PGRepo)(nil)
