package matching

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"recruiting-backend/internal/candidates"
	"recruiting-backend/internal/jobpostings"
	"recruiting-backend/internal/matching/recommendations"
	"recruiting-backend/internal/shared/metrics"
	"recruiting-backend/internal/shared/telemetry"
)

const (
	defaultBatchConcurrency = 4
	candidatePageSize       = 200
)

// Service orchestrates scoring against the storage collaborators. The scoring
// itself is pure; the service owns loading, persistence, and batching.
type Service struct {
	Candidates  candidates.Repo
	JobPostings jobpostings.Repo
	Results     ResultsRepo

	// BatchConcurrency caps concurrent scorings during a batch run.
	BatchConcurrency int
}

// NewService constructs a Service.
func NewService(cands candidates.Repo, jobs jobpostings.Repo, results ResultsRepo) *Service {
	return &Service{
		Candidates:  cands,
		JobPostings: jobs,
		Results:     results,
	}
}

// CalculateMatch scores one candidate against one job posting, upserts the
// result, and returns it. Unresolvable ids propagate the repo's not-found
// error.
func (s *Service) CalculateMatch(ctx context.Context, candidateID, jobPostingID string) (MatchResult, error) {
	cand, err := s.Candidates.GetByID(ctx, candidateID)
	if err != nil {
		return MatchResult{}, fmt.Errorf("load candidate %s: %w", candidateID, err)
	}
	skills, err := s.Candidates.ListSkills(ctx, candidateID)
	if err != nil {
		return MatchResult{}, fmt.Errorf("load candidate skills %s: %w", candidateID, err)
	}
	jp, err := s.JobPostings.GetByID(ctx, jobPostingID)
	if err != nil {
		return MatchResult{}, fmt.Errorf("load job posting %s: %w", jobPostingID, err)
	}
	reqs, err := s.JobPostings.ListRequiredSkills(ctx, jobPostingID)
	if err != nil {
		return MatchResult{}, fmt.Errorf("load job required skills %s: %w", jobPostingID, err)
	}

	result := CalculateMatchScore(cand, jp, skills, reqs)
	result.ID = uuid.NewString()
	result.CreatedAt = time.Now().UTC()
	metrics.IncMatchScored()

	if err := s.Results.Upsert(ctx, result); err != nil {
		return MatchResult{}, fmt.Errorf("persist match result: %w", err)
	}
	metrics.IncMatchPersisted()
	return result, nil
}

// BatchMatch scores every active candidate against a job posting. Results at
// or above minScore are upserted; the rest are skipped but still counted.
// A per-candidate failure is logged and skipped, never aborting the batch.
// Cancellation stops scheduling new candidates; everything scored before the
// cancel stays persisted, and the partial counts are returned with ctx's error.
func (s *Service) BatchMatch(ctx context.Context, jobPostingID string, minScore float64) (BatchResult, error) {
	start := time.Now()
	metrics.IncBatchStarted()

	jp, err := s.JobPostings.GetByID(ctx, jobPostingID)
	if err != nil {
		return BatchResult{}, fmt.Errorf("load job posting %s: %w", jobPostingID, err)
	}
	reqs, err := s.JobPostings.ListRequiredSkills(ctx, jobPostingID)
	if err != nil {
		return BatchResult{}, fmt.Errorf("load job required skills %s: %w", jobPostingID, err)
	}

	concurrency := s.BatchConcurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	var processed atomic.Int64

	offset := 0
pageLoop:
	for {
		page, err := s.Candidates.ListActive(ctx, candidatePageSize, offset)
		if err != nil {
			telemetry.Error("matching.batch.list_candidates", map[string]any{
				"job_posting_id": jobPostingID,
				"offset":         offset,
				"error":          err.Error(),
			})
			break
		}
		if len(page) == 0 {
			break
		}
		offset += len(page)

		for _, cand := range page {
			select {
			case <-ctx.Done():
				break pageLoop
			case sem <- struct{}{}:
			}
			wg.Add(1)
			go func(cand candidates.Candidate) {
				defer wg.Done()
				defer func() { <-sem }()
				processed.Add(1)
				s.scoreOne(ctx, cand, jp, reqs, minScore)
			}(cand)
		}
	}
	wg.Wait()

	elapsed := time.Since(start)
	metrics.ObserveBatchDurationMs(float64(elapsed.Microseconds()) / 1000.0)
	metrics.IncBatchCompleted()

	result := BatchResult{
		TotalProcessed:   int(processed.Load()),
		ProcessingTimeMs: elapsed.Milliseconds(),
	}
	telemetry.Info("matching.batch.complete", map[string]any{
		"job_posting_id":  jobPostingID,
		"min_score":       minScore,
		"total_processed": result.TotalProcessed,
		"duration_ms":     result.ProcessingTimeMs,
	})
	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func (s *Service) scoreOne(ctx context.Context, cand candidates.Candidate, jp jobpostings.JobPosting, reqs []jobpostings.RequiredSkill, minScore float64) {
	skills, err := s.Candidates.ListSkills(ctx, cand.ID)
	if err != nil {
		metrics.IncBatchItemFailed()
		telemetry.Warn("matching.batch.skip_candidate", map[string]any{
			"candidate_id":   cand.ID,
			"job_posting_id": jp.ID,
			"error":          err.Error(),
		})
		return
	}

	result := CalculateMatchScore(cand, jp, skills, reqs)
	metrics.IncMatchScored()
	if result.OverallScore < minScore {
		return
	}

	result.ID = uuid.NewString()
	result.CreatedAt = time.Now().UTC()
	if err := s.Results.Upsert(ctx, result); err != nil {
		metrics.IncBatchItemFailed()
		telemetry.Warn("matching.batch.persist_failed", map[string]any{
			"candidate_id":   cand.ID,
			"job_posting_id": jp.ID,
			"error":          err.Error(),
		})
		return
	}
	metrics.IncMatchPersisted()
}

// distributionBuckets are the fixed overall-score ranges reported by
// MatchDistribution. Upper bounds are inclusive.
var distributionBuckets = []struct {
	label string
	upper float64
}{
	{"0-20", 20},
	{"21-40", 40},
	{"41-60", 60},
	{"61-80", 80},
	{"81-100", 100},
}

// MatchDistribution buckets the persisted overall scores for a job posting.
func (s *Service) MatchDistribution(ctx context.Context, jobPostingID string) (Distribution, error) {
	if _, err := s.JobPostings.GetByID(ctx, jobPostingID); err != nil {
		return Distribution{}, fmt.Errorf("load job posting %s: %w", jobPostingID, err)
	}
	scores, err := s.Results.ListScoresByJobPosting(ctx, jobPostingID)
	if err != nil {
		return Distribution{}, fmt.Errorf("list match scores %s: %w", jobPostingID, err)
	}

	dist := make(map[string]int, len(distributionBuckets))
	for _, bucket := range distributionBuckets {
		dist[bucket.label] = 0
	}
	for _, score := range scores {
		for _, bucket := range distributionBuckets {
			if score <= bucket.upper {
				dist[bucket.label]++
				break
			}
		}
	}
	return Distribution{TotalMatches: len(scores), Distribution: dist}, nil
}

// Recommendations recomputes the breakdown for a pair and derives actionable
// guidance from its gaps. Nothing is persisted.
func (s *Service) Recommendations(ctx context.Context, candidateID, jobPostingID string) ([]recommendations.Recommendation, error) {
	cand, err := s.Candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("load candidate %s: %w", candidateID, err)
	}
	skills, err := s.Candidates.ListSkills(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("load candidate skills %s: %w", candidateID, err)
	}
	jp, err := s.JobPostings.GetByID(ctx, jobPostingID)
	if err != nil {
		return nil, fmt.Errorf("load job posting %s: %w", jobPostingID, err)
	}
	reqs, err := s.JobPostings.ListRequiredSkills(ctx, jobPostingID)
	if err != nil {
		return nil, fmt.Errorf("load job required skills %s: %w", jobPostingID, err)
	}

	result := CalculateMatchScore(cand, jp, skills, reqs)
	return recommendations.Generate(recommendationInput(result.Breakdown)), nil
}

func recommendationInput(breakdown Breakdown) recommendations.Input {
	missing := make([]recommendations.MissingSkill, 0, len(breakdown.SkillDetails.Missing))
	for _, skill := range breakdown.SkillDetails.Missing {
		missing = append(missing, recommendations.MissingSkill{
			Name:       skill.SkillName,
			IsRequired: skill.IsRequired,
		})
	}
	return recommendations.Input{
		MissingSkills:     missing,
		CandidateYears:    breakdown.ExperienceDetails.CandidateYears,
		RequiredMinimum:   breakdown.ExperienceDetails.RequiredMinimum,
		EducationGap:      breakdown.EducationDetails.Gap,
		RequiredEducation: breakdown.EducationDetails.RequiredLevel,
	}
}
