package matching

import "context"

// ResultsRepo defines persistence operations for match results. Upsert is
// keyed by (candidate, jobPosting): re-scoring overwrites, never duplicates.
type ResultsRepo interface {
	Upsert(ctx context.Context, result MatchResult) error
	GetByPair(ctx context.Context, candidateID, jobPostingID string) (MatchResult, error)
	ListScoresByJobPosting(ctx context.Context, jobPostingID string) ([]float64, error)
}
