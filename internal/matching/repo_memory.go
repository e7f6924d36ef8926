package matching

import (
	"context"
	"sync"
)

type pairKey struct {
	candidateID  string
	jobPostingID string
}

// MemoryRepo is an in-memory implementation of ResultsRepo for dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[pairKey]MatchResult
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[pairKey]MatchResult)}
}

// Upsert stores or overwrites the result for a (candidate, jobPosting) pair.
func (r *MemoryRepo) Upsert(ctx context.Context, result MatchResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := pairKey{candidateID: result.CandidateID, jobPostingID: result.JobPostingID}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.data[key]; ok {
		// Keep the original row id across overwrites, mirroring the PG upsert.
		result.ID = existing.ID
	}
	r.data[key] = result
	return nil
}

// GetByPair returns the stored result for a (candidate, jobPosting) pair.
func (r *MemoryRepo) GetByPair(ctx context.Context, candidateID, jobPostingID string) (MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return MatchResult{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.data[pairKey{candidateID: candidateID, jobPostingID: jobPostingID}]
	if !ok {
		return MatchResult{}, ErrNotFound
	}
	return result, nil
}

// ListScoresByJobPosting returns the overall scores stored for a job posting.
func (r *MemoryRepo) ListScoresByJobPosting(ctx context.Context, jobPostingID string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []float64
	for key, result := range r.data {
		if key.jobPostingID == jobPostingID {
			out = append(out, result.OverallScore)
		}
	}
	return out, nil
}

// Len reports how many results are stored.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

var _ ResultsRepo = (*MemoryRepo)(nil)
