package candidates

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	data   map[string]Candidate
	skills map[string][]CandidateSkill // candidateID -> skills
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data:   make(map[string]Candidate),
		skills: make(map[string][]CandidateSkill),
	}
}

// Put stores or replaces a candidate and their skills.
func (r *MemoryRepo) Put(cand Candidate, skills []CandidateSkill) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[cand.ID] = cand
	r.skills[cand.ID] = append([]CandidateSkill(nil), skills...)
}

// GetByID returns a candidate by id.
func (r *MemoryRepo) GetByID(ctx context.Context, candidateID string) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cand, ok := r.data[candidateID]
	if !ok {
		return Candidate{}, ErrNotFound
	}
	return cand, nil
}

// ListActive lists active candidates ordered by creation time.
func (r *MemoryRepo) ListActive(ctx context.Context, limit, offset int) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	out := make([]Candidate, 0, len(r.data))
	for _, cand := range r.data {
		if cand.IsActive {
			out = append(out, cand)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return []Candidate{}, nil
	}
	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

// ListSkills returns the skills recorded for a candidate.
func (r *MemoryRepo) ListSkills(ctx context.Context, candidateID string) ([]CandidateSkill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]CandidateSkill(nil), r.skills[candidateID]...), nil
}

var _ Repo = (*MemoryRepo)(nil)
