package jobpostings

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	data   map[string]JobPosting
	skills map[string][]RequiredSkill // jobPostingID -> requirements
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data:   make(map[string]JobPosting),
		skills: make(map[string][]RequiredSkill),
	}
}

// Put stores or replaces a job posting and its skill requirements.
func (r *MemoryRepo) Put(jp JobPosting, skills []RequiredSkill) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[jp.ID] = jp
	r.skills[jp.ID] = append([]RequiredSkill(nil), skills...)
}

// GetByID returns a job posting by id.
func (r *MemoryRepo) GetByID(ctx context.Context, jobPostingID string) (JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return JobPosting{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	jp, ok := r.data[jobPostingID]
	if !ok {
		return JobPosting{}, ErrNotFound
	}
	return jp, nil
}

// ListRequiredSkills returns the skill requirements of a job posting.
func (r *MemoryRepo) ListRequiredSkills(ctx context.Context, jobPostingID string) ([]RequiredSkill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]RequiredSkill(nil), r.skills[jobPostingID]...), nil
}

var _ Repo = (*MemoryRepo)(nil)
