package candidates

import "context"

// Repo defines read operations the matching engine needs from candidate storage.
type Repo interface {
	GetByID(ctx context.Context, candidateID string) (Candidate, error)
	ListActive(ctx context.Context, limit, offset int) ([]Candidate, error)
	ListSkills(ctx context.Context, candidateID string) ([]CandidateSkill, error)
}
