package jobpostings

import "context"

// Repo defines read operations the matching engine needs from job-posting storage.
type Repo interface {
	GetByID(ctx context.Context, jobPostingID string) (JobPosting, error)
	ListRequiredSkills(ctx context.Context, jobPostingID string) ([]RequiredSkill, error)
}
