package matching

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"recruiting-backend/internal/candidates"
	"recruiting-backend/internal/jobpostings"
)

type serviceFixture struct {
	svc     *Service
	cands   *candidates.MemoryRepo
	jobs    *jobpostings.MemoryRepo
	results *MemoryRepo
}

func newServiceFixture() *serviceFixture {
	cands := candidates.NewMemoryRepo()
	jobs := jobpostings.NewMemoryRepo()
	results := NewMemoryRepo()
	return &serviceFixture{
		svc:     NewService(cands, jobs, results),
		cands:   cands,
		jobs:    jobs,
		results: results,
	}
}

func (f *serviceFixture) seedJob() jobpostings.JobPosting {
	jp := jobpostings.JobPosting{
		ID:                     "job-1",
		Title:                  "Backend Engineer",
		MinimumExperience:      3,
		PreferredExperience:    floatPtr(7),
		RequiredEducationLevel: EducationBachelor,
		City:                   "New York",
		Country:                "US",
		LocationType:           LocationTypeOnsite,
		IsActive:               true,
	}
	f.jobs.Put(jp, []jobpostings.RequiredSkill{
		requiredSkill("s1", "Go", true, 1.0, ProficiencyIntermediate),
		requiredSkill("s2", "Postgres", false, 1.0, ProficiencyIntermediate),
	})
	return jp
}

func (f *serviceFixture) seedStrongCandidate(id string) {
	f.cands.Put(candidates.Candidate{
		ID:                   id,
		FullName:             "Ada Example",
		TotalExperienceYears: 5,
		EducationLevel:       EducationBachelor,
		City:                 "New York",
		Country:              "US",
		IsActive:             true,
	}, []candidates.CandidateSkill{
		candidateSkill("s1", "Go", ProficiencyAdvanced),
		candidateSkill("s2", "Postgres", ProficiencyIntermediate),
	})
}

func (f *serviceFixture) seedWeakCandidate(id string) {
	f.cands.Put(candidates.Candidate{
		ID:             id,
		FullName:       "Bo Example",
		EducationLevel: EducationHighSchool,
		City:           "London",
		Country:        "GB",
		IsActive:       true,
	}, nil)
}

func TestCalculateMatchPersistsResult(t *testing.T) {
	f := newServiceFixture()
	f.seedJob()
	f.seedStrongCandidate("cand-1")

	result, err := f.svc.CalculateMatch(context.Background(), "cand-1", "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID == "" || result.CreatedAt.IsZero() {
		t.Fatalf("expected identity assigned on persist, got id=%q createdAt=%v", result.ID, result.CreatedAt)
	}
	if result.OverallScore != 95.5 {
		t.Fatalf("expected overall 95.5, got %v", result.OverallScore)
	}

	stored, err := f.results.GetByPair(context.Background(), "cand-1", "job-1")
	if err != nil {
		t.Fatalf("expected result stored: %v", err)
	}
	if stored.ID != result.ID {
		t.Fatalf("stored id %q does not match returned id %q", stored.ID, result.ID)
	}
}

func TestCalculateMatchOverwritesNotDuplicates(t *testing.T) {
	f := newServiceFixture()
	f.seedJob()
	f.seedStrongCandidate("cand-1")
	ctx := context.Background()

	first, err := f.svc.CalculateMatch(ctx, "cand-1", "job-1")
	if err != nil {
		t.Fatalf("first calculation failed: %v", err)
	}
	if _, err := f.svc.CalculateMatch(ctx, "cand-1", "job-1"); err != nil {
		t.Fatalf("second calculation failed: %v", err)
	}

	if got := f.results.Len(); got != 1 {
		t.Fatalf("expected exactly one stored result per pair, got %d", got)
	}
	stored, err := f.results.GetByPair(ctx, "cand-1", "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != first.ID {
		t.Fatalf("expected the original row id to survive an overwrite, got %q want %q", stored.ID, first.ID)
	}
}

func TestCalculateMatchNotFound(t *testing.T) {
	f := newServiceFixture()
	f.seedJob()
	ctx := context.Background()

	_, err := f.svc.CalculateMatch(ctx, "missing", "job-1")
	if !errors.Is(err, candidates.ErrNotFound) {
		t.Fatalf("expected candidates.ErrNotFound, got %v", err)
	}

	f.seedStrongCandidate("cand-1")
	_, err = f.svc.CalculateMatch(ctx, "cand-1", "missing")
	if !errors.Is(err, jobpostings.ErrNotFound) {
		t.Fatalf("expected jobpostings.ErrNotFound, got %v", err)
	}
}

func TestBatchMatchScoresAllActiveCandidates(t *testing.T) {
	f := newServiceFixture()
	f.seedJob()
	f.seedStrongCandidate("cand-1")
	f.seedWeakCandidate("cand-2")
	f.cands.Put(candidates.Candidate{ID: "cand-3", FullName: "Inactive", IsActive: false}, nil)

	result, err := f.svc.BatchMatch(context.Background(), "job-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalProcessed != 2 {
		t.Fatalf("expected 2 processed (inactive excluded), got %d", result.TotalProcessed)
	}
	if got := f.results.Len(); got != 2 {
		t.Fatalf("expected 2 stored results, got %d", got)
	}
}

func TestBatchMatchMinScoreFiltersPersistence(t *testing.T) {
	f := newServiceFixture()
	f.seedJob()
	f.seedStrongCandidate("cand-1")
	f.seedWeakCandidate("cand-2")

	result, err := f.svc.BatchMatch(context.Background(), "job-1", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalProcessed != 2 {
		t.Fatalf("below-threshold candidates still count as processed, got %d", result.TotalProcessed)
	}
	if got := f.results.Len(); got != 1 {
		t.Fatalf("expected only the strong candidate persisted, got %d", got)
	}
	if _, err := f.results.GetByPair(context.Background(), "cand-2", "job-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected weak candidate skipped, got %v", err)
	}
}

func TestBatchMatchIdempotent(t *testing.T) {
	f := newServiceFixture()
	f.seedJob()
	f.seedStrongCandidate("cand-1")
	f.seedWeakCandidate("cand-2")
	ctx := context.Background()

	if _, err := f.svc.BatchMatch(ctx, "job-1", 0); err != nil {
		t.Fatalf("first batch failed: %v", err)
	}
	if _, err := f.svc.BatchMatch(ctx, "job-1", 0); err != nil {
		t.Fatalf("second batch failed: %v", err)
	}
	if got := f.results.Len(); got != 2 {
		t.Fatalf("expected re-running a batch to overwrite, not duplicate, got %d rows", got)
	}
}

func TestBatchMatchUnknownJob(t *testing.T) {
	f := newServiceFixture()
	_, err := f.svc.BatchMatch(context.Background(), "missing", 0)
	if !errors.Is(err, jobpostings.ErrNotFound) {
		t.Fatalf("expected jobpostings.ErrNotFound, got %v", err)
	}
}

type flakySkillsRepo struct {
	candidates.Repo
	failFor string
}

func (r flakySkillsRepo) ListSkills(ctx context.Context, candidateID string) ([]candidates.CandidateSkill, error) {
	if candidateID == r.failFor {
		return nil, errors.New("skills backend down")
	}
	return r.Repo.ListSkills(ctx, candidateID)
}

func TestBatchMatchSkipsFailingCandidate(t *testing.T) {
	f := newServiceFixture()
	f.seedJob()
	f.seedStrongCandidate("cand-1")
	f.seedStrongCandidate("cand-2")
	f.svc.Candidates = flakySkillsRepo{Repo: f.cands, failFor: "cand-2"}

	result, err := f.svc.BatchMatch(context.Background(), "job-1", 0)
	if err != nil {
		t.Fatalf("a per-candidate failure must not abort the batch: %v", err)
	}
	if result.TotalProcessed != 2 {
		t.Fatalf("failed candidates still count as processed, got %d", result.TotalProcessed)
	}
	if got := f.results.Len(); got != 1 {
		t.Fatalf("expected the healthy candidate persisted, got %d rows", got)
	}
	if _, err := f.results.GetByPair(context.Background(), "cand-1", "job-1"); err != nil {
		t.Fatalf("expected cand-1 persisted: %v", err)
	}
}

func TestBatchMatchCanceledContext(t *testing.T) {
	f := newServiceFixture()
	f.seedJob()
	f.seedStrongCandidate("cand-1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.BatchMatch(ctx, "job-1", 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMatchDistribution(t *testing.T) {
	f := newServiceFixture()
	f.seedJob()
	ctx := context.Background()

	scores := []float64{0, 20, 20.5, 40, 55, 80, 80.01, 100}
	for i, score := range scores {
		err := f.results.Upsert(ctx, MatchResult{
			ID:           fmt.Sprintf("res-%d", i),
			CandidateID:  fmt.Sprintf("cand-%d", i),
			JobPostingID: "job-1",
			OverallScore: score,
		})
		if err != nil {
			t.Fatalf("seed result: %v", err)
		}
	}

	dist, err := f.svc.MatchDistribution(ctx, "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist.TotalMatches != len(scores) {
		t.Fatalf("expected %d total matches, got %d", len(scores), dist.TotalMatches)
	}
	expected := map[string]int{
		"0-20":   2,
		"21-40":  2,
		"41-60":  1,
		"61-80":  1,
		"81-100": 2,
	}
	for label, want := range expected {
		if got := dist.Distribution[label]; got != want {
			t.Fatalf("bucket %s: expected %d, got %d (full: %v)", label, want, got, dist.Distribution)
		}
	}
}

func TestMatchDistributionEmptyJob(t *testing.T) {
	f := newServiceFixture()
	f.seedJob()

	dist, err := f.svc.MatchDistribution(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist.TotalMatches != 0 {
		t.Fatalf("expected zero matches, got %d", dist.TotalMatches)
	}
	for _, bucket := range []string{"0-20", "21-40", "41-60", "61-80", "81-100"} {
		if count, ok := dist.Distribution[bucket]; !ok || count != 0 {
			t.Fatalf("expected bucket %s present with zero count, got %v", bucket, dist.Distribution)
		}
	}
}

func TestMatchDistributionUnknownJob(t *testing.T) {
	f := newServiceFixture()
	_, err := f.svc.MatchDistribution(context.Background(), "missing")
	if !errors.Is(err, jobpostings.ErrNotFound) {
		t.Fatalf("expected jobpostings.ErrNotFound, got %v", err)
	}
}

func TestRecommendationsDoesNotPersist(t *testing.T) {
	f := newServiceFixture()
	f.seedJob()
	f.seedWeakCandidate("cand-2")

	recs, err := f.svc.Recommendations(context.Background(), "cand-2", "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatalf("expected recommendations for a weak candidate")
	}
	if got := f.results.Len(); got != 0 {
		t.Fatalf("recommendations must not persist results, found %d rows", got)
	}
}
