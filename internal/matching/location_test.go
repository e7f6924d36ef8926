package matching

import "testing"

func TestLocationScore(t *testing.T) {
	cases := []struct {
		name             string
		candidateCity    string
		candidateCountry string
		jobCity          string
		jobCountry       string
		locationType     string
		expectedScore    float64
		expectedBranch   string
	}{
		{"remote_always_full", "London", "GB", "New York", "US", LocationTypeRemote, 100, BranchRemote},
		{"remote_ignores_unknown", "", "", "", "", LocationTypeRemote, 100, BranchRemote},
		{"candidate_unknown", "", "", "New York", "US", LocationTypeOnsite, 50, BranchUnknownLocation},
		{"job_unknown", "London", "GB", "", "", LocationTypeHybrid, 50, BranchUnknownLocation},
		{"same_city", "New York", "US", "New York", "US", LocationTypeOnsite, 100, BranchSameCity},
		{"same_city_case_insensitive", "new york", "us", "New York", "US", LocationTypeOnsite, 100, BranchSameCity},
		{"same_city_no_countries", "Berlin", "", "Berlin", "", LocationTypeOnsite, 100, BranchSameCity},
		{"same_city_name_different_country", "Springfield", "US", "Springfield", "CA", LocationTypeOnsite, 20, BranchDifferentCountry},
		{"same_country_onsite", "Boston", "US", "New York", "US", LocationTypeOnsite, 60, BranchSameCountry},
		{"same_country_hybrid", "Boston", "US", "New York", "US", LocationTypeHybrid, 80, BranchSameCountry},
		{"different_country_onsite", "London", "GB", "New York", "US", LocationTypeOnsite, 20, BranchDifferentCountry},
		{"different_country_hybrid", "London", "GB", "New York", "US", LocationTypeHybrid, 50, BranchDifferentCountry},
		{"unicode_folding", "MÜNCHEN", "DE", "münchen", "de", LocationTypeOnsite, 100, BranchSameCity},
		{"whitespace_trimmed", "  Boston ", " US ", "Boston", "US", LocationTypeOnsite, 100, BranchSameCity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, branch := LocationScore(tc.candidateCity, tc.candidateCountry, tc.jobCity, tc.jobCountry, tc.locationType)
			if score != tc.expectedScore {
				t.Fatalf("expected score %v, got %v", tc.expectedScore, score)
			}
			if branch != tc.expectedBranch {
				t.Fatalf("expected branch %q, got %q", tc.expectedBranch, branch)
			}
		})
	}
}
