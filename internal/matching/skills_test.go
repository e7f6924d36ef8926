package matching

import (
	"testing"

	"recruiting-backend/internal/candidates"
	"recruiting-backend/internal/jobpostings"
)

func candidateSkill(id, name, level string) candidates.CandidateSkill {
	return candidates.CandidateSkill{SkillID: id, SkillName: name, ProficiencyLevel: level}
}

func requiredSkill(id, name string, required bool, weight float64, minProf string) jobpostings.RequiredSkill {
	return jobpostings.RequiredSkill{SkillID: id, SkillName: name, IsRequired: required, Weight: weight, MinimumProficiency: minProf}
}

func TestSkillScoreNoRequirements(t *testing.T) {
	skills := []candidates.CandidateSkill{candidateSkill("s1", "Go", ProficiencyExpert)}
	if got := SkillScore(skills, nil); got != 100 {
		t.Fatalf("expected 100 with no requirements, got %v", got)
	}
	if got := SkillScore(nil, nil); got != 100 {
		t.Fatalf("expected 100 with no requirements and no skills, got %v", got)
	}
}

func TestSkillScoreNoCandidateSkills(t *testing.T) {
	reqs := []jobpostings.RequiredSkill{requiredSkill("s1", "Go", true, 1.0, "")}
	if got := SkillScore(nil, reqs); got != 0 {
		t.Fatalf("expected 0 with requirements but no skills, got %v", got)
	}
}

func TestSkillScoreAllRequiredMissing(t *testing.T) {
	skills := []candidates.CandidateSkill{candidateSkill("s9", "Cobol", ProficiencyExpert)}
	reqs := []jobpostings.RequiredSkill{
		requiredSkill("s1", "Go", true, 1.0, ""),
		requiredSkill("s2", "Postgres", true, 1.0, ""),
	}
	if got := SkillScore(skills, reqs); got != 0 {
		t.Fatalf("expected 0 when all required skills are missing, got %v", got)
	}
}

func TestSkillScoreFullMatch(t *testing.T) {
	skills := []candidates.CandidateSkill{
		candidateSkill("s1", "Go", ProficiencyAdvanced),
		candidateSkill("s2", "Postgres", ProficiencyIntermediate),
	}
	reqs := []jobpostings.RequiredSkill{
		requiredSkill("s1", "Go", true, 1.0, ProficiencyIntermediate),
		requiredSkill("s2", "Postgres", true, 1.0, ProficiencyIntermediate),
	}
	if got := SkillScore(skills, reqs); got != 100 {
		t.Fatalf("expected 100 for a full match at sufficient proficiency, got %v", got)
	}
}

func TestSkillScoreProficiencyGaps(t *testing.T) {
	cases := []struct {
		name     string
		level    string
		minimum  string
		expected float64
	}{
		{"meets_requirement", ProficiencyIntermediate, ProficiencyIntermediate, 100},
		{"exceeds_requirement", ProficiencyExpert, ProficiencyBeginner, 100},
		{"one_below", ProficiencyIntermediate, ProficiencyAdvanced, 70},
		{"two_below", ProficiencyBeginner, ProficiencyAdvanced, 40},
		{"three_below", ProficiencyBeginner, ProficiencyExpert, 40},
		{"missing_level_defaults_intermediate", "", ProficiencyIntermediate, 100},
		{"missing_minimum_defaults_intermediate", ProficiencyBeginner, "", 70},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			skills := []candidates.CandidateSkill{candidateSkill("s1", "Go", tc.level)}
			reqs := []jobpostings.RequiredSkill{requiredSkill("s1", "Go", false, 1.0, tc.minimum)}
			if got := SkillScore(skills, reqs); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestSkillScoreRequiredCountsDouble(t *testing.T) {
	// Required matched (weight 2), optional missing (weight 1): 2/3 of the pool.
	skills := []candidates.CandidateSkill{candidateSkill("s1", "Go", ProficiencyAdvanced)}
	reqs := []jobpostings.RequiredSkill{
		requiredSkill("s1", "Go", true, 1.0, ProficiencyIntermediate),
		requiredSkill("s2", "Kafka", false, 1.0, ProficiencyIntermediate),
	}
	got := SkillScore(skills, reqs)
	want := round2(100.0 * 2.0 / 3.0)
	if round2(got) != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSkillScoreZeroWeightDefaultsToOne(t *testing.T) {
	skills := []candidates.CandidateSkill{candidateSkill("s1", "Go", ProficiencyAdvanced)}
	reqs := []jobpostings.RequiredSkill{requiredSkill("s1", "Go", false, 0, "")}
	if got := SkillScore(skills, reqs); got != 100 {
		t.Fatalf("expected zero weight to default to 1.0, got %v", got)
	}
}

func TestSkillMatchDetails(t *testing.T) {
	skills := []candidates.CandidateSkill{
		candidateSkill("s1", "Go", ProficiencyAdvanced),
		candidateSkill("s9", "Rust", ProficiencyBeginner),
	}
	reqs := []jobpostings.RequiredSkill{
		requiredSkill("s1", "Go", true, 1.0, ProficiencyIntermediate),
		requiredSkill("s2", "Postgres", true, 1.0, ""),
		requiredSkill("s3", "Kafka", false, 0.5, ""),
	}

	details := SkillMatchDetails(skills, reqs)

	if len(details.Matched) != 1 || details.Matched[0].SkillID != "s1" {
		t.Fatalf("expected one matched skill s1, got %+v", details.Matched)
	}
	if details.Matched[0].Multiplier != 1.0 {
		t.Fatalf("expected multiplier 1.0 for advanced vs intermediate, got %v", details.Matched[0].Multiplier)
	}
	if len(details.Missing) != 2 {
		t.Fatalf("expected two missing skills, got %+v", details.Missing)
	}
	var requiredMissing int
	for _, m := range details.Missing {
		if m.IsRequired {
			requiredMissing++
		}
	}
	if requiredMissing != 1 {
		t.Fatalf("expected one required missing skill, got %d", requiredMissing)
	}
	if len(details.Extra) != 1 || details.Extra[0] != "Rust" {
		t.Fatalf("expected extra skill Rust, got %+v", details.Extra)
	}
}
