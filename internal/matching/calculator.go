package matching

import (
	"math"

	"recruiting-backend/internal/candidates"
	"recruiting-backend/internal/jobpostings"
)

// CalculateMatchScore computes the weighted overall match between a candidate
// and a job posting, with the full breakdown. It is a pure function: no I/O,
// no mutation of inputs. The returned result carries no ID or timestamp;
// the persistence layer assigns those on upsert.
func CalculateMatchScore(cand candidates.Candidate, jp jobpostings.JobPosting, skills []candidates.CandidateSkill, reqs []jobpostings.RequiredSkill) MatchResult {
	weights := resolveWeights(jp)

	skillScore := round2(SkillScore(skills, reqs))
	experienceScore := round2(ExperienceScore(cand.TotalExperienceYears, jp.MinimumExperience, jp.PreferredExperience))
	educationScore := round2(EducationScore(cand.EducationLevel, jp.RequiredEducationLevel))
	rawLocation, branch := LocationScore(cand.City, cand.Country, jp.City, jp.Country, jp.LocationType)
	locationScore := round2(rawLocation)

	overall := round2(skillScore*weights.Skill +
		experienceScore*weights.Experience +
		educationScore*weights.Education +
		locationScore*weights.Location)

	preferred := jp.MinimumExperience
	if jp.PreferredExperience != nil && *jp.PreferredExperience > preferred {
		preferred = *jp.PreferredExperience
	}

	return MatchResult{
		CandidateID:     cand.ID,
		JobPostingID:    jp.ID,
		OverallScore:    overall,
		SkillScore:      skillScore,
		ExperienceScore: experienceScore,
		EducationScore:  educationScore,
		LocationScore:   locationScore,
		Breakdown: Breakdown{
			Weights:      weights,
			SkillDetails: SkillMatchDetails(skills, reqs),
			ExperienceDetails: ExperienceDetails{
				CandidateYears:    cand.TotalExperienceYears,
				RequiredMinimum:   jp.MinimumExperience,
				RequiredPreferred: preferred,
			},
			EducationDetails: EducationDetails{
				CandidateLevel: cand.EducationLevel,
				RequiredLevel:  jp.RequiredEducationLevel,
				Gap:            educationGap(cand.EducationLevel, jp.RequiredEducationLevel),
			},
			LocationDetails: LocationDetails{
				CandidateCity:    cand.City,
				CandidateCountry: cand.Country,
				JobCity:          jp.City,
				JobCountry:       jp.Country,
				LocationType:     jp.LocationType,
				Branch:           branch,
			},
		},
	}
}

// educationGap is requiredRank minus candidateRank; zero when no requirement.
func educationGap(candidateLevel, requiredLevel string) int {
	if requiredLevel == "" {
		return 0
	}
	return educationRank(requiredLevel) - educationRank(candidateLevel)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func clampScore(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
