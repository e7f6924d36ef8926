package matching

import (
	"math"

	"recruiting-backend/internal/jobpostings"
	"recruiting-backend/internal/shared/telemetry"
)

// Standard aggregation weights, applied when a job posting carries none.
const (
	DefaultSkillWeight      = 0.40
	DefaultExperienceWeight = 0.30
	DefaultEducationWeight  = 0.20
	DefaultLocationWeight   = 0.10
)

// weightEpsilon is the tolerance when checking that weights sum to 1.0.
const weightEpsilon = 1e-6

func defaultWeights() Weights {
	return Weights{
		Skill:      DefaultSkillWeight,
		Experience: DefaultExperienceWeight,
		Education:  DefaultEducationWeight,
		Location:   DefaultLocationWeight,
	}
}

// resolveWeights returns the aggregation weights for a job posting. Missing
// weights take their standard default. If the resulting set does not sum to
// 1.0 within epsilon, the whole set falls back to the defaults so scoring
// stays available; partial normalization would silently reshape intent.
func resolveWeights(jp jobpostings.JobPosting) Weights {
	weights := defaultWeights()
	custom := false
	if jp.SkillWeight != nil {
		weights.Skill = *jp.SkillWeight
		custom = true
	}
	if jp.ExperienceWeight != nil {
		weights.Experience = *jp.ExperienceWeight
		custom = true
	}
	if jp.EducationWeight != nil {
		weights.Education = *jp.EducationWeight
		custom = true
	}
	if jp.LocationWeight != nil {
		weights.Location = *jp.LocationWeight
		custom = true
	}
	if !custom {
		return weights
	}

	sum := weights.Skill + weights.Experience + weights.Education + weights.Location
	if math.Abs(sum-1.0) > weightEpsilon {
		telemetry.Warn("matching.weights.fallback", map[string]any{
			"job_posting_id": jp.ID,
			"weight_sum":     sum,
		})
		return defaultWeights()
	}
	return weights
}
