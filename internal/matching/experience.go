package matching

// Experience scoring constants: meeting the minimum is worth 70 points, the
// remaining 30 ramp linearly up to the preferred years.
const (
	experienceFloor = 70.0
	experienceRamp  = 30.0
)

// ExperienceScore scores candidate years against the job's minimum/preferred
// thresholds, in [0,100]. A nil preferred threshold is treated as equal to the
// minimum; no thresholds at all means no requirement.
func ExperienceScore(candidateYears, minimumExperience float64, preferredExperience *float64) float64 {
	if candidateYears < 0 {
		candidateYears = 0
	}
	if minimumExperience < 0 {
		minimumExperience = 0
	}

	preferred := minimumExperience
	if preferredExperience != nil && *preferredExperience > minimumExperience {
		preferred = *preferredExperience
	}

	if minimumExperience == 0 && preferred == 0 {
		return 100
	}
	if candidateYears >= preferred {
		return 100
	}
	if candidateYears <= 0 && minimumExperience > 0 {
		return 0
	}
	if candidateYears >= minimumExperience {
		return clampScore(experienceFloor + experienceRamp*(candidateYears-minimumExperience)/(preferred-minimumExperience))
	}
	return clampScore(experienceFloor * candidateYears / minimumExperience)
}
