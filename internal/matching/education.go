package matching

import "strings"

// Education scoring constants: one level below the requirement is worth 75
// points, each further level costs 30 more.
const (
	educationNearMiss = 75.0
	educationGapCost  = 30.0
)

// EducationScore scores the candidate's education level against the job's
// requirement, in [0,100]. An empty requirement means no requirement; an
// empty candidate level ranks as the lowest attainment.
func EducationScore(candidateLevel, requiredLevel string) float64 {
	if strings.TrimSpace(requiredLevel) == "" {
		return 100
	}
	gap := educationRank(requiredLevel) - educationRank(candidateLevel)
	if gap <= 0 {
		return 100
	}
	score := educationNearMiss - educationGapCost*float64(gap-1)
	if score < 0 {
		return 0
	}
	return score
}
