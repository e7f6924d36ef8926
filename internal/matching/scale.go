package matching

import "strings"

// Proficiency levels, ordered weakest to strongest.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// Education levels, ordered lowest to highest attainment.
const (
	EducationHighSchool = "high_school"
	EducationAssociate  = "associate"
	EducationBachelor   = "bachelor"
	EducationMaster     = "master"
	EducationDoctorate  = "doctorate"
)

// DefaultProficiency is assumed when a skill record carries no level.
// It applies to proficiency comparisons only; an absent education
// requirement is a distinct no-requirement state, not a default rank.
const DefaultProficiency = ProficiencyIntermediate

// proficiencyRank maps a proficiency level to its ordinal rank.
// Unknown or empty values take the rank of DefaultProficiency.
func proficiencyRank(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case ProficiencyBeginner:
		return 0
	case ProficiencyAdvanced:
		return 2
	case ProficiencyExpert:
		return 3
	default:
		return 1
	}
}

// educationRank maps an education level to its ordinal rank.
// Unknown or empty values take the lowest rank.
func educationRank(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case EducationAssociate:
		return 1
	case EducationBachelor:
		return 2
	case EducationMaster:
		return 3
	case EducationDoctorate:
		return 4
	default:
		return 0
	}
}
