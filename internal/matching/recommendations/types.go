package recommendations

// Recommendation is a deterministic suggestion derived from a match breakdown.
type Recommendation struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Order    int    `json:"order"`
}

// Priorities, strongest first.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation types.
const (
	TypeSkills     = "skills"
	TypeExperience = "experience"
	TypeEducation  = "education"
)

// MissingSkill is a minimal missing-requirement representation used by the
// recommendation engine.
type MissingSkill struct {
	Name       string
	IsRequired bool
}

// Input is the normalized breakdown data needed for recommendation generation.
type Input struct {
	MissingSkills     []MissingSkill
	CandidateYears    float64
	RequiredMinimum   float64
	EducationGap      int
	RequiredEducation string
}
