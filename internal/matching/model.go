package matching

import "time"

// MatchResult is the persisted outcome of scoring one candidate against one
// job posting. Exactly one row exists per (candidate, jobPosting) pair;
// re-scoring overwrites it.
type MatchResult struct {
	ID              string    `json:"id"`
	CandidateID     string    `json:"candidateId"`
	JobPostingID    string    `json:"jobPostingId"`
	OverallScore    float64   `json:"overallScore"`
	SkillScore      float64   `json:"skillScore"`
	ExperienceScore float64   `json:"experienceScore"`
	EducationScore  float64   `json:"educationScore"`
	LocationScore   float64   `json:"locationScore"`
	Breakdown       Breakdown `json:"breakdown"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Breakdown explains how an overall score was derived. It is kept structured
// internally and serialized only at the storage/HTTP boundary.
type Breakdown struct {
	Weights           Weights           `json:"weights"`
	SkillDetails      SkillDetails      `json:"skillDetails"`
	ExperienceDetails ExperienceDetails `json:"experienceDetails"`
	EducationDetails  EducationDetails  `json:"educationDetails"`
	LocationDetails   LocationDetails   `json:"locationDetails"`
}

// Weights are the resolved aggregation weights; they always sum to 1.0.
type Weights struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Location   float64 `json:"location"`
}

// SkillDetails lists how the candidate's skills lined up with the requirements.
type SkillDetails struct {
	Matched []MatchedSkill `json:"matched"`
	Missing []MissingSkill `json:"missing"`
	Extra   []string       `json:"extra"`
}

// MatchedSkill is a requirement the candidate satisfies at some proficiency.
type MatchedSkill struct {
	SkillID            string  `json:"skillId"`
	SkillName          string  `json:"skillName"`
	IsRequired         bool    `json:"isRequired"`
	CandidateLevel     string  `json:"candidateLevel"`
	MinimumProficiency string  `json:"minimumProficiency"`
	Multiplier         float64 `json:"multiplier"`
}

// MissingSkill is a requirement the candidate has no skill for.
type MissingSkill struct {
	SkillID    string `json:"skillId"`
	SkillName  string `json:"skillName"`
	IsRequired bool   `json:"isRequired"`
}

// ExperienceDetails records the inputs of the experience sub-score.
type ExperienceDetails struct {
	CandidateYears    float64 `json:"candidateYears"`
	RequiredMinimum   float64 `json:"requiredMinimum"`
	RequiredPreferred float64 `json:"requiredPreferred"`
}

// EducationDetails records the inputs of the education sub-score.
// Gap is requiredRank minus candidateRank; zero or negative means satisfied.
type EducationDetails struct {
	CandidateLevel string `json:"candidateLevel"`
	RequiredLevel  string `json:"requiredLevel"`
	Gap            int    `json:"gap"`
}

// LocationDetails records the inputs and the decision branch taken.
type LocationDetails struct {
	CandidateCity    string `json:"candidateCity"`
	CandidateCountry string `json:"candidateCountry"`
	JobCity          string `json:"jobCity"`
	JobCountry       string `json:"jobCountry"`
	LocationType     string `json:"locationType"`
	Branch           string `json:"branch"`
}

// BatchResult summarizes one batch-match run.
type BatchResult struct {
	TotalProcessed   int   `json:"totalProcessed"`
	ProcessingTimeMs int64 `json:"processingTime"`
}

// Distribution buckets persisted match results by overall score.
type Distribution struct {
	TotalMatches int            `json:"totalMatches"`
	Distribution map[string]int `json:"distribution"`
}
