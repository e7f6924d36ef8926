package jobpostings

import "time"

// JobPosting holds the matching-relevant fields of a vacancy.
// Nil weights mean "use the standard default"; a nil preferred
// experience means the minimum doubles as the preferred value.
type JobPosting struct {
	ID                     string
	Title                  string
	MinimumExperience      float64
	PreferredExperience    *float64
	RequiredEducationLevel string
	City                   string
	Country                string
	LocationType           string
	SkillWeight            *float64
	ExperienceWeight       *float64
	EducationWeight        *float64
	LocationWeight         *float64
	IsActive               bool
	CreatedAt              time.Time
}

// RequiredSkill is one skill requirement of a job posting.
type RequiredSkill struct {
	JobPostingID       string
	SkillID            string
	SkillName          string
	IsRequired         bool
	Weight             float64
	MinimumProficiency string
}
