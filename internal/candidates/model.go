package candidates

import "time"

// Candidate represents an applicant profile owned by the CRUD layer.
// Education level and location fields may be empty when the source CV
// did not carry them; the matching engine treats empty as absent.
type Candidate struct {
	ID                   string
	FullName             string
	Email                string
	TotalExperienceYears float64
	EducationLevel       string
	City                 string
	Country              string
	IsActive             bool
	CreatedAt            time.Time
}

// CandidateSkill links a candidate to a skill with an optional proficiency tag.
type CandidateSkill struct {
	CandidateID       string
	SkillID           string
	SkillName         string
	ProficiencyLevel  string
	YearsOfExperience float64
}
