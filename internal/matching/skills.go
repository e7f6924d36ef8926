package matching

import (
	"strings"

	"recruiting-backend/internal/candidates"
	"recruiting-backend/internal/jobpostings"
)

// Skill scoring multipliers by proficiency rank gap (candidate minus required).
const (
	multiplierMet      = 1.0
	multiplierOneBelow = 0.7
	multiplierFarBelow = 0.4
)

// defaultRequirementWeight applies when a requirement row carries no weight.
const defaultRequirementWeight = 1.0

// SkillScore scores how well the candidate's skills satisfy the job's
// requirements, in [0,100]. Required entries count double; a requirement the
// candidate lacks contributes nothing. No requirements at all scores 100;
// requirements with no candidate skills score 0.
func SkillScore(skills []candidates.CandidateSkill, reqs []jobpostings.RequiredSkill) float64 {
	if len(reqs) == 0 {
		return 100
	}
	if len(skills) == 0 {
		return 0
	}

	byID := skillsByID(skills)

	var totalWeight, weightedSum float64
	for _, req := range reqs {
		weight := effectiveWeight(req)
		totalWeight += weight
		cs, ok := byID[req.SkillID]
		if !ok {
			continue
		}
		weightedSum += weight * proficiencyMultiplier(cs.ProficiencyLevel, req.MinimumProficiency)
	}
	if totalWeight <= 0 {
		return 100
	}
	return clampScore(100 * weightedSum / totalWeight)
}

// SkillMatchDetails reports which requirements the candidate satisfies, which
// are missing (tagged with their mandatory flag), and which candidate skills
// no requirement references.
func SkillMatchDetails(skills []candidates.CandidateSkill, reqs []jobpostings.RequiredSkill) SkillDetails {
	byID := skillsByID(skills)
	referenced := make(map[string]bool, len(reqs))

	details := SkillDetails{
		Matched: []MatchedSkill{},
		Missing: []MissingSkill{},
		Extra:   []string{},
	}
	for _, req := range reqs {
		referenced[req.SkillID] = true
		cs, ok := byID[req.SkillID]
		if !ok {
			details.Missing = append(details.Missing, MissingSkill{
				SkillID:    req.SkillID,
				SkillName:  req.SkillName,
				IsRequired: req.IsRequired,
			})
			continue
		}
		details.Matched = append(details.Matched, MatchedSkill{
			SkillID:            req.SkillID,
			SkillName:          req.SkillName,
			IsRequired:         req.IsRequired,
			CandidateLevel:     normalizeProficiency(cs.ProficiencyLevel),
			MinimumProficiency: normalizeProficiency(req.MinimumProficiency),
			Multiplier:         proficiencyMultiplier(cs.ProficiencyLevel, req.MinimumProficiency),
		})
	}
	for _, cs := range skills {
		if !referenced[cs.SkillID] {
			details.Extra = append(details.Extra, cs.SkillName)
		}
	}
	return details
}

// proficiencyMultiplier maps the rank gap between the candidate's level and
// the required minimum to a contribution multiplier. Empty levels default to
// intermediate on both sides.
func proficiencyMultiplier(candidateLevel, minimumProficiency string) float64 {
	gap := proficiencyRank(candidateLevel) - proficiencyRank(minimumProficiency)
	switch {
	case gap >= 0:
		return multiplierMet
	case gap == -1:
		return multiplierOneBelow
	default:
		return multiplierFarBelow
	}
}

func effectiveWeight(req jobpostings.RequiredSkill) float64 {
	weight := req.Weight
	if weight <= 0 {
		weight = defaultRequirementWeight
	}
	if req.IsRequired {
		weight *= 2
	}
	return weight
}

func skillsByID(skills []candidates.CandidateSkill) map[string]candidates.CandidateSkill {
	byID := make(map[string]candidates.CandidateSkill, len(skills))
	for _, cs := range skills {
		if cs.SkillID == "" {
			continue
		}
		byID[cs.SkillID] = cs
	}
	return byID
}

func normalizeProficiency(level string) string {
	trimmed := strings.ToLower(strings.TrimSpace(level))
	if trimmed == "" {
		return DefaultProficiency
	}
	return trimmed
}
