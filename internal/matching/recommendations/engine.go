package recommendations

import (
	"fmt"
	"sort"
	"strings"
)

// Generate builds deterministic, priority-ordered recommendations from a
// match breakdown. A breakdown with no gaps yields an empty list.
func Generate(input Input) []Recommendation {
	candidates := make([]Recommendation, 0, 4)
	mappers := []func(Input) []Recommendation{
		fromMissingSkills,
		fromExperienceGap,
		fromEducationGap,
	}
	for _, mapper := range mappers {
		candidates = append(candidates, mapper(input)...)
	}

	sortRecommendations(candidates)
	for i := range candidates {
		candidates[i].Order = i + 1
	}
	return candidates
}

func fromMissingSkills(input Input) []Recommendation {
	var required, optional []string
	for _, skill := range input.MissingSkills {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			continue
		}
		if skill.IsRequired {
			required = append(required, name)
		} else {
			optional = append(optional, name)
		}
	}
	sort.Strings(required)
	sort.Strings(optional)

	var out []Recommendation
	if len(required) > 0 {
		out = append(out, Recommendation{
			Text:     fmt.Sprintf("Acquire %d required %s: %s", len(required), pluralSkill(len(required)), strings.Join(required, ", ")),
			Type:     TypeSkills,
			Priority: PriorityHigh,
		})
	}
	if len(optional) > 0 {
		out = append(out, Recommendation{
			Text:     fmt.Sprintf("Consider picking up %d nice-to-have %s: %s", len(optional), pluralSkill(len(optional)), strings.Join(optional, ", ")),
			Type:     TypeSkills,
			Priority: PriorityLow,
		})
	}
	return out
}

func fromExperienceGap(input Input) []Recommendation {
	if input.RequiredMinimum <= 0 || input.CandidateYears >= input.RequiredMinimum {
		return nil
	}
	gap := input.RequiredMinimum - input.CandidateYears
	return []Recommendation{{
		Text:     fmt.Sprintf("Gain %.1f more years of experience to meet the minimum of %.1f years", gap, input.RequiredMinimum),
		Type:     TypeExperience,
		Priority: PriorityMedium,
	}}
}

func fromEducationGap(input Input) []Recommendation {
	if input.EducationGap <= 0 || strings.TrimSpace(input.RequiredEducation) == "" {
		return nil
	}
	return []Recommendation{{
		Text:     fmt.Sprintf("The posting asks for %s-level education (%d level(s) above the candidate's)", input.RequiredEducation, input.EducationGap),
		Type:     TypeEducation,
		Priority: PriorityMedium,
	}}
}

func priorityRank(value string) int {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

func typeRank(value string) int {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case TypeSkills:
		return 3
	case TypeExperience:
		return 2
	case TypeEducation:
		return 1
	default:
		return 0
	}
}

func sortRecommendations(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		a := items[i]
		b := items[j]
		if priorityRank(a.Priority) != priorityRank(b.Priority) {
			return priorityRank(a.Priority) > priorityRank(b.Priority)
		}
		if typeRank(a.Type) != typeRank(b.Type) {
			return typeRank(a.Type) > typeRank(b.Type)
		}
		return strings.ToLower(a.Text) < strings.ToLower(b.Text)
	})
}

func pluralSkill(n int) string {
	if n == 1 {
		return "skill"
	}
	return "skills"
}
