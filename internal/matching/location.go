package matching

import (
	"strings"

	"golang.org/x/text/cases"
)

// Location types a job posting may declare.
const (
	LocationTypeRemote = "remote"
	LocationTypeHybrid = "hybrid"
	LocationTypeOnsite = "onsite"
)

// Decision branches recorded in the breakdown.
const (
	BranchRemote           = "remote"
	BranchUnknownLocation  = "unknown_location"
	BranchSameCity         = "same_city"
	BranchSameCountry      = "same_country"
	BranchDifferentCountry = "different_country"
)

// LocationScore scores geographic compatibility in [0,100] and reports the
// decision branch taken. Remote jobs always score 100; a wholly unknown
// location on either side scores a neutral 50. City/country comparisons use
// Unicode case folding, not ASCII-only lowering.
func LocationScore(candidateCity, candidateCountry, jobCity, jobCountry, locationType string) (float64, string) {
	lt := strings.ToLower(strings.TrimSpace(locationType))
	if lt == LocationTypeRemote {
		return 100, BranchRemote
	}

	candCity := foldLocation(candidateCity)
	candCountry := foldLocation(candidateCountry)
	postCity := foldLocation(jobCity)
	postCountry := foldLocation(jobCountry)

	if (candCity == "" && candCountry == "") || (postCity == "" && postCountry == "") {
		return 50, BranchUnknownLocation
	}
	if candCity != "" && candCity == postCity && candCountry == postCountry {
		return 100, BranchSameCity
	}
	if candCountry != "" && candCountry == postCountry {
		if lt == LocationTypeHybrid {
			return 80, BranchSameCountry
		}
		return 60, BranchSameCountry
	}
	if lt == LocationTypeHybrid {
		return 50, BranchDifferentCountry
	}
	return 20, BranchDifferentCountry
}

func foldLocation(value string) string {
	return cases.Fold().String(strings.TrimSpace(value))
}
