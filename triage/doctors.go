package triage

import (
	"strings"

	"github.com/poiesic/scout/core"
)

// DoctorSearchParamsFor builds the doctor search that follows an analysis.
// The recommended specialties keep their priority order; without any, the
// suggested specialist is used. An empty country defaults to core.Country.
func DoctorSearchParamsFor(analysis core.SymptomAnalysis, location core.SymptomInput) core.DoctorSearchParams {
	specialties := make([]string, 0, len(analysis.RecommendedSpecialties))
	for _, s := range analysis.RecommendedSpecialties {
		if s = strings.TrimSpace(s); s != "" {
			specialties = append(specialties, s)
		}
	}
	if len(specialties) == 0 {
		if s := strings.TrimSpace(analysis.SuggestedSpecialist); s != "" {
			specialties = append(specialties, s)
		}
	}

	country := strings.TrimSpace(location.Country)
	if country == "" {
		country = core.Country
	}

	return core.DoctorSearchParams{
		Country:     country,
		City:        strings.TrimSpace(location.City),
		Area:        strings.TrimSpace(location.Area),
		Specialties: specialties,
	}
}

// HasLocation reports whether input names a city, which the doctor search
// requires.
func HasLocation(input core.SymptomInput) bool {
	return strings.TrimSpace(input.City) != ""
}
