package normalize

import (
	"strings"
	"time"

	"github.com/poiesic/scout/ai"
	"github.com/poiesic/scout/classify"
	"github.com/poiesic/scout/core"
)

// Doctor maps the index-th search result into a practitioner. It reports
// false when the result describes an institution, either by its raw title
// or by the name left after cleaning.
func Doctor(raw ai.RawResult, index int, params core.DoctorSearchParams, now time.Time) (core.Doctor, bool) {
	if classify.IsInstitutionTitle(raw.Title) {
		return core.Doctor{}, false
	}

	cleaned := CleanTitle(raw.Title)
	if classify.IsInstitutionName(cleaned) {
		return core.Doctor{}, false
	}

	specialization := classify.Specialization(raw.Title + " " + raw.Text())

	sourceName := LabelUnknownSource
	if raw.URL != "" {
		sourceName = SourceName(raw.URL)
	}

	return core.Doctor{
		ID:             core.NewEntityID("doctor", index, now, raw.URL),
		Name:           DoctorName(cleaned),
		Specialization: specialization,
		Location:       Location(params.City, params.Area, params.Country),
		City:           params.City,
		Area:           params.Area,
		Country:        params.Country,
		SourceName:     sourceName,
		SourceURL:      raw.URL,
		Notes:          classify.MatchNote(specialization, params.Specialties),
	}, true
}

// Location joins the non-empty parts as "area, city, country".
func Location(city, area, country string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{area, city, country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
