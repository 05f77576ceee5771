package query

import (
	"strings"

	"github.com/poiesic/scout/classify"
	"github.com/poiesic/scout/core"
)

// areaAliases maps spoken district names onto their display form.
var areaAliases = classify.Table{
	{Label: "Al Olaya", Keywords: []string{"al olaya", "olaya"}},
	{Label: "Al Hamra", Keywords: []string{"al hamra", "hamra"}},
	{Label: "Malaz", Keywords: []string{"malaz"}},
	{Label: "King Fahd", Keywords: []string{"king fahd"}},
	{Label: "Downtown", Keywords: []string{"downtown"}},
	{Label: "Northern", Keywords: []string{"northern"}},
	{Label: "Southern", Keywords: []string{"southern"}},
	{Label: "Eastern", Keywords: []string{"eastern"}},
	{Label: "Western", Keywords: []string{"western"}},
	{Label: "Corniche", Keywords: []string{"corniche"}},
	{Label: "Al Balad", Keywords: []string{"al balad", "balad"}},
	{Label: "Al Sabil", Keywords: []string{"al sabil"}},
	{Label: "King Road", Keywords: []string{"king road"}},
}

// spokenCategories is broader than classify.Categories because spoken
// requests rarely use procurement vocabulary.
var spokenCategories = classify.Table{
	{Label: string(core.ProjectRoadInfrastructure), Keywords: []string{"road", "highway", "infrastructure", "bridge", "tunnel", "street", "pavement"}},
	{Label: string(core.ProjectBuildings), Keywords: []string{"building", "construction", "facility", "complex", "tower", "structure"}},
	{Label: string(core.ProjectRenovation), Keywords: []string{"renovation", "renovate", "upgrade", "refurbish", "restoration"}},
	{Label: string(core.ProjectMaintenance), Keywords: []string{"maintenance", "repair", "servicing", "upkeep"}},
	{Label: string(core.ProjectMEP), Keywords: []string{"mep", "mechanical", "electrical", "plumbing", "hvac"}},
}

// ParseTranscript fills tender filters from a spoken request. Fields the
// transcript does not mention keep their value from current. The whole
// transcript becomes the free-text query.
func ParseTranscript(text string, current core.SearchParams) core.SearchParams {
	params := current
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "jeddah"):
		params.City = core.CityJeddah
	case strings.Contains(lower, "riyadh"):
		params.City = core.CityRiyadh
	}
	if params.City == "" {
		params.City = core.CityRiyadh
	}

	if area, ok := areaAliases.FirstMatch(lower); ok {
		params.Area = area
	}

	if category, ok := spokenCategories.FirstMatch(lower); ok {
		params.ProjectType = core.ProjectType(category)
	}

	params.Query = strings.TrimSpace(text)
	return params
}

// Searchable reports whether params carry enough input to be worth a search.
func Searchable(params core.SearchParams) bool {
	return strings.TrimSpace(params.Query) != "" ||
		strings.TrimSpace(params.Area) != "" ||
		params.ProjectType != ""
}
