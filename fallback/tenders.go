// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package fallback

import (
	"slices"
	"strings"

	"github.com/poiesic/scout/core"
)

var tenders = []core.Tender{
	{
		ID:             "tender-001",
		Title:          "Road Maintenance Works – Eastern Riyadh District",
		Status:         core.TenderOpen,
		City:           core.CityRiyadh,
		Area:           "Eastern District",
		Category:       string(core.ProjectRoadInfrastructure),
		Authority:      "Riyadh Municipality",
		EstimatedValue: "SAR 8,500,000 - 12,000,000",
		Deadline:       "2025-12-12",
		Summary:        "Comprehensive road maintenance and resurfacing project covering major arterial roads in the Eastern Riyadh district. Includes asphalt overlay, traffic management systems, and drainage improvements.",
		Requirements: []string{
			"Grade 1 contractor classification for road works",
			"Minimum 5 years experience in similar projects",
			"Valid GOSI registration",
			"Technical and financial proposal submission required",
			"Site visit mandatory before bid submission",
		},
		AnnouncementDate:      "2025-11-15",
		ClarificationDeadline: "2025-12-05",
		SubmissionDeadline:    "2025-12-12",
		Duration:              "8 months",
		SourceName:            "Etimad Portal",
		SourceURL:             "https://etimad.sa",
		AIInsight:             "Likely requires road works classification and prior experience with municipal projects.",
	},
	{
		ID:             "tender-002",
		Title:          "Construction of Primary School Building – Al Olaya",
		Status:         core.TenderClosingSoon,
		City:           core.CityRiyadh,
		Area:           "Al Olaya",
		Category:       string(core.ProjectBuildings),
		Authority:      "Ministry of Education",
		EstimatedValue: "SAR 25,000,000 - 30,000,000",
		Deadline:       "2025-12-03",
		Summary:        "Design and construction of a new primary school building with 24 classrooms, administrative offices, sports facilities, and outdoor areas. Green building standards required.",
		Requirements: []string{
			"Grade 1 contractor classification for building construction",
			"Previous experience in educational facility construction",
			"LEED or MOSTADAM certification preferred",
			"Quality management system ISO 9001",
			"Health and safety certification",
		},
		AnnouncementDate:      "2025-10-20",
		ClarificationDeadline: "2025-11-28",
		SubmissionDeadline:    "2025-12-03",
		Duration:              "18 months",
		SourceName:            "Ministry Portal",
		SourceURL:             "https://moe.gov.sa",
		AIInsight:             "High-value project requiring educational construction experience and green building expertise.",
	},
	{
		ID:             "tender-003",
		Title:          "MEP Installation for Commercial Complex – King Fahd Road",
		Status:         core.TenderOpen,
		City:           core.CityRiyadh,
		Area:           "King Fahd Road",
		Category:       string(core.ProjectBuildings),
		Authority:      "Private Developer - Al Safi Holdings",
		EstimatedValue: "SAR 15,000,000",
		Deadline:       "2025-12-20",
		Summary:        "Complete MEP (Mechanical, Electrical, and Plumbing) installation for a 12-story commercial complex including HVAC, electrical systems, fire safety, and plumbing infrastructure.",
		Requirements: []string{
			"Specialized MEP contractor classification",
			"Experience with high-rise commercial buildings",
			"BMS system integration capability",
			"Manufacturer warranties for major equipment",
			"Post-completion maintenance plan",
		},
		AnnouncementDate:      "2025-11-20",
		ClarificationDeadline: "2025-12-13",
		SubmissionDeadline:    "2025-12-20",
		Duration:              "12 months",
		SourceName:            "Private Tender Portal",
		SourceURL:             "https://example.com",
		AIInsight:             "Requires specialized MEP expertise and high-rise building experience.",
	},
	{
		ID:             "tender-004",
		Title:          "Coastal Development Infrastructure – North Jeddah",
		Status:         core.TenderOpen,
		City:           core.CityJeddah,
		Area:           "North Jeddah",
		Category:       string(core.ProjectRoadInfrastructure),
		Authority:      "Jeddah Municipality",
		EstimatedValue: "SAR 45,000,000 - 60,000,000",
		Deadline:       "2025-12-28",
		Summary:        "Major infrastructure development including road networks, utilities, drainage systems, and public amenities for coastal development area in North Jeddah.",
		Requirements: []string{
			"Grade 1 contractor for infrastructure",
			"Experience with coastal construction projects",
			"Environmental impact assessment compliance",
			"Marine construction capabilities",
			"Equipment and resource mobilization plan",
		},
		AnnouncementDate:      "2025-11-18",
		ClarificationDeadline: "2025-12-15",
		SubmissionDeadline:    "2025-12-28",
		Duration:              "24 months",
		SourceName:            "Etimad Portal",
		SourceURL:             "https://etimad.sa",
		AIInsight:             "Large-scale infrastructure project requiring coastal construction expertise and environmental compliance.",
	},
	{
		ID:             "tender-005",
		Title:          "Hospital Renovation and Expansion – Al Zahra District",
		Status:         core.TenderOpen,
		City:           core.CityJeddah,
		Area:           "Al Zahra",
		Category:       string(core.ProjectRenovation),
		Authority:      "Ministry of Health",
		EstimatedValue: "SAR 18,000,000",
		Deadline:       "2025-12-15",
		Summary:        "Renovation and expansion of existing hospital facility including new emergency wing, upgraded patient rooms, and modernized medical infrastructure while maintaining operational capacity.",
		Requirements: []string{
			"Healthcare facility construction experience",
			"Phased construction capability",
			"Infection control protocols",
			"24/7 operational coordination",
			"Medical equipment installation experience",
		},
		AnnouncementDate:      "2025-11-10",
		ClarificationDeadline: "2025-12-08",
		SubmissionDeadline:    "2025-12-15",
		Duration:              "16 months",
		SourceName:            "Ministry Portal",
		SourceURL:             "https://moh.gov.sa",
		AIInsight:             "Complex renovation requiring healthcare expertise and coordination with active hospital operations.",
	},
	{
		ID:             "tender-006",
		Title:          "Industrial Warehouse Complex – Jeddah Industrial City",
		Status:         core.TenderOpen,
		City:           core.CityJeddah,
		Area:           "Industrial City",
		Category:       string(core.ProjectBuildings),
		Authority:      "Saudi Industrial Property Authority",
		EstimatedValue: "SAR 32,000,000",
		Deadline:       "2025-12-25",
		Summary:        "Construction of modern industrial warehouse complex with 50,000 sqm covered area, including loading facilities, office spaces, and advanced logistics infrastructure.",
		Requirements: []string{
			"Industrial construction classification",
			"Experience with warehouse and logistics facilities",
			"Heavy-duty structural engineering capability",
			"Material handling system integration",
			"Fast-track construction methodology",
		},
		AnnouncementDate:      "2025-11-22",
		ClarificationDeadline: "2025-12-18",
		SubmissionDeadline:    "2025-12-25",
		Duration:              "14 months",
		SourceName:            "MODON Portal",
		SourceURL:             "https://modon.gov.sa",
		AIInsight:             "Industrial-scale project requiring specialized warehouse construction and logistics expertise.",
	},
}

// Tenders returns a deep copy of the fixture tenders.
func Tenders() []core.Tender {
	out := make([]core.Tender, len(tenders))
	for i, t := range tenders {
		t.Requirements = slices.Clone(t.Requirements)
		out[i] = t
	}
	return out
}

// CityTenders returns the fixtures located in city, in fixture order.
func CityTenders(city core.City) []core.Tender {
	out := make([]core.Tender, 0, len(tenders))
	for _, t := range Tenders() {
		if t.City == city {
			out = append(out, t)
		}
	}
	return out
}

// FilterTenders narrows the fixtures by the search filters: city, then
// area, then project type and, when withQuery is set, the free-text query.
// Text filters are case-insensitive substring matches. Dates are left to
// the caller.
func FilterTenders(params core.SearchParams, withQuery bool) []core.Tender {
	results := CityTenders(params.City)

	if area := strings.ToLower(params.Area); area != "" {
		results = slices.DeleteFunc(results, func(t core.Tender) bool {
			return !containsFold(area, t.Area, t.Title)
		})
	}

	if pt := strings.ToLower(string(params.ProjectType)); pt != "" {
		results = slices.DeleteFunc(results, func(t core.Tender) bool {
			return !containsFold(pt, t.Title, t.Category, t.Summary)
		})
	}

	if q := strings.ToLower(params.Query); withQuery && q != "" {
		results = slices.DeleteFunc(results, func(t core.Tender) bool {
			return !containsFold(q, t.Title, t.Summary, t.Category)
		})
	}

	return results
}

// containsFold reports whether any field contains the lowercase needle.
func containsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
