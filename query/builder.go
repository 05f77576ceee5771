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


package query

import (
	"strings"

	"github.com/poiesic/scout/core"
)

// maxQuerySpecialties caps how many recommended specialties go into a
// doctor query. Earlier entries have priority.
const maxQuerySpecialties = 3

const (
	doctorTitleToken   = "Dr."
	genericSpecialty   = "general physician"
	doctorRoleKeywords = "doctor physician specialist"
	practitionerClause = `individual practitioner profile -hospital -"medical center" -clinic -polyclinic`
)

// BuildTenderQuery turns tender filters into a web search query.
// Tokens are joined by single spaces without quoting or length limits.
func BuildTenderQuery(params core.SearchParams) string {
	parts := make([]string, 0, 4)

	if q := strings.TrimSpace(params.Query); q != "" {
		parts = append(parts, q)
	}

	parts = append(parts, "construction tenders "+string(params.City)+" "+core.Country)

	if area := strings.TrimSpace(params.Area); area != "" {
		parts = append(parts, "near "+area)
	}

	if pt := strings.TrimSpace(string(params.ProjectType)); pt != "" {
		parts = append(parts, pt)
	}

	return strings.Join(parts, " ")
}

// BuildDoctorQuery builds a query biased toward individual practitioners
// and away from hospitals and medical centers.
func BuildDoctorQuery(params core.DoctorSearchParams) string {
	parts := []string{doctorTitleToken}

	specialties := nonEmpty(params.Specialties)
	if len(specialties) > maxQuerySpecialties {
		specialties = specialties[:maxQuerySpecialties]
	}
	if len(specialties) > 0 {
		parts = append(parts, strings.Join(specialties, " OR "))
	} else {
		parts = append(parts, genericSpecialty)
	}

	parts = append(parts, doctorRoleKeywords)

	for _, loc := range []string{params.Area, params.City, params.Country} {
		if loc = strings.TrimSpace(loc); loc != "" {
			parts = append(parts, loc)
		}
	}

	parts = append(parts, practitionerClause)
	return strings.Join(parts, " ")
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
