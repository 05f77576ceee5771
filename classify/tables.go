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


package classify

import "github.com/poiesic/scout/core"

// Specializations detects a doctor's specialization from free text.
// Matching is plain substring matching, so short keywords such as "gp" and
// "ent" also hit inside longer words.
var Specializations = Table{
	{Label: "General Physician", Keywords: []string{"general physician", "family medicine", "primary care", "general practitioner", "gp"}},
	{Label: "Cardiologist", Keywords: []string{"cardiologist", "cardiology", "heart specialist", "cardiac"}},
	{Label: "Dermatologist", Keywords: []string{"dermatologist", "dermatology", "skin specialist", "skin doctor"}},
	{Label: "Pediatrician", Keywords: []string{"pediatrician", "pediatrics", "children's doctor", "child health"}},
	{Label: "Neurologist", Keywords: []string{"neurologist", "neurology", "brain specialist", "nerve doctor"}},
	{Label: "Orthopedic", Keywords: []string{"orthopedic", "orthopedics", "bone doctor", "joint specialist"}},
	{Label: "ENT Specialist", Keywords: []string{"ent", "ear nose throat", "otolaryngology", "ent specialist"}},
	{Label: "Gastroenterologist", Keywords: []string{"gastroenterologist", "gastroenterology", "digestive", "stomach doctor"}},
	{Label: "Psychiatrist", Keywords: []string{"psychiatrist", "psychiatry", "mental health"}},
	{Label: "Ophthalmologist", Keywords: []string{"ophthalmologist", "ophthalmology", "eye doctor", "eye specialist"}},
	{Label: "Dentist", Keywords: []string{"dentist", "dental", "orthodontist"}},
	{Label: "Gynecologist", Keywords: []string{"gynecologist", "gynecology", "obstetrician", "women's health"}},
}

// Categories assigns a project type to tender text. Text matching no rule
// belongs to core.ProjectOther.
var Categories = Table{
	{Label: string(core.ProjectRoadInfrastructure), Keywords: []string{"road", "infrastructure", "highway"}},
	{Label: string(core.ProjectBuildings), Keywords: []string{"building", "construction", "facility"}},
	{Label: string(core.ProjectRenovation), Keywords: []string{"renovation", "renovate", "upgrade"}},
	{Label: string(core.ProjectMaintenance), Keywords: []string{"maintenance", "repair"}},
	{Label: string(core.ProjectMEP), Keywords: []string{"mep", "mechanical", "electrical"}},
}

// HospitalKeywords mark a search result as an institution rather than an
// individual practitioner.
var HospitalKeywords = []string{
	"hospital",
	"medical center",
	"health center",
	"healthcare center",
	"medical complex",
	"polyclinic",
	"multi-specialty center",
	"emergency room",
	"urgent care center",
	"surgery center",
	"diagnostic center",
	"imaging center",
	"laboratory",
	"pharmacy",
}

// institutionNameKeywords is applied to extracted names, which are short
// enough that generic words like "clinic" are a reliable signal.
var institutionNameKeywords = append(append([]string{}, HospitalKeywords...),
	"clinic",
	"medical group",
	"healthcare",
)

// Specialization returns the detected specialization of a practitioner, or
// "" when nothing in the text matches.
func Specialization(text string) string {
	label, _ := Specializations.FirstMatch(text)
	return label
}

// Category returns the project type of a tender described by text.
func Category(text string) string {
	if label, ok := Categories.FirstMatch(text); ok {
		return label
	}
	return string(core.ProjectOther)
}
