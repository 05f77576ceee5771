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


package ai

// SearchRequest is the provider-neutral form of a web search call.
type SearchRequest struct {
	Query             string
	SearchDepth       string
	MaxResults        int
	IncludeRawContent bool
	// IncludeDomains restricts results to these hosts when non-empty.
	IncludeDomains []string
}

// RawResult is a single unnormalized search hit.
type RawResult struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Content    string `json:"content"`
	RawContent string `json:"raw_content"`
}

// Text returns the result body, preferring the snippet over the raw page.
func (r RawResult) Text() string {
	if r.Content != "" {
		return r.Content
	}
	return r.RawContent
}

// AnalysisPayload is the decoded JSON object returned by the analysis model.
type AnalysisPayload struct {
	Summary                 string   `json:"summary"`
	PossibleConditions      []string `json:"possibleConditions"`
	Severity                string   `json:"severity"`
	RedFlags                []string `json:"redFlags"`
	RecommendedActions      []string `json:"recommendedActions"`
	ShouldSeeDoctorUrgently bool     `json:"shouldSeeDoctorUrgently"`
	SuggestedSpecialist     string   `json:"suggestedSpecialist"`
	RecommendedSpecialties  []string `json:"recommendedSpecialties"`
	DoctorNotes             string   `json:"doctorNotes"`
}

// Search presets used by the two pipelines.
const (
	SearchDepthAdvanced = "advanced"

	TenderMaxResults = 10
	DoctorMaxResults = 8
)

// TenderDomains is the allow-list of government procurement hosts tender
// searches are restricted to.
var TenderDomains = []string{
	"etimad.sa",
	"mof.gov.sa",
	"moe.gov.sa",
	"moh.gov.sa",
	"modon.gov.sa",
	"municipality.gov.sa",
}
