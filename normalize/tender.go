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


package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/scout/ai"
	"github.com/poiesic/scout/classify"
	"github.com/poiesic/scout/core"
)

const (
	maxTitleRunes        = 150
	titleFromBodyRunes   = 100
	maxSummaryRunes      = 500
	defaultTenderSummary = "Construction tender opportunity in Saudi Arabia."
)

var (
	cityPattern      = regexp.MustCompile(`(?i)\b(Riyadh|Jeddah)\b`)
	areaPattern      = regexp.MustCompile(`(?i)\b(Al \w+|North|South|East|West|Downtown|Industrial)\b`)
	authorityPattern = regexp.MustCompile(`(?i)(Ministry|Municipality|Authority|Portal|Government|Ministry of \w+)`)
	valuePattern     = regexp.MustCompile(`(?i)(SAR|USD|SR)\s*([\d,]+(?:\s*-\s*[\d,]+)?(?:\s*(?:million|M|thousand|K))?)`)
	datePattern      = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2})\b`)
)

// Tender maps the index-th search result into a tender. Fields the text
// does not reveal fall back to the search filters or stay empty.
func Tender(raw ai.RawResult, index int, params core.SearchParams, now time.Time) core.Tender {
	content := raw.Text()

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title, _ = truncate(strings.TrimSpace(content), titleFromBodyRunes)
		title = strings.TrimSpace(title)
	}
	if title == "" {
		title = "Tender Opportunity " + strconv.Itoa(index+1)
	}
	if short, cut := truncate(title, maxTitleRunes); cut {
		title = short + "..."
	}

	summary, _ := truncate(content, maxSummaryRunes)
	if summary == "" {
		summary = defaultTenderSummary
	}

	city := params.City
	if m := cityPattern.FindStringSubmatch(content); m != nil {
		city = core.CityJeddah
		if strings.EqualFold(m[1], string(core.CityRiyadh)) {
			city = core.CityRiyadh
		}
	}

	area := params.Area
	if m := areaPattern.FindStringSubmatch(content); m != nil {
		area = m[1]
	}

	category := classify.Category(content)

	var authority string
	if m := authorityPattern.FindStringSubmatch(content); m != nil {
		authority = m[1]
	}

	var value string
	if m := valuePattern.FindStringSubmatch(content); m != nil {
		value = m[1] + " " + m[2]
	}

	deadline := datePattern.FindString(content)

	sourceName := LabelWebSource
	if raw.URL != "" {
		sourceName = SourceName(raw.URL)
	}

	return core.Tender{
		ID:             core.NewEntityID("tavily", index, now, raw.URL),
		Title:          title,
		Status:         core.TenderOpen,
		City:           city,
		Area:           area,
		Category:       category,
		Authority:      authority,
		EstimatedValue: value,
		Deadline:       deadline,
		Summary:        summary,
		SourceName:     sourceName,
		SourceURL:      raw.URL,
		AIInsight:      tenderInsight(category, city, area, authority),
	}
}

func tenderInsight(category string, city core.City, area, authority string) string {
	var b strings.Builder
	b.WriteString("Found via web search. ")
	b.WriteString(category)
	b.WriteString(" project in ")
	b.WriteString(string(city))
	if area != "" {
		b.WriteString(" near ")
		b.WriteString(area)
	}
	b.WriteString(".")
	if authority != "" {
		b.WriteString(" Issued by ")
		b.WriteString(authority)
		b.WriteString(".")
	}
	return b.String()
}
