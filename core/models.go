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


package core

import (
	"strings"
	"time"
)

// City is one of the two cities covered by tender discovery.
type City string

const (
	CityRiyadh City = "Riyadh"
	CityJeddah City = "Jeddah"
)

// Country is the country context appended to tender queries.
const Country = "Saudi Arabia"

// Cities lists the supported tender cities in display order.
var Cities = []City{CityRiyadh, CityJeddah}

// ProjectType categorises a construction tender.
type ProjectType string

const (
	ProjectRoadInfrastructure ProjectType = "Road & Infrastructure"
	ProjectBuildings          ProjectType = "Buildings"
	ProjectRenovation         ProjectType = "Renovation"
	ProjectMaintenance        ProjectType = "Maintenance"
	ProjectMEP                ProjectType = "MEP"
	ProjectOther              ProjectType = "Other"
)

// ProjectTypes lists every project type in display order.
var ProjectTypes = []ProjectType{
	ProjectRoadInfrastructure,
	ProjectBuildings,
	ProjectRenovation,
	ProjectMaintenance,
	ProjectMEP,
	ProjectOther,
}

// TenderStatus is the bidding state of a tender.
type TenderStatus string

const (
	TenderOpen        TenderStatus = "open"
	TenderClosingSoon TenderStatus = "closing_soon"
	TenderClosed      TenderStatus = "closed"
)

// DefaultYear is the year tenders are filtered by when neither the caller
// nor the configuration supplies one.
const DefaultYear = 2025

// SearchParams are the structured filters of a tender search.
type SearchParams struct {
	City        City        `json:"city" validate:"required,oneof=Riyadh Jeddah"`
	Area        string      `json:"area,omitempty"`
	ProjectType ProjectType `json:"projectType,omitempty" validate:"omitempty,oneof='Road & Infrastructure' Buildings Renovation Maintenance MEP Other"`
	Query       string      `json:"query,omitempty"`
	Year        int         `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	Month       int         `json:"month,omitempty" validate:"omitempty,gte=1,lte=12"`
}

// EffectiveYear returns the year to filter by, falling back to defaultYear.
func (p SearchParams) EffectiveYear(defaultYear int) int {
	if p.Year != 0 {
		return p.Year
	}
	if defaultYear != 0 {
		return defaultYear
	}
	return DefaultYear
}

// Tender is a construction procurement opportunity. Tenders are built fresh
// for every search and never mutated afterwards.
type Tender struct {
	ID                    string       `json:"id"`
	Title                 string       `json:"title"`
	Status                TenderStatus `json:"status"`
	City                  City         `json:"city"`
	Area                  string       `json:"area,omitempty"`
	Category              string       `json:"category,omitempty"`
	Authority             string       `json:"authority,omitempty"`
	EstimatedValue        string       `json:"estimatedValue,omitempty"`
	Deadline              string       `json:"deadline,omitempty"`
	Summary               string       `json:"summary,omitempty"`
	Requirements          []string     `json:"requirements,omitempty"`
	AnnouncementDate      string       `json:"announcementDate,omitempty"`
	ClarificationDeadline string       `json:"clarificationDeadline,omitempty"`
	SubmissionDeadline    string       `json:"submissionDeadline,omitempty"`
	Duration              string       `json:"duration,omitempty"`
	SourceName            string       `json:"sourceName,omitempty"`
	SourceURL             string       `json:"sourceUrl,omitempty"`
	AIInsight             string       `json:"aiInsight,omitempty"`
}

// DateField returns the first populated date used for year/month filtering:
// announcement date, then submission deadline, then deadline.
func (t *Tender) DateField() string {
	switch {
	case t.AnnouncementDate != "":
		return t.AnnouncementDate
	case t.SubmissionDeadline != "":
		return t.SubmissionDeadline
	default:
		return t.Deadline
	}
}

// Severity grades how urgently symptoms need attention.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeverityUrgent   Severity = "urgent"
)

// ParseSeverity maps provider text onto a Severity. Unknown values report false.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityMild:
		return SeverityMild, true
	case SeverityModerate:
		return SeverityModerate, true
	case SeverityUrgent:
		return SeverityUrgent, true
	}
	return "", false
}

// SymptomInput is the patient-supplied description of their symptoms.
type SymptomInput struct {
	Symptoms   string `json:"symptoms" validate:"required"`
	VoiceInput bool   `json:"voiceInput,omitempty"`
	Country    string `json:"country,omitempty"`
	City       string `json:"city,omitempty"`
	Area       string `json:"area,omitempty"`
}

// SymptomAnalysis is the preliminary assessment of a SymptomInput.
//
// Severity and ShouldSeeDoctorUrgently come from the provider independently.
// They usually agree (urgent implies true) but nothing enforces it; see
// Consistent.
type SymptomAnalysis struct {
	ID                      string    `json:"id"`
	Summary                 string    `json:"summary"`
	PossibleConditions      []string  `json:"possibleConditions"`
	Severity                Severity  `json:"severity"`
	RedFlags                []string  `json:"redFlags"`
	RecommendedActions      []string  `json:"recommendedActions"`
	ShouldSeeDoctorUrgently bool      `json:"shouldSeeDoctorUrgently"`
	SuggestedSpecialist     string    `json:"suggestedSpecialist,omitempty"`
	RecommendedSpecialties  []string  `json:"recommendedSpecialties,omitempty"`
	DoctorNotes             string    `json:"doctorNotes,omitempty"`
	Disclaimer              string    `json:"disclaimer"`
	Timestamp               time.Time `json:"timestamp"`
}

// Consistent reports whether the severity and the urgency flag agree.
func (a *SymptomAnalysis) Consistent() bool {
	return (a.Severity == SeverityUrgent) == a.ShouldSeeDoctorUrgently
}

// DoctorSearchParams locate practitioners near the patient. Specialties are
// ordered by priority.
type DoctorSearchParams struct {
	Country     string   `json:"country"`
	City        string   `json:"city" validate:"required"`
	Area        string   `json:"area,omitempty"`
	Specialties []string `json:"specialties,omitempty" validate:"omitempty,dive,required"`
}

// Doctor is an individual practitioner found by the doctor search.
type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
	Location       string `json:"location,omitempty"`
	City           string `json:"city,omitempty"`
	Area           string `json:"area,omitempty"`
	Country        string `json:"country,omitempty"`
	SourceName     string `json:"sourceName,omitempty"`
	SourceURL      string `json:"sourceUrl,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// ProgressStatus is the state of one step of a long-running search.
type ProgressStatus string

const (
	StepPending ProgressStatus = "pending"
	StepActive  ProgressStatus = "active"
	StepDone    ProgressStatus = "done"
)

// ProgressStep is a user-facing progress line shown while a search runs.
type ProgressStep struct {
	ID     string         `json:"id"`
	Text   string         `json:"text"`
	Status ProgressStatus `json:"status"`
}

// Disclaimer is attached to every symptom analysis regardless of its source.
const Disclaimer = "This AI-powered analysis is for informational purposes only and does not constitute a medical diagnosis. It's essential to consult with a qualified, licensed healthcare professional for proper medical evaluation, diagnosis, and treatment. Certain conditions require physical examination and diagnostic tests that only an in-person visit can provide."

// ResultSource says where a pipeline's data came from.
type ResultSource string

const (
	// SourceLive data was produced from a successful provider call.
	SourceLive ResultSource = "live"
	// SourceMock data was served because no provider credential is configured.
	SourceMock ResultSource = "mock"
	// SourceFallback data replaced a failed or empty provider call.
	SourceFallback ResultSource = "fallback"
)
