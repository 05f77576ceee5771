package fallback

import (
	"strings"
	"testing"
	"time"

	"github.com/poiesic/scout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(tenders []core.Tender) []string {
	out := make([]string, len(tenders))
	for i, t := range tenders {
		out[i] = t.ID
	}
	return out
}

func TestTenders(t *testing.T) {
	all := Tenders()
	require.Len(t, all, 6)
	assert.Equal(t, []string{"tender-001", "tender-002", "tender-003", "tender-004", "tender-005", "tender-006"}, ids(all))

	all[0].Requirements[0] = "mutated"
	all[0].Title = "mutated"
	fresh := Tenders()
	assert.Equal(t, "Grade 1 contractor classification for road works", fresh[0].Requirements[0])
	assert.Equal(t, "Road Maintenance Works – Eastern Riyadh District", fresh[0].Title)

	for _, tender := range fresh {
		assert.NotEmpty(t, tender.ID)
		assert.NotEmpty(t, tender.Title)
		assert.NotEmpty(t, tender.AnnouncementDate)
	}
}

func TestFilterTenders(t *testing.T) {
	tests := []struct {
		name      string
		params    core.SearchParams
		withQuery bool
		want      []string
	}{
		{"city", core.SearchParams{City: core.CityJeddah}, true, []string{"tender-004", "tender-005", "tender-006"}},
		{"area matches area field", core.SearchParams{City: core.CityRiyadh, Area: "al olaya"}, true, []string{"tender-002"}},
		{"area matches title", core.SearchParams{City: core.CityRiyadh, Area: "Eastern Riyadh"}, true, []string{"tender-001"}},
		{"project type", core.SearchParams{City: core.CityRiyadh, ProjectType: core.ProjectBuildings}, true, []string{"tender-002", "tender-003"}},
		{"query", core.SearchParams{City: core.CityJeddah, Query: "Hospital"}, true, []string{"tender-005"}},
		{"query ignored", core.SearchParams{City: core.CityJeddah, Query: "Hospital"}, false, []string{"tender-004", "tender-005", "tender-006"}},
		{"unknown city", core.SearchParams{City: "Dammam"}, true, []string{}},
		{"nothing matches", core.SearchParams{City: core.CityRiyadh, Area: "Corniche"}, true, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterTenders(tt.params, tt.withQuery)))
		})
	}
}

func TestAnalysis(t *testing.T) {
	now := time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)

	t.Run("chest pain is urgent and cardiac", func(t *testing.T) {
		for range 3 {
			a := Analysis("I have chest pain and can't breathe", now)
			assert.Equal(t, core.SeverityUrgent, a.Severity)
			assert.True(t, a.ShouldSeeDoctorUrgently)
			assert.Contains(t, a.SuggestedSpecialist, "Cardiologist")
			assert.Equal(t, []string{"Cardiologist", "General Physician"}, a.RecommendedSpecialties)
			assert.Equal(t, urgentActions, a.RecommendedActions)
			assert.Equal(t, urgentRedFlags, a.RedFlags)
			assert.True(t, a.Consistent())
		}
	})

	t.Run("heart branch forces urgency", func(t *testing.T) {
		a := Analysis("my heart races", now)
		assert.Equal(t, core.SeverityUrgent, a.Severity)
		assert.True(t, a.ShouldSeeDoctorUrgently)
	})

	tests := []struct {
		symptoms    string
		severity    core.Severity
		specialist  string
		specialties []string
	}{
		{"itchy rash on my arm", core.SeverityMild, "Dermatologist", []string{"Dermatologist", "General Physician"}},
		{"severe rash", core.SeverityUrgent, "Dermatologist", []string{"Dermatologist", "General Physician"}},
		{"sore throat and cough", core.SeverityModerate, "ENT Specialist", []string{"ENT Specialist", "Pulmonologist", "General Physician"}},
		{"stomach pain after meals", core.SeverityModerate, "Gastroenterologist", []string{"Gastroenterologist", "General Physician"}},
		{"recurring headache", core.SeverityMild, "Neurologist", []string{"Neurologist", "General Physician"}},
		{"feeling tired", core.SeverityMild, "General Physician", []string{"General Physician"}},
		{"fever since yesterday", core.SeverityModerate, "General Physician", []string{"General Physician"}},
	}

	for _, tt := range tests {
		t.Run(tt.symptoms, func(t *testing.T) {
			a := Analysis(tt.symptoms, now)
			assert.Equal(t, tt.severity, a.Severity)
			assert.Contains(t, a.SuggestedSpecialist, tt.specialist)
			assert.Equal(t, tt.specialties, a.RecommendedSpecialties)
			assert.Equal(t, core.Disclaimer, a.Disclaimer)
			assert.Equal(t, now, a.Timestamp)
			assert.True(t, strings.HasPrefix(a.ID, "mock-"))
			assert.NotEmpty(t, a.PossibleConditions)
			assert.NotEmpty(t, a.DoctorNotes)
		})
	}

	t.Run("moderate lists", func(t *testing.T) {
		a := Analysis("cough", now)
		assert.Equal(t, moderateActions, a.RecommendedActions)
		assert.Equal(t, moderateRedFlags, a.RedFlags)
		assert.False(t, a.ShouldSeeDoctorUrgently)
	})

	t.Run("summary quotes truncated symptoms", func(t *testing.T) {
		long := strings.Repeat("a", 150)
		a := Analysis(long, now)
		assert.Contains(t, a.Summary, "\""+strings.Repeat("a", 100)+"...\"")
		assert.NotContains(t, a.Summary, strings.Repeat("a", 101))

		short := Analysis("tired", now)
		assert.Contains(t, short.Summary, "\"tired\"")
		assert.Contains(t, short.Summary, "often respond well")
	})

	t.Run("returned slices are independent", func(t *testing.T) {
		a := Analysis("rash", now)
		a.RecommendedSpecialties[0] = "changed"
		b := Analysis("rash", now)
		assert.Equal(t, "Dermatologist", b.RecommendedSpecialties[0])
	})
}
