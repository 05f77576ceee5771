package normalize

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/poiesic/scout/ai"
	"github.com/poiesic/scout/classify"
	"github.com/poiesic/scout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 11, 20, 9, 30, 0, 0, time.UTC)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Dr. Sara Ali - Cardiologist | Riyadh", "Dr. Sara Ali"},
		{"Dr. Sara Ali – Consultant", "Dr. Sara Ali"},
		{"Ahmed Saleh | Doctolib", "Ahmed Saleh"},
		{"Dr. Omar (MD, FRCS) Khan", "Dr. Omar Khan"},
		{"Dr. Sara Al-Harbi - Dermatology", "Dr. Sara Al-Harbi"},
		{"Sara Al-Harbi - Dentist", "Sara Al-Harbi"},
		{"  plain  title ", "plain title"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.in))
		})
	}
}

func TestDoctorName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Dr. Sara Ali", "Dr. Sara Ali"},
		{"Doctor Lina Omar", "Dr. Lina Omar"},
		{"dr sara ali", "Dr. Sara Ali"},
		{"DR. AHMED SALEH", "Dr. Ahmed Saleh"},
		{"Dr. Sara Al-Harbi", "Dr. Sara Al-Harbi"},
		{"Sara Ali", "Dr. Sara Ali"},
		{"Mohammed Bin Salem", "Dr. Mohammed Bin Salem"},
		{"Sara Al-Harbi", "Dr. Sara Al-Harbi"},
		{"Zoë O'Neil", "Dr. Zoë O'Neil"},
		{"Élodie Martin", "Dr. Élodie Martin"},
		{"Top 10 Cardiologists in Riyadh", LabelMedicalSpecialist},
		{"Drake Ali", "Dr. Drake Ali"},
		{"Dr.", LabelMedicalSpecialist},
		{"", LabelMedicalProvider},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DoctorName(tt.in))
		})
	}
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "vezeeta.com", SourceName("https://www.vezeeta.com/en/dr/sara"))
	assert.Equal(t, "etimad.sa", SourceName("https://etimad.sa:443/tenders"))
	assert.Equal(t, LabelWebSource, SourceName("not a url"))
	assert.Equal(t, LabelWebSource, SourceName("http://[::1"))
	assert.Equal(t, LabelWebSource, SourceName(""))
}

func TestTender(t *testing.T) {
	params := core.SearchParams{City: core.CityRiyadh, Area: "Malaz"}

	t.Run("extracts fields from content", func(t *testing.T) {
		raw := ai.RawResult{
			Title:   "Road resurfacing works",
			URL:     "https://www.etimad.sa/tenders/42",
			Content: "The Jeddah Municipality invites bids for road resurfacing in Al Rawdah. Budget SAR 8,500,000 - 12,000,000. Submission by 12/12/2025, clarifications 2025-12-05.",
		}

		tender := Tender(raw, 0, params, now)
		assert.True(t, strings.HasPrefix(tender.ID, "tavily-0-"))
		assert.Equal(t, "Road resurfacing works", tender.Title)
		assert.Equal(t, core.TenderOpen, tender.Status)
		assert.Equal(t, core.CityJeddah, tender.City)
		assert.Equal(t, "Al Rawdah", tender.Area)
		assert.Equal(t, "Road & Infrastructure", tender.Category)
		assert.Equal(t, "Municipality", tender.Authority)
		assert.Equal(t, "SAR 8,500,000 - 12,000,000", tender.EstimatedValue)
		assert.Equal(t, "12/12/2025", tender.Deadline)
		assert.Equal(t, raw.Content, tender.Summary)
		assert.Equal(t, "etimad.sa", tender.SourceName)
		assert.Equal(t, raw.URL, tender.SourceURL)
		assert.Equal(t, "Found via web search. Road & Infrastructure project in Jeddah near Al Rawdah. Issued by Municipality.", tender.AIInsight)
	})

	t.Run("falls back to search filters", func(t *testing.T) {
		raw := ai.RawResult{Title: "Consulting", Content: "Design review services."}

		tender := Tender(raw, 3, params, now)
		assert.Equal(t, core.CityRiyadh, tender.City)
		assert.Equal(t, "Malaz", tender.Area)
		assert.Equal(t, "Other", tender.Category)
		assert.Empty(t, tender.Authority)
		assert.Empty(t, tender.EstimatedValue)
		assert.Empty(t, tender.Deadline)
		assert.Equal(t, LabelWebSource, tender.SourceName)
		assert.Equal(t, "Found via web search. Other project in Riyadh near Malaz.", tender.AIInsight)
	})

	t.Run("title fallbacks and truncation", func(t *testing.T) {
		body := strings.Repeat("x", 120)
		tender := Tender(ai.RawResult{RawContent: body}, 0, params, now)
		assert.Equal(t, strings.Repeat("x", 100), tender.Title)

		tender = Tender(ai.RawResult{}, 4, params, now)
		assert.Equal(t, "Tender Opportunity 5", tender.Title)

		tender = Tender(ai.RawResult{Title: "   ", Content: "\n  Road resurfacing works"}, 0, params, now)
		assert.Equal(t, "Road resurfacing works", tender.Title)

		tender = Tender(ai.RawResult{Title: " \t ", Content: "   "}, 1, params, now)
		assert.Equal(t, "Tender Opportunity 2", tender.Title)
		assert.Equal(t, "Construction tender opportunity in Saudi Arabia.", tender.Summary)

		long := strings.Repeat("é", 200)
		tender = Tender(ai.RawResult{Title: long}, 0, params, now)
		assert.Equal(t, strings.Repeat("é", 150)+"...", tender.Title)

		tender = Tender(ai.RawResult{Title: "t", Content: strings.Repeat("y", 600)}, 0, params, now)
		assert.Len(t, tender.Summary, 500)
	})

	t.Run("ids are unique within a batch", func(t *testing.T) {
		a := Tender(ai.RawResult{Title: "a", URL: "https://etimad.sa/1"}, 0, params, now)
		b := Tender(ai.RawResult{Title: "a", URL: "https://etimad.sa/1"}, 1, params, now)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestDoctor(t *testing.T) {
	params := core.DoctorSearchParams{
		Country:     "Saudi Arabia",
		City:        "Riyadh",
		Area:        "Al Olaya",
		Specialties: []string{"Cardiologist"},
	}

	t.Run("practitioner", func(t *testing.T) {
		raw := ai.RawResult{
			Title:   "Dr. Sara Ali - Cardiologist | Vezeeta",
			URL:     "https://www.vezeeta.com/dr-sara",
			Content: "Consultant cardiology, heart failure clinic lead.",
		}

		doctor, ok := Doctor(raw, 2, params, now)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(doctor.ID, "doctor-2-"))
		assert.Equal(t, "Dr. Sara Ali", doctor.Name)
		assert.Equal(t, "Cardiologist", doctor.Specialization)
		assert.Equal(t, "Al Olaya, Riyadh, Saudi Arabia", doctor.Location)
		assert.Equal(t, "vezeeta.com", doctor.SourceName)
		assert.Equal(t, "Matches recommended specialty: Cardiologist", doctor.Notes)
		assert.Equal(t, "Riyadh", doctor.City)
	})

	t.Run("hospital title is excluded", func(t *testing.T) {
		raw := ai.RawResult{
			Title:   "City General Hospital - Emergency Services",
			URL:     "https://cityhospital.sa",
			Content: "Our cardiology department has leading cardiologists.",
		}
		_, ok := Doctor(raw, 0, params, now)
		assert.False(t, ok)
	})

	t.Run("institution name is excluded after cleaning", func(t *testing.T) {
		raw := ai.RawResult{Title: "Dr. Sulaiman Al Habib Medical Group | Book now"}
		require.False(t, classify.IsInstitutionTitle(raw.Title))
		_, ok := Doctor(raw, 0, params, now)
		assert.False(t, ok)
	})

	t.Run("marker without a space keeps the practitioner", func(t *testing.T) {
		raw := ai.RawResult{Title: "Dr.Ahmed Saleh - Consultant, King Faisal Hospital"}
		doctor, ok := Doctor(raw, 0, params, now)
		require.True(t, ok)
		assert.Equal(t, "Dr. Ahmed Saleh", doctor.Name)
	})

	t.Run("hyphenated name without a marker", func(t *testing.T) {
		raw := ai.RawResult{Title: "Sara Al-Harbi - Dentist"}
		doctor, ok := Doctor(raw, 0, params, now)
		require.True(t, ok)
		assert.Equal(t, "Dr. Sara Al-Harbi", doctor.Name)
	})

	t.Run("generic label and note", func(t *testing.T) {
		raw := ai.RawResult{Title: "Top 10 doctors near you", Content: "Find a physician."}
		doctor, ok := Doctor(raw, 0, core.DoctorSearchParams{City: "Jeddah"}, now)
		require.True(t, ok)
		assert.Equal(t, LabelMedicalSpecialist, doctor.Name)
		assert.Empty(t, doctor.Specialization)
		assert.Equal(t, "Jeddah", doctor.Location)
		assert.Equal(t, LabelUnknownSource, doctor.SourceName)
		assert.Equal(t, classify.GenericNote, doctor.Notes)
	})
}

func TestBatch(t *testing.T) {
	raws := make([]ai.RawResult, 20)
	for i := range raws {
		raws[i] = ai.RawResult{Title: string(rune('a' + i))}
	}

	keepEven := func(i int, raw ai.RawResult) (string, bool) {
		return raw.Title, i%2 == 0
	}

	t.Run("pooled keeps order", func(t *testing.T) {
		pool, err := NewPool(4)
		require.NoError(t, err)
		defer pool.Release()

		got, err := Batch(context.Background(), pool, raws, keepEven)
		require.NoError(t, err)
		require.Len(t, got, 10)
		for i, title := range got {
			assert.Equal(t, string(rune('a'+2*i)), title)
		}
	})

	t.Run("nil pool runs inline", func(t *testing.T) {
		got, err := Batch(context.Background(), nil, raws, keepEven)
		require.NoError(t, err)
		assert.Len(t, got, 10)
	})

	t.Run("released pool still completes", func(t *testing.T) {
		pool, err := NewPool(2)
		require.NoError(t, err)
		pool.Release()

		got, err := Batch(context.Background(), pool, raws, keepEven)
		require.NoError(t, err)
		assert.Len(t, got, 10)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Batch(ctx, nil, raws, keepEven)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := Batch(context.Background(), nil, nil, keepEven)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
