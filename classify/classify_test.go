package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableFirstMatch(t *testing.T) {
	table := Table{
		{Label: "first", Keywords: []string{"alpha", "beta"}},
		{Label: "second", Keywords: []string{"beta", "gamma"}},
	}

	t.Run("rule order wins over keyword position", func(t *testing.T) {
		label, ok := table.FirstMatch("GAMMA then BETA")
		assert.True(t, ok)
		assert.Equal(t, "first", label)
	})

	t.Run("later rule", func(t *testing.T) {
		label, ok := table.FirstMatch("only gamma here")
		assert.True(t, ok)
		assert.Equal(t, "second", label)
	})

	t.Run("no match", func(t *testing.T) {
		label, ok := table.FirstMatch("delta")
		assert.False(t, ok)
		assert.Empty(t, label)
	})

	assert.Equal(t, []string{"first", "second"}, table.Labels())
}

func TestSpecialization(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Dr. Sara Ali - Cardiologist in Riyadh", "Cardiologist"},
		{"Board certified skin doctor", "Dermatologist"},
		{"Family medicine and cardiology", "General Physician"},
		{"Child health and vaccination", "Pediatrician"},
		{"Otolaryngology consultant", "ENT Specialist"},
		{"Digestive disorders", "Gastroenterologist"},
		{"Psychiatry consultations", "Psychiatrist"},
		{"Orthodontist", "Dentist"},
		{"Obstetrician", "Gynecologist"},
		{"Eye specialist", "Ophthalmologist"},
		{"Joint specialist", "Orthopedic"},
		{"Nerve doctor", "Neurologist"},
		{"Nothing useful", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Specialization(tt.text))
		})
	}

	t.Run("short keywords match inside words", func(t *testing.T) {
		assert.Equal(t, "ENT Specialist", Specialization("Patient reviews"))
	})
}

func TestCategory(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Road resurfacing in the east", "Road & Infrastructure"},
		{"New school building", "Buildings"},
		{"Hospital renovation", "Renovation"},
		{"Pump repair works", "Maintenance"},
		{"HVAC mechanical works", "MEP"},
		{"Consulting services", "Other"},
		{"Road maintenance", "Road & Infrastructure"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Category(tt.text))
		})
	}
}

func TestInstitutionFilters(t *testing.T) {
	t.Run("titles", func(t *testing.T) {
		assert.True(t, IsInstitutionTitle("City General Hospital - Emergency Services"))
		assert.True(t, IsInstitutionTitle("Riyadh Diagnostic Center"))
		assert.False(t, IsInstitutionTitle("Dr. Ahmed Saleh - Consultant at King Faisal Hospital"))
		assert.False(t, IsInstitutionTitle("Dr.Ahmed Saleh - Consultant, King Faisal Hospital"))
		assert.False(t, IsInstitutionTitle("Doctor Lina Omar, Hospital Consultant"))
		assert.False(t, IsInstitutionTitle("Sara Ali | Cardiologist"))
	})

	t.Run("names", func(t *testing.T) {
		assert.True(t, IsInstitutionName("Al Noor Clinic"))
		assert.True(t, IsInstitutionName("Gulf Medical Group"))
		assert.True(t, IsInstitutionName("Saudi German Hospital"))
		assert.False(t, IsInstitutionName("Dr. Sara Ali"))
	})

	t.Run("doctor marker", func(t *testing.T) {
		assert.True(t, HasDoctorMarker("Dr. Sara"))
		assert.True(t, HasDoctorMarker("dr Sara"))
		assert.True(t, HasDoctorMarker("Ask the Doctor"))
		assert.True(t, HasDoctorMarker("Dr.Ahmed Saleh"))
		assert.False(t, HasDoctorMarker("Doctors Hospital"))
		assert.False(t, HasDoctorMarker("Drive-in clinic"))
	})
}

func TestMatchNote(t *testing.T) {
	t.Run("direct match names the recommended specialty", func(t *testing.T) {
		note := MatchNote("Cardiologist", []string{"Cardiologist", "General Physician"})
		assert.Equal(t, "Matches recommended specialty: Cardiologist", note)
		assert.True(t, IsMatchNote(note))
	})

	t.Run("partial match either direction", func(t *testing.T) {
		assert.Equal(t, MatchNotePrefix+"Orthopedic Surgeon", MatchNote("Orthopedic", []string{"Orthopedic Surgeon"}))
	})

	t.Run("synonym match", func(t *testing.T) {
		assert.Equal(t, MatchNotePrefix+"Heart Specialist", MatchNote("Cardiologist", []string{"Heart Specialist"}))
		assert.Equal(t, MatchNotePrefix+"Skin care", MatchNote("Dermatologist", []string{"Pediatrician", "Skin care"}))
	})

	t.Run("first matching recommendation wins", func(t *testing.T) {
		note := MatchNote("Cardiologist", []string{"Dermatologist", "Cardiac care", "Cardiologist"})
		assert.Equal(t, MatchNotePrefix+"Cardiac care", note)
	})

	t.Run("generic note", func(t *testing.T) {
		assert.Equal(t, GenericNote, MatchNote("Dermatologist", []string{"Cardiologist"}))
		assert.Equal(t, GenericNote, MatchNote("", []string{"Cardiologist"}))
		assert.Equal(t, GenericNote, MatchNote("Cardiologist", nil))
		assert.False(t, IsMatchNote(GenericNote))
	})
}

func TestSimilarSpecialties(t *testing.T) {
	assert.True(t, SimilarSpecialties("neurologist", "brain specialist"))
	assert.True(t, SimilarSpecialties("stomach doctor", "gastroenterologist"))
	assert.False(t, SimilarSpecialties("dermatologist", "cardiologist"))
}
