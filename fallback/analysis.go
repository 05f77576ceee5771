package fallback

import (
	"slices"
	"strings"
	"time"

	"github.com/poiesic/scout/classify"
	"github.com/poiesic/scout/core"
)

const maxQuotedSymptoms = 100

// urgentKeywords and moderateKeywords grade severity before any specialist
// branch runs.
var (
	urgentKeywords   = []string{"chest pain", "difficulty breathing", "severe", "blood"}
	moderateKeywords = []string{"fever", "pain", "cough"}
)

// branch is the canned assessment for one group of symptoms.
type branch struct {
	specialist  string
	conditions  []string
	notes       string
	specialties []string
	urgent      bool
}

var generalBranch = branch{
	specialist:  "General Physician for comprehensive evaluation",
	conditions:  []string{"Common viral infection", "Stress-related manifestation", "Minor inflammatory response"},
	notes:       "Based on the symptom pattern described, this appears to be a common health concern that typically responds well to conservative management. However, a proper clinical examination would help rule out other possibilities and ensure appropriate care.",
	specialties: []string{"General Physician"},
}

// branchKeywords selects a branch. Order is significant.
var branchKeywords = classify.Table{
	{Label: "skin", Keywords: []string{"skin", "rash"}},
	{Label: "cardiac", Keywords: []string{"heart", "chest"}},
	{Label: "digestive", Keywords: []string{"stomach", "digestion", "abdominal"}},
	{Label: "neurological", Keywords: []string{"headache", "dizziness", "migraine"}},
	{Label: "respiratory", Keywords: []string{"cough", "throat", "respiratory"}},
}

var branches = map[string]branch{
	"skin": {
		specialist:  "Dermatologist - for specialized skin evaluation and treatment",
		conditions:  []string{"Contact dermatitis", "Allergic skin reaction", "Eczema or dermatitis"},
		notes:       "Skin conditions can have various underlying causes. A dermatologist can perform a detailed examination and may recommend patch testing or other diagnostic procedures to identify the exact cause and provide targeted treatment.",
		specialties: []string{"Dermatologist", "General Physician"},
	},
	"cardiac": {
		specialist:  "Cardiologist - urgent evaluation needed for cardiac symptoms",
		conditions:  []string{"Cardiovascular concern requiring immediate evaluation", "Possible cardiac stress", "Chest wall pain (musculoskeletal)"},
		notes:       "Chest-related symptoms always warrant careful evaluation. While many causes are benign, it's crucial to rule out cardiac issues through proper examination, ECG, and potentially other cardiac tests. Don't delay seeking medical attention.",
		specialties: []string{"Cardiologist", "General Physician"},
		urgent:      true,
	},
	"digestive": {
		specialist:  "Gastroenterologist - for digestive system evaluation",
		conditions:  []string{"Gastritis or stomach inflammation", "Functional dyspepsia", "Possible food intolerance"},
		notes:       "Digestive symptoms can stem from various causes including dietary factors, stress, or underlying gastrointestinal conditions. A gastroenterologist can perform appropriate tests such as endoscopy if needed and develop a comprehensive treatment plan.",
		specialties: []string{"Gastroenterologist", "General Physician"},
	},
	"neurological": {
		specialist:  "Neurologist - for neurological assessment and headache management",
		conditions:  []string{"Tension-type headache", "Possible migraine", "Stress-related headache"},
		notes:       "Headaches can have numerous triggers including stress, sleep patterns, dietary factors, or underlying neurological conditions. A neurologist can help identify the specific type and develop an effective prevention and treatment strategy.",
		specialties: []string{"Neurologist", "General Physician"},
	},
	"respiratory": {
		specialist:  "ENT Specialist or Pulmonologist - depending on symptom severity",
		conditions:  []string{"Upper respiratory tract infection", "Viral pharyngitis", "Post-nasal drip syndrome"},
		notes:       "Respiratory symptoms are commonly viral but can sometimes indicate bacterial infections or other respiratory conditions. Proper examination including throat and lung auscultation will help determine if antibiotics or other interventions are needed.",
		specialties: []string{"ENT Specialist", "Pulmonologist", "General Physician"},
	},
}

var (
	urgentActions = []string{
		"Seek immediate medical attention at the nearest emergency department",
		"Do not drive yourself - call emergency services or have someone take you",
		"Avoid physical exertion and remain calm",
		"Have someone stay with you until you receive medical care",
		"Bring a list of any medications you're currently taking",
	}
	moderateActions = []string{
		"Schedule an appointment with a healthcare provider within 24-48 hours",
		"Rest and avoid strenuous activities until you're evaluated",
		"Stay well-hydrated with water or clear fluids",
		"Monitor your symptoms and note any changes or worsening",
		"Keep a symptom diary including timing, intensity, and triggers",
		"Avoid potential irritants or known triggers if applicable",
	}
	mildActions = []string{
		"Monitor your symptoms over the next few days for any changes",
		"Ensure adequate rest and sleep (7-9 hours per night)",
		"Maintain good hydration throughout the day",
		"Consider over-the-counter remedies appropriate for your symptoms",
		"If symptoms persist beyond a week or worsen, consult a healthcare provider",
		"Practice stress management techniques and maintain healthy lifestyle habits",
	}

	urgentRedFlags = []string{
		"Any sudden worsening of symptoms",
		"Development of severe pain or distress",
		"Symptoms affecting breathing, consciousness, or vital functions",
		"Signs of severe infection (high fever, confusion, rapid heart rate)",
	}
	moderateRedFlags = []string{
		"Symptoms persisting beyond one week without improvement",
		"Progressive worsening of symptoms",
		"Development of new concerning symptoms",
		"Fever exceeding 101.5°F (38.6°C) that doesn't respond to medication",
		"Inability to perform daily activities due to symptoms",
	}
	mildRedFlags = []string{
		"Symptoms lasting more than two weeks",
		"Gradual worsening over time",
		"Development of fever or systemic symptoms",
		"Symptoms significantly affecting your quality of life",
	}
)

// Analysis produces a deterministic keyword-based assessment used when the
// analysis provider is unavailable. The same symptoms always yield the same
// assessment apart from id and timestamp.
func Analysis(symptoms string, now time.Time) core.SymptomAnalysis {
	lower := strings.ToLower(symptoms)

	severity := core.SeverityMild
	urgent := false
	switch {
	case containsAny(lower, urgentKeywords):
		severity = core.SeverityUrgent
		urgent = true
	case containsAny(lower, moderateKeywords):
		severity = core.SeverityModerate
	}

	b := generalBranch
	if key, ok := branchKeywords.FirstMatch(lower); ok {
		b = branches[key]
	}
	if b.urgent {
		severity = core.SeverityUrgent
		urgent = true
	}

	actions, flags := mildActions, mildRedFlags
	switch {
	case urgent:
		actions, flags = urgentActions, urgentRedFlags
	case severity == core.SeverityModerate:
		actions, flags = moderateActions, moderateRedFlags
	}

	return core.SymptomAnalysis{
		ID:                      core.NewAnalysisID("mock"),
		Summary:                 summary(symptoms, severity),
		PossibleConditions:      slices.Clone(b.conditions),
		Severity:                severity,
		RedFlags:                slices.Clone(flags),
		RecommendedActions:      slices.Clone(actions),
		ShouldSeeDoctorUrgently: urgent,
		SuggestedSpecialist:     b.specialist,
		RecommendedSpecialties:  slices.Clone(b.specialties),
		DoctorNotes:             b.notes,
		Disclaimer:              core.Disclaimer,
		Timestamp:               now,
	}
}

func summary(symptoms string, severity core.Severity) string {
	quoted := []rune(symptoms)
	suffix := ""
	if len(quoted) > maxQuotedSymptoms {
		quoted = quoted[:maxQuotedSymptoms]
		suffix = "..."
	}

	var assessment string
	switch severity {
	case core.SeverityUrgent:
		assessment = "I want to emphasize that these symptoms require prompt medical attention."
	case core.SeverityModerate:
		assessment = "these symptoms warrant medical evaluation to ensure proper care."
	default:
		assessment = "while these symptoms may be concerning, they often respond well to appropriate care and monitoring."
	}

	return "Thank you for sharing your symptoms with me. I've carefully reviewed what you've described: \"" +
		string(quoted) + suffix + "\". Based on this information, " + assessment +
		" Let me provide you with a detailed assessment to help guide your next steps."
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
