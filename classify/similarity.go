package classify

import "strings"

// Match note texts attached to doctors.
const (
	MatchNotePrefix = "Matches recommended specialty: "
	GenericNote     = "Suggested based on your location and general medical relevance."
)

// synonymGroup ties a specialty stem to layperson words for the same field.
type synonymGroup struct {
	stem     string
	synonyms []string
}

var synonymGroups = []synonymGroup{
	{stem: "cardio", synonyms: []string{"heart", "cardiac", "cardiovascular"}},
	{stem: "derm", synonyms: []string{"skin"}},
	{stem: "neuro", synonyms: []string{"brain", "nerve"}},
	{stem: "ortho", synonyms: []string{"bone", "joint"}},
	{stem: "gastro", synonyms: []string{"stomach", "digestive", "intestine"}},
	{stem: "ent", synonyms: []string{"ear", "nose", "throat"}},
}

func (g synonymGroup) matches(s string) bool {
	return strings.Contains(s, g.stem) || containsAny(s, g.synonyms)
}

// SimilarSpecialties reports whether a and b both mention the stem or a
// synonym of the same group. Inputs must be lowercase.
func SimilarSpecialties(a, b string) bool {
	for _, g := range synonymGroups {
		if g.matches(a) && g.matches(b) {
			return true
		}
	}
	return false
}

// MatchesSpecialty reports whether a detected specialization agrees with a
// recommended specialty, by substring in either direction or by synonym.
func MatchesSpecialty(specialization, recommended string) bool {
	s := strings.ToLower(specialization)
	r := strings.ToLower(recommended)
	if s == "" || r == "" {
		return false
	}
	return strings.Contains(s, r) || strings.Contains(r, s) || SimilarSpecialties(r, s)
}

// MatchNote explains why a doctor was suggested. The first recommended
// specialty that matches is named in the note.
func MatchNote(specialization string, recommended []string) string {
	if specialization == "" || len(recommended) == 0 {
		return GenericNote
	}
	for _, r := range recommended {
		if MatchesSpecialty(specialization, r) {
			return MatchNotePrefix + r
		}
	}
	return GenericNote
}

// IsMatchNote reports whether note marks a specialty match.
func IsMatchNote(note string) bool {
	return strings.HasPrefix(note, MatchNotePrefix)
}
