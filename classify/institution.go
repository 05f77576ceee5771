package classify

import (
	"regexp"
	"strings"
)

var doctorMarker = regexp.MustCompile(`(?i)\b(dr\.|dr\b|doctor\b)`)

// HasDoctorMarker reports whether text carries a "Dr." or "Doctor" title.
func HasDoctorMarker(text string) bool {
	return doctorMarker.MatchString(text)
}

// IsInstitutionTitle reports whether a raw search result title names a
// hospital or similar institution. Titles that also carry a doctor marker
// are kept, since practitioner profiles often mention their hospital.
func IsInstitutionTitle(title string) bool {
	lower := strings.ToLower(title)
	return containsAny(lower, HospitalKeywords) && !HasDoctorMarker(title)
}

// IsInstitutionName reports whether an extracted name still looks like an
// institution.
func IsInstitutionName(name string) bool {
	return containsAny(strings.ToLower(name), institutionNameKeywords)
}
