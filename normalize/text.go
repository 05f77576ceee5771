package normalize

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Generic labels used when nothing better can be extracted.
const (
	LabelMedicalProvider   = "Medical Provider"
	LabelMedicalSpecialist = "Medical Specialist"
	LabelWebSource         = "Web Source"
	LabelUnknownSource     = "Unknown Source"
)

var (
	// A dash needs leading whitespace so hyphenated names survive.
	titleSuffix   = regexp.MustCompile(`(\s+[-–]|\s*\|).*$`)
	parenthetical = regexp.MustCompile(`\s*\(.+?\)\s*`)
	doctorPrefix  = regexp.MustCompile(`(?i)^(?:dr\.|dr\b|doctor\b)\s*`)
	personName    = regexp.MustCompile(`^\p{Lu}[\p{L}'-]+(?:\s+\p{Lu}[\p{L}'-]+){1,2}$`)
)

// CleanTitle strips site suffixes after a dash or pipe and parenthetical
// asides from a search result title.
func CleanTitle(title string) string {
	name := titleSuffix.ReplaceAllString(title, "")
	name = parenthetical.ReplaceAllString(name, " ")
	return strings.Join(strings.Fields(name), " ")
}

// DoctorName formats a cleaned title as a practitioner name. Titles that
// neither carry a doctor marker nor look like a personal name get a
// generic label.
func DoctorName(cleaned string) string {
	name := strings.TrimSpace(cleaned)
	if name == "" {
		return LabelMedicalProvider
	}

	if loc := doctorPrefix.FindStringIndex(name); loc != nil {
		rest := strings.TrimSpace(name[loc[1]:])
		if rest == "" {
			return LabelMedicalSpecialist
		}
		return "Dr. " + fixCase(rest)
	}

	if personName.MatchString(name) {
		return "Dr. " + fixCase(name)
	}

	return LabelMedicalSpecialist
}

// fixCase title-cases names written entirely in one case and leaves mixed
// case alone, so "McDonald" and "Al-Harbi" keep their capitals.
func fixCase(s string) string {
	hasUpper, hasLower := false, false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if hasUpper && hasLower {
		return s
	}
	// Casers are stateful and must not be shared across goroutines.
	return cases.Title(language.Und).String(strings.ToLower(s))
}

// SourceName returns the host of rawURL without a leading "www.", or
// LabelWebSource when the URL has no usable host.
func SourceName(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Hostname() == "" {
		return LabelWebSource
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// truncate cuts s to at most n runes and reports whether it did.
func truncate(s string, n int) (string, bool) {
	if n <= 0 {
		return "", s != ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i], true
		}
		count++
	}
	return s, false
}
