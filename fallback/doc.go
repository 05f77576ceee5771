// Package fallback provides the deterministic data served when a provider
// cannot be reached or is not configured: six fixture tenders across both
// cities and a keyword-driven symptom assessment.
package fallback
