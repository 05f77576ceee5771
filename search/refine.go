package search

import (
	"slices"
	"strings"

	"github.com/poiesic/scout/core"
)

// SortOrder selects how refined tenders are ordered.
type SortOrder string

const (
	// SortRelevance keeps the order the search returned.
	SortRelevance SortOrder = "relevance"
	// SortDeadline puts the earliest deadline first.
	SortDeadline SortOrder = "deadline"
	// SortNewest puts the latest announcement first.
	SortNewest SortOrder = "newest"
)

// RefineOptions narrow an already fetched tender list.
type RefineOptions struct {
	// Keyword matches title, authority or area. A keyword match keeps the
	// tender regardless of Year and Month.
	Keyword string `json:"keyword,omitempty"`
	// Categories keeps only these categories. Tenders without a category
	// count as core.ProjectOther.
	Categories []string  `json:"categories,omitempty"`
	Year       int       `json:"year,omitempty" validate:"omitempty,min=1900,max=2100"`
	Month      int       `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	SortBy     SortOrder `json:"sortBy,omitempty" validate:"omitempty,oneof=relevance deadline newest"`
}

// Refine filters and sorts tenders without another provider call.
// The input is not modified.
func Refine(tenders []core.Tender, opts RefineOptions) []core.Tender {
	keyword := strings.ToLower(strings.TrimSpace(opts.Keyword))

	out := make([]core.Tender, 0, len(tenders))
	for _, t := range tenders {
		if len(opts.Categories) > 0 {
			category := t.Category
			if category == "" {
				category = string(core.ProjectOther)
			}
			if !slices.Contains(opts.Categories, category) {
				continue
			}
		}

		if keyword != "" {
			if containsFold(keyword, t.Title, t.Authority, t.Area) {
				out = append(out, t)
			}
			continue
		}

		if matchesDate(&t, opts.Year, opts.Month) {
			out = append(out, t)
		}
	}

	switch opts.SortBy {
	case SortDeadline:
		sortByDate(out, func(t core.Tender) string { return t.Deadline }, false)
	case SortNewest:
		sortByDate(out, func(t core.Tender) string { return t.AnnouncementDate }, true)
	}
	return out
}

// sortByDate orders tenders by the given date field. Tenders whose field
// does not parse keep their relative order after the dated ones.
func sortByDate(tenders []core.Tender, field func(core.Tender) string, descending bool) {
	slices.SortStableFunc(tenders, func(a, b core.Tender) int {
		da, okA := ParseDate(field(a))
		db, okB := ParseDate(field(b))
		switch {
		case okA && okB:
			if descending {
				return db.Compare(da)
			}
			return da.Compare(db)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
}

func containsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
