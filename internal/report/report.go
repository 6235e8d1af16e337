// Package report prints per-category document counts for each selected term.
// Matching is deliberate substring containment against lowercased titles, not
// tokenized matching, so short terms can over-match (e.g. "mers" inside
// "consumers").
package report

import (
	"strings"

	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/internal/dataset"
)

// TermReport holds one selected term and the category distribution of the
// documents whose title contains it.
type TermReport struct {
	Term       string
	Matched    int
	ByCategory []dataset.CategoryCount
}

// Build computes a TermReport for every term, in the given term order.
// The onMatch callback, when non-nil, receives each term's match count.
func Build(terms []string, table dataset.Table, onMatch func(term string, matched int)) []TermReport {
	reports := make([]TermReport, 0, len(terms))
	for _, term := range terms {
		var matched dataset.Table
		for _, doc := range table {
			if strings.Contains(strings.ToLower(doc.Title), term) {
				matched = append(matched, doc)
			}
		}
		if onMatch != nil {
			onMatch(term, len(matched))
		}
		reports = append(reports, TermReport{
			Term:       term,
			Matched:    len(matched),
			ByCategory: dataset.ValueCounts(matched),
		})
	}
	return reports
}

// DominantShare returns the fraction of matched documents falling into the
// report's largest category, or 0 when nothing matched.
func (r TermReport) DominantShare() float64 {
	if r.Matched == 0 || len(r.ByCategory) == 0 {
		return 0
	}
	return float64(r.ByCategory[0].Count) / float64(r.Matched)
}
