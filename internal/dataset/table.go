// Package dataset loads the headline CSV, remaps category codes, and
// partitions rows into train/validation subsets.
package dataset

import "sort"

// Document is one row of the headline table.
type Document struct {
	Title    string
	Category string
}

// Table is an immutable sequence of documents.
type Table []Document

// categoryLabels maps the dataset's single-letter category codes to full
// labels. Unknown codes pass through unchanged.
var categoryLabels = map[string]string{
	"b": "business",
	"t": "tech",
	"e": "entertainment",
	"m": "health",
}

// RemapCategories returns a copy of the table with single-letter category
// codes replaced by their full labels. The onRemap callback, when non-nil,
// is invoked with each label applied.
func RemapCategories(table Table, onRemap func(label string)) Table {
	out := make(Table, len(table))
	for i, doc := range table {
		if label, ok := categoryLabels[doc.Category]; ok {
			doc.Category = label
			if onRemap != nil {
				onRemap(label)
			}
		}
		out[i] = doc
	}
	return out
}

// CategoryCount pairs a category label with the number of rows carrying it.
type CategoryCount struct {
	Category string
	Count    int
}

// ValueCounts tallies documents per category, ordered by descending count
// and alphabetically within ties.
func ValueCounts(table Table) []CategoryCount {
	counts := make(map[string]int)
	for _, doc := range table {
		counts[doc.Category]++
	}
	result := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// Titles projects the title column.
func (t Table) Titles() []string {
	titles := make([]string, len(t))
	for i, doc := range t {
		titles[i] = doc.Title
	}
	return titles
}

// Categories projects the category column.
func (t Table) Categories() []string {
	categories := make([]string, len(t))
	for i, doc := range t {
		categories[i] = doc.Category
	}
	return categories
}
