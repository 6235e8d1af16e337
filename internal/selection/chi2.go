// Package selection scores features against category labels with the
// chi-squared test and retains the top-k columns.
package selection

import (
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/internal/vectorize"
	apperrors "github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/errors"
)

// Result holds the outcome of a k-best selection. Indices ascend, preserving
// vocabulary order; Scores and PValues align with Indices.
type Result struct {
	Indices []int
	Scores  []float64
	PValues []float64
}

// Chi2 computes the chi-squared statistic and p-value of every feature
// column against the label vector. Observed counts per class are column sums
// over that class's rows; expected counts distribute each feature's total by
// class prior. Feature values must be non-negative.
func Chi2(m *vectorize.Matrix, labels []string) (scores []float64, pValues []float64, err error) {
	if len(labels) != m.Rows {
		return nil, nil, apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitPipeline,
			"label vector length %d does not match %d matrix rows", len(labels), m.Rows)
	}

	classes := uniqueSorted(labels)
	classIndex := make(map[string]int, len(classes))
	for i, class := range classes {
		classIndex[class] = i
	}

	observed := make([][]float64, len(classes))
	for i := range observed {
		observed[i] = make([]float64, m.Cols)
	}
	classCounts := make([]float64, len(classes))
	featureTotals := make([]float64, m.Cols)

	for row := 0; row < m.Rows; row++ {
		class := classIndex[labels[row]]
		classCounts[class]++
		var rowErr error
		m.Row(row, func(col int, value float64) {
			if rowErr != nil {
				return
			}
			if value < 0 {
				rowErr = apperrors.Newf(apperrors.ErrNegativeFeature, apperrors.ExitPipeline,
					"value %g at row %d, column %d", value, row, col)
				return
			}
			observed[class][col] += value
			featureTotals[col] += value
		})
		if rowErr != nil {
			return nil, nil, rowErr
		}
	}

	scores = make([]float64, m.Cols)
	pValues = make([]float64, m.Cols)
	dof := len(classes) - 1
	chiDist := distuv.ChiSquared{K: float64(dof)}
	n := float64(m.Rows)

	for col := 0; col < m.Cols; col++ {
		var stat float64
		for class := range classes {
			expected := (classCounts[class] / n) * featureTotals[col]
			if expected == 0 {
				continue
			}
			diff := observed[class][col] - expected
			stat += diff * diff / expected
		}
		scores[col] = stat
		if dof == 0 {
			pValues[col] = 1
			continue
		}
		pValues[col] = chiDist.Survival(stat)
	}
	return scores, pValues, nil
}

// SelectKBest returns the k features with the highest chi-squared scores.
// Ties break toward the lower column index; the returned indices are sorted
// ascending. k must not exceed the number of feature columns.
func SelectKBest(m *vectorize.Matrix, labels []string, k int) (*Result, error) {
	if k < 1 {
		return nil, apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitConfig,
			"k must be at least 1, got %d", k)
	}
	if k > m.Cols {
		return nil, apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitPipeline,
			"k=%d exceeds the %d available features", k, m.Cols)
	}

	scores, pValues, err := Chi2(m, labels)
	if err != nil {
		return nil, err
	}

	order := make([]int, m.Cols)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	selected := append([]int(nil), order[:k]...)
	sort.Ints(selected)

	result := &Result{
		Indices: selected,
		Scores:  make([]float64, k),
		PValues: make([]float64, k),
	}
	for i, col := range selected {
		result.Scores[i] = scores[col]
		result.PValues[i] = pValues[col]
	}
	return result, nil
}

func uniqueSorted(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	classes := make([]string, 0, 8)
	for _, label := range labels {
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		classes = append(classes, label)
	}
	sort.Strings(classes)
	return classes
}
