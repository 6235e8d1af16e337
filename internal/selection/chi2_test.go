package selection

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/internal/vectorize"
	apperrors "github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/errors"
)

func matrixFor(t *testing.T, docs [][]string) (*vectorize.Vocabulary, *vectorize.Matrix) {
	t.Helper()
	vocab, err := vectorize.BuildVocabulary(docs, 1, 1, nil)
	if err != nil {
		t.Fatalf("BuildVocabulary: %v", err)
	}
	return vocab, vectorize.CountMatrix(docs, vocab)
}

func TestChi2DependentVsUniformFeature(t *testing.T) {
	// "netflix" only ever occurs under entertainment; "report" is spread
	// evenly across both classes.
	docs := [][]string{
		{"netflix", "report"},
		{"netflix", "report"},
		{"report"},
		{"report"},
	}
	labels := []string{"entertainment", "entertainment", "business", "business"}
	vocab, m := matrixFor(t, docs)

	scores, pValues, err := Chi2(m, labels)
	if err != nil {
		t.Fatalf("Chi2: %v", err)
	}
	netflix := vocab.Index["netflix"]
	report := vocab.Index["report"]

	// Observed (2, 0) against expected (1, 1) gives a statistic of 2.
	if math.Abs(scores[netflix]-2) > 1e-12 {
		t.Errorf("dependent feature score = %g, want 2", scores[netflix])
	}
	if scores[report] != 0 {
		t.Errorf("uniform feature score = %g, want 0", scores[report])
	}
	if pValues[netflix] >= pValues[report] {
		t.Errorf("dependent feature p-value %g not below uniform %g",
			pValues[netflix], pValues[report])
	}
	if math.Abs(pValues[report]-1) > 1e-12 {
		t.Errorf("uniform feature p-value = %g, want 1", pValues[report])
	}
}

func TestChi2RejectsNegativeValues(t *testing.T) {
	m := &vectorize.Matrix{
		Rows:     2,
		Cols:     1,
		RowStart: []int{0, 1, 2},
		ColIdx:   []int{0, 0},
		Values:   []float64{1, -0.5},
	}
	_, _, err := Chi2(m, []string{"a", "b"})
	if !errors.Is(err, apperrors.ErrNegativeFeature) {
		t.Errorf("error = %v, want ErrNegativeFeature", err)
	}
}

func TestChi2LabelLengthMismatch(t *testing.T) {
	m := &vectorize.Matrix{Rows: 2, Cols: 1, RowStart: []int{0, 0, 0}}
	if _, _, err := Chi2(m, []string{"a"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestSelectKBest(t *testing.T) {
	docs := [][]string{
		{"netflix", "shares", "report"},
		{"netflix", "report"},
		{"shares", "report"},
		{"shares", "report"},
	}
	labels := []string{"entertainment", "entertainment", "business", "business"}
	vocab, m := matrixFor(t, docs)

	result, err := SelectKBest(m, labels, 2)
	if err != nil {
		t.Fatalf("SelectKBest: %v", err)
	}
	if len(result.Indices) != 2 || len(result.Scores) != 2 || len(result.PValues) != 2 {
		t.Fatalf("result sizes = %d/%d/%d, want 2/2/2",
			len(result.Indices), len(result.Scores), len(result.PValues))
	}
	if !sort.IntsAreSorted(result.Indices) {
		t.Errorf("indices %v not ascending", result.Indices)
	}
	for _, idx := range result.Indices {
		if idx < 0 || idx >= m.Cols {
			t.Errorf("index %d out of range [0, %d)", idx, m.Cols)
		}
	}
	// The two class-aligned terms outscore the uniform one.
	want := []int{vocab.Index["netflix"], vocab.Index["shares"]}
	sort.Ints(want)
	if !reflect.DeepEqual(result.Indices, want) {
		t.Errorf("selected indices = %v, want %v", result.Indices, want)
	}
}

func TestSelectKBestKTooLarge(t *testing.T) {
	docs := [][]string{{"netflix"}, {"report"}}
	_, m := matrixFor(t, docs)
	if _, err := SelectKBest(m, []string{"e", "b"}, 3); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
	if _, err := SelectKBest(m, []string{"e", "b"}, 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestSelectKBestTiesPreferLowerIndex(t *testing.T) {
	// Both terms are perfectly aligned with one class each and score
	// identically; k=1 must keep the lower vocabulary index.
	docs := [][]string{{"alpha"}, {"beta"}}
	labels := []string{"one", "two"}
	vocab, m := matrixFor(t, docs)

	result, err := SelectKBest(m, labels, 1)
	if err != nil {
		t.Fatalf("SelectKBest: %v", err)
	}
	if result.Indices[0] != vocab.Index["alpha"] {
		t.Errorf("tie broke to index %d, want %d (alpha)", result.Indices[0], vocab.Index["alpha"])
	}
}
