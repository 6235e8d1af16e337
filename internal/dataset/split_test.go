package dataset

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	apperrors "github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/errors"
)

func makeTable(n int) Table {
	table := make(Table, n)
	for i := range table {
		table[i] = Document{Title: fmt.Sprintf("headline %d", i), Category: "b"}
	}
	return table
}

func TestSplitSizes(t *testing.T) {
	tests := []struct {
		n        int
		fraction float64
	}{
		{10, 0.2},
		{11, 0.2},
		{100, 0.2},
		{7, 0.5},
		{5, 0.6},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d_frac=%g", tt.n, tt.fraction), func(t *testing.T) {
			train, validation, err := Split(makeTable(tt.n), tt.fraction, 42)
			if err != nil {
				t.Fatalf("Split: %v", err)
			}
			wantValidation := int(math.Ceil(tt.fraction * float64(tt.n)))
			if len(validation) != wantValidation {
				t.Errorf("validation size = %d, want %d", len(validation), wantValidation)
			}
			if len(train)+len(validation) != tt.n {
				t.Errorf("train+validation = %d, want %d", len(train)+len(validation), tt.n)
			}
		})
	}
}

func TestSplitDisjointUnion(t *testing.T) {
	table := makeTable(50)
	train, validation, err := Split(table, 0.2, 42)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	seen := make(map[string]int)
	for _, doc := range train {
		seen[doc.Title]++
	}
	for _, doc := range validation {
		seen[doc.Title]++
	}
	if len(seen) != len(table) {
		t.Fatalf("union has %d distinct rows, want %d", len(seen), len(table))
	}
	for title, count := range seen {
		if count != 1 {
			t.Errorf("row %q appears %d times across subsets", title, count)
		}
	}
}

func TestSplitReproducible(t *testing.T) {
	table := makeTable(40)
	_, first, err := Split(table, 0.2, 42)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	_, second, err := Split(table, 0.2, 42)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different validation subsets")
	}
	_, other, err := Split(table, 0.2, 7)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if reflect.DeepEqual(first, other) {
		t.Error("different seeds produced identical validation subsets")
	}
}

func TestSplitErrors(t *testing.T) {
	if _, _, err := Split(nil, 0.2, 42); !errors.Is(err, apperrors.ErrDatasetEmpty) {
		t.Errorf("empty table error = %v, want ErrDatasetEmpty", err)
	}
	if _, _, err := Split(makeTable(10), 0, 42); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("zero fraction error = %v, want ErrInvalidInput", err)
	}
	if _, _, err := Split(makeTable(10), 1, 42); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("fraction=1 error = %v, want ErrInvalidInput", err)
	}
	if _, _, err := Split(makeTable(1), 0.5, 42); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("single-row split error = %v, want ErrInvalidInput", err)
	}
}
