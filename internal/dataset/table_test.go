package dataset

import (
	"reflect"
	"testing"
)

func TestRemapCategories(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"business", "b", "business"},
		{"tech", "t", "tech"},
		{"entertainment", "e", "entertainment"},
		{"health", "m", "health"},
		{"unknown passes through", "x", "x"},
		{"already full label passes through", "business", "business"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Table{{Title: "headline", Category: tt.code}}
			out := RemapCategories(in, nil)
			if out[0].Category != tt.want {
				t.Errorf("RemapCategories(%q) = %q, want %q", tt.code, out[0].Category, tt.want)
			}
			if in[0].Category != tt.code {
				t.Errorf("input table mutated: %q", in[0].Category)
			}
		})
	}
}

func TestRemapCategoriesLeavesNoKnownCode(t *testing.T) {
	in := Table{
		{Category: "b"}, {Category: "t"}, {Category: "e"}, {Category: "m"}, {Category: "z"},
	}
	var remapped int
	out := RemapCategories(in, func(string) { remapped++ })
	for _, doc := range out {
		if _, known := categoryLabels[doc.Category]; known {
			t.Errorf("category %q still a known single-letter code", doc.Category)
		}
	}
	if remapped != 4 {
		t.Errorf("remap callback fired %d times, want 4", remapped)
	}
}

func TestValueCounts(t *testing.T) {
	table := Table{
		{Category: "tech"}, {Category: "business"}, {Category: "tech"},
		{Category: "health"}, {Category: "tech"}, {Category: "business"},
	}
	got := ValueCounts(table)
	want := []CategoryCount{
		{Category: "tech", Count: 3},
		{Category: "business", Count: 2},
		{Category: "health", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValueCounts = %v, want %v", got, want)
	}
}

func TestValueCountsTieBreaksAlphabetically(t *testing.T) {
	table := Table{{Category: "tech"}, {Category: "business"}}
	got := ValueCounts(table)
	if got[0].Category != "business" || got[1].Category != "tech" {
		t.Errorf("tie order = %v, want business before tech", got)
	}
}
