package vectorize

import "sort"

// Matrix is a compressed sparse row matrix. Row i's entries live in
// ColIdx[RowStart[i]:RowStart[i+1]] / Values[RowStart[i]:RowStart[i+1]],
// with column indices ascending within each row.
type Matrix struct {
	Rows     int
	Cols     int
	RowStart []int
	ColIdx   []int
	Values   []float64
}

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int {
	return len(m.Values)
}

// Row calls fn with each stored (column, value) pair of row i.
func (m *Matrix) Row(i int, fn func(col int, value float64)) {
	for k := m.RowStart[i]; k < m.RowStart[i+1]; k++ {
		fn(m.ColIdx[k], m.Values[k])
	}
}

// ColumnSums accumulates every column's stored values.
func (m *Matrix) ColumnSums() []float64 {
	sums := make([]float64, m.Cols)
	for k, col := range m.ColIdx {
		sums[col] += m.Values[k]
	}
	return sums
}

// CountMatrix builds the term-frequency matrix of the tokenized documents
// over the vocabulary. Terms outside the vocabulary are ignored.
func CountMatrix(docs [][]string, vocab *Vocabulary) *Matrix {
	m := &Matrix{
		Rows:     len(docs),
		Cols:     vocab.Size(),
		RowStart: make([]int, 1, len(docs)+1),
	}
	counts := make(map[int]float64)
	for _, terms := range docs {
		clear(counts)
		for _, term := range terms {
			if col, ok := vocab.Index[term]; ok {
				counts[col]++
			}
		}
		cols := make([]int, 0, len(counts))
		for col := range counts {
			cols = append(cols, col)
		}
		sort.Ints(cols)
		for _, col := range cols {
			m.ColIdx = append(m.ColIdx, col)
			m.Values = append(m.Values, counts[col])
		}
		m.RowStart = append(m.RowStart, len(m.ColIdx))
	}
	return m
}
