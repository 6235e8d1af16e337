package vectorize

import "math"

// TFIDF rescales a term-frequency matrix into TF-IDF weights using the
// smooth-IDF convention idf(t) = ln((1+n)/(1+df(t))) + 1, then L2-normalises
// each row. The count matrix is left untouched; a new matrix is returned.
func TFIDF(counts *Matrix, vocab *Vocabulary) *Matrix {
	idf := make([]float64, vocab.Size())
	n := float64(vocab.NumDocs)
	for i, df := range vocab.DocFreq {
		idf[i] = math.Log((1+n)/(1+float64(df))) + 1
	}

	weighted := &Matrix{
		Rows:     counts.Rows,
		Cols:     counts.Cols,
		RowStart: counts.RowStart,
		ColIdx:   counts.ColIdx,
		Values:   make([]float64, len(counts.Values)),
	}
	for k, tf := range counts.Values {
		weighted.Values[k] = tf * idf[counts.ColIdx[k]]
	}

	for i := 0; i < weighted.Rows; i++ {
		start, end := weighted.RowStart[i], weighted.RowStart[i+1]
		var sumSquares float64
		for k := start; k < end; k++ {
			sumSquares += weighted.Values[k] * weighted.Values[k]
		}
		if sumSquares == 0 {
			continue
		}
		norm := math.Sqrt(sumSquares)
		for k := start; k < end; k++ {
			weighted.Values[k] /= norm
		}
	}
	return weighted
}
