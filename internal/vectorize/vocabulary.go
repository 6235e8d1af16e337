package vectorize

import (
	"sort"

	apperrors "github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/errors"
)

// Drop reasons passed to the onDrop callback during vocabulary pruning.
const (
	DropBelowMinDocFreq = "below_min_doc_freq"
	DropAboveMaxDocFreq = "above_max_doc_freq"
)

// Vocabulary is the ordered term set surviving document-frequency pruning.
// Terms are sorted alphabetically so column order is deterministic.
type Vocabulary struct {
	Terms   []string
	Index   map[string]int
	DocFreq []int
	NumDocs int
}

// Size returns the number of retained terms.
func (v *Vocabulary) Size() int {
	return len(v.Terms)
}

// BuildVocabulary scans tokenized documents and retains every term whose
// document frequency is at least minDocFreq and at most
// maxDocFreqRatio * len(docs). The onDrop callback, when non-nil, is invoked
// with a reason for each pruned term.
func BuildVocabulary(docs [][]string, minDocFreq int, maxDocFreqRatio float64, onDrop func(reason string)) (*Vocabulary, error) {
	docFreq := make(map[string]int)
	for _, terms := range docs {
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			docFreq[term]++
		}
	}

	maxDocFreq := maxDocFreqRatio * float64(len(docs))
	retained := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df < minDocFreq {
			if onDrop != nil {
				onDrop(DropBelowMinDocFreq)
			}
			continue
		}
		if float64(df) > maxDocFreq {
			if onDrop != nil {
				onDrop(DropAboveMaxDocFreq)
			}
			continue
		}
		retained = append(retained, term)
	}
	if len(retained) == 0 {
		return nil, apperrors.Newf(apperrors.ErrVocabularyEmpty, apperrors.ExitPipeline,
			"no term in %d documents satisfies min_df=%d, max_df=%g",
			len(docs), minDocFreq, maxDocFreqRatio)
	}
	sort.Strings(retained)

	vocab := &Vocabulary{
		Terms:   retained,
		Index:   make(map[string]int, len(retained)),
		DocFreq: make([]int, len(retained)),
		NumDocs: len(docs),
	}
	for i, term := range retained {
		vocab.Index[term] = i
		vocab.DocFreq[i] = docFreq[term]
	}
	return vocab, nil
}
