package dataset

import (
	"math"
	"math/rand"

	apperrors "github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/errors"
)

// Split partitions the table into disjoint train and validation subsets.
// The validation subset holds ceil(fraction * len(table)) rows chosen by a
// seeded permutation, so a fixed seed reproduces the same partition. No
// stratification is applied.
func Split(table Table, fraction float64, seed int64) (train Table, validation Table, err error) {
	if len(table) == 0 {
		return nil, nil, apperrors.New(apperrors.ErrDatasetEmpty, apperrors.ExitDataset,
			"cannot split an empty table")
	}
	if fraction <= 0 || fraction >= 1 {
		return nil, nil, apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitConfig,
			"split fraction must be in (0, 1), got %g", fraction)
	}

	n := len(table)
	nValidation := int(math.Ceil(fraction * float64(n)))
	if nValidation >= n {
		return nil, nil, apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitConfig,
			"validation subset would consume all %d rows", n)
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)

	validation = make(Table, 0, nValidation)
	train = make(Table, 0, n-nValidation)
	for _, idx := range perm[:nValidation] {
		validation = append(validation, table[idx])
	}
	for _, idx := range perm[nValidation:] {
		train = append(train, table[idx])
	}
	return train, validation, nil
}
