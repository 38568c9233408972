package tutor

import (
	"context"
	"strings"
)

// Validate runs the learner's query and the reference query against the
// same store and reports whether their result sets are equivalent.
//
// With ordered true the results must match positionally, including row
// order. With ordered false each result is first sorted by its own full
// column list, so row order does not matter. If either query is empty or
// whitespace-only nothing is executed and the answer is not equivalent.
//
// When the two queries return differently named columns the sort keys
// differ and the order-insensitive comparison can report non-equivalence
// even for semantically equal data. Column names are compared before
// values, so mismatched names already fail equality here.
func Validate(ctx context.Context, store *Store, learner, reference string, ordered bool) (bool, error) {
	if strings.TrimSpace(learner) == "" || strings.TrimSpace(reference) == "" {
		return false, nil
	}

	got, err := Run(ctx, store, learner)
	if err != nil {
		return false, err
	}
	want, err := Run(ctx, store, reference)
	if err != nil {
		return false, err
	}

	if !ordered {
		got.Sort()
		want.Sort()
	}
	return got.Equal(want), nil
}
