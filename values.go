package bstview

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// RandomMaxValue bounds generated values to [0, RandomMaxValue).
	RandomMaxValue = 100
	// RandomMaxCount is the largest tree RandomValues will generate.
	RandomMaxCount = 100
	// DefaultRandomCount is the size of a quick random tree.
	DefaultRandomCount = 10
)

// ParseValue parses a single integer key. Surrounding whitespace is ignored.
func ParseValue(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidValue, "%q", s)
	}
	return v, nil
}

// ParseValues parses whitespace-separated integer keys. The first invalid
// token is reported; nothing is returned in that case.
func ParseValues(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, ErrNoValues
	}
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := ParseValue(f)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// RandomValues returns count distinct values in [0, RandomMaxValue), in the
// order they were drawn from rng. count must be in [1, RandomMaxCount].
//
// The caller owns rng; nothing here touches global random state, so a seeded
// source yields the same tree every time.
func RandomValues(rng *rand.Rand, count int) ([]int, error) {
	if count < 1 || count > RandomMaxCount {
		return nil, errors.Wrapf(ErrInvalidCount, "%d not in [1, %d]", count, RandomMaxCount)
	}
	seen := make(map[int]bool, count)
	values := make([]int, 0, count)
	for len(values) < count {
		v := rng.IntN(RandomMaxValue)
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values, nil
}
