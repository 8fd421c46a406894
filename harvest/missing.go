package harvest

import (
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// The harvester writes the Python literal None for SNPs outside any peak;
// NA and blank are accepted as the same sentinel. A missing value is
// distinct from a numeric zero.
func isMissing(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "None", "NA", "nan", "NaN":
		return true
	}

	return false
}

func optionalFloat(s string) (null.Float, error) {
	if isMissing(s) {
		return null.Float{}, nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return null.Float{}, err
	}

	return null.FloatFrom(v), nil
}
