package version

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// parse reads "v1.2.3" style versions. Missing minor or patch parts count as zero
// and a pre-release or build suffix is ignored.
func parse(s string) ([3]int, error) {
	var parts [3]int

	core, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(s), "v"), "-")
	core, _, _ = strings.Cut(core, "+")

	fields := strings.Split(core, ".")
	if len(fields) > len(parts) {
		return parts, fmt.Errorf("version %q has too many parts", s)
	}

	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return parts, fmt.Errorf("version %q: invalid part %q", s, field)
		}
		parts[i] = n
	}

	return parts, nil
}

// Compare returns 1 if a is newer than b, -1 if it is older and 0 if they match.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	return slices.Compare(av[:], bv[:]), nil
}
