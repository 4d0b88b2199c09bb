package benchmark

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeUnits is ordered longest suffix first so that "MB" is matched before
// the trailing "B" is.
var sizeUnits = []struct {
	suffix string
	factor int64
}{
	{"TB", 1 << 40},
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize converts a human-readable size expression such as "10MB" or
// "1.5gb" into an exact byte count. The numeric prefix may be fractional;
// the product is truncated to an integer. A bare number is taken as a plain
// byte count.
func ParseSize(s string) (int64, error) {
	expr := strings.ToUpper(strings.TrimSpace(s))

	for _, unit := range sizeUnits {
		if !strings.HasSuffix(expr, unit.suffix) {
			continue
		}
		prefix := strings.TrimSpace(strings.TrimSuffix(expr, unit.suffix))
		n, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSizeFormat, s)
		}
		return int64(n * float64(unit.factor)), nil
	}

	n, err := strconv.ParseInt(expr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSizeFormat, s)
	}
	return n, nil
}
