package tanktemp

import (
	"fmt"
	"strconv"
	"strings"
)

// Timeframe selects one column of the meteorological table: the annual
// average or a single month. The integer value doubles as the table index
// (0 = Annual, 1 = January .. 12 = December).
type Timeframe int

const (
	Annual Timeframe = iota
	January
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var timeframeNames = [13]string{
	"Annual",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (t Timeframe) String() string {
	if t < Annual || t > December {
		return fmt.Sprintf("Timeframe(%d)", int(t))
	}
	return timeframeNames[t]
}

// TimeframeFromIndex maps an integer 0-12 to its Timeframe.
func TimeframeFromIndex(n int) (Timeframe, error) {
	if n < 0 || n > 12 {
		return 0, fmt.Errorf("%w: timeframe index %d; accepted values are 0 (annual) through 12 (December)",
			ErrInvalidInput, n)
	}
	return Timeframe(n), nil
}

// ParseTimeframe resolves a timeframe given as a month name, a three-letter
// month abbreviation, "annual", or a numeric index 0-12.
func ParseTimeframe(s string) (Timeframe, error) {
	q := strings.ToLower(strings.TrimSpace(s))
	if q == "" {
		return 0, fmt.Errorf("%w: empty timeframe; accepted values are %s or an index 0-12",
			ErrInvalidInput, quotedTimeframeNames())
	}
	if n, err := strconv.Atoi(q); err == nil {
		return TimeframeFromIndex(n)
	}
	for i, name := range timeframeNames {
		lower := strings.ToLower(name)
		if q == lower || q == lower[:3] {
			return Timeframe(i), nil
		}
	}
	return 0, fmt.Errorf("%w: timeframe %q; accepted values are %s or an index 0-12",
		ErrInvalidInput, s, quotedTimeframeNames())
}

func quotedTimeframeNames() string {
	return quoteOptions(timeframeNames[:])
}
