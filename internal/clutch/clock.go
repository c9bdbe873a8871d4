// Package clutch decides which play-by-play actions fall inside clutch time:
// any overtime period, or the fourth period with five or fewer minutes left.
package clutch

import (
	"regexp"
	"strconv"
)

// clockPattern matches the minutes component of an ISO-8601 style game clock, e.g. PT04M32.00S.
var clockPattern = regexp.MustCompile(`^PT(\d+)M`)

// ParseMinutes returns the whole minutes remaining on a game clock.
// Missing or malformed clocks yield 0.
func ParseMinutes(clock string) int {
	m := clockPattern.FindStringSubmatch(clock)
	if len(m) != 2 {
		return 0
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return minutes
}
