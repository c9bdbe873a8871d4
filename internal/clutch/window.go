package clutch

const (
	// FinalRegulationPeriod is the last period of regulation.
	FinalRegulationPeriod = 4
	// FirstOvertimePeriod is the first period numbered as overtime.
	FirstOvertimePeriod = 5
	// ThresholdMinutes is the inclusive minutes-remaining cutoff in the final period.
	ThresholdMinutes = 5
)

// IsClutch reports whether an action at the given period and minutes remaining is clutch.
func IsClutch(period, minutesRemaining int) bool {
	if period >= FirstOvertimePeriod {
		return true
	}
	return period == FinalRegulationPeriod && minutesRemaining <= ThresholdMinutes
}

// IsClutchClock is IsClutch over a raw upstream clock string.
func IsClutchClock(period int, clock string) bool {
	return IsClutch(period, ParseMinutes(clock))
}
