package workload

import "math"

// Policy holds the fixed workload constants. A zero threshold or hour cap is a
// real setting; only the points rate must be positive.
type Policy struct {
	// A (date, agent) group qualifies as a working day when its ticket sum is strictly above this.
	DailyTicketThreshold int                `yaml:"daily_ticket_threshold" validate:"gte=0"`
	PointsPerHour        float64            `yaml:"points_per_hour" validate:"gt=0"`
	MaxDailyHours        float64            `yaml:"max_daily_hours" validate:"gte=0"`
	DayAdjustments       map[string]float64 `yaml:"day_adjustments"`
}

// DefaultPolicy returns the built-in constants, including the one name-keyed correction.
func DefaultPolicy() Policy {
	return Policy{
		DailyTicketThreshold: 5,
		PointsPerHour:        60,
		MaxDailyHours:        9,
		// 2h/day over 30 days of 8h shifts
		DayAdjustments: map[string]float64{"Ryan Schlenz": -7.5},
	}
}

// WithDefaults fills a nil adjustments table and a non-positive points rate
// from DefaultPolicy. Threshold and hour cap are kept as given, zero included.
func (p Policy) WithDefaults() Policy {
	d := DefaultPolicy()
	if p.PointsPerHour <= 0 {
		p.PointsPerHour = d.PointsPerHour
	}
	if p.DayAdjustments == nil {
		p.DayAdjustments = d.DayAdjustments
	}
	return p
}

// Qualifies reports whether a same-day ticket total counts as a working day.
func (p Policy) Qualifies(total int) bool {
	return total > p.DailyTicketThreshold
}

// Hours converts summed points to capped hours.
func (p Policy) Hours(points float64) float64 {
	return Round1(math.Min(points/p.PointsPerHour, p.MaxDailyHours))
}

// Round1 rounds half to even at one decimal place.
func Round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
