// ABOUTME: Temporal volume shaping for synthetic history.
// ABOUTME: Produces per-day counts from day-of-week ranges and a linear growth trend, plus calendar helpers.

package temporal

import (
	"math"
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/rng"
)

// Range is an inclusive integer range of records for one day of the week.
type Range struct {
	Min int
	Max int
}

// Closed is the zero range: the day never produces records.
var Closed = Range{}

// Plan describes a daily volume schedule. Ranges is indexed by time.Weekday
// (Sunday = 0). GrowthRate is the fractional increase per elapsed day, so 0.001
// means day 180 produces 18% more than day 0.
type Plan struct {
	Start      time.Time
	Days       int
	Ranges     [7]Range
	GrowthRate float64
}

// DayCount is the number of records planned for one calendar date.
type DayCount struct {
	Date    time.Time
	Elapsed int
	Count   int
}

// Uniform returns a Plan that uses the same range for every weekday, except
// those passed in closed which get the zero range.
func Uniform(start time.Time, days int, r Range, closed ...time.Weekday) Plan {
	p := Plan{Start: start, Days: days}
	for i := range p.Ranges {
		p.Ranges[i] = r
	}
	for _, wd := range closed {
		p.Ranges[wd] = Closed
	}
	return p
}

// Weekdays builds a day-of-week table with one range for Monday through Friday
// and separate ranges for Saturday and Sunday.
func Weekdays(weekday, saturday, sunday Range) [7]Range {
	var out [7]Range
	for wd := time.Monday; wd <= time.Friday; wd++ {
		out[wd] = weekday
	}
	out[time.Saturday] = saturday
	out[time.Sunday] = sunday
	return out
}

// Validate rejects negative horizons and malformed ranges.
func (p Plan) Validate() error {
	if p.Days < 0 {
		return seederrors.Invalid("days", "horizon must be >= 0, got %d", p.Days)
	}
	for wd, r := range p.Ranges {
		if r.Min < 0 {
			return seederrors.Invalid("ranges", "%s min must be >= 0, got %d", time.Weekday(wd), r.Min)
		}
		if r.Min > r.Max {
			return seederrors.Invalid("ranges", "%s min %d exceeds max %d", time.Weekday(wd), r.Min, r.Max)
		}
	}
	if math.IsNaN(p.GrowthRate) || math.IsInf(p.GrowthRate, 0) {
		return seederrors.Invalid("growth_rate", "must be finite")
	}
	return nil
}

// Counts draws one count per date starting at Start:
//
//	count(d) = round(uniform(min, max) * (1 + elapsed(d) * GrowthRate))
//
// Counts are clamped at zero, so a negative growth rate can shrink volume but
// never produce a negative day. A closed day consumes no draw.
func (p Plan) Counts(src rng.Source) ([]DayCount, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	start := StartOfDay(p.Start)
	out := make([]DayCount, 0, p.Days)
	for i := 0; i < p.Days; i++ {
		date := start.AddDate(0, 0, i)
		r := p.Ranges[date.Weekday()]
		count := 0
		if r.Max > 0 {
			base := rng.Between(src, r.Min, r.Max)
			count = int(math.Round(float64(base) * (1 + float64(i)*p.GrowthRate)))
			if count < 0 {
				count = 0
			}
		}
		out = append(out, DayCount{Date: date, Elapsed: i, Count: count})
	}
	return out, nil
}

// Total sums the counts.
func Total(days []DayCount) int {
	n := 0
	for _, d := range days {
		n += d.Count
	}
	return n
}

// Growth returns the linear multiplier for an elapsed number of days.
func Growth(elapsed int, rate float64) float64 {
	return 1 + float64(elapsed)*rate
}

// StartOfDay truncates t to local midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysAgo returns midnight n days before now. Negative n looks forward.
func DaysAgo(now time.Time, n int) time.Time {
	return StartOfDay(now).AddDate(0, 0, -n)
}

// DaysBetween returns whole days from a to b, rounded to the nearest day.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// Month is one calendar month in a month-level plan.
type Month struct {
	Index int
	Start time.Time
	Days  int
}

// Months returns the last n calendar months ending with now's month, oldest
// first. Index 0 is the oldest month.
func Months(now time.Time, n int) []Month {
	out := make([]Month, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		days := start.AddDate(0, 1, -1).Day()
		out = append(out, Month{Index: n - 1 - i, Start: start, Days: days})
	}
	return out
}

// MonthlyVolume is base + index*step + uniform(0, jitter-1), the month-over-month
// growth shape used for campaign volume.
func MonthlyVolume(src rng.Source, m Month, base, step, jitter int) int {
	v := base + m.Index*step
	if jitter > 0 {
		v += rng.Intn(src, jitter)
	}
	return v
}

// Ramp interpolates linearly from lo at the first month to hi at the last.
func Ramp(m Month, months int, lo, hi float64) float64 {
	if months <= 1 {
		return hi
	}
	return lo + float64(m.Index)/float64(months-1)*(hi-lo)
}
