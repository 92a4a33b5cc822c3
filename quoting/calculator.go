/*
calculator.go - Shift-to-cost decomposition

PURPOSE:
  Converts one recorded shift into billable NT/OT hour buckets and a
  cost under the rate profile in force. This is the core algorithm of
  the quoting engine.

ALGORITHM:
  1. Total duration from wall-clock start/finish, wrapping past
     midnight, rounded to two decimal places.
  2. Site hours = max(0, total - travelIn - travelOut).
  3. Branch on day type:
     - Weekday night shift: every hour is OT at the overtime rate.
     - Weekday: hours consume the NT threshold in strict order
       (travel-in, then site, then travel-out); the remainder is OT.
     - Weekend / public holiday: billed uniformly at the day rate.
  4. Flat allowances (vehicle, per-diem) added on top.

BUCKET LABELS ON WEEKEND/HOLIDAY PATHS:
  Weekend site hours land in the NT bucket while weekend travel lands
  in OT; public-holiday hours all land in NT. The labels are
  informational on these paths and do not drive billing - cost is
  uniform at the day rate. This matches the historical ledgers this
  engine replaces; do not "fix" the labeling without changing every
  report that reads it.

PURITY:
  No side effects, no I/O, no ambient state. Malformed time strings
  yield a zero duration rather than an error, so one bad shift never
  aborts aggregation of a whole job.

SEE ALSO:
  - aggregator.go: Sums calculated shifts into job totals
  - types.go: Shift, RateProfile, CalculatedShift
*/
package quoting

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	minutesPerHour = decimal.NewFromInt(60)
	hoursPerDay    = decimal.NewFromInt(24)
)

// CalculateShiftBreakdown decomposes a shift into six NT/OT hour
// buckets and a full-precision cost. Pure and deterministic: identical
// inputs always yield identical output. Monetary rounding to cents is
// the caller's concern.
func CalculateShiftBreakdown(s Shift, r RateProfile) CalculatedShift {
	total := shiftDuration(s.Start, s.Finish)

	site := total.Sub(s.TravelIn).Sub(s.TravelOut)
	if site.IsNegative() {
		site = decimal.Zero
	}

	b := HourBreakdown{TotalHours: total, SiteHours: site}
	var cost decimal.Decimal

	switch {
	case s.DayType == DayWeekend:
		// Site hours display as NT, travel as OT. Billing ignores the
		// labels: everything is at the weekend rate.
		b.SiteNT = site
		b.TravelInOT = s.TravelIn
		b.TravelOutOT = s.TravelOut
		cost = site.Add(s.TravelIn).Add(s.TravelOut).Mul(r.Weekend)

	case s.DayType == DayPublicHoliday:
		// Same structure as weekend but all hours display as NT.
		b.TravelInNT = s.TravelIn
		b.SiteNT = site
		b.TravelOutNT = s.TravelOut
		cost = site.Add(s.TravelIn).Add(s.TravelOut).Mul(r.PublicHoliday)

	case s.IsNightShift:
		// Weekday night shift: the NT threshold does not apply.
		b.TravelInOT = s.TravelIn
		b.SiteOT = site
		b.TravelOutOT = s.TravelOut
		cost = site.Add(s.TravelIn).Add(s.TravelOut).Mul(r.SiteOvertime)

	default:
		// Weekday: threshold capacity is consumed in strict order -
		// travel-in first, then site, then travel-out. Travel is
		// billed identically to site time once bucketed.
		remaining := r.OvertimeThreshold
		b.TravelInNT, b.TravelInOT, remaining = splitSegment(s.TravelIn, remaining)
		b.SiteNT, b.SiteOT, remaining = splitSegment(site, remaining)
		b.TravelOutNT, b.TravelOutOT, _ = splitSegment(s.TravelOut, remaining)

		cost = b.NT().Mul(r.SiteNormal).Add(b.OT().Mul(r.SiteOvertime))
	}

	if s.VehicleUsed {
		cost = cost.Add(r.VehicleAllowance)
	}
	if s.PerDiemClaim {
		cost = cost.Add(r.PerDiem)
	}

	return CalculatedShift{Cost: cost, Breakdown: b}
}

// splitSegment splits one segment against the remaining NT capacity.
// Returns the NT portion, the OT remainder, and the capacity left for
// the next segment.
func splitSegment(segment, remaining decimal.Decimal) (nt, ot, left decimal.Decimal) {
	nt = segment
	if nt.GreaterThan(remaining) {
		nt = remaining
	}
	if nt.IsNegative() {
		nt = decimal.Zero
	}
	return nt, segment.Sub(nt), remaining.Sub(nt)
}

// shiftDuration computes the hours between two wall-clock "HH:MM"
// strings, wrapping negative differences past midnight. Malformed or
// missing times yield zero.
func shiftDuration(start, finish string) decimal.Decimal {
	startMin, ok := parseClock(start)
	if !ok {
		return decimal.Zero
	}
	finishMin, ok := parseClock(finish)
	if !ok {
		return decimal.Zero
	}

	hours := decimal.NewFromInt(int64(finishMin - startMin)).Div(minutesPerHour)
	if hours.IsNegative() {
		hours = hours.Add(hoursPerDay)
	}
	return hours.Round(2)
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(s string) (int, bool) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
