/*
Package quoting provides the core quoting engine for field-service jobs.

PURPOSE:
  This package contains the domain types and algorithms for turning a
  technician's recorded shifts into billable normal-time and overtime
  hour buckets, aggregating them into job totals, and governing the
  quote's lifecycle (draft, quoted, invoice, closed, archived).

KEY CONCEPTS IN THIS FILE (types.go):
  - RateProfile: Immutable snapshot of billing rates for one quote
  - Shift: One technician's single period of work on one date
  - CalculatedShift: Derived NT/OT breakdown plus cost (never persisted)
  - Quote: The aggregate root holding rates, job details, shifts, extras
  - Customer: Directory record carrying its own RateProfile

DESIGN PRINCIPLES:
  1. Purity: Calculation and aggregation are side-effect free
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Snapshot semantics: A quote's RateProfile is a value, not a live
     reference to the customer's profile
  4. Lock discipline: Mutating operations are no-ops on a locked quote

SEE ALSO:
  - calculator.go: Shift-to-cost decomposition
  - aggregator.go: Job totals across shifts and extras
  - lifecycle.go: Status state machine and locking
*/
package quoting

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RATE PROFILE - Billing rates in force for one quote
// =============================================================================

// RateProfile is the complete set of hourly rates, allowances, and
// thresholds applied to a quote, sourced from a customer or global
// defaults. All monetary rates are non-negative; OvertimeThreshold
// must be positive.
type RateProfile struct {
	// Hourly site rates per day type.
	SiteNormal    decimal.Decimal `json:"siteNormal"`
	SiteOvertime  decimal.Decimal `json:"siteOvertime"`
	Weekend       decimal.Decimal `json:"weekend"`
	PublicHoliday decimal.Decimal `json:"publicHoliday"`

	// Office reporting rate, billed against JobDetails.ReportingTime.
	OfficeReporting decimal.Decimal `json:"officeReporting"`

	// Flat allowances added per shift when the matching flag is set.
	VehicleAllowance decimal.Decimal `json:"vehicleAllowance"`
	PerDiem          decimal.Decimal `json:"perDiem"`

	// Legacy travel rates. The unified breakdown bills travel time at
	// the site rates once bucketed; these remain for itemized travel
	// expense entry.
	TravelHourly decimal.Decimal `json:"travelHourly"`
	TravelPerKm  decimal.Decimal `json:"travelPerKm"`

	// Flat travel charge applied once per technician per job.
	TravelChargeExBrisbane decimal.Decimal `json:"travelChargeExBrisbane"`

	// Hours billed at SiteNormal before overtime applies on a weekday.
	OvertimeThreshold decimal.Decimal `json:"overtimeThreshold"`

	// Internal cost of labour per hour. Never billed; used only for
	// margin reporting.
	CostOfLabour decimal.Decimal `json:"costOfLabour"`

	// Named recurring expense templates offered as quick picks.
	ExpenseTemplates []ExpenseTemplate `json:"expenseTemplates,omitempty"`
}

// ExpenseTemplate is a named recurring internal expense.
type ExpenseTemplate struct {
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

// DefaultRateProfile returns the built-in global default rates used
// when no customer profile applies.
func DefaultRateProfile() RateProfile {
	return RateProfile{
		SiteNormal:             dec(160),
		SiteOvertime:           dec(190),
		Weekend:                dec(210),
		PublicHoliday:          dec(240),
		OfficeReporting:        dec(160),
		VehicleAllowance:       dec(95),
		PerDiem:                dec(180),
		TravelHourly:           dec(120),
		TravelPerKm:            dec(1.05),
		TravelChargeExBrisbane: dec(50),
		OvertimeThreshold:      dec(7.5),
		CostOfLabour:           dec(85),
	}
}

// Equal reports full structural equality over every rate field.
// Used by the unsaved-changes tracker; snapshots are copies, so
// reference identity never holds.
func (r RateProfile) Equal(o RateProfile) bool {
	if !r.SiteNormal.Equal(o.SiteNormal) ||
		!r.SiteOvertime.Equal(o.SiteOvertime) ||
		!r.Weekend.Equal(o.Weekend) ||
		!r.PublicHoliday.Equal(o.PublicHoliday) ||
		!r.OfficeReporting.Equal(o.OfficeReporting) ||
		!r.VehicleAllowance.Equal(o.VehicleAllowance) ||
		!r.PerDiem.Equal(o.PerDiem) ||
		!r.TravelHourly.Equal(o.TravelHourly) ||
		!r.TravelPerKm.Equal(o.TravelPerKm) ||
		!r.TravelChargeExBrisbane.Equal(o.TravelChargeExBrisbane) ||
		!r.OvertimeThreshold.Equal(o.OvertimeThreshold) ||
		!r.CostOfLabour.Equal(o.CostOfLabour) {
		return false
	}
	if len(r.ExpenseTemplates) != len(o.ExpenseTemplates) {
		return false
	}
	for i := range r.ExpenseTemplates {
		if r.ExpenseTemplates[i].Name != o.ExpenseTemplates[i].Name ||
			!r.ExpenseTemplates[i].Cost.Equal(o.ExpenseTemplates[i].Cost) {
			return false
		}
	}
	return true
}

// =============================================================================
// SHIFT - One technician, one date
// =============================================================================

// DayType classifies a shift's date for billing.
type DayType string

const (
	DayWeekday       DayType = "weekday"
	DayWeekend       DayType = "weekend"
	DayPublicHoliday DayType = "publicHoliday"
)

// DayTypeFor returns the default classification for a date.
// Public holidays are a user-set override, never inferred.
func DayTypeFor(date time.Time) DayType {
	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return DayWeekend
	}
	return DayWeekday
}

// Shift is one technician's single period of work on one date.
// Start and Finish are wall-clock "HH:MM" strings and may wrap past
// midnight; travel durations are hours and are not part of site time.
type Shift struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	DayType DayType   `json:"dayType"`

	Start  string `json:"start"`
	Finish string `json:"finish"`

	TravelIn  decimal.Decimal `json:"travelIn"`
	TravelOut decimal.Decimal `json:"travelOut"`

	IsNightShift bool `json:"isNightShift"`

	// Allowance flags.
	VehicleUsed  bool `json:"vehicleUsed"`
	PerDiemClaim bool `json:"perDiemClaim"`
}

// =============================================================================
// CALCULATED SHIFT - Derived breakdown, recomputed on every read
// =============================================================================

// HourBreakdown splits a shift's hours into six NT/OT buckets in
// travel-in, site, travel-out order, plus roll-up durations.
type HourBreakdown struct {
	TravelInNT  decimal.Decimal `json:"travelInNT"`
	TravelInOT  decimal.Decimal `json:"travelInOT"`
	SiteNT      decimal.Decimal `json:"siteNT"`
	SiteOT      decimal.Decimal `json:"siteOT"`
	TravelOutNT decimal.Decimal `json:"travelOutNT"`
	TravelOutOT decimal.Decimal `json:"travelOutOT"`

	TotalHours decimal.Decimal `json:"totalHours"`
	SiteHours  decimal.Decimal `json:"siteHours"`
}

// NT returns the summed normal-time hours across all three segments.
func (b HourBreakdown) NT() decimal.Decimal {
	return b.TravelInNT.Add(b.SiteNT).Add(b.TravelOutNT)
}

// OT returns the summed overtime hours across all three segments.
func (b HourBreakdown) OT() decimal.Decimal {
	return b.TravelInOT.Add(b.SiteOT).Add(b.TravelOutOT)
}

// CalculatedShift is the calculator output: full-precision cost plus
// the hour breakdown. Never persisted; recomputed on every read so it
// always reflects the current rates.
type CalculatedShift struct {
	Cost      decimal.Decimal `json:"cost"`
	Breakdown HourBreakdown   `json:"breakdown"`
}

// =============================================================================
// LINE ITEMS
// =============================================================================

// ExtraItem is an ad-hoc billable line on a quote.
type ExtraItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
}

// ExpenseItem is an internal, non-billed expense used only for margin
// reporting.
type ExpenseItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
}

// =============================================================================
// JOB DETAILS
// =============================================================================

// JobDetails carries the job-level facts entered alongside shifts.
type JobDetails struct {
	CustomerRef  string   `json:"customerRef"`
	JobNumber    string   `json:"jobNumber"`
	SiteLocation string   `json:"siteLocation"`
	Technicians  []string `json:"technicians"`
	ScopeOfWork  string   `json:"scopeOfWork"`

	// Hours of office reporting billed at the reporting rate.
	ReportingTime decimal.Decimal `json:"reportingTime"`

	// Whether the flat per-technician travel charge applies.
	ApplyTravelCharge bool `json:"applyTravelCharge"`

	// Admin and invoicing metadata.
	QuotedAmount        decimal.Decimal `json:"quotedAmount"`
	PurchaseOrderAmount decimal.Decimal `json:"purchaseOrderAmount"`
	VarianceReason      string          `json:"varianceReason"`
}

// =============================================================================
// QUOTE - Aggregate root
// =============================================================================

// Quote is the aggregate root of the quoting engine.
type Quote struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Status Status `json:"status"`

	Rates    RateProfile   `json:"rates"`
	Details  JobDetails    `json:"details"`
	Shifts   []Shift       `json:"shifts"`
	Extras   []ExtraItem   `json:"extras"`
	Expenses []ExpenseItem `json:"expenses,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// =============================================================================
// CUSTOMER - Directory record with its own rates
// =============================================================================

// Contact is a named contact on a customer record.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Customer carries a customer's own RateProfile. The lock flag is
// advisory UI state (confirmation gating), not hard write protection.
type Customer struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Rates    RateProfile `json:"rates"`
	Contacts []Contact   `json:"contacts,omitempty"`
	Notes    string      `json:"notes,omitempty"`

	Locked   bool       `json:"locked"`
	LockedAt *time.Time `json:"lockedAt,omitempty"`
}

// =============================================================================
// DECIMAL HELPERS
// =============================================================================

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// MustDecimal parses s as a decimal, returning zero on malformed
// input. Permissive by policy: downstream consumers treat missing
// rates as zero cost.
func MustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
