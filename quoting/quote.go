/*
quote.go - Quote construction and mutation

PURPOSE:
  All in-memory mutation of a quote goes through the typed operations
  in this file. Each operation enforces the lock discipline itself:
  while the quote is locked (quoted or closed), every mutator returns
  without effect. Callers are expected to disable their affordances,
  but the core never relies on that.

PATCHES:
  One-field-at-a-time update ergonomics are kept, but with typed patch
  structs (nil pointer = leave field alone) instead of string-keyed
  setters.

SEE ALSO:
  - lifecycle.go: Status machine and lock derivation
  - numbering.go: Sequential quote numbers
*/
package quoting

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewQuote creates a fresh draft quote with the given sequential
// number, inheriting the supplied default rates and seeded with one
// default shift for today.
func NewQuote(number string, defaults RateProfile, now time.Time) *Quote {
	return &Quote{
		ID:     uuid.NewString(),
		Number: number,
		Status: StatusDraft,
		Rates:  defaults,
		Details: JobDetails{
			Technicians: []string{},
		},
		Shifts:    []Shift{NewShift(now)},
		Extras:    []ExtraItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewShift returns a default shift for the given date, classified by
// the calendar.
func NewShift(date time.Time) Shift {
	return Shift{
		ID:      uuid.NewString(),
		Date:    date,
		DayType: DayTypeFor(date),
	}
}

// =============================================================================
// SHIFT OPERATIONS
// =============================================================================

// ShiftPatch updates individual shift fields. Nil pointers leave the
// field untouched.
type ShiftPatch struct {
	Date         *time.Time
	DayType      *DayType
	Start        *string
	Finish       *string
	TravelIn     *decimal.Decimal
	TravelOut    *decimal.Decimal
	IsNightShift *bool
	VehicleUsed  *bool
	PerDiemClaim *bool
}

// AddShift appends a shift. No-op while locked.
func (q *Quote) AddShift(s Shift) {
	if q.IsLocked() {
		return
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	q.Shifts = append(q.Shifts, s)
	q.touch()
}

// UpdateShift applies a patch to the shift with the given ID. No-op
// while locked or when the shift does not exist.
func (q *Quote) UpdateShift(id string, p ShiftPatch) {
	if q.IsLocked() {
		return
	}
	for i := range q.Shifts {
		if q.Shifts[i].ID != id {
			continue
		}
		s := &q.Shifts[i]
		if p.Date != nil {
			s.Date = *p.Date
		}
		if p.DayType != nil {
			s.DayType = *p.DayType
		}
		if p.Start != nil {
			s.Start = *p.Start
		}
		if p.Finish != nil {
			s.Finish = *p.Finish
		}
		if p.TravelIn != nil {
			s.TravelIn = *p.TravelIn
		}
		if p.TravelOut != nil {
			s.TravelOut = *p.TravelOut
		}
		if p.IsNightShift != nil {
			s.IsNightShift = *p.IsNightShift
		}
		if p.VehicleUsed != nil {
			s.VehicleUsed = *p.VehicleUsed
		}
		if p.PerDiemClaim != nil {
			s.PerDiemClaim = *p.PerDiemClaim
		}
		q.touch()
		return
	}
}

// RemoveShift deletes the shift with the given ID. No-op while locked.
func (q *Quote) RemoveShift(id string) {
	if q.IsLocked() {
		return
	}
	for i := range q.Shifts {
		if q.Shifts[i].ID == id {
			q.Shifts = append(q.Shifts[:i], q.Shifts[i+1:]...)
			q.touch()
			return
		}
	}
}

// =============================================================================
// EXTRA AND EXPENSE OPERATIONS
// =============================================================================

// AddExtra appends an ad-hoc billable line. No-op while locked.
func (q *Quote) AddExtra(description string, cost decimal.Decimal) {
	if q.IsLocked() {
		return
	}
	q.Extras = append(q.Extras, ExtraItem{
		ID:          uuid.NewString(),
		Description: description,
		Cost:        cost,
	})
	q.touch()
}

// RemoveExtra deletes the extra with the given ID. No-op while locked.
func (q *Quote) RemoveExtra(id string) {
	if q.IsLocked() {
		return
	}
	for i := range q.Extras {
		if q.Extras[i].ID == id {
			q.Extras = append(q.Extras[:i], q.Extras[i+1:]...)
			q.touch()
			return
		}
	}
}

// AddExpense appends an internal, non-billed expense line. No-op while
// locked.
func (q *Quote) AddExpense(description string, cost decimal.Decimal) {
	if q.IsLocked() {
		return
	}
	q.Expenses = append(q.Expenses, ExpenseItem{
		ID:          uuid.NewString(),
		Description: description,
		Cost:        cost,
	})
	q.touch()
}

// RemoveExpense deletes the expense with the given ID. No-op while
// locked.
func (q *Quote) RemoveExpense(id string) {
	if q.IsLocked() {
		return
	}
	for i := range q.Expenses {
		if q.Expenses[i].ID == id {
			q.Expenses = append(q.Expenses[:i], q.Expenses[i+1:]...)
			q.touch()
			return
		}
	}
}

// =============================================================================
// JOB DETAIL AND RATE OPERATIONS
// =============================================================================

// JobDetailsPatch updates individual job detail fields.
type JobDetailsPatch struct {
	CustomerRef         *string
	JobNumber           *string
	SiteLocation        *string
	Technicians         *[]string
	ScopeOfWork         *string
	ReportingTime       *decimal.Decimal
	ApplyTravelCharge   *bool
	QuotedAmount        *decimal.Decimal
	PurchaseOrderAmount *decimal.Decimal
	VarianceReason      *string
}

// UpdateDetails applies a patch to the job details. No-op while locked.
func (q *Quote) UpdateDetails(p JobDetailsPatch) {
	if q.IsLocked() {
		return
	}
	d := &q.Details
	if p.CustomerRef != nil {
		d.CustomerRef = *p.CustomerRef
	}
	if p.JobNumber != nil {
		d.JobNumber = *p.JobNumber
	}
	if p.SiteLocation != nil {
		d.SiteLocation = *p.SiteLocation
	}
	if p.Technicians != nil {
		d.Technicians = *p.Technicians
	}
	if p.ScopeOfWork != nil {
		d.ScopeOfWork = *p.ScopeOfWork
	}
	if p.ReportingTime != nil {
		d.ReportingTime = *p.ReportingTime
	}
	if p.ApplyTravelCharge != nil {
		d.ApplyTravelCharge = *p.ApplyTravelCharge
	}
	if p.QuotedAmount != nil {
		d.QuotedAmount = *p.QuotedAmount
	}
	if p.PurchaseOrderAmount != nil {
		d.PurchaseOrderAmount = *p.PurchaseOrderAmount
	}
	if p.VarianceReason != nil {
		d.VarianceReason = *p.VarianceReason
	}
	q.touch()
}

// SetRates replaces the quote's rate snapshot. Editing rates on an
// active quote affects only this quote; it never flows back to the
// customer's profile. No-op while locked.
func (q *Quote) SetRates(r RateProfile) {
	if q.IsLocked() {
		return
	}
	q.Rates = r
	q.touch()
}

func (q *Quote) touch() { q.UpdatedAt = time.Now() }
