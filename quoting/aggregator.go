/*
aggregator.go - Job-level cost and hour totals

PURPOSE:
  Reduces every shift's calculated breakdown, the flat extras, the
  reporting time, and the per-technician travel charge into one set of
  job totals. Pure reduction: shift order never affects the result,
  and there is no cache to invalidate - totals are recomputed from
  current inputs on every call.

MARGIN:
  Internal cost = hours worked x cost-of-labour rate + internal
  expense items. Margin figures are reporting-only and never appear on
  the billed total.

SEE ALSO:
  - calculator.go: Per-shift decomposition
  - types.go: Quote, JobDetails, ExtraItem, ExpenseItem
*/
package quoting

import "github.com/shopspring/decimal"

// QuoteTotals is the aggregated output for one job.
type QuoteTotals struct {
	TotalCost decimal.Decimal `json:"totalCost"`

	TotalNTHours decimal.Decimal `json:"totalNTHours"`
	TotalOTHours decimal.Decimal `json:"totalOTHours"`
	TotalHours   decimal.Decimal `json:"totalHours"`

	ShiftsCost       decimal.Decimal `json:"shiftsCost"`
	ExtrasCost       decimal.Decimal `json:"extrasCost"`
	ReportingCost    decimal.Decimal `json:"reportingCost"`
	TravelChargeCost decimal.Decimal `json:"travelChargeCost"`

	// Margin reporting. InternalCost is never billed.
	InternalCost decimal.Decimal `json:"internalCost"`
	Margin       decimal.Decimal `json:"margin"`
}

// AggregateQuote computes job totals from the full shift list, extras,
// rates, and job details.
//
// The travel charge is a job-level fee applied once per technician
// regardless of shift count. Reporting time bills at the office
// reporting rate. NT/OT totals collapse the travel-in/site/travel-out
// distinction across all shifts.
func AggregateQuote(shifts []Shift, extras []ExtraItem, expenses []ExpenseItem, rates RateProfile, details JobDetails) QuoteTotals {
	var t QuoteTotals

	for _, s := range shifts {
		calc := CalculateShiftBreakdown(s, rates)
		t.ShiftsCost = t.ShiftsCost.Add(calc.Cost)
		t.TotalNTHours = t.TotalNTHours.Add(calc.Breakdown.NT())
		t.TotalOTHours = t.TotalOTHours.Add(calc.Breakdown.OT())
		t.TotalHours = t.TotalHours.Add(calc.Breakdown.TotalHours)
		t.InternalCost = t.InternalCost.Add(calc.Breakdown.TotalHours.Mul(rates.CostOfLabour))
	}

	for _, x := range extras {
		t.ExtrasCost = t.ExtrasCost.Add(x.Cost)
	}
	for _, e := range expenses {
		t.InternalCost = t.InternalCost.Add(e.Cost)
	}

	t.ReportingCost = details.ReportingTime.Mul(rates.OfficeReporting)

	if details.ApplyTravelCharge {
		techs := decimal.NewFromInt(int64(len(details.Technicians)))
		t.TravelChargeCost = rates.TravelChargeExBrisbane.Mul(techs)
	}

	t.TotalCost = t.ShiftsCost.Add(t.ExtrasCost).Add(t.ReportingCost).Add(t.TravelChargeCost)
	t.Margin = t.TotalCost.Sub(t.InternalCost)
	return t
}

// Totals computes the quote's aggregated totals from its current
// shifts, extras, rates, and details.
func (q *Quote) Totals() QuoteTotals {
	return AggregateQuote(q.Shifts, q.Extras, q.Expenses, q.Rates, q.Details)
}

// RoundCents rounds a full-precision amount to cents for display.
func RoundCents(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
