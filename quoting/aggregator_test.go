package quoting_test

import (
	"testing"

	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/quoting"
)

func TestAggregator_WorkedExample(t *testing.T) {
	// GIVEN: Two weekday shifts worth 2055 each, one 500 extra, 1h
	//        reporting at 160, travel charge for 2 technicians at 50
	// THEN: totalCost = 2*2055 + 500 + 160 + 100 = 4870

	rates := testRates()
	rates.OfficeReporting = d(160)
	rates.TravelChargeExBrisbane = d(50)

	shiftA := dayShift(quoting.DayWeekday)
	shiftB := dayShift(quoting.DayWeekday)
	shiftB.ID = "shift-2"

	extras := []quoting.ExtraItem{{ID: "x1", Description: "Crane hire", Cost: d(500)}}
	details := quoting.JobDetails{
		Technicians:       []string{"A. Wilson", "B. Chen"},
		ReportingTime:     d(1),
		ApplyTravelCharge: true,
	}

	totals := quoting.AggregateQuote([]quoting.Shift{shiftA, shiftB}, extras, nil, rates, details)

	assertDec(t, "shiftsCost", totals.ShiftsCost, d(4110))
	assertDec(t, "extrasCost", totals.ExtrasCost, d(500))
	assertDec(t, "reportingCost", totals.ReportingCost, d(160))
	assertDec(t, "travelChargeCost", totals.TravelChargeCost, d(100))
	assertDec(t, "totalCost", totals.TotalCost, d(4870))
	assertDec(t, "totalNTHours", totals.TotalNTHours, d(15))
	assertDec(t, "totalOTHours", totals.TotalOTHours, d(9))
	assertDec(t, "totalHours", totals.TotalHours, d(24))
}

func TestAggregator_OrderIndependent(t *testing.T) {
	// Pure reduction: shift order never affects totals.

	rates := testRates()
	night := dayShift(quoting.DayWeekday)
	night.IsNightShift = true
	weekend := dayShift(quoting.DayWeekend)
	weekday := dayShift(quoting.DayWeekday)

	forward := quoting.AggregateQuote([]quoting.Shift{weekday, night, weekend}, nil, nil, rates, quoting.JobDetails{})
	reverse := quoting.AggregateQuote([]quoting.Shift{weekend, night, weekday}, nil, nil, rates, quoting.JobDetails{})

	assertDec(t, "totalCost", reverse.TotalCost, forward.TotalCost)
	assertDec(t, "totalNTHours", reverse.TotalNTHours, forward.TotalNTHours)
	assertDec(t, "totalOTHours", reverse.TotalOTHours, forward.TotalOTHours)
}

func TestAggregator_TravelChargeIsPerJobNotPerShift(t *testing.T) {
	// The travel charge applies once per technician regardless of how
	// many shifts the job has.

	rates := testRates()
	details := quoting.JobDetails{
		Technicians:       []string{"A. Wilson", "B. Chen", "C. Patel"},
		ApplyTravelCharge: true,
	}

	one := quoting.AggregateQuote([]quoting.Shift{dayShift(quoting.DayWeekday)}, nil, nil, rates, details)
	five := quoting.AggregateQuote([]quoting.Shift{
		dayShift(quoting.DayWeekday), dayShift(quoting.DayWeekday), dayShift(quoting.DayWeekday),
		dayShift(quoting.DayWeekday), dayShift(quoting.DayWeekday),
	}, nil, nil, rates, details)

	assertDec(t, "one shift", one.TravelChargeCost, d(150))
	assertDec(t, "five shifts", five.TravelChargeCost, d(150))
}

func TestAggregator_TravelChargeGatedByFlag(t *testing.T) {
	rates := testRates()
	details := quoting.JobDetails{Technicians: []string{"A. Wilson"}}

	totals := quoting.AggregateQuote(nil, nil, nil, rates, details)
	assertDec(t, "travelChargeCost", totals.TravelChargeCost, d(0))
}

func TestAggregator_MarginUsesInternalCostOnly(t *testing.T) {
	// GIVEN: Cost of labour 85/h, one 12h shift, one internal expense
	// THEN: InternalCost = 12*85 + 40; margin = billed - internal;
	//       the internal expense never appears in TotalCost

	rates := testRates()
	rates.CostOfLabour = d(85)

	expenses := []quoting.ExpenseItem{{ID: "e1", Description: "Consumables", Cost: d(40)}}
	totals := quoting.AggregateQuote([]quoting.Shift{dayShift(quoting.DayWeekday)}, nil, expenses, rates, quoting.JobDetails{})

	assertDec(t, "internalCost", totals.InternalCost, d(1060))
	assertDec(t, "totalCost", totals.TotalCost, d(2055))
	assertDec(t, "margin", totals.Margin, d(995))
}
