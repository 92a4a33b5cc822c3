/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Quote, Customer,
  and totals responses reuse the domain types directly (they carry
  JSON tags); this file holds the request shapes, which use pointer
  fields so that an omitted field means "leave it alone".

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *Response: Response wrappers where the domain type isn't enough

VALIDATION:
  Validation is done in handlers, not in DTOs. Numeric fields decode
  through decimal.Decimal, which accepts JSON numbers and strings;
  missing values stay zero per the permissive input policy.
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/quoting"
)

// CreateQuoteRequest creates a new draft quote. CustomerID optionally
// applies that customer's rates from the start.
type CreateQuoteRequest struct {
	CustomerID string `json:"customerId,omitempty"`
}

// ShiftRequest adds a shift to a quote. Omitted fields default.
type ShiftRequest struct {
	Date         *time.Time       `json:"date,omitempty"`
	DayType      *quoting.DayType `json:"dayType,omitempty"`
	Start        string           `json:"start"`
	Finish       string           `json:"finish"`
	TravelIn     decimal.Decimal  `json:"travelIn"`
	TravelOut    decimal.Decimal  `json:"travelOut"`
	IsNightShift bool             `json:"isNightShift"`
	VehicleUsed  bool             `json:"vehicleUsed"`
	PerDiemClaim bool             `json:"perDiemClaim"`
}

// ShiftPatchRequest updates individual shift fields; nil leaves a
// field untouched.
type ShiftPatchRequest struct {
	Date         *time.Time       `json:"date,omitempty"`
	DayType      *quoting.DayType `json:"dayType,omitempty"`
	Start        *string          `json:"start,omitempty"`
	Finish       *string          `json:"finish,omitempty"`
	TravelIn     *decimal.Decimal `json:"travelIn,omitempty"`
	TravelOut    *decimal.Decimal `json:"travelOut,omitempty"`
	IsNightShift *bool            `json:"isNightShift,omitempty"`
	VehicleUsed  *bool            `json:"vehicleUsed,omitempty"`
	PerDiemClaim *bool            `json:"perDiemClaim,omitempty"`
}

// LineItemRequest adds an extra or expense line.
type LineItemRequest struct {
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
}

// JobDetailsPatchRequest updates individual job detail fields.
type JobDetailsPatchRequest struct {
	CustomerRef         *string          `json:"customerRef,omitempty"`
	JobNumber           *string          `json:"jobNumber,omitempty"`
	SiteLocation        *string          `json:"siteLocation,omitempty"`
	Technicians         *[]string        `json:"technicians,omitempty"`
	ScopeOfWork         *string          `json:"scopeOfWork,omitempty"`
	ReportingTime       *decimal.Decimal `json:"reportingTime,omitempty"`
	ApplyTravelCharge   *bool            `json:"applyTravelCharge,omitempty"`
	QuotedAmount        *decimal.Decimal `json:"quotedAmount,omitempty"`
	PurchaseOrderAmount *decimal.Decimal `json:"purchaseOrderAmount,omitempty"`
	VarianceReason      *string          `json:"varianceReason,omitempty"`
}

// StatusRequest asks for a lifecycle transition.
type StatusRequest struct {
	To quoting.Status `json:"to"`
}

// CustomerRequest creates or updates a customer record. On update,
// omitted fields are left untouched.
type CustomerRequest struct {
	Name     string               `json:"name"`
	Rates    *quoting.RateProfile `json:"rates,omitempty"`
	Contacts []quoting.Contact    `json:"contacts,omitempty"`
	Notes    *string              `json:"notes,omitempty"`
}

// LockRequest locks or unlocks a customer's rate profile.
type LockRequest struct {
	Locked bool `json:"locked"`
}

// TechniciansRequest replaces the technician directory.
type TechniciansRequest struct {
	Technicians []string `json:"technicians"`
}

// QuoteResponse decorates a quote with its derived lock flag and
// totals, which are recomputed on every read.
type QuoteResponse struct {
	quoting.Quote
	IsLocked bool                `json:"isLocked"`
	Totals   quoting.QuoteTotals `json:"totals"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toQuoteResponse(q *quoting.Quote) QuoteResponse {
	return QuoteResponse{
		Quote:    *q,
		IsLocked: q.IsLocked(),
		Totals:   q.Totals(),
	}
}
