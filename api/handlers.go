/*
handlers.go - HTTP API handlers for the quoting engine

PURPOSE:
  Exposes the quoting engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

REQUEST FLOW:
  1. Parse HTTP request
  2. Load the aggregate from the store
  3. Call domain logic (mutators, lifecycle, aggregator)
  4. Persist and serialize the response
  5. Handle errors

LOCKED QUOTES:
  Mutation endpoints on a locked quote return the quote unchanged with
  200: the core's mutators are silent no-ops by policy, and the
  response body lets the client see that nothing moved. Lifecycle
  rejections, by contrast, come back as 409 with a reason.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Record not found
  - 409: Rejected lifecycle transition
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/backup"
	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/quoting"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store quoting.Store
}

// NewHandler creates a new handler with the given store.
func NewHandler(store quoting.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// QUOTE HANDLERS
// =============================================================================

// ListQuotes returns all quotes with derived lock flags and totals.
// GET /api/quotes
func (h *Handler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Store.ListQuotes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list quotes", err)
		return
	}

	resp := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		resp[i] = toQuoteResponse(&quotes[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateQuote creates a fresh draft with the next sequential number,
// inheriting the global defaults or the selected customer's rates.
// POST /api/quotes
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	ctx := r.Context()
	existing, err := h.Store.ListQuotes(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list quotes", err)
		return
	}
	numbers := make([]string, len(existing))
	for i, q := range existing {
		numbers[i] = q.Number
	}

	defaults, err := h.Store.DefaultRates(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load default rates", err)
		return
	}

	quote := quoting.NewQuote(quoting.NextQuoteNumber(numbers), defaults, time.Now())

	if req.CustomerID != "" {
		customer, err := h.Store.GetCustomer(ctx, req.CustomerID)
		if err != nil {
			writeError(w, http.StatusNotFound, "Customer not found", err)
			return
		}
		quote.ApplyCustomer(customer)
	}

	if err := h.Store.SaveQuote(ctx, *quote); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save quote", err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuoteResponse(quote))
}

// GetQuote returns a single quote.
// GET /api/quotes/{id}
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toQuoteResponse(quote))
}

// DeleteQuote removes a quote from the collection. Explicit user
// action only; there is no soft delete here (archiving is a status).
// DELETE /api/quotes/{id}
func (h *Handler) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Store.DeleteQuote(r.Context(), id); err != nil {
		if quoting.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Quote not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete quote", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTotals returns the aggregated totals for a quote.
// GET /api/quotes/{id}/totals
func (h *Handler) GetTotals(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, quote.Totals())
}

// ChangeStatus runs a lifecycle transition.
// POST /api/quotes/{id}/status
func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := quote.Transition(req.To); err != nil {
		writeError(w, http.StatusConflict, "Transition rejected", err)
		return
	}

	h.saveAndRespond(w, r, quote)
}

// UpdateDetails patches the job details.
// PUT /api/quotes/{id}/details
func (h *Handler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}

	var req JobDetailsPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	quote.UpdateDetails(quoting.JobDetailsPatch{
		CustomerRef:         req.CustomerRef,
		JobNumber:           req.JobNumber,
		SiteLocation:        req.SiteLocation,
		Technicians:         req.Technicians,
		ScopeOfWork:         req.ScopeOfWork,
		ReportingTime:       req.ReportingTime,
		ApplyTravelCharge:   req.ApplyTravelCharge,
		QuotedAmount:        req.QuotedAmount,
		PurchaseOrderAmount: req.PurchaseOrderAmount,
		VarianceReason:      req.VarianceReason,
	})
	h.saveAndRespond(w, r, quote)
}

// UpdateRates replaces the quote's rate snapshot.
// PUT /api/quotes/{id}/rates
func (h *Handler) UpdateRates(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}

	var rates quoting.RateProfile
	if err := json.NewDecoder(r.Body).Decode(&rates); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	quote.SetRates(rates)
	h.saveAndRespond(w, r, quote)
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

// AddShift appends a shift to a quote.
// POST /api/quotes/{id}/shifts
func (h *Handler) AddShift(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}

	var req ShiftRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	shift := quoting.NewShift(date)
	if req.DayType != nil {
		shift.DayType = *req.DayType
	}
	shift.Start = req.Start
	shift.Finish = req.Finish
	shift.TravelIn = req.TravelIn
	shift.TravelOut = req.TravelOut
	shift.IsNightShift = req.IsNightShift
	shift.VehicleUsed = req.VehicleUsed
	shift.PerDiemClaim = req.PerDiemClaim

	quote.AddShift(shift)
	h.saveAndRespond(w, r, quote)
}

// UpdateShift patches one shift.
// PUT /api/quotes/{id}/shifts/{sid}
func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}

	var req ShiftPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	quote.UpdateShift(chi.URLParam(r, "sid"), quoting.ShiftPatch{
		Date:         req.Date,
		DayType:      req.DayType,
		Start:        req.Start,
		Finish:       req.Finish,
		TravelIn:     req.TravelIn,
		TravelOut:    req.TravelOut,
		IsNightShift: req.IsNightShift,
		VehicleUsed:  req.VehicleUsed,
		PerDiemClaim: req.PerDiemClaim,
	})
	h.saveAndRespond(w, r, quote)
}

// RemoveShift deletes one shift.
// DELETE /api/quotes/{id}/shifts/{sid}
func (h *Handler) RemoveShift(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}
	quote.RemoveShift(chi.URLParam(r, "sid"))
	h.saveAndRespond(w, r, quote)
}

// =============================================================================
// EXTRA AND EXPENSE HANDLERS
// =============================================================================

// AddExtra appends a billable extra line.
// POST /api/quotes/{id}/extras
func (h *Handler) AddExtra(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}

	var req LineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	quote.AddExtra(req.Description, req.Cost)
	h.saveAndRespond(w, r, quote)
}

// RemoveExtra deletes a billable extra line.
// DELETE /api/quotes/{id}/extras/{xid}
func (h *Handler) RemoveExtra(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}
	quote.RemoveExtra(chi.URLParam(r, "xid"))
	h.saveAndRespond(w, r, quote)
}

// AddExpense appends an internal expense line.
// POST /api/quotes/{id}/expenses
func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}

	var req LineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	quote.AddExpense(req.Description, req.Cost)
	h.saveAndRespond(w, r, quote)
}

// RemoveExpense deletes an internal expense line.
// DELETE /api/quotes/{id}/expenses/{eid}
func (h *Handler) RemoveExpense(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.loadQuote(w, r)
	if !ok {
		return
	}
	quote.RemoveExpense(chi.URLParam(r, "eid"))
	h.saveAndRespond(w, r, quote)
}

// =============================================================================
// CUSTOMER HANDLERS
// =============================================================================

// ListCustomers returns the customer directory.
// GET /api/customers
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Store.ListCustomers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list customers", err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// CreateCustomer adds a customer. Rates default to the globals when
// not supplied.
// POST /api/customers
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Customer name is required", nil)
		return
	}

	rates := req.Rates
	if rates == nil {
		defaults, err := h.Store.DefaultRates(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load default rates", err)
			return
		}
		rates = &defaults
	}

	customer := quoting.Customer{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Rates:    *rates,
		Contacts: req.Contacts,
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if err := h.Store.SaveCustomer(r.Context(), customer); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save customer", err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

// GetCustomer returns one customer.
// GET /api/customers/{id}
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Store.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if quoting.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Customer not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get customer", err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// UpdateCustomer replaces a customer's editable fields.
// PUT /api/customers/{id}
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Store.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if quoting.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Customer not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get customer", err)
		return
	}

	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Rates != nil {
		customer.Rates = *req.Rates
	}
	if req.Contacts != nil {
		customer.Contacts = req.Contacts
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := h.Store.SaveCustomer(r.Context(), *customer); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save customer", err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// DeleteCustomer removes a customer from the directory.
// DELETE /api/customers/{id}
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		if quoting.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Customer not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete customer", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LockCustomer sets or clears the advisory rate lock.
// POST /api/customers/{id}/lock
func (h *Handler) LockCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Store.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if quoting.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Customer not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get customer", err)
		return
	}

	var req LockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Locked {
		customer.Lock(time.Now())
	} else {
		customer.Unlock()
	}

	if err := h.Store.SaveCustomer(r.Context(), *customer); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save customer", err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// =============================================================================
// SETTINGS HANDLERS
// =============================================================================

// GetDefaultRates returns the global default rate profile.
// GET /api/rates/defaults
func (h *Handler) GetDefaultRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.Store.DefaultRates(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load default rates", err)
		return
	}
	writeJSON(w, http.StatusOK, rates)
}

// SaveDefaultRates replaces the global default rate profile.
// PUT /api/rates/defaults
func (h *Handler) SaveDefaultRates(w http.ResponseWriter, r *http.Request) {
	var rates quoting.RateProfile
	if err := json.NewDecoder(r.Body).Decode(&rates); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.Store.SaveDefaultRates(r.Context(), rates); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save default rates", err)
		return
	}
	writeJSON(w, http.StatusOK, rates)
}

// GetTechnicians returns the technician directory.
// GET /api/technicians
func (h *Handler) GetTechnicians(w http.ResponseWriter, r *http.Request) {
	technicians, err := h.Store.Technicians(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load technicians", err)
		return
	}
	if technicians == nil {
		technicians = []string{}
	}
	writeJSON(w, http.StatusOK, technicians)
}

// SaveTechnicians replaces the technician directory.
// PUT /api/technicians
func (h *Handler) SaveTechnicians(w http.ResponseWriter, r *http.Request) {
	var req TechniciansRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.Store.SaveTechnicians(r.Context(), req.Technicians); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save technicians", err)
		return
	}
	writeJSON(w, http.StatusOK, req.Technicians)
}

// =============================================================================
// BACKUP HANDLERS
// =============================================================================

// ExportBackup returns the full dataset as a backup document.
// GET /api/backup/export
func (h *Handler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	doc, err := backup.Export(r.Context(), h.Store, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export backup", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// ImportBackup applies a backup document section by section and
// reports what was restored. Corrupt JSON applies nothing.
// POST /api/backup/import
func (h *Handler) ImportBackup(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	doc, err := backup.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Corrupt backup document", err)
		return
	}

	report := backup.Import(r.Context(), h.Store, doc)
	writeJSON(w, http.StatusOK, report)
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) loadQuote(w http.ResponseWriter, r *http.Request) (*quoting.Quote, bool) {
	quote, err := h.Store.GetQuote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if quoting.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Quote not found", err)
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, "Failed to get quote", err)
		return nil, false
	}
	return quote, true
}

func (h *Handler) saveAndRespond(w http.ResponseWriter, r *http.Request, q *quoting.Quote) {
	if err := h.Store.SaveQuote(r.Context(), *q); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save quote", err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteResponse(q))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
