/*
Package backup exports and imports the full quoting dataset as a
single JSON document.

PURPOSE:
  The document is the contract with the external backup collaborator:
  savedQuotes, savedCustomers, savedDefaultRates, savedTechnicians,
  and an export timestamp. Import is tolerant per section - a missing
  or nil section leaves the existing data for that section untouched,
  and each section applies atomically: a failure partway through one
  section rolls back its already-applied entries, so the section is
  either fully imported or left exactly as it was.

ERROR MODEL:
  Parse returns an error for corrupt JSON; nothing is applied. Import
  reports per-section success on the Report so callers can show what
  was restored.
*/
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/quoting"
)

// Document is the persisted/export shape consumed by the external
// backup collaborator.
type Document struct {
	SavedQuotes       []quoting.Quote      `json:"savedQuotes,omitempty"`
	SavedCustomers    []quoting.Customer   `json:"savedCustomers,omitempty"`
	SavedDefaultRates *quoting.RateProfile `json:"savedDefaultRates,omitempty"`
	SavedTechnicians  []string             `json:"savedTechnicians,omitempty"`
	ExportedAt        time.Time            `json:"exportedAt"`
}

// Report records which sections an import applied.
type Report struct {
	Quotes       bool `json:"quotes"`
	Customers    bool `json:"customers"`
	DefaultRates bool `json:"defaultRates"`
	Technicians  bool `json:"technicians"`
}

// Export assembles the full dataset from the store.
func Export(ctx context.Context, store quoting.Store, now time.Time) (*Document, error) {
	quotes, err := store.ListQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("export quotes: %w", err)
	}
	customers, err := store.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("export customers: %w", err)
	}
	rates, err := store.DefaultRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("export default rates: %w", err)
	}
	technicians, err := store.Technicians(ctx)
	if err != nil {
		return nil, fmt.Errorf("export technicians: %w", err)
	}

	return &Document{
		SavedQuotes:       quotes,
		SavedCustomers:    customers,
		SavedDefaultRates: &rates,
		SavedTechnicians:  technicians,
		ExportedAt:        now,
	}, nil
}

// Parse decodes a backup document. Corrupt JSON is reported without
// touching any state.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse backup document: %w", err)
	}
	return &doc, nil
}

// Import applies the document to the store section by section. Nil
// sections are skipped, leaving existing data untouched. Each section
// either applies fully or is rolled back and reported as not applied;
// later sections still run.
func Import(ctx context.Context, store quoting.Store, doc *Document) Report {
	var report Report

	if doc.SavedQuotes != nil {
		report.Quotes = importQuotes(ctx, store, doc.SavedQuotes)
	}

	if doc.SavedCustomers != nil {
		report.Customers = importCustomers(ctx, store, doc.SavedCustomers)
	}

	if doc.SavedDefaultRates != nil {
		report.DefaultRates = store.SaveDefaultRates(ctx, *doc.SavedDefaultRates) == nil
	}

	if doc.SavedTechnicians != nil {
		report.Technicians = store.SaveTechnicians(ctx, doc.SavedTechnicians) == nil
	}

	return report
}

// importQuotes applies the quotes section atomically. Before each save
// the prior record is captured; on failure the applied entries are
// restored in reverse order (re-saving overwritten quotes, deleting
// ones that did not exist).
func importQuotes(ctx context.Context, store quoting.Store, incoming []quoting.Quote) bool {
	type applied struct {
		id       string
		previous *quoting.Quote
	}
	var done []applied

	rollback := func() {
		for i := len(done) - 1; i >= 0; i-- {
			if done[i].previous != nil {
				store.SaveQuote(ctx, *done[i].previous)
			} else {
				store.DeleteQuote(ctx, done[i].id)
			}
		}
	}

	for _, q := range incoming {
		previous, err := store.GetQuote(ctx, q.ID)
		if err != nil && !quoting.IsNotFound(err) {
			rollback()
			return false
		}
		if err := store.SaveQuote(ctx, q); err != nil {
			rollback()
			return false
		}
		done = append(done, applied{id: q.ID, previous: previous})
	}
	return true
}

// importCustomers applies the customers section atomically, with the
// same capture-and-restore rollback as importQuotes.
func importCustomers(ctx context.Context, store quoting.Store, incoming []quoting.Customer) bool {
	type applied struct {
		id       string
		previous *quoting.Customer
	}
	var done []applied

	rollback := func() {
		for i := len(done) - 1; i >= 0; i-- {
			if done[i].previous != nil {
				store.SaveCustomer(ctx, *done[i].previous)
			} else {
				store.DeleteCustomer(ctx, done[i].id)
			}
		}
	}

	for _, c := range incoming {
		previous, err := store.GetCustomer(ctx, c.ID)
		if err != nil && !quoting.IsNotFound(err) {
			rollback()
			return false
		}
		if err := store.SaveCustomer(ctx, c); err != nil {
			rollback()
			return false
		}
		done = append(done, applied{id: c.ID, previous: previous})
	}
	return true
}
