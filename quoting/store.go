/*
store.go - Persistence interfaces for quotes, customers, and settings

PURPOSE:
  Defines the interface between the quoting core and storage. The core
  depends only on these interfaces, never on a concrete ambient store;
  computation always completes before any persistence call is made.

IMPLEMENTATIONS:
  - store/sqlite: Production SQLite
  - quoting/store: In-memory for testing/dev
*/
package quoting

import "context"

// QuoteStore persists quotes. Delete is a hard removal from the
// collection, only ever triggered by explicit user action.
type QuoteStore interface {
	SaveQuote(ctx context.Context, q Quote) error
	GetQuote(ctx context.Context, id string) (*Quote, error)
	ListQuotes(ctx context.Context) ([]Quote, error)
	DeleteQuote(ctx context.Context, id string) error
}

// CustomerStore persists the customer directory.
type CustomerStore interface {
	SaveCustomer(ctx context.Context, c Customer) error
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	ListCustomers(ctx context.Context) ([]Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// SettingsStore persists the global default rates and the technician
// directory.
type SettingsStore interface {
	DefaultRates(ctx context.Context) (RateProfile, error)
	SaveDefaultRates(ctx context.Context, r RateProfile) error
	Technicians(ctx context.Context) ([]string, error)
	SaveTechnicians(ctx context.Context, names []string) error
}

// Store bundles all persistence capabilities of the system.
type Store interface {
	QuoteStore
	CustomerStore
	SettingsStore
}
