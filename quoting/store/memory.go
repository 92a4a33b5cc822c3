// Package store provides in-memory Store implementations for
// testing and development.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/quoting"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu           sync.RWMutex
	quotes       map[string]quoting.Quote
	customers    map[string]quoting.Customer
	defaultRates *quoting.RateProfile
	technicians  []string
}

var _ quoting.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		quotes:    make(map[string]quoting.Quote),
		customers: make(map[string]quoting.Customer),
	}
}

// -----------------------------------------------------------------------------
// QuoteStore
// -----------------------------------------------------------------------------

func (m *Memory) SaveQuote(_ context.Context, q quoting.Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes[q.ID] = q
	return nil
}

func (m *Memory) GetQuote(_ context.Context, id string) (*quoting.Quote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quotes[id]
	if !ok {
		return nil, quoting.ErrQuoteNotFound
	}
	return &q, nil
}

func (m *Memory) ListQuotes(_ context.Context) ([]quoting.Quote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	quotes := make([]quoting.Quote, 0, len(m.quotes))
	for _, q := range m.quotes {
		quotes = append(quotes, q)
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Number < quotes[j].Number })
	return quotes, nil
}

func (m *Memory) DeleteQuote(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.quotes[id]; !ok {
		return quoting.ErrQuoteNotFound
	}
	delete(m.quotes, id)
	return nil
}

// -----------------------------------------------------------------------------
// CustomerStore
// -----------------------------------------------------------------------------

func (m *Memory) SaveCustomer(_ context.Context, c quoting.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.ID] = c
	return nil
}

func (m *Memory) GetCustomer(_ context.Context, id string) (*quoting.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, quoting.ErrCustomerNotFound
	}
	return &c, nil
}

func (m *Memory) ListCustomers(_ context.Context) ([]quoting.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	customers := make([]quoting.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Name < customers[j].Name })
	return customers, nil
}

func (m *Memory) DeleteCustomer(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return quoting.ErrCustomerNotFound
	}
	delete(m.customers, id)
	return nil
}

// -----------------------------------------------------------------------------
// SettingsStore
// -----------------------------------------------------------------------------

func (m *Memory) DefaultRates(_ context.Context) (quoting.RateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.defaultRates == nil {
		return quoting.DefaultRateProfile(), nil
	}
	return *m.defaultRates, nil
}

func (m *Memory) SaveDefaultRates(_ context.Context, r quoting.RateProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRates = &r
	return nil
}

func (m *Memory) Technicians(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, len(m.technicians))
	copy(names, m.technicians)
	return names, nil
}

func (m *Memory) SaveTechnicians(_ context.Context, names []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.technicians = make([]string, len(names))
	copy(m.technicians, names)
	return nil
}
