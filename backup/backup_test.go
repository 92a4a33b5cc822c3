package backup_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/backup"
	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/quoting"
	memstore "github.com/Coresick-au/Ai-MaintenanceApp-sub005/quoting/store"
)

func seededStore(t *testing.T) *memstore.Memory {
	t.Helper()
	ctx := context.Background()
	store := memstore.NewMemory()

	quote := quoting.NewQuote("0001", quoting.DefaultRateProfile(), time.Now())
	require.NoError(t, store.SaveQuote(ctx, *quote))
	require.NoError(t, store.SaveCustomer(ctx, quoting.Customer{ID: "cust-1", Name: "Acme Mining", Rates: quoting.DefaultRateProfile()}))
	require.NoError(t, store.SaveTechnicians(ctx, []string{"A. Wilson"}))
	return store
}

func TestBackup_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := seededStore(t)

	doc, err := backup.Export(ctx, source, time.Now())
	require.NoError(t, err)
	assert.Len(t, doc.SavedQuotes, 1)
	assert.Len(t, doc.SavedCustomers, 1)
	assert.NotNil(t, doc.SavedDefaultRates)

	target := memstore.NewMemory()
	report := backup.Import(ctx, target, doc)
	assert.True(t, report.Quotes)
	assert.True(t, report.Customers)
	assert.True(t, report.DefaultRates)
	assert.True(t, report.Technicians)

	quotes, err := target.ListQuotes(ctx)
	require.NoError(t, err)
	assert.Len(t, quotes, 1)
	assert.Equal(t, "0001", quotes[0].Number)
}

func TestBackup_MissingSectionsLeaveStateUntouched(t *testing.T) {
	// GIVEN: A document with only technicians present
	// WHEN: Importing into a store that already has quotes
	// THEN: Quotes and customers are untouched; only technicians apply

	ctx := context.Background()
	store := seededStore(t)

	doc, err := backup.Parse([]byte(`{"savedTechnicians":["B. Chen"],"exportedAt":"2026-03-09T08:00:00Z"}`))
	require.NoError(t, err)

	report := backup.Import(ctx, store, doc)
	assert.False(t, report.Quotes)
	assert.False(t, report.Customers)
	assert.False(t, report.DefaultRates)
	assert.True(t, report.Technicians)

	quotes, err := store.ListQuotes(ctx)
	require.NoError(t, err)
	assert.Len(t, quotes, 1, "existing quotes must survive a partial import")

	technicians, err := store.Technicians(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B. Chen"}, technicians)
}

// failingStore rejects saving one specific quote, simulating a store
// failure partway through the quotes section.
type failingStore struct {
	*memstore.Memory
	failID string
}

func (f *failingStore) SaveQuote(ctx context.Context, q quoting.Quote) error {
	if q.ID == f.failID {
		return errors.New("disk full")
	}
	return f.Memory.SaveQuote(ctx, q)
}

func TestBackup_FailedSectionRollsBack(t *testing.T) {
	// GIVEN: A two-quote document where the second quote fails to save
	// WHEN: Importing into an empty store
	// THEN: The quotes section is reported failed and left empty; the
	//       technicians section still applies

	ctx := context.Background()
	store := &failingStore{Memory: memstore.NewMemory(), failID: "q2"}

	good := quoting.NewQuote("0001", quoting.DefaultRateProfile(), time.Now())
	good.ID = "q1"
	bad := quoting.NewQuote("0002", quoting.DefaultRateProfile(), time.Now())
	bad.ID = "q2"

	doc := &backup.Document{
		SavedQuotes:      []quoting.Quote{*good, *bad},
		SavedTechnicians: []string{"A. Wilson"},
	}

	report := backup.Import(ctx, store, doc)
	assert.False(t, report.Quotes)
	assert.True(t, report.Technicians)

	quotes, err := store.ListQuotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, quotes, "a failed section must leave no partial state behind")
}

func TestBackup_FailedSectionRestoresOverwrittenQuotes(t *testing.T) {
	// GIVEN: A store that already holds q1; the import overwrites q1
	//        and then fails on q2
	// THEN: The original q1 is restored, not the imported version

	ctx := context.Background()
	store := &failingStore{Memory: memstore.NewMemory(), failID: "q2"}

	original := quoting.NewQuote("0001", quoting.DefaultRateProfile(), time.Now())
	original.ID = "q1"
	require.NoError(t, store.SaveQuote(ctx, *original))

	replacement := *original
	replacement.Number = "0005"
	bad := quoting.NewQuote("0002", quoting.DefaultRateProfile(), time.Now())
	bad.ID = "q2"

	report := backup.Import(ctx, store, &backup.Document{
		SavedQuotes: []quoting.Quote{replacement, *bad},
	})
	assert.False(t, report.Quotes)

	restored, err := store.GetQuote(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, "0001", restored.Number, "overwritten quote must be restored on rollback")
}

func TestBackup_CorruptDocumentRejectedWhole(t *testing.T) {
	_, err := backup.Parse([]byte(`{"savedQuotes": [{`))
	assert.Error(t, err)
}

func TestBackup_DecimalFieldsSurviveJSON(t *testing.T) {
	// Rates round-trip through the JSON document without losing
	// precision.

	ctx := context.Background()
	store := memstore.NewMemory()
	rates := quoting.DefaultRateProfile()
	rates.TravelPerKm = decimal.NewFromFloat(1.05)
	require.NoError(t, store.SaveDefaultRates(ctx, rates))

	doc, err := backup.Export(ctx, store, time.Now())
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	parsed, err := backup.Parse(raw)
	require.NoError(t, err)

	target := memstore.NewMemory()
	backup.Import(ctx, target, parsed)

	restored, err := target.DefaultRates(ctx)
	require.NoError(t, err)
	assert.True(t, restored.TravelPerKm.Equal(decimal.NewFromFloat(1.05)))
}
