/*
rates.go - Rate profile resolution

PURPOSE:
  Decides which RateProfile a quote starts from. A fresh quote inherits
  the current global defaults; selecting a customer applies that
  customer's own profile. Either way the quote takes a snapshot by
  value - later edits to a customer's profile never retroactively
  change quotes already created from it.
*/
package quoting

import "time"

// ResolveRates returns the rate snapshot for a quote: the customer's
// own profile when one is set, otherwise the global defaults.
func ResolveRates(c *Customer, defaults RateProfile) RateProfile {
	if c != nil {
		return c.Rates
	}
	return defaults
}

// ApplyCustomer sets the customer reference on the job details and
// snapshots the customer's rate profile onto the quote. No-op while
// locked.
func (q *Quote) ApplyCustomer(c *Customer) {
	if q.IsLocked() || c == nil {
		return
	}
	q.Details.CustomerRef = c.Name
	q.Rates = c.Rates
	q.touch()
}

// Lock fixes the customer's rate profile, recording when. Advisory:
// confirmation gating in the UI, not hard write protection.
func (c *Customer) Lock(at time.Time) {
	c.Locked = true
	c.LockedAt = &at
}

// Unlock clears the customer's rate lock.
func (c *Customer) Unlock() {
	c.Locked = false
	c.LockedAt = nil
}
