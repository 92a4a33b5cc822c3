/*
errors.go - Centralized error types for the quoting engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers (API, stores) wrap these errors with additional context.

ERROR CATEGORIES:
  1. Lifecycle errors - Illegal status transitions
  2. Lookup errors    - Missing quotes/customers
  3. Lock policy      - Mutation while locked is NOT an error; mutators
                        are silent no-ops and nothing here reports it.

USAGE:
  if errors.Is(err, quoting.ErrInvalidTransition) {
      // 409 to the client
  }
*/
package quoting

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidTransition is returned when a status change is not in
	// the transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCustomerRequired is returned when quoting without a customer
	// reference on the job details.
	ErrCustomerRequired = errors.New("customer required to quote")

	// ErrQuoteNotFound is returned when a referenced quote doesn't exist.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrCustomerNotFound is returned when a referenced customer doesn't exist.
	ErrCustomerNotFound = errors.New("customer not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// TransitionError reports a rejected lifecycle transition with a
// user-facing reason. State is never changed on rejection. Err holds
// the sentinel the rejection unwraps to, set at construction.
type TransitionError struct {
	From   Status
	To     Status
	Reason string
	Err    error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move quote from %s to %s: %s", e.From, e.To, e.Reason)
}

func (e *TransitionError) Unwrap() error { return e.Err }

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrCustomerRequired)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrQuoteNotFound) ||
		errors.Is(err, ErrCustomerNotFound)
}
