package quoting

import (
	"fmt"
	"strconv"
	"strings"
)

// NextQuoteNumber computes the next sequential quote number from the
// numbers already in use: max + 1, zero-padded to four digits,
// starting at "0001". Non-numeric numbers are skipped, and gaps are
// never re-filled.
func NextQuoteNumber(existing []string) string {
	max := 0
	for _, s := range existing {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%04d", max+1)
}
