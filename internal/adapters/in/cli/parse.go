package cli

import (
	"strconv"
	"strings"

	"foodorder/internal/pkg/errs"
)

// Pure input validation, decoupled from the prompt loops so it can be tested
// without simulating console input.

// ParseIndex parses a 1-based selection from a numbered list of max entries.
// Returns the selected position, or an error when the input is not a number
// or falls outside 1..max.
func ParseIndex(input string, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("selection", err)
	}
	if n < 1 || n > max {
		return 0, errs.NewValueIsOutOfRangeError("selection", n, 1, max)
	}
	return n, nil
}

// ParseQuantity parses an order quantity.
// Returns the quantity, or an error when the input is not a number or is
// less than 1.
func ParseQuantity(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}
	if n < 1 {
		return 0, errs.NewValueIsOutOfRangeError("quantity", n, 1, "unbounded")
	}
	return n, nil
}
