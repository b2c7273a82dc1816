package queries

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// validatePage checks listing pagination parameters. A zero count is rejected
// rather than treated as "no limit": unbounded listings are never served.
func validatePage(offset, count int) error {
	if offset < 0 {
		return errs.NewValueIsInvalidErrorWithCause("offset",
			fmt.Errorf("%d is negative", offset))
	}
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("count",
			fmt.Errorf("%d is not greater than 0", count))
	}
	return nil
}
