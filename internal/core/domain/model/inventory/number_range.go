package inventory

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// ExpandRange expands the inclusive integer range [start, end] into
// candidate waybill numbers prefix+i.
//
// The whole expansion is rejected with ErrRangeTooLarge when it would
// produce more than ceiling candidates; the source behavior disagreed on
// the limit (500 in one call site, 1000 in another), so the ceiling is a
// single configuration value supplied by the caller.
func ExpandRange(prefix string, start, end, ceiling int) ([]string, error) {
	if start < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"start is invalid",
			fmt.Errorf("%d is negative", start),
		)
	}
	if end < start {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"range is invalid",
			fmt.Errorf("end %d is before start %d", end, start),
		)
	}

	size := end - start + 1
	if size > ceiling {
		return nil, fmt.Errorf("%w: %d numbers requested, ceiling is %d", ErrRangeTooLarge, size, ceiling)
	}

	numbers := make([]string, 0, size)
	for i := start; i <= end; i++ {
		numbers = append(numbers, fmt.Sprintf("%s%d", prefix, i))
	}
	return numbers, nil
}
