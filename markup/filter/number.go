package filter

import "strconv"

type numberFilter struct{}

// Filter accepts a non-negative decimal integer.
func (numberFilter) Filter(_ *Context, raw string) Result {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return Result{Valid: false}
	}
	return Result{Value: strconv.FormatUint(n, 10), Valid: true}
}
