package filter

import (
	"fmt"
	"strconv"
)

type rangeFilter struct{}

// Filter parses raw as an integer and clamps it to [ctx.Min, ctx.Max],
// reporting a warning when clamping occurred.
func (rangeFilter) Filter(ctx *Context, raw string) Result {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Result{Valid: false}
	}

	v := float64(n)
	warn := ""

	if ctx.Max != nil && v > *ctx.Max {
		v = *ctx.Max
		warn = fmt.Sprintf("Maximum range value adjusted to %s", strconv.FormatFloat(v, 'f', -1, 64))
	} else if ctx.Min != nil && v < *ctx.Min {
		v = *ctx.Min
		warn = fmt.Sprintf("Minimum range value adjusted to %s", strconv.FormatFloat(v, 'f', -1, 64))
	}

	return Result{Value: strconv.FormatInt(int64(v), 10), Valid: true, WarningMsg: warn}
}
