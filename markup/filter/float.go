package filter

import "strconv"

type floatFilter struct{}

func (floatFilter) Filter(_ *Context, raw string) Result {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Result{Valid: false}
	}
	return Result{Value: strconv.FormatFloat(f, 'f', -1, 64), Valid: true}
}
