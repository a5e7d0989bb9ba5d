package filter

import "strconv"

type integerFilter struct{}

func (integerFilter) Filter(_ *Context, raw string) Result {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Result{Valid: false}
	}
	return Result{Value: strconv.FormatInt(n, 10), Valid: true}
}
