package filter

import "regexp"

var simpleTextPattern = regexp.MustCompile(`^[A-Za-z0-9\-+.,_ ]+$`)

type simpleTextFilter struct{}

func (simpleTextFilter) Filter(_ *Context, raw string) Result {
	if !simpleTextPattern.MatchString(raw) {
		return Result{Valid: false}
	}
	return Result{Value: raw, Valid: true}
}
