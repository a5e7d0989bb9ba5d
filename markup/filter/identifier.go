package filter

import "regexp"

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type identifierFilter struct{}

func (identifierFilter) Filter(_ *Context, raw string) Result {
	if !identifierPattern.MatchString(raw) {
		return Result{Valid: false}
	}
	return Result{Value: raw, Valid: true}
}
