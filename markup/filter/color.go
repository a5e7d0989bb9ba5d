package filter

import (
	"regexp"
	"strings"
)

var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{3,6}$`)
	namedColorPattern = regexp.MustCompile(`^[A-Za-z]+$`)
)

type colorFilter struct{}

// Filter accepts "#rgb"/"#rrggbb" style hex colors or an all-letters color
// name, case-insensitively normalizing hex colors to lowercase.
func (colorFilter) Filter(_ *Context, raw string) Result {
	if hexColorPattern.MatchString(raw) {
		return Result{Value: strings.ToLower(raw), Valid: true}
	}
	if namedColorPattern.MatchString(raw) {
		return Result{Value: strings.ToLower(raw), Valid: true}
	}
	return Result{Valid: false}
}
