package filter

import (
	"fmt"
	"net/url"
	"strings"
)

type urlFilter struct{}

// Filter requires raw to parse as an absolute URL whose scheme matches the
// global allow-regex (if configured) and whose host doesn't match the
// disallow-regex (if configured). On success, quotes are percent-encoded so
// the value is safe to embed in an HTML attribute later.
func (urlFilter) Filter(ctx *Context, raw string) Result {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return Result{Valid: false}
	}

	if ctx.Config != nil && ctx.Config.AllowedSchemes != nil && !ctx.Config.AllowedSchemes.MatchString(u.Scheme) {
		return Result{Valid: false, ErrorMsg: fmt.Sprintf("URL scheme %s is not allowed", u.Scheme)}
	}

	if ctx.Config != nil && ctx.Config.DisallowedHosts != nil && ctx.Config.DisallowedHosts.MatchString(u.Host) {
		return Result{Valid: false, ErrorMsg: fmt.Sprintf("URL host %s is not allowed", u.Host)}
	}

	v := strings.ReplaceAll(raw, "'", "%27")
	v = strings.ReplaceAll(v, `"`, "%22")

	return Result{Value: v, Valid: true}
}
