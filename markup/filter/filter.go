// Package filter implements the typed attribute-value filters used by the
// resolver's attribute pipeline: preFilter(s) -> typed filter -> postFilter(s).
// Each typed filter produces a canonical string or reports the value invalid.
package filter

import "regexp"

// Config is the global, schema-level filter configuration: allowed URL
// schemes, disallowed hosts, and user-supplied callback overrides keyed by
// type name.
type Config struct {
	AllowedSchemes    *regexp.Regexp
	DisallowedHosts   *regexp.Regexp
	Callbacks         map[string]Filter
}

// Context carries the per-attribute state a Filter needs, replacing the
// engine-wide mutable currentTag/currentAttribute fields with an explicit
// parameter.
type Context struct {
	CurrentTag       string
	CurrentAttribute string

	Config *Config

	// Min and Max bound a "range" filter; nil means unbounded on that side.
	Min, Max *float64

	// Regexp and Replace configure a "regexp" filter.
	Regexp  *regexp.Regexp
	Replace string
}

// Result is the outcome of running a Filter over one raw attribute value.
type Result struct {
	Value   string
	Valid   bool
	// ErrorMsg, if non-empty, is logged at error severity by the caller in
	// place of the generic "invalid attribute value" message.
	ErrorMsg string
	// WarningMsg, if non-empty, is logged at warning severity by the caller
	// (e.g. a range clamp) even though the value is otherwise valid.
	WarningMsg string
}

// Filter validates and canonicalizes one raw attribute value.
type Filter interface {
	Filter(ctx *Context, raw string) Result
}

var builtins = map[string]Filter{
	"url":        urlFilter{},
	"identifier": identifierFilter{},
	"id":         identifierFilter{},
	"simpletext": simpleTextFilter{},
	"text":       textFilter{},
	"email":      emailFilter{},
	"int":        integerFilter{},
	"integer":    integerFilter{},
	"float":      floatFilter{},
	"number":     numberFilter{},
	"uint":       numberFilter{},
	"range":      rangeFilter{},
	"color":      colorFilter{},
	"regexp":     regexpFilter{},
}

// Resolve looks up the Filter for typeName, preferring a schema-level
// callback override over the built-in table. The second return value is
// false for an unknown type.
func Resolve(cfg *Config, typeName string) (Filter, bool) {
	if cfg != nil && cfg.Callbacks != nil {
		if f, ok := cfg.Callbacks[typeName]; ok {
			return f, true
		}
	}
	f, ok := builtins[typeName]
	return f, ok
}
