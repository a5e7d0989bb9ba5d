package markup

import "github.com/inkwell-forum/markup/markup/filter"

// TagRules holds the optional structural constraints of a tag: which sibling
// tags it auto-closes, which exact parent it requires, and which ancestors
// must already be open.
type TagRules struct {
	// CloseParent lists tag names that, if open at the top of the stack when
	// this tag starts, are auto-closed first (e.g. "[*]" closing a previous
	// "[*]").
	CloseParent []string

	// RequireParent, if set, is the exact name the immediate open parent
	// must have.
	RequireParent string

	// RequireAscendant lists names that must have at least one open
	// instance somewhere up the ancestor chain.
	RequireAscendant []string
}

// AttrConfig describes one attribute a tag accepts: its type, whether it's
// required, its default, and its filter chain.
type AttrConfig struct {
	// Type names a built-in filter ("url", "int", "range", ...) or a key in
	// filter.Config.Callbacks.
	Type string

	// Required drops the tag if the attribute is absent after filtering.
	Required bool

	// Default substitutes for a missing or invalid value. Nil means no
	// default.
	Default *string

	// PreFilter and PostFilter are unary string transforms run before and
	// after the typed filter, respectively.
	PreFilter  []func(string) string
	PostFilter []func(string) string

	// Min and Max bound a "range" filter.
	Min, Max *float64

	// Regexp and Replace configure a "regexp" filter.
	Regexp  *string
	Replace string
}

// AttrMapFilter transforms a tag's whole attribute map in place, used for
// tag-level preFilter/postFilter.
type AttrMapFilter func(map[string]string)

// TagConfig is the read-only schema entry for one tag name.
type TagConfig struct {
	Name string

	// Allow is the set of tag names permitted as direct descendants. Nil
	// means "inherit the enclosing allow-set unchanged" (allow everything
	// the parent allows).
	Allow map[string]struct{}

	// NestingLimit caps simultaneously open instances on any ancestor
	// chain. Zero means unlimited.
	NestingLimit int

	// TagLimit caps total occurrences in one parse. Zero means unlimited.
	TagLimit int

	Rules *TagRules

	TrimBefore    bool
	LTrimContent  bool
	RTrimContent  bool
	TrimAfter     bool

	Attrs map[string]AttrConfig

	PreFilter  []AttrMapFilter
	PostFilter []AttrMapFilter
}

// PluginConfig is the read-only schema entry for one plugin.
type PluginConfig struct {
	Name string

	// Patterns are matched with FindAllStringSubmatchIndex semantics
	// (global, offsets, per capture group).
	Patterns []Pattern

	// RegexpLimit caps total matches across Patterns. Zero means unlimited.
	RegexpLimit int

	// RegexpLimitAction is "abort", "ignore", or anything else (treated as
	// "warn").
	RegexpLimitAction string

	Recognizer Recognizer
}

// Schema is the read-only configuration consumed by Engine.Parse. It is
// safe to share across concurrently running engines.
type Schema struct {
	// ID optionally identifies this schema instance. config.Builder.Build
	// stamps a fresh random ID on every schema it returns; the engine itself
	// does not read it.
	ID string

	Tags    map[string]TagConfig
	Plugins []PluginConfig
	Filters filter.Config

	// RootAllow is the allow-set active at the top of the document. Nil
	// means every tag name in Tags is allowed at the root.
	RootAllow map[string]struct{}
}
