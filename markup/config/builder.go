// Package config provides a fluent builder for markup.Schema and a
// gjson-backed JSON loader, so a schema can be assembled incrementally in
// code or read from a configuration document without a full unmarshal pass.
package config

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/inkwell-forum/markup/markup"
	"github.com/inkwell-forum/markup/markup/filter"
)

// Builder accumulates tags, plugins, and filter configuration, validating
// each addition immediately rather than deferring every check to the first
// Parse call.
type Builder struct {
	tags      map[string]markup.TagConfig
	plugins   []markup.PluginConfig
	filters   filter.Config
	rootAllow map[string]struct{}
	err       error
}

// New starts an empty Builder.
func New() *Builder {
	return &Builder{tags: make(map[string]markup.TagConfig)}
}

// AddTag registers cfg under name, the way scum's Dictionary.AddOpeningTag
// registers a Tag: duplicates are rejected immediately rather than silently
// overwritten.
func (b *Builder) AddTag(name string, cfg markup.TagConfig) *Builder {
	if b.err != nil {
		return b
	}
	if name == "" {
		b.err = markup.NewConfigError("empty-tag-name", fmt.Errorf("tag name must not be empty"))
		return b
	}
	if _, exists := b.tags[name]; exists {
		b.err = markup.NewConfigError("duplicate-tag", fmt.Errorf("tag %q already registered", name))
		return b
	}
	if cfg.NestingLimit < 0 || cfg.TagLimit < 0 {
		b.err = markup.NewConfigError("negative-limit", fmt.Errorf("tag %q has a negative limit", name))
		return b
	}
	cfg.Name = name
	b.tags[name] = cfg
	return b
}

// AddPlugin registers a plugin, in the order plugins are dispatched.
func (b *Builder) AddPlugin(p markup.PluginConfig) *Builder {
	if b.err != nil {
		return b
	}
	if p.Recognizer == nil {
		b.err = markup.NewConfigError("missing-recognizer", fmt.Errorf("plugin %q has no recognizer", p.Name))
		return b
	}
	if p.RegexpLimit < 0 {
		b.err = markup.NewConfigError("negative-limit", fmt.Errorf("plugin %q has a negative regexpLimit", p.Name))
		return b
	}
	b.plugins = append(b.plugins, p)
	return b
}

// WithFilters replaces the global filter configuration (allowed URL schemes,
// disallowed hosts, callback overrides).
func (b *Builder) WithFilters(cfg filter.Config) *Builder {
	if b.err != nil {
		return b
	}
	b.filters = cfg
	return b
}

// WithRootAllow restricts which tags may appear at the top of the document.
// Passing no names leaves the root unrestricted.
func (b *Builder) WithRootAllow(names ...string) *Builder {
	if b.err != nil {
		return b
	}
	if len(names) == 0 {
		b.rootAllow = nil
		return b
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	b.rootAllow = set
	return b
}

// Build finalizes the schema, returning the first configuration error
// encountered, if any. Every returned Schema carries a fresh random ID so
// concurrently built engines sharing similar configuration can still be told
// apart in diagnostics.
func (b *Builder) Build() (*markup.Schema, error) {
	if b.err != nil {
		return nil, b.err
	}

	return &markup.Schema{
		ID:        uuid.NewString(),
		Tags:      b.tags,
		Plugins:   b.plugins,
		Filters:   b.filters,
		RootAllow: b.rootAllow,
	}, nil
}
