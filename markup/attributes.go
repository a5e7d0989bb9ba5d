package markup

import (
	"regexp"

	"github.com/inkwell-forum/markup/markup/filter"
)

// filterAttributes runs the merge-defaults / preFilter / typed-filter /
// postFilter pipeline of spec section 4.5 for one tag occurrence. It
// returns the final attribute map and false if the tag must be dropped
// entirely (a required attribute never validated).
func (st *resolveState) filterAttributes(ev TagEvent, cfg TagConfig) (map[string]string, bool) {
	attrs := make(map[string]string, len(ev.Attrs))
	for k, v := range ev.Attrs {
		attrs[k] = v
	}

	for name, ac := range cfg.Attrs {
		if _, present := attrs[name]; !present && ac.Default != nil {
			attrs[name] = *ac.Default
		}
	}

	for _, f := range cfg.PreFilter {
		f(attrs)
	}

	for name, ac := range cfg.Attrs {
		raw, present := attrs[name]
		if !present {
			continue
		}

		for _, pf := range ac.PreFilter {
			raw = pf(raw)
		}

		res := st.runTypedFilter(ev, name, ac, raw)

		if res.WarningMsg != "" {
			st.log.Warn(res.WarningMsg, ev.Pos, ev.Name, name)
		}

		if !res.Valid {
			msg := res.ErrorMsg
			if msg == "" {
				msg = "invalid attribute value"
			}
			st.log.Err(msg, ev.Pos, ev.Name, name)

			if ac.Default != nil {
				attrs[name] = *ac.Default
				st.log.Debug("default substituted", ev.Pos, ev.Name, name)
				continue
			}

			delete(attrs, name)
			if ac.Required {
				return nil, false
			}
			continue
		}

		final := res.Value
		for _, pf := range ac.PostFilter {
			final = pf(final)
		}

		if final != raw {
			st.log.Debug("filter altered value", ev.Pos, ev.Name, name)
		}

		attrs[name] = final
	}

	for name, ac := range cfg.Attrs {
		if ac.Required {
			if _, present := attrs[name]; !present {
				st.log.Err("required attribute missing", ev.Pos, ev.Name, name)
				return nil, false
			}
		}
	}

	for _, f := range cfg.PostFilter {
		f(attrs)
	}

	return attrs, true
}

func (st *resolveState) runTypedFilter(ev TagEvent, attrName string, ac AttrConfig, raw string) filter.Result {
	f, ok := filter.Resolve(&st.schema.Filters, ac.Type)
	if !ok {
		st.log.Debug("Unknown filter", ev.Pos, ev.Name, attrName)
		return filter.Result{Valid: false}
	}

	ctx := &filter.Context{
		CurrentTag:       ev.Name,
		CurrentAttribute: attrName,
		Config:           &st.schema.Filters,
		Min:              ac.Min,
		Max:              ac.Max,
		Replace:          ac.Replace,
	}

	if ac.Regexp != nil {
		if re, err := regexp.Compile(*ac.Regexp); err == nil {
			ctx.Regexp = re
		}
	}

	return f.Filter(ctx, raw)
}
