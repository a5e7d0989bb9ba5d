package markup

// handleStart implements spec section 4.4's START/SELF_CLOSING handling:
// limits, context, requireParent/requireAscendant, attribute filtering, and
// finally acceptance.
func (st *resolveState) handleStart(ev TagEvent, hasCfg bool, cfg TagConfig) {
	if !hasCfg {
		// Normalization already dropped events for unknown tag names; this
		// is only reachable for synthetic events, which always name a
		// known tag.
		return
	}

	if cfg.NestingLimit > 0 && st.cntOpen[ev.Name] >= cfg.NestingLimit {
		return
	}
	if cfg.TagLimit > 0 && st.cntTotal[ev.Name] >= cfg.TagLimit {
		return
	}

	if st.allow != nil {
		if _, allowed := st.allow[ev.Name]; !allowed {
			st.log.Debug("tag not allowed in current context", ev.Pos, ev.Name, "")
			return
		}
	}

	if cfg.Rules != nil && cfg.Rules.RequireParent != "" {
		if len(st.openStack) == 0 || st.openStack[len(st.openStack)-1].Name != cfg.Rules.RequireParent {
			st.log.Err("required parent missing", ev.Pos, ev.Name, "")
			return
		}
	}

	if cfg.Rules != nil {
		for _, ancestor := range cfg.Rules.RequireAscendant {
			if st.cntOpen[ancestor] <= 0 {
				st.log.Debug("required ascendant missing", ev.Pos, ev.Name, "")
				return
			}
		}
	}

	attrs, accepted := st.filterAttributes(ev, cfg)
	if !accepted {
		return
	}
	ev.Attrs = attrs

	st.appendTag(ev, cfg, true)

	if ev.Kind == SelfClosing {
		return
	}

	oldAllow := st.allow
	st.cntOpen[ev.Name]++
	st.openCount[openKey(ev.Name, ev.Suffix)]++
	st.openStack = append(st.openStack, openFrame{Name: ev.Name, Suffix: ev.Suffix, Allow: oldAllow})

	if cfg.Allow != nil {
		st.allow = intersectAllow(oldAllow, cfg.Allow)
	}
}

func intersectAllow(a, b map[string]struct{}) map[string]struct{} {
	if a == nil {
		return b
	}
	out := make(map[string]struct{}, len(a))
	for name := range a {
		if _, ok := b[name]; ok {
			out[name] = struct{}{}
		}
	}
	return out
}
