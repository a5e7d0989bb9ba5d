package markup

// handleEnd implements spec section 4.4's END handling: reject unmatched
// ends, unwind the open stack (synthesizing zero-length ends for any
// mismatched frames along the way), and append the closing event.
func (st *resolveState) handleEnd(ev TagEvent) {
	key := openKey(ev.Name, ev.Suffix)
	if st.openCount[key] <= 0 {
		st.log.Debug("unmatched end tag", ev.Pos, ev.Name, "")
		return
	}

	for {
		last := len(st.openStack) - 1
		top := st.openStack[last]
		st.openStack = st.openStack[:last]

		st.allow = top.Allow
		st.cntOpen[top.Name]--
		st.openCount[openKey(top.Name, top.Suffix)]--

		if top.Name != ev.Name || top.Suffix != ev.Suffix {
			synth := TagEvent{Pos: ev.Pos, Len: 0, Name: top.Name, Kind: End, Suffix: top.Suffix, PluginName: ev.PluginName}
			if cfg, ok := st.schema.Tags[top.Name]; ok {
				st.appendTag(synth, cfg, false)
			} else {
				st.appendTag(synth, TagConfig{}, false)
			}
			continue
		}

		break
	}

	cfg := st.schema.Tags[ev.Name]
	st.appendTag(ev, cfg, false)
}
