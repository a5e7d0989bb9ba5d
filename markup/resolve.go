package markup

// maxCloseParentCascade bounds how many times a closeParent preflight may
// synthesize an auto-close before giving up, per spec section 9's open
// question about cascading closeParent chains.
const maxCloseParentCascade = 32

// openFrame is one entry of the resolver's open-tag stack: the tag's
// identity plus the allow-set that was active immediately before it opened,
// so closing it restores that context.
type openFrame struct {
	Name   string
	Suffix string
	Allow  map[string]struct{}
}

// resolveState is the resolver's per-parse mutable state, created fresh for
// every call to resolve and discarded when it returns.
type resolveState struct {
	schema *Schema
	text   string
	log    *Logbook

	tags []TagEvent

	openStack []openFrame
	openCount map[string]int
	cntOpen   map[string]int
	cntTotal  map[string]int

	allow map[string]struct{}

	cursor int
}

func newResolveState(schema *Schema, text string, log *Logbook) *resolveState {
	return &resolveState{
		schema:    schema,
		text:      text,
		log:       log,
		openCount: make(map[string]int),
		cntOpen:   make(map[string]int),
		cntTotal:  make(map[string]int),
		allow:     schema.RootAllow,
	}
}

func openKey(name, suffix string) string { return name + "\x00" + suffix }

// resolve walks the sorted candidate stack and produces the accepted,
// document-ordered tag list per spec section 4.4.
func resolve(popStack []TagEvent, schema *Schema, text string, log *Logbook) []TagEvent {
	st := newResolveState(schema, text, log)
	stack := popStack
	cascadeGuard := 0

	for len(stack) > 0 {
		var ev TagEvent
		ev, stack = popNext(stack)

		if st.cursor > ev.Pos {
			st.log.Debug("tag skipped", ev.Pos, ev.Name, "")
			continue
		}

		if ev.Kind.HasStart() {
			cfg, hasCfg := st.schema.Tags[ev.Name]
			if hasCfg && cascadeGuard < maxCloseParentCascade {
				if closeName, ok := st.pendingCloseParent(cfg); ok {
					cascadeGuard++
					top := st.openStack[len(st.openStack)-1]
					synthEnd := TagEvent{Pos: ev.Pos, Len: 0, Name: closeName, Kind: End, Suffix: top.Suffix, PluginName: ev.PluginName}
					stack = append(stack, ev, synthEnd)
					continue
				}
			}

			cascadeGuard = 0
			st.handleStart(ev, hasCfg, cfg)
			continue
		}

		st.handleEnd(ev)
	}

	return st.tags
}

// pendingCloseParent reports whether the tag on top of openStack must be
// auto-closed before cfg's tag can open, per spec section 4.4 step 1.
func (st *resolveState) pendingCloseParent(cfg TagConfig) (string, bool) {
	if cfg.Rules == nil || len(cfg.Rules.CloseParent) == 0 || len(st.openStack) == 0 {
		return "", false
	}

	top := st.openStack[len(st.openStack)-1]
	for _, name := range cfg.Rules.CloseParent {
		if name == top.Name {
			return top.Name, true
		}
	}

	return "", false
}

// appendTag applies whitespace trimming, appends ev to the output, advances
// the cursor, and — for START/SELF_CLOSING occurrences — bumps the total
// count used for tagLimit.
func (st *resolveState) appendTag(ev TagEvent, cfg TagConfig, countTotal bool) {
	trimBeforeIfNeeded(st.text, &ev, cfg, st.cursor)
	trimAfterIfNeeded(st.text, &ev, cfg)

	st.tags = append(st.tags, ev)
	st.cursor = ev.End()

	if countTotal {
		st.cntTotal[ev.Name]++
	}
}
