package markup

import "sort"

// buildPopStack orders candidate events so that popping from the end of the
// returned slice yields events in ascending (pos, kind, pluginName) order —
// the earliest-in-document event first — per spec section 4.3.
func buildPopStack(events []TagEvent) []TagEvent {
	out := make([]TagEvent, len(events))
	copy(out, events)

	sort.SliceStable(out, func(i, j int) bool {
		return ascending(out[j], out[i])
	})

	return out
}

func ascending(a, b TagEvent) bool {
	if a.Pos != b.Pos {
		return a.Pos < b.Pos
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.PluginName < b.PluginName
}

// popNext removes and returns the event nearest the front of the document
// from stack.
func popNext(stack []TagEvent) (TagEvent, []TagEvent) {
	last := len(stack) - 1
	return stack[last], stack[:last]
}
