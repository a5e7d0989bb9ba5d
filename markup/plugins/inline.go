package plugins

import "github.com/inkwell-forum/markup/markup"

// inlineDelimiter pairs an opening/closing literal sequence with the tag
// name it produces. Adapted from the delimiter-pairing rules of a
// byte-triggered inline-formatting scanner (bold/italic/strikethrough/code
// by literal run length) into the engine's regex-plugin, start/end-event
// model: each delimiter pair becomes one non-greedy capturing pattern whose
// match spans the whole "delimiter content delimiter" run, split into a
// START event at the opening delimiter and an END event at the closing one.
type inlineDelimiter struct {
	name    string
	pattern markup.Pattern
	open    int // byte length of the opening delimiter
	close   int // byte length of the closing delimiter
}

var inlineDelimiters = []inlineDelimiter{
	{name: "B", pattern: markup.MustCompile(`\*\*(.+?)\*\*`), open: 2, close: 2},
	{name: "S", pattern: markup.MustCompile(`~~(.+?)~~`), open: 2, close: 2},
	{name: "CODE", pattern: markup.MustCompile("`([^`]+)`"), open: 1, close: 1},
	{name: "I", pattern: markup.MustCompile(`_([^_]+)_`), open: 1, close: 1},
}

// InlinePlugin recognizes markdown-style bold/italic/strikethrough/code
// delimiters and emits a matching START/END pair around each run's content,
// rather than a single token — the resolver's own nesting rules (allow-sets,
// requireParent) then decide whether a given nesting is legal, instead of
// the recognizer enforcing it up front.
func InlinePlugin(regexpLimit int, regexpLimitAction string) markup.PluginConfig {
	patterns := make([]markup.Pattern, len(inlineDelimiters))
	for i, d := range inlineDelimiters {
		patterns[i] = d.pattern
	}

	return markup.PluginConfig{
		Name:              "inline",
		Patterns:          patterns,
		RegexpLimit:       regexpLimit,
		RegexpLimitAction: regexpLimitAction,
		Recognizer:        markup.RecognizerFunc(recognizeInline),
	}
}

// recognizeInline receives the matches of all InlinePlugin patterns in one
// flat slice and maps each back to its delimiter to know the right tag name
// and delimiter widths.
func recognizeInline(text string, matches []markup.MatchSet) []markup.TagEvent {
	events := make([]markup.TagEvent, 0, len(matches)*2)

	for _, m := range matches {
		whole := m[0]
		d, ok := delimiterForMatch(whole.Text)
		if !ok {
			continue
		}

		contentEnd := whole.Offset + len(whole.Text) - d.close

		events = append(events,
			markup.TagEvent{Pos: whole.Offset, Len: d.open, Name: d.name, Kind: markup.Start},
			markup.TagEvent{Pos: contentEnd, Len: d.close, Name: d.name, Kind: markup.End},
		)
	}

	return events
}

// delimiterForMatch identifies which inlineDelimiter produced a whole match
// by its opening bytes, since dispatch flattens all patterns' matches into
// one slice without tagging their origin pattern.
func delimiterForMatch(whole string) (inlineDelimiter, bool) {
	for _, d := range inlineDelimiters {
		n := d.open
		if len(whole) >= n+d.close && whole[:n] == openSeq(d) {
			return d, true
		}
	}
	return inlineDelimiter{}, false
}

func openSeq(d inlineDelimiter) string {
	switch d.name {
	case "B":
		return "**"
	case "S":
		return "~~"
	case "CODE":
		return "`"
	case "I":
		return "_"
	default:
		return ""
	}
}
