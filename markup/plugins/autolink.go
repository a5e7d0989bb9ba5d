package plugins

import (
	"strings"

	"github.com/inkwell-forum/markup/markup"
)

var autolinkPattern = markup.MustCompile(`https?://[^\s\[\]<>]+`)

// trailingPunctuation is stripped from the end of a matched URL before it's
// accepted, since a sentence-ending period or a closing paren that balances
// text outside the URL is rarely part of the address itself.
const trailingPunctuation = ".,;:!?)"

// AutolinkPlugin recognizes bare "http(s)://" URLs and emits a self-closing
// URL tag for each, trimming trailing sentence punctuation from the match.
func AutolinkPlugin(regexpLimit int, regexpLimitAction string) markup.PluginConfig {
	return markup.PluginConfig{
		Name:              "autolink",
		Patterns:          []markup.Pattern{autolinkPattern},
		RegexpLimit:       regexpLimit,
		RegexpLimitAction: regexpLimitAction,
		Recognizer:        markup.RecognizerFunc(recognizeAutolinks),
	}
}

func recognizeAutolinks(text string, matches []markup.MatchSet) []markup.TagEvent {
	events := make([]markup.TagEvent, 0, len(matches))

	for _, m := range matches {
		whole := m[0]
		raw := whole.Text

		trimmed := trimBalanced(raw)
		if trimmed == "" {
			continue
		}

		events = append(events, markup.TagEvent{
			Pos:   whole.Offset,
			Len:   len(trimmed),
			Name:  "URL",
			Kind:  markup.SelfClosing,
			Attrs: map[string]string{"url": trimmed},
		})
	}

	return events
}

// trimBalanced removes trailing punctuation, but keeps a closing ')' that
// balances an earlier '(' inside the URL (e.g. a Wikipedia link).
func trimBalanced(raw string) string {
	for len(raw) > 0 {
		last := raw[len(raw)-1]
		if last == ')' && strings.Count(raw, "(") >= strings.Count(raw, ")") {
			break
		}
		if strings.IndexByte(trailingPunctuation, last) < 0 {
			break
		}
		raw = raw[:len(raw)-1]
	}
	return raw
}
