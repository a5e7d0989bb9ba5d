package plugins

import "github.com/inkwell-forum/markup/markup"

var linebreakPattern = markup.MustCompile(`\r\n|\n|\r`)

// LinebreakPlugin recognizes any line-ending sequence and emits a
// self-closing BR tag in its place.
func LinebreakPlugin(regexpLimit int, regexpLimitAction string) markup.PluginConfig {
	return markup.PluginConfig{
		Name:              "linebreak",
		Patterns:          []markup.Pattern{linebreakPattern},
		RegexpLimit:       regexpLimit,
		RegexpLimitAction: regexpLimitAction,
		Recognizer:        markup.RecognizerFunc(recognizeLinebreaks),
	}
}

func recognizeLinebreaks(text string, matches []markup.MatchSet) []markup.TagEvent {
	events := make([]markup.TagEvent, 0, len(matches))

	for _, m := range matches {
		whole := m[0]
		events = append(events, markup.TagEvent{
			Pos:  whole.Offset,
			Len:  len(whole.Text),
			Name: "BR",
			Kind: markup.SelfClosing,
		})
	}

	return events
}
