package plugins

import "github.com/inkwell-forum/markup/markup"

var htmlEntityPattern = markup.MustCompile(`&(amp|lt|gt|quot|apos|nbsp|copy|reg|trade|hellip|mdash|ndash);`)

// entityReplacements maps a recognized entity name to its literal
// replacement text, delivered to the schema as the "value" attribute so a
// regexp-type filter with a Replace template, or a plain passthrough filter,
// can render it during serialization.
var entityReplacements = map[string]string{
	"amp":    "&",
	"lt":     "<",
	"gt":     ">",
	"quot":   `"`,
	"apos":   "'",
	"nbsp":   " ",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"hellip": "…",
	"mdash":  "—",
	"ndash":  "–",
}

// HTMLEntityPlugin recognizes a fixed set of named HTML entities and emits a
// self-closing ENTITY tag carrying the literal replacement text.
func HTMLEntityPlugin(regexpLimit int, regexpLimitAction string) markup.PluginConfig {
	return markup.PluginConfig{
		Name:              "htmlentity",
		Patterns:          []markup.Pattern{htmlEntityPattern},
		RegexpLimit:       regexpLimit,
		RegexpLimitAction: regexpLimitAction,
		Recognizer:        markup.RecognizerFunc(recognizeHTMLEntities),
	}
}

func recognizeHTMLEntities(text string, matches []markup.MatchSet) []markup.TagEvent {
	events := make([]markup.TagEvent, 0, len(matches))

	for _, m := range matches {
		whole := m[0]
		name := m[1].Text

		value, ok := entityReplacements[name]
		if !ok {
			continue
		}

		events = append(events, markup.TagEvent{
			Pos:   whole.Offset,
			Len:   len(whole.Text),
			Name:  "ENTITY",
			Kind:  markup.SelfClosing,
			Attrs: map[string]string{"value": value},
		})
	}

	return events
}
