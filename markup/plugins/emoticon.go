package plugins

import (
	"regexp"
	"strings"

	"github.com/inkwell-forum/markup/markup"
)

// defaultEmoticons maps a literal ASCII sequence to the canonical emoticon
// name a schema's EMOTICON tag would filter on.
var defaultEmoticons = map[string]string{
	":)":  "smile",
	":-)": "smile",
	":(":  "frown",
	":-(": "frown",
	";)":  "wink",
	";-)": "wink",
	":D":  "laugh",
	":-D": "laugh",
	":P":  "tongue",
	":-P": "tongue",
	"<3":  "heart",
}

// EmoticonPlugin recognizes a fixed table of ASCII emoticons and emits a
// self-closing EMOTICON tag with a "name" attribute for each. table is
// merged over defaultEmoticons; passing nil uses the defaults alone.
func EmoticonPlugin(table map[string]string, regexpLimit int, regexpLimitAction string) markup.PluginConfig {
	merged := make(map[string]string, len(defaultEmoticons)+len(table))
	for k, v := range defaultEmoticons {
		merged[k] = v
	}
	for k, v := range table {
		merged[k] = v
	}

	pattern := markup.MustCompile(buildEmoticonAlternation(merged))

	return markup.PluginConfig{
		Name:              "emoticon",
		Patterns:          []markup.Pattern{pattern},
		RegexpLimit:       regexpLimit,
		RegexpLimitAction: regexpLimitAction,
		Recognizer:        markup.RecognizerFunc(func(text string, matches []markup.MatchSet) []markup.TagEvent {
			return recognizeEmoticons(merged, matches)
		}),
	}
}

func recognizeEmoticons(table map[string]string, matches []markup.MatchSet) []markup.TagEvent {
	events := make([]markup.TagEvent, 0, len(matches))

	for _, m := range matches {
		whole := m[0]
		name, ok := table[whole.Text]
		if !ok {
			continue
		}

		events = append(events, markup.TagEvent{
			Pos:   whole.Offset,
			Len:   len(whole.Text),
			Name:  "EMOTICON",
			Kind:  markup.SelfClosing,
			Attrs: map[string]string{"name": name},
		})
	}

	return events
}

// buildEmoticonAlternation builds a regexp alternation of every literal key
// in table, longest first so e.g. ":-)" is tried before ":)".
func buildEmoticonAlternation(table map[string]string) string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}

	// Insertion sort by descending length; the table is small and static.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && len(keys[j]) > len(keys[j-1]); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}

	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(quoted, "|")
}
