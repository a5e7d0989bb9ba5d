// Package plugins holds the built-in Recognizer implementations: generic
// bracketed BBCode tags, autolinks, emoticons, HTML entities, and line
// breaks. Each one is a pure function of (text, matches) per markup.Recognizer.
package plugins

import (
	"regexp"
	"strings"

	"github.com/inkwell-forum/markup/markup"
)

// bbcodePattern matches "[tag]", "[/tag]", "[tag/]", "[tag=value]", and
// "[tag attr=value attr2=\"quoted value\"]" forms. Group 1 is the optional
// slash, group 2 the tag name, group 3 the rest of the attribute text, group
// 4 the optional trailing self-close slash.
var bbcodePattern = markup.MustCompile(`\[(/?)([A-Za-z][A-Za-z0-9_]*)((?:[^\[\]]*?))(/?)\]`)

var attrPairPattern = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_-]*)\s*=\s*(?:"([^"]*)"|'([^']*)'|(\S+))`)

// BBCodePlugin builds the PluginConfig for generic "[tag=...]...[/tag]"
// markup, the workhorse recognizer most schemas register.
func BBCodePlugin(regexpLimit int, regexpLimitAction string) markup.PluginConfig {
	return markup.PluginConfig{
		Name:              "bbcode",
		Patterns:          []markup.Pattern{bbcodePattern},
		RegexpLimit:       regexpLimit,
		RegexpLimitAction: regexpLimitAction,
		Recognizer:        markup.RecognizerFunc(recognizeBBCode),
	}
}

func recognizeBBCode(text string, matches []markup.MatchSet) []markup.TagEvent {
	events := make([]markup.TagEvent, 0, len(matches))

	for _, m := range matches {
		whole := m[0]
		slash := m[1].Text
		name := m[2].Text
		rest := m[3].Text
		selfClose := m[4].Text

		kind := markup.Start
		switch {
		case slash != "" && selfClose != "":
			// "[/tag/]" is not a valid form; skip it rather than guess.
			continue
		case slash != "":
			kind = markup.End
		case selfClose != "":
			kind = markup.SelfClosing
		}

		ev := markup.TagEvent{
			Pos:  whole.Offset,
			Len:  len(whole.Text),
			Name: name,
			Kind: kind,
		}

		if kind.HasStart() {
			ev.Attrs = parseAttrs(name, rest)
		}

		events = append(events, ev)
	}

	return events
}

// parseAttrs handles both the shorthand "[tag=value]" form (mapped to an
// attribute named after the tag, lowercased) and the "[tag attr=value ...]"
// form.
func parseAttrs(tagName, rest string) map[string]string {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return map[string]string{}
	}

	if strings.HasPrefix(rest, "=") {
		value := strings.TrimSpace(strings.TrimPrefix(rest, "="))
		value = strings.Trim(value, `"'`)
		return map[string]string{strings.ToLower(tagName): value}
	}

	attrs := map[string]string{}
	for _, m := range attrPairPattern.FindAllStringSubmatch(rest, -1) {
		key := strings.ToLower(m[1])
		value := m[2]
		if value == "" {
			value = m[3]
		}
		if value == "" {
			value = m[4]
		}
		attrs[key] = value
	}
	return attrs
}
