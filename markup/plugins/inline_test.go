package plugins

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwell-forum/markup/markup"
)

func TestRecognizeInline_BoldProducesStartAndEnd(t *testing.T) {
	plugin := InlinePlugin(0, "warn")
	text := "a **bold** b"

	var all []markup.MatchSet
	for _, p := range plugin.Patterns {
		all = append(all, markup.FindAll(p, text)...)
	}

	events := recognizeInline(text, all)
	require.Len(t, events, 2)
	require.Equal(t, "B", events[0].Name)
	require.Equal(t, markup.Start, events[0].Kind)
	require.Equal(t, "B", events[1].Name)
	require.Equal(t, markup.End, events[1].Kind)
}

func TestRecognizeInline_DistinguishesCodeFromItalic(t *testing.T) {
	plugin := InlinePlugin(0, "warn")
	text := "`code` and _italic_"

	var all []markup.MatchSet
	for _, p := range plugin.Patterns {
		all = append(all, markup.FindAll(p, text)...)
	}

	events := recognizeInline(text, all)

	names := map[string]bool{}
	for _, ev := range events {
		names[ev.Name] = true
	}
	require.True(t, names["CODE"])
	require.True(t, names["I"])
}
