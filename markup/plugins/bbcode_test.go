package plugins

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwell-forum/markup/markup"
)

func TestRecognizeBBCode_StartEndSelfClose(t *testing.T) {
	text := "[b]bold[/b] [img/]"
	matches := markup.FindAll(bbcodePattern, text)

	events := recognizeBBCode(text, matches)
	require.Len(t, events, 3)

	require.Equal(t, "b", events[0].Name)
	require.Equal(t, markup.Start, events[0].Kind)

	require.Equal(t, "b", events[1].Name)
	require.Equal(t, markup.End, events[1].Kind)

	require.Equal(t, "img", events[2].Name)
	require.Equal(t, markup.SelfClosing, events[2].Kind)
}

func TestRecognizeBBCode_ShorthandAttribute(t *testing.T) {
	text := "[size=14]x[/size]"
	matches := markup.FindAll(bbcodePattern, text)

	events := recognizeBBCode(text, matches)
	require.Equal(t, "14", events[0].Attrs["size"])
}

func TestRecognizeBBCode_NamedAttributes(t *testing.T) {
	text := `[url href="http://x" target=_blank]link[/url]`
	matches := markup.FindAll(bbcodePattern, text)

	events := recognizeBBCode(text, matches)
	require.Equal(t, "http://x", events[0].Attrs["href"])
	require.Equal(t, "_blank", events[0].Attrs["target"])
}
