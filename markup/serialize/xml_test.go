package serialize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXMLEmitter_PlainTextOnly(t *testing.T) {
	doc, err := XMLEmitter{}.Emit(nil, "hello world")
	require.NoError(t, err)
	require.Equal(t, "<pt>hello world</pt>", doc)
}

func TestXMLEmitter_StartEndPair(t *testing.T) {
	tags := []Tag{
		{Pos: 0, Len: 3, Name: "B", IsStart: true},
		{Pos: 3, Len: 4, Name: "B", IsEnd: true},
	}
	doc, err := XMLEmitter{}.Emit(tags, "[b][/b]")
	require.NoError(t, err)
	require.Equal(t, `<rt><B><st>[b]</st><et>[/b]</et></B></rt>`, doc)
}

func TestXMLEmitter_SelfClosingWithAttrs(t *testing.T) {
	tags := []Tag{
		{Pos: 0, Len: 8, Name: "URL", IsStart: true, IsEnd: true, Attrs: []Attr{{Name: "url", Value: "http://x"}}},
	}
	doc, err := XMLEmitter{}.Emit(tags, "http://x/a")
	require.NoError(t, err)
	require.Equal(t, `<rt><URL url="http://x">http://x</URL>/a</rt>`, doc)
}

func TestXMLEmitter_AutoClosesUnclosedElements(t *testing.T) {
	tags := []Tag{
		{Pos: 0, Len: 3, Name: "B", IsStart: true},
	}
	doc, err := XMLEmitter{}.Emit(tags, "[b]text")
	require.NoError(t, err)
	require.Equal(t, `<rt><B><st>[b]</st>text</B></rt>`, doc)
}

func TestXMLEmitter_EscapesText(t *testing.T) {
	doc, err := XMLEmitter{}.Emit(nil, "a < b & c")
	require.NoError(t, err)
	require.Equal(t, "<pt>a &lt; b &amp; c</pt>", doc)
}

func TestXMLEmitter_WhitespaceTrimEmittedAsI(t *testing.T) {
	tags := []Tag{
		{Pos: 2, Len: 4, Name: "B", IsStart: true, TrimAfter: 1},
	}
	doc, err := XMLEmitter{}.Emit(tags, "hi[b] bold")
	require.NoError(t, err)
	require.Equal(t, `<rt>hi<B><st>[b]</st><i> </i>bold</B></rt>`, doc)
}
