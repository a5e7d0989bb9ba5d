package markup_test

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwell-forum/markup/markup"
	"github.com/inkwell-forum/markup/markup/config"
	"github.com/inkwell-forum/markup/internal/testfixtures"
	"github.com/inkwell-forum/markup/markup/plugins"
)

// extractRawText walks doc's character data, in document order, regardless
// of which element (raw text, <i>, <st>, <et>, or a tag-mirroring element) it
// sits inside. Concatenating it back is the inverse of serialization.
func extractRawText(t *testing.T, doc string) string {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))

	var buf strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if cd, ok := tok.(xml.CharData); ok {
			buf.Write(cd)
		}
	}
	return buf.String()
}

// TestProperty_WellNested asserts every accepted tag's start/end pair nests
// properly: at no point does an end close a tag that isn't on top of the
// currently-open stack for its own name.
func TestProperty_WellNested(t *testing.T) {
	schema := bbcodeSchema(t)
	engine := markup.NewEngine(schema)

	res, err := engine.Parse("[quote][b]bold [i]both[/b] tail[/i][/quote]")
	require.NoError(t, err)

	var stack []string
	for _, tag := range res.Tags {
		if tag.Kind == markup.SelfClosing {
			continue
		}
		if tag.Kind.HasStart() {
			stack = append(stack, tag.Name)
			continue
		}
		require.NotEmpty(t, stack, "end tag %s with nothing open", tag.Name)
		top := stack[len(stack)-1]
		require.Equal(t, top, tag.Name, "end tag must close the innermost open tag")
		stack = stack[:len(stack)-1]
	}
	require.Empty(t, stack, "every opened tag must eventually be closed")
}

// TestProperty_MonotonicPositions asserts the resolved tag sequence is
// sorted by position and never overlaps a previous tag's span.
func TestProperty_MonotonicPositions(t *testing.T) {
	schema := bbcodeSchema(t)
	engine := markup.NewEngine(schema)

	res, err := engine.Parse("[b]one[/b] [i]two[/i] [url=https://example.com]three[/url]")
	require.NoError(t, err)

	cursor := 0
	for _, tag := range res.Tags {
		require.GreaterOrEqual(t, tag.Pos, cursor)
		cursor = tag.End()
	}
}

// TestProperty_SchemaRespected asserts an unknown tag name never survives to
// the resolved output.
func TestProperty_SchemaRespected(t *testing.T) {
	schema := bbcodeSchema(t)
	engine := markup.NewEngine(schema)

	res, err := engine.Parse("[notatag]hello[/notatag]")
	require.NoError(t, err)

	for _, tag := range res.Tags {
		require.NotEqual(t, "NOTATAG", tag.Name)
	}
}

// TestProperty_PluginIsolation asserts events from two different plugins
// with the same tag name and overlapping positions never close each other.
func TestProperty_PluginIsolation(t *testing.T) {
	b := config.New()
	b.AddPlugin(plugins.BBCodePlugin(0, "warn"))
	b.AddPlugin(markup.PluginConfig{
		Name: "synthetic",
		Patterns: []markup.Pattern{
			markup.MustCompile(`y`),
		},
		Recognizer: markup.RecognizerFunc(func(text string, matches []markup.MatchSet) []markup.TagEvent {
			return []markup.TagEvent{
				{Pos: 4, Len: 1, Name: "B", Kind: markup.End, Suffix: "-synthetic"},
			}
		}),
	})
	b.AddTag("B", markup.TagConfig{})
	schema, err := b.Build()
	require.NoError(t, err)

	engine := markup.NewEngine(schema)
	res, err := engine.Parse("x[b]y[/b]")
	require.NoError(t, err)

	var starts, ends int
	for _, tag := range res.Tags {
		if tag.Name != "B" {
			continue
		}
		if tag.Kind.HasStart() {
			starts++
		}
		if tag.Kind.HasEnd() {
			ends++
		}
	}
	require.Equal(t, 1, starts)
	require.Equal(t, 1, ends, "the foreign-suffix END must not close the bbcode plugin's B")
}

// TestProperty_IdempotentSerialization asserts that concatenating the
// character data of the emitted document — raw text plus the contents of
// every <i>, <st>, <et>, and tag-mirroring element — reproduces the original
// input byte-for-byte, with nothing dropped or duplicated.
func TestProperty_IdempotentSerialization(t *testing.T) {
	schema, err := config.LoadSchemaJSON(testfixtures.BBCodeSchemaJSON, plugins.BBCodePlugin(0, "warn"))
	require.NoError(t, err)

	engine := markup.NewEngine(schema)
	text := "hello [b]world[/b] end"
	res, err := engine.Parse(text)
	require.NoError(t, err)

	require.Equal(t, text, extractRawText(t, res.Document))
}
