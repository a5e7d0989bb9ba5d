package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwell-forum/markup/markup"
)

func TestLoadSchemaJSON_ParsesTagsAndAttrs(t *testing.T) {
	doc := `{
		"rootAllow": ["B"],
		"filters": {"allowedSchemes": "^https?$"},
		"tags": {
			"B": {"allow": ["I"], "nestingLimit": 3},
			"I": {},
			"URL": {"attrs": {"href": {"type": "url", "required": true}}}
		}
	}`

	schema, err := LoadSchemaJSON(doc)
	require.NoError(t, err)
	require.Contains(t, schema.RootAllow, "B")
	require.Equal(t, 3, schema.Tags["B"].NestingLimit)
	require.True(t, schema.Tags["URL"].Attrs["href"].Required)
	require.NotNil(t, schema.Filters.AllowedSchemes)
}

func TestLoadSchemaJSON_RejectsInvalidJSON(t *testing.T) {
	_, err := LoadSchemaJSON("not json")
	require.Error(t, err)
}

func TestLoadSchemaJSON_RejectsBadRegexp(t *testing.T) {
	doc := `{"tags": {"B": {"attrs": {"x": {"type": "regexp", "regexp": "("}}}}}`
	_, err := LoadSchemaJSON(doc)
	require.Error(t, err)
}

func TestLoadSchemaJSON_AttachesPlugins(t *testing.T) {
	p := markup.PluginConfig{
		Name:       "noop",
		Recognizer: markup.RecognizerFunc(func(string, []markup.MatchSet) []markup.TagEvent { return nil }),
	}

	schema, err := LoadSchemaJSON(`{"tags": {}}`, p)
	require.NoError(t, err)
	require.Len(t, schema.Plugins, 1)
}
