package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwell-forum/markup/markup"
)

func TestBuilder_DuplicateTagNameFails(t *testing.T) {
	_, err := New().
		AddTag("B", markup.TagConfig{}).
		AddTag("B", markup.TagConfig{}).
		Build()

	require.Error(t, err)
	var cfgErr *markup.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestBuilder_NegativeLimitFails(t *testing.T) {
	_, err := New().AddTag("B", markup.TagConfig{NestingLimit: -1}).Build()
	require.Error(t, err)
}

func TestBuilder_PluginWithoutRecognizerFails(t *testing.T) {
	_, err := New().AddPlugin(markup.PluginConfig{Name: "broken"}).Build()
	require.Error(t, err)
}

func TestBuilder_BuildAssignsID(t *testing.T) {
	schema, err := New().AddTag("B", markup.TagConfig{}).Build()
	require.NoError(t, err)
	require.NotEmpty(t, schema.ID)
}
