package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_UppercasesKnownTags(t *testing.T) {
	schema := &Schema{Tags: map[string]TagConfig{"B": {}}}
	events := []TagEvent{{Name: "b", Kind: Start}}

	out := normalize(events, schema, NewLogbook(nil))
	require.Len(t, out, 1)
	require.Equal(t, "B", out[0].Name)
}

func TestNormalize_DropsUnknownTags(t *testing.T) {
	schema := &Schema{Tags: map[string]TagConfig{"B": {}}}
	events := []TagEvent{{Name: "script", Kind: Start}}

	log := NewLogbook(nil)
	out := normalize(events, schema, log)
	require.Empty(t, out)
	require.Len(t, log.Entries(Debug), 1)
}
