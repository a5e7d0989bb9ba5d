package markup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwell-forum/markup/markup/filter"
)

func newTestResolveState(t *testing.T, filterCfg filter.Config) *resolveState {
	t.Helper()
	schema := &Schema{Filters: filterCfg}
	return newResolveState(schema, "", NewLogbook(nil))
}

func TestFilterAttributes_MergesDefault(t *testing.T) {
	st := newTestResolveState(t, filter.Config{})
	def := "12"
	cfg := TagConfig{Attrs: map[string]AttrConfig{
		"size": {Type: "int", Default: &def},
	}}

	attrs, ok := st.filterAttributes(TagEvent{Name: "B"}, cfg)
	require.True(t, ok)
	require.Equal(t, "12", attrs["size"])
}

func TestFilterAttributes_RequiredMissingDropsTag(t *testing.T) {
	st := newTestResolveState(t, filter.Config{})
	cfg := TagConfig{Attrs: map[string]AttrConfig{
		"href": {Type: "url", Required: true},
	}}

	_, ok := st.filterAttributes(TagEvent{Name: "URL", Attrs: map[string]string{}}, cfg)
	require.False(t, ok)
}

func TestFilterAttributes_InvalidRequiredWithoutDefaultDropsTag(t *testing.T) {
	st := newTestResolveState(t, filter.Config{})
	cfg := TagConfig{Attrs: map[string]AttrConfig{
		"href": {Type: "url", Required: true},
	}}

	_, ok := st.filterAttributes(TagEvent{Name: "URL", Attrs: map[string]string{"href": "not a url"}}, cfg)
	require.False(t, ok)
	require.NotEmpty(t, st.log.Entries(Error))
}

func TestFilterAttributes_InvalidOptionalFallsBackToDefault(t *testing.T) {
	st := newTestResolveState(t, filter.Config{})
	def := "8"
	cfg := TagConfig{Attrs: map[string]AttrConfig{
		"size": {Type: "int", Default: &def},
	}}

	attrs, ok := st.filterAttributes(TagEvent{Name: "SIZE", Attrs: map[string]string{"size": "not-an-int"}}, cfg)
	require.True(t, ok)
	require.Equal(t, "8", attrs["size"])
}

func TestFilterAttributes_UnknownAttributesPassThrough(t *testing.T) {
	st := newTestResolveState(t, filter.Config{})
	cfg := TagConfig{}

	attrs, ok := st.filterAttributes(TagEvent{Name: "B", Attrs: map[string]string{"data-foo": "bar"}}, cfg)
	require.True(t, ok)
	require.Equal(t, "bar", attrs["data-foo"])
}
