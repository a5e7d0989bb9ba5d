package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func simpleSchema() *Schema {
	return &Schema{
		Tags: map[string]TagConfig{
			"B": {Allow: map[string]struct{}{"I": {}}},
			"I": {},
		},
	}
}

func TestResolve_UnmatchedEndIsDropped(t *testing.T) {
	schema := simpleSchema()
	events := []TagEvent{
		{Pos: 0, Len: 3, Name: "B", Kind: End, Suffix: "-p"},
	}

	log := NewLogbook(nil)
	tags := resolve(buildPopStack(events), schema, "abc", log)

	require.Empty(t, tags)
	require.NotEmpty(t, log.Entries(Debug))
}

func TestResolve_StartRequiresAllowedContext(t *testing.T) {
	schema := simpleSchema()
	events := []TagEvent{
		{Pos: 0, Len: 3, Name: "B", Kind: Start, Suffix: "-p"},
		{Pos: 3, Len: 3, Name: "B", Kind: Start, Suffix: "-p"}, // nested B not in B's allow-set
		{Pos: 6, Len: 4, Name: "B", Kind: End, Suffix: "-p"},
		{Pos: 10, Len: 4, Name: "B", Kind: End, Suffix: "-p"},
	}

	tags := resolve(buildPopStack(events), schema, "0123456789abcd", NewLogbook(nil))

	var names []string
	for _, tag := range tags {
		names = append(names, tag.Name+tag.Kind.String())
	}
	require.Equal(t, []string{"BSTART", "BEND"}, names, "the disallowed nested B start must be dropped")
}

func TestResolve_TagLimitDropsExcessOccurrences(t *testing.T) {
	schema := &Schema{Tags: map[string]TagConfig{"B": {TagLimit: 1}}}
	events := []TagEvent{
		{Pos: 0, Len: 1, Name: "B", Kind: SelfClosing, Suffix: "-p"},
		{Pos: 1, Len: 1, Name: "B", Kind: SelfClosing, Suffix: "-p"},
	}

	tags := resolve(buildPopStack(events), schema, "xx", NewLogbook(nil))
	require.Len(t, tags, 1)
}

func TestResolve_CloseParentAutoClosesSibling(t *testing.T) {
	schema := &Schema{
		Tags: map[string]TagConfig{
			"LIST": {Allow: map[string]struct{}{"LI": {}}},
			"LI":   {Rules: &TagRules{CloseParent: []string{"LI"}, RequireParent: "LIST"}},
		},
	}
	events := []TagEvent{
		{Pos: 0, Len: 6, Name: "LIST", Kind: Start, Suffix: "-p"},
		{Pos: 6, Len: 4, Name: "LI", Kind: Start, Suffix: "-p"},
		{Pos: 10, Len: 4, Name: "LI", Kind: Start, Suffix: "-p"},
		{Pos: 14, Len: 7, Name: "LIST", Kind: End, Suffix: "-p"},
	}

	tags := resolve(buildPopStack(events), schema, "0123456789abcdefghijklm", NewLogbook(nil))

	opens, closes := 0, 0
	for _, tag := range tags {
		if tag.Name != "LI" {
			continue
		}
		if tag.Kind.HasStart() {
			opens++
		}
		if tag.Kind.HasEnd() {
			closes++
		}
	}
	require.Equal(t, 2, opens)
	require.Equal(t, 2, closes)
}
