package markup

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/inkwell-forum/markup/markup/serialize"
)

// Engine runs the two-stage parse pipeline against a Schema. It holds no
// per-parse state itself, so one Engine value can drive any number of
// sequential or (across separate Engine values sharing a Schema) concurrent
// Parse calls.
type Engine struct {
	Schema *Schema

	// Serializer renders the resolved tag sequence into the final document.
	// Defaults to serialize.XMLEmitter{} when nil.
	Serializer serialize.Emitter

	// Logger, if set, mirrors every Logbook entry produced by a Parse call.
	Logger *zerolog.Logger
}

// NewEngine builds an Engine for schema with the default XML serializer.
func NewEngine(schema *Schema) *Engine {
	return &Engine{Schema: schema, Serializer: serialize.XMLEmitter{}}
}

// Result is the outcome of one successful Parse call.
type Result struct {
	Document string
	Tags     []TagEvent
	Log      *Logbook
}

// Parse runs plugin dispatch, normalization, sort, resolution, and
// serialization over text, in that order. The one fatal parse condition is a
// plugin's regexpLimit exceeded under regexpLimitAction "abort"; the only
// other error returned is one from the Serializer (the default XMLEmitter
// never fails).
func (e *Engine) Parse(text string) (Result, error) {
	log := NewLogbook(e.Logger)

	events, err := dispatch(text, e.Schema.Plugins, log)
	if err != nil {
		return Result{}, err
	}

	events = normalize(events, e.Schema, log)
	popStack := buildPopStack(events)
	tags := resolve(popStack, e.Schema, text, log)

	serializer := e.Serializer
	if serializer == nil {
		serializer = serialize.XMLEmitter{}
	}

	doc, err := serializer.Emit(toSerializeTags(tags), text)
	if err != nil {
		return Result{}, err
	}

	return Result{Document: doc, Tags: tags, Log: log}, nil
}

func toSerializeTags(tags []TagEvent) []serialize.Tag {
	out := make([]serialize.Tag, len(tags))
	for i, ev := range tags {
		out[i] = serialize.Tag{
			Pos:        ev.Pos,
			Len:        ev.Len,
			Name:       ev.Name,
			IsStart:    ev.Kind.HasStart(),
			IsEnd:      ev.Kind.HasEnd(),
			Attrs:      sortedAttrs(ev.Attrs),
			TrimBefore: ev.TrimBefore,
			TrimAfter:  ev.TrimAfter,
		}
	}
	return out
}

func sortedAttrs(attrs map[string]string) []serialize.Attr {
	if len(attrs) == 0 {
		return nil
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]serialize.Attr, len(names))
	for i, name := range names {
		out[i] = serialize.Attr{Name: name, Value: attrs[name]}
	}
	return out
}
