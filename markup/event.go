package markup

// EventKind classifies a candidate tag occurrence as an opening, closing, or
// self-closing tag. SelfClosing is the bitwise union of Start and End, so
// callers should test membership with HasStart/HasEnd rather than equality.
type EventKind uint8

const (
	// Start marks the opening half of a tag.
	Start EventKind = 1 << iota
	// End marks the closing half of a tag.
	End
)

// SelfClosing is a tag that opens and closes in the same occurrence.
const SelfClosing = Start | End

// HasStart reports whether k carries the opening half of a tag.
func (k EventKind) HasStart() bool { return k&Start != 0 }

// HasEnd reports whether k carries the closing half of a tag.
func (k EventKind) HasEnd() bool { return k&End != 0 }

func (k EventKind) String() string {
	switch k {
	case Start:
		return "START"
	case End:
		return "END"
	case SelfClosing:
		return "SELF_CLOSING"
	default:
		return "UNKNOWN"
	}
}

// TagEvent is a candidate or resolved occurrence of a named tag at a byte
// position in the input. Plugin recognizers emit candidates; the resolver
// mutates Pos/Len/TrimBefore/TrimAfter as whitespace is absorbed, replaces
// Attrs with the filtered values, and emits the accepted subset in document
// order.
type TagEvent struct {
	// Pos is the byte offset into the input where the occurrence begins.
	Pos int

	// Len is the byte length of the occurrence's textual form.
	Len int

	// Name is the canonical (uppercased) tag name.
	Name string

	// Kind distinguishes start, end, and self-closing occurrences.
	Kind EventKind

	// Attrs maps attribute name to string value: the raw value reported by
	// the recognizer on a candidate, the filtered value on a resolved event.
	Attrs map[string]string

	// Suffix pairs start and end events. Plugin-emitted events that don't
	// set one get "-<PluginName>" so different plugins can't close each
	// other's tags.
	Suffix string

	// PluginName is the origin plugin, used as a sort tiebreaker.
	PluginName string

	// TrimBefore and TrimAfter count whitespace bytes absorbed into this
	// event's span during resolution.
	TrimBefore int
	TrimAfter  int
}

// End returns the exclusive end of the event's span.
func (e TagEvent) End() int { return e.Pos + e.Len }
