package markup

import "github.com/rs/zerolog"

// Severity classifies a log entry per the error-handling taxonomy: debug is
// informational, warning means a value was adjusted, error means a tag or
// attribute was dropped.
type Severity int

const (
	Debug Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// LogEntry is one structured record produced during a parse.
type LogEntry struct {
	Severity Severity
	Msg      string
	Pos      int
	TagName  string
	AttrName string
}

// OverflowPolicy governs what happens once a Logbook reaches its capacity.
// This is additive to spec.md's unbounded log multimap: it bounds memory on
// pathological input without changing any parse semantics.
type OverflowPolicy int

const (
	// OverflowNoCap means no limit is enforced.
	OverflowNoCap OverflowPolicy = iota
	// OverflowDrop silently discards entries past capacity.
	OverflowDrop
	// OverflowTrunc discards entries past capacity but records how many
	// were dropped.
	OverflowTrunc
)

// Logbook accumulates per-severity log entries for one parse and, if a
// zerolog.Logger is attached, mirrors each entry through it for ambient
// observability.
type Logbook struct {
	entries map[Severity][]LogEntry

	policy       OverflowPolicy
	capacity     int
	overflowed   bool
	droppedCount int

	logger *zerolog.Logger
}

// NewLogbook creates an unbounded Logbook, optionally mirroring entries to
// logger (nil disables mirroring).
func NewLogbook(logger *zerolog.Logger) *Logbook {
	return &Logbook{
		entries: make(map[Severity][]LogEntry),
		policy:  OverflowNoCap,
		logger:  logger,
	}
}

// WithCapacity bounds the number of entries a severity bucket may hold.
// Once any one bucket is full, policy takes effect for every later entry of
// every severity, not only for that bucket.
func (lb *Logbook) WithCapacity(capacity int, policy OverflowPolicy) *Logbook {
	lb.capacity = capacity
	lb.policy = policy
	return lb
}

func (lb *Logbook) record(sev Severity, msg string, pos int, tagName, attrName string) {
	entry := LogEntry{Severity: sev, Msg: msg, Pos: pos, TagName: tagName, AttrName: attrName}

	if lb.policy != OverflowNoCap {
		if lb.overflowed {
			if lb.policy == OverflowTrunc {
				lb.droppedCount++
			}
			return
		}
		if len(lb.entries[sev]) >= lb.capacity {
			lb.overflowed = true
			if lb.policy == OverflowTrunc {
				lb.droppedCount = 1
			}
			return
		}
	}

	lb.entries[sev] = append(lb.entries[sev], entry)

	if lb.logger != nil {
		var event *zerolog.Event
		switch sev {
		case Warning:
			event = lb.logger.Warn()
		case Error:
			event = lb.logger.Error()
		default:
			event = lb.logger.Debug()
		}
		event.Int("pos", pos).Str("tag", tagName).Str("attr", attrName).Msg(msg)
	}
}

// Debug records an informational entry.
func (lb *Logbook) Debug(msg string, pos int, tagName, attrName string) {
	lb.record(Debug, msg, pos, tagName, attrName)
}

// Warn records a value-adjusted entry.
func (lb *Logbook) Warn(msg string, pos int, tagName, attrName string) {
	lb.record(Warning, msg, pos, tagName, attrName)
}

// Err records a recoverable semantic-violation entry.
func (lb *Logbook) Err(msg string, pos int, tagName, attrName string) {
	lb.record(Error, msg, pos, tagName, attrName)
}

// Entries returns every recorded entry for the given severity.
func (lb *Logbook) Entries(sev Severity) []LogEntry {
	return lb.entries[sev]
}

// DroppedCount is the number of entries discarded after overflow.
func (lb *Logbook) DroppedCount() int { return lb.droppedCount }

// SerializableEntry is a JSON-friendly rendering of a LogEntry.
type SerializableEntry struct {
	Severity string `json:"severity"`
	Msg      string `json:"msg"`
	Pos      int    `json:"pos"`
	TagName  string `json:"tag_name,omitempty"`
	AttrName string `json:"attr_name,omitempty"`
}

// Serializable flattens every recorded entry, across all severities, in
// insertion order per bucket, for machine-readable diagnostics.
func (lb *Logbook) Serializable() []SerializableEntry {
	out := make([]SerializableEntry, 0)
	for _, sev := range []Severity{Debug, Warning, Error} {
		for _, e := range lb.entries[sev] {
			out = append(out, SerializableEntry{
				Severity: sev.String(),
				Msg:      e.Msg,
				Pos:      e.Pos,
				TagName:  e.TagName,
				AttrName: e.AttrName,
			})
		}
	}
	return out
}
