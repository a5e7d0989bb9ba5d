package markup

import "regexp"

// Pattern wraps a compiled regular expression so plugin configuration stays
// declarative; Compile is the only place a Pattern's *regexp.Regexp is
// constructed.
type Pattern struct {
	re *regexp.Regexp
}

// Compile builds a Pattern from a regular expression source string.
func Compile(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, NewConfigError("invalid-pattern", err)
	}
	return Pattern{re: re}, nil
}

// MustCompile is Compile but panics on error, for use in static plugin
// definitions.
func MustCompile(expr string) Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchGroup is one capture group of one match: its text and byte offset, or
// an empty string and offset -1 when the group didn't participate.
type MatchGroup struct {
	Text   string
	Offset int
}

// MatchSet is the capture groups of a single match, index 0 is the whole
// match.
type MatchSet []MatchGroup

// Recognizer turns raw regex matches into candidate tag events. It must be a
// pure function of (text, matches): the engine assumes nothing about purity
// across calls but tolerates duplicate or overlapping events.
type Recognizer interface {
	GetTags(text string, matches []MatchSet) []TagEvent
}

// RecognizerFunc adapts a plain function to the Recognizer interface.
type RecognizerFunc func(text string, matches []MatchSet) []TagEvent

func (f RecognizerFunc) GetTags(text string, matches []MatchSet) []TagEvent {
	return f(text, matches)
}

// FindAll runs p against text and returns every match's capture groups, in
// the same shape a Recognizer receives from dispatch. Exposed so a
// Recognizer implementation can be unit tested without a full Engine.Parse
// call.
func FindAll(p Pattern, text string) []MatchSet {
	return findAll(p, text)
}

func findAll(p Pattern, text string) []MatchSet {
	idxs := p.re.FindAllStringSubmatchIndex(text, -1)
	out := make([]MatchSet, 0, len(idxs))
	for _, m := range idxs {
		groups := len(m) / 2
		set := make(MatchSet, groups)
		for g := 0; g < groups; g++ {
			start, end := m[2*g], m[2*g+1]
			if start < 0 {
				set[g] = MatchGroup{Text: "", Offset: -1}
				continue
			}
			set[g] = MatchGroup{Text: text[start:end], Offset: start}
		}
		out = append(out, set)
	}
	return out
}
