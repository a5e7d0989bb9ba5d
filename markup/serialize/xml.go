package serialize

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// XMLEmitter is the default Emitter. A document with no tags is wrapped in a
// single <pt>; otherwise the document is wrapped in <rt> and each tag mirrors
// its name as an element (<B>…</B>), with <st>/<et> wrapping the literal
// markup text at the element's start/end, <i> wrapping whitespace absorbed by
// trimming, and everything between tags written as raw text. Any element
// still open at end of input is auto-closed, so the output is always
// well-formed regardless of unmatched input.
type XMLEmitter struct{}

func (XMLEmitter) Emit(tags []Tag, text string) (string, error) {
	if len(tags) == 0 {
		var buf bytes.Buffer
		buf.WriteString("<pt>")
		xml.EscapeText(&buf, []byte(text))
		buf.WriteString("</pt>")
		return buf.String(), nil
	}

	var buf bytes.Buffer
	buf.WriteString("<rt>")

	cursor := 0
	var open []string

	for _, t := range tags {
		if t.Pos > cursor {
			writeRaw(&buf, text[cursor:t.Pos])
		}
		if t.Pos < cursor {
			// Overlapping span; resolver invariants forbid this, but never
			// emit a negative-length text run.
			cursor = t.Pos
		}

		var span string
		if t.End() > t.Pos {
			span = text[t.Pos:t.End()]
		}
		wsBefore, body, wsAfter := splitSpan(span, t.TrimBefore, t.TrimAfter)

		writeWrapped(&buf, "i", wsBefore)

		switch {
		case t.IsStart && t.IsEnd:
			writeOpenTag(&buf, t.Name, t.Attrs)
			writeRaw(&buf, body)
			writeCloseTag(&buf, t.Name)
		case t.IsStart:
			writeOpenTag(&buf, t.Name, t.Attrs)
			writeWrapped(&buf, "st", body)
			open = append(open, t.Name)
		case t.IsEnd:
			writeWrapped(&buf, "et", body)
			if len(open) > 0 {
				writeCloseTag(&buf, open[len(open)-1])
				open = open[:len(open)-1]
			} else {
				writeCloseTag(&buf, t.Name)
			}
		}

		writeWrapped(&buf, "i", wsAfter)

		cursor = t.End()
	}

	if cursor < len(text) {
		writeRaw(&buf, text[cursor:])
	}

	for i := len(open) - 1; i >= 0; i-- {
		writeCloseTag(&buf, open[i])
	}

	buf.WriteString("</rt>")
	return buf.String(), nil
}

// splitSpan carves a tag's literal byte span into the whitespace trim.go
// absorbed on each side and the body left in between.
func splitSpan(span string, trimBefore, trimAfter int) (before, body, after string) {
	if trimBefore > len(span) {
		trimBefore = len(span)
	}
	before, rest := span[:trimBefore], span[trimBefore:]
	if trimAfter > len(rest) {
		trimAfter = len(rest)
	}
	body, after = rest[:len(rest)-trimAfter], rest[len(rest)-trimAfter:]
	return before, body, after
}

func writeRaw(buf *bytes.Buffer, s string) {
	xml.EscapeText(buf, []byte(s))
}

// writeWrapped emits <elem>body</elem>, or nothing if body is empty — <i>,
// <st> and <et> are all omitted rather than emitted empty.
func writeWrapped(buf *bytes.Buffer, elem, body string) {
	if body == "" {
		return
	}
	buf.WriteByte('<')
	buf.WriteString(elem)
	buf.WriteByte('>')
	xml.EscapeText(buf, []byte(body))
	buf.WriteString("</")
	buf.WriteString(elem)
	buf.WriteByte('>')
}

func writeOpenTag(buf *bytes.Buffer, name string, attrs []Attr) {
	buf.WriteByte('<')
	buf.WriteString(name)
	for _, a := range attrs {
		buf.WriteByte(' ')
		buf.WriteString(escapeAttrName(a.Name))
		buf.WriteString(`="`)
		xml.EscapeText(buf, []byte(a.Value))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')
}

func writeCloseTag(buf *bytes.Buffer, name string) {
	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')
}

// escapeAttrName guards against a filtered attribute name that isn't a valid
// XML name; the schema is expected to only ever produce identifier-shaped
// names, so this is a defensive fallback rather than a normal path.
func escapeAttrName(name string) string {
	if strings.ContainsAny(name, " \t\n\"'=<>") {
		return "attr"
	}
	return name
}
