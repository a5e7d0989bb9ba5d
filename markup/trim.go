package markup

const whitespaceSet = " \n\r\t\x00\x0B"

func isWhitespace(b byte) bool {
	for i := 0; i < len(whitespaceSet); i++ {
		if whitespaceSet[i] == b {
			return true
		}
	}
	return false
}

// trimBeforeIfNeeded absorbs whitespace immediately preceding ev's span into
// ev.TrimBefore, down to leftBoundary, when a START tag has trimBefore or an
// END tag has rtrimContent. leftBoundary is the output cursor, so two
// adjacent tags can never claim the same whitespace.
func trimBeforeIfNeeded(text string, ev *TagEvent, cfg TagConfig, leftBoundary int) {
	needs := (ev.Kind.HasStart() && cfg.TrimBefore) || (ev.Kind.HasEnd() && cfg.RTrimContent)
	if !needs {
		return
	}

	i := ev.Pos
	count := 0
	for i-1 >= leftBoundary && isWhitespace(text[i-1]) {
		i--
		count++
	}

	if count > 0 {
		ev.TrimBefore += count
		ev.Pos -= count
		ev.Len += count
	}
}

// trimAfterIfNeeded absorbs whitespace immediately following ev's span into
// ev.TrimAfter when a START tag has ltrimContent or an END tag has
// trimAfter.
func trimAfterIfNeeded(text string, ev *TagEvent, cfg TagConfig) {
	needs := (ev.Kind.HasStart() && cfg.LTrimContent) || (ev.Kind.HasEnd() && cfg.TrimAfter)
	if !needs {
		return
	}

	n := len(text)
	i := ev.Pos + ev.Len
	count := 0
	for i < n && isWhitespace(text[i]) {
		i++
		count++
	}

	if count > 0 {
		ev.TrimAfter += count
		ev.Len += count
	}
}
