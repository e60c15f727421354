package guidefmt

import (
	"github.com/muesli/reflow/ansi"
)

// DefaultWidth is the canonical rendered line width of the dialect.
const DefaultWidth = 78

// lineWrapper accumulates tokens into a word and words into a line,
// keeping the source markup and its rendered form in lockstep so the wrap
// decision can use the rendered width while the emitted line keeps the
// markup intact. The pending separator is the space run that will join the
// current word to the line if it fits.
type lineWrapper struct {
	width int

	lineMarkup string
	lineWidth  int
	wordMarkup string
	wordWidth  int
	space      string
}

func newLineWrapper(width int) lineWrapper {
	if width <= 0 {
		width = DefaultWidth
	}
	return lineWrapper{width: width}
}

// appendToken adds a token to the word being assembled. It never emits a
// line by itself.
func (lw *lineWrapper) appendToken(tok Token) {
	lw.wordMarkup += tok.Markup
	lw.wordWidth += ansi.PrintableRuneWidth(tok.Rendered())
}

// completeWord commits the current word to the line. If line, separator and
// word together would exceed the width, the line is emitted first and the
// word starts a fresh line with the separator discarded. nextSpace becomes
// the pending separator for the following word. The returned line, when ok,
// is markup text.
func (lw *lineWrapper) completeWord(nextSpace string) (string, bool) {
	if lw.lineMarkup == "" && lw.wordMarkup == "" {
		return "", false
	}
	if lw.wordMarkup == "" {
		lw.space = nextSpace
		return "", false
	}

	var flushed string
	var ok bool
	sepWidth := ansi.PrintableRuneWidth(lw.space)
	if lw.lineMarkup != "" && lw.lineWidth+sepWidth+lw.wordWidth > lw.width {
		flushed, ok = lw.lineMarkup, true
		lw.lineMarkup = lw.wordMarkup
		lw.lineWidth = lw.wordWidth
	} else {
		if lw.lineMarkup != "" {
			lw.lineMarkup += lw.space
			lw.lineWidth += sepWidth
		}
		lw.lineMarkup += lw.wordMarkup
		lw.lineWidth += lw.wordWidth
	}
	lw.wordMarkup = ""
	lw.wordWidth = 0
	lw.space = nextSpace
	return flushed, ok
}

// flushLine force-emits whatever has accumulated and resets all buffer
// state. Used at node boundaries, before literal lines and at end of input.
func (lw *lineWrapper) flushLine() (string, bool) {
	if lw.wordMarkup != "" {
		if lw.lineMarkup != "" {
			lw.lineMarkup += lw.space
		}
		lw.lineMarkup += lw.wordMarkup
	}
	out := lw.lineMarkup
	lw.reset()
	if out == "" {
		return "", false
	}
	return out, true
}

func (lw *lineWrapper) reset() {
	lw.lineMarkup = ""
	lw.lineWidth = 0
	lw.wordMarkup = ""
	lw.wordWidth = 0
	lw.space = ""
}
