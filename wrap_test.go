package guidefmt

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

// wrapWords feeds plain words through the accumulator and returns the
// emitted markup lines.
func wrapWords(t *testing.T, words []string, width int) []string {
	t.Helper()
	lw := newLineWrapper(width)
	var lines []string
	for _, w := range words {
		rest := w
		for rest != "" {
			tok, r, err := nextToken(rest)
			if err != nil {
				t.Fatalf("tokenize %q: %v", rest, err)
			}
			lw.appendToken(tok)
			rest = r
		}
		if out, ok := lw.completeWord(" "); ok {
			lines = append(lines, out)
		}
	}
	if out, ok := lw.flushLine(); ok {
		lines = append(lines, out)
	}
	return lines
}

// renderedLine collapses a markup line to its display text.
func renderedLine(t *testing.T, line string) string {
	t.Helper()
	var b strings.Builder
	rest := line
	for rest != "" {
		tok, r, err := nextToken(rest)
		if err != nil {
			t.Fatalf("tokenize %q: %v", rest, err)
		}
		b.WriteString(tok.Rendered())
		rest = r
	}
	return b.String()
}

func TestWrapBoundsAndOrder(t *testing.T) {
	var words []string
	for i := 0; i < 40; i++ {
		words = append(words, strings.Repeat("abcdefghij"[i%10:i%10+1], 1+i%13))
	}
	for _, width := range []int{20, 40, DefaultWidth} {
		lines := wrapWords(t, words, width)
		for i, line := range lines {
			if w := ansi.PrintableRuneWidth(renderedLine(t, line)); w > width {
				t.Fatalf("width %d: line %d is %d wide: %q", width, i+1, w, line)
			}
		}
		joined := strings.Join(lines, " ")
		if joined != strings.Join(words, " ") {
			t.Fatalf("width %d: word sequence not preserved:\n%q", width, joined)
		}
	}
}

func TestWrapUsesRenderedWidth(t *testing.T) {
	// 60 characters of markup rendering as just "ok" must wrap as a
	// 2-column word.
	link := `@{"ok" link ` + strings.Repeat("x", 47) + `}`
	if len(link) != 60 {
		t.Fatalf("link markup is %d bytes", len(link))
	}
	words := []string{"aaaa", "bbbb", link, "cccc"}
	lines := wrapWords(t, words, 15)
	want := []string{"aaaa bbbb " + link, "cccc"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i+1, lines[i], want[i])
		}
	}
}

func TestWrapDiscardsSeparatorAtBreak(t *testing.T) {
	lines := wrapWords(t, []string{"aaaa", "bbbb", "cccc"}, 9)
	want := []string{"aaaa bbbb", "cccc"}
	if len(lines) != 2 || lines[0] != want[0] || lines[1] != want[1] {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for _, line := range lines {
		if strings.HasPrefix(line, " ") || strings.HasSuffix(line, " ") {
			t.Fatalf("line %q carries a boundary space", line)
		}
	}
}

func TestWrapOverlongWordStandsAlone(t *testing.T) {
	long := strings.Repeat("x", 30)
	lines := wrapWords(t, []string{"aa", long, "bb"}, 10)
	want := []string{"aa", long, "bb"}
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i+1, lines[i], want[i])
		}
	}
}

func TestWrapAttributesAreZeroWidth(t *testing.T) {
	words := []string{"@{b}aaaa@{ub}", "bbbb"}
	lines := wrapWords(t, words, 9)
	if len(lines) != 1 {
		t.Fatalf("attribute markup counted toward width: %q", lines)
	}
	if lines[0] != "@{b}aaaa@{ub} bbbb" {
		t.Fatalf("line = %q", lines[0])
	}
}

func TestWrapCompleteWordEmptyIsNoop(t *testing.T) {
	lw := newLineWrapper(10)
	if out, ok := lw.completeWord(" "); ok {
		t.Fatalf("empty completeWord produced %q", out)
	}
	if out, ok := lw.flushLine(); ok {
		t.Fatalf("empty flushLine produced %q", out)
	}
}

func TestWrapFlushResetsState(t *testing.T) {
	lw := newLineWrapper(10)
	tok, _, err := nextToken("hello")
	if err != nil {
		t.Fatal(err)
	}
	lw.appendToken(tok)
	if _, ok := lw.completeWord(" "); ok {
		t.Fatal("unexpected flush")
	}
	out, ok := lw.flushLine()
	if !ok || out != "hello" {
		t.Fatalf("flushLine = %q, %v", out, ok)
	}
	if out, ok := lw.flushLine(); ok {
		t.Fatalf("second flushLine produced %q", out)
	}
}
