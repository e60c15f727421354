package guidefmt

import (
	"io"
	"strings"
)

// WriteTo emits the canonical rendition: preamble lines first, then each
// node as a separator rule, its @node header, any links in the fixed
// prev/next/toc/index order, and its body lines. It implements
// io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := countingWriter{w: w}
	for _, line := range d.Preamble {
		cw.writeLine(line)
	}
	rule := d.ruleLine()
	for _, n := range d.Nodes {
		cw.writeLine(rule)
		header := "@node " + n.Name
		if n.Title != "" {
			header += " " + n.Title
		}
		cw.writeLine(header)
		for kind := LinkKind(0); kind < linkKinds; kind++ {
			if target, ok := n.links.get(kind); ok {
				cw.writeLine(kind.Keyword() + " " + target)
			}
		}
		for _, line := range n.Lines {
			cw.writeLine(line)
		}
	}
	return cw.n, cw.err
}

// ruleLine is the node separator: an ignored @rem line padded with dashes
// to the wrap width, so re-parsing the output drops it again.
func (d *Document) ruleLine() string {
	width := d.Width()
	dashes := width - len(ignoreKeyword) - 1
	if dashes < 1 {
		dashes = 1
	}
	return ignoreKeyword + " " + strings.Repeat("-", dashes)
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) writeLine(line string) {
	if cw.err != nil {
		return
	}
	n, err := io.WriteString(cw.w, line)
	cw.n += int64(n)
	cw.err = err
	if cw.err != nil {
		return
	}
	n, err = io.WriteString(cw.w, "\n")
	cw.n += int64(n)
	cw.err = err
}
