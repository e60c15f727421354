package guidefmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

const maxLineBytes = 1024 * 1024

// ParseRequest configures Parse.
type ParseRequest struct {
	Reader  io.Reader
	Width   int
	Options []Option
}

// FormatRequest configures Format.
type FormatRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Options []Option
}

// Parse reads a Guide markup document and returns its node graph with
// navigation links back-filled. The input is validated and fully parsed
// before anything is returned; any error means no usable document.
func Parse(req ParseRequest) (*Document, error) {
	if req.Reader == nil {
		return nil, fmt.Errorf("parse: reader is nil")
	}
	cfg := newConfig(req.Options)

	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	p := parser{
		doc:  &Document{width: req.Width},
		wrap: newLineWrapper(req.Width),
	}
	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		p.line++
		if err := p.feed(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse: scan: %w", err)
	}
	if err := p.finish(); err != nil {
		return nil, err
	}

	if cfg.backfill {
		p.doc.Backfill()
	}
	return p.doc, nil
}

// Format parses a document and writes its canonical rendition. Parsing
// completes before the first output byte, so a malformed document never
// produces partial output.
func Format(req FormatRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("format: writer is nil")
	}
	doc, err := Parse(ParseRequest{
		Reader:  req.Reader,
		Width:   req.Width,
		Options: req.Options,
	})
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(req.Writer); err != nil {
		return fmt.Errorf("format: write: %w", err)
	}
	return nil
}

type parser struct {
	doc  *Document
	cur  *Node
	wrap lineWrapper
	line int
}

// feed processes one raw input line.
func (p *parser) feed(raw string) error {
	line := strings.TrimRight(raw, " \t\r")
	switch classifyLine(line) {
	case classIgnore:
		return nil
	case classGlobal:
		if len(p.doc.Nodes) > 0 {
			return syntaxErrorf(p.line, ErrMisplacedGlobal, "%q", line)
		}
		p.doc.Preamble = append(p.doc.Preamble, line)
		return nil
	case classStructural:
		return p.declare(line)
	case classLiteral:
		return p.literal(line)
	default:
		return p.body(line)
	}
}

// declare handles @node and the link declarations.
func (p *parser) declare(line string) error {
	kw := lineKeyword(line)
	args := strings.TrimSpace(line[len(kw):])

	if kw == "@node" {
		name, title := splitWord(args)
		if name == "" {
			return syntaxErrorf(p.line, ErrMalformedToken, "@node requires a name")
		}
		p.flushPending()
		node := &Node{Name: name, Title: title}
		p.doc.Nodes = append(p.doc.Nodes, node)
		p.cur = node
		return nil
	}

	if p.cur == nil {
		return syntaxErrorf(p.line, ErrNoCurrentNode, "%q", line)
	}
	for kind, keyword := range linkKeywords {
		if kw == keyword {
			p.cur.links.set(LinkKind(kind), strings.Trim(args, `"`))
			return nil
		}
	}
	return syntaxErrorf(p.line, ErrMalformedToken, "%q", line)
}

// literal appends a line verbatim, closing any wrapped text above it so no
// reflow happens across a literal boundary.
func (p *parser) literal(line string) error {
	if p.cur == nil {
		// Blank separator lines ahead of the first node attach nowhere.
		if line == "" {
			return nil
		}
		return syntaxErrorf(p.line, ErrNoCurrentNode, "%q", line)
	}
	p.flushPending()
	p.cur.Lines = append(p.cur.Lines, line)
	return nil
}

// body tokenizes a wrappable line and feeds the accumulator. The line end
// counts as a single-space separator, so consecutive body lines join.
func (p *parser) body(line string) error {
	if p.cur == nil {
		return syntaxErrorf(p.line, ErrNoCurrentNode, "%q", line)
	}
	rest := line
	for rest != "" {
		tok, remainder, err := nextToken(rest)
		if err != nil {
			return syntaxErrorf(p.line, err, "%q", rest)
		}
		if tok.Kind == tokenSpace {
			if out, ok := p.wrap.completeWord(tok.Markup); ok {
				p.cur.Lines = append(p.cur.Lines, out)
			}
		} else {
			p.wrap.appendToken(tok)
		}
		rest = remainder
	}
	if out, ok := p.wrap.completeWord(" "); ok {
		p.cur.Lines = append(p.cur.Lines, out)
	}
	return nil
}

// finish flushes the trailing wrapped line at end of input.
func (p *parser) finish() error {
	if out, ok := p.wrap.flushLine(); ok {
		if p.cur == nil {
			return syntaxErrorf(p.line, ErrNoCurrentNode, "%q", out)
		}
		p.cur.Lines = append(p.cur.Lines, out)
	}
	return nil
}

func (p *parser) flushPending() {
	if out, ok := p.wrap.flushLine(); ok && p.cur != nil {
		p.cur.Lines = append(p.cur.Lines, out)
	}
}

func splitWord(s string) (word, rest string) {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
