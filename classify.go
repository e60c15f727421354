package guidefmt

import "strings"

type lineClass uint8

const (
	classIgnore lineClass = iota
	classGlobal
	classStructural
	classLiteral
	classBody
)

const ignoreKeyword = "@rem"

// Document-level declarations allowed only before the first node.
var globalKeywords = []string{"@database", "@author", "@$ver:", "@copyright", "@date"}

// Structural declarations handled by the node assembler.
var structuralKeywords = []string{"@node", "@prev", "@next", "@toc", "@index"}

// Layout markup that pins a line in place: justified or heading lines are
// never reflowed.
var literalMarkupPrefixes = []string{
	"@{jcenter}", "@{jright}", "@{h1}", "@{h2}", "@{h3}",
}

// classifyLine decides how a right-trimmed input line is processed. The
// checks run in priority order: ignore lines are dropped, global and
// structural declarations are routed to the assembler, literal lines pass
// through verbatim, everything else is tokenized and wrapped.
func classifyLine(line string) lineClass {
	if kw := lineKeyword(line); kw != "" {
		if kw == ignoreKeyword {
			return classIgnore
		}
		for _, g := range globalKeywords {
			if kw == g {
				return classGlobal
			}
		}
		for _, s := range structuralKeywords {
			if kw == s {
				return classStructural
			}
		}
	}
	if isLiteralLine(line) {
		return classLiteral
	}
	return classBody
}

// lineKeyword returns the lowercased first word of a command line, or ""
// when the line does not start with the introducer.
func lineKeyword(line string) string {
	if line == "" || line[0] != introducer {
		return ""
	}
	end := strings.IndexByte(line, ' ')
	if end < 0 {
		end = len(line)
	}
	return strings.ToLower(line[:end])
}

func isLiteralLine(line string) bool {
	if line == "" {
		return true
	}
	if line[0] == ' ' || line[0] == '\t' {
		return true
	}
	// Three or more adjacent spaces mean hand-made alignment; exactly two
	// do not, and such a line still reflows.
	if strings.Contains(line, "   ") {
		return true
	}
	if line[0] == introducer && len(line) >= 2 && line[1] != introducer && line[1] != '{' {
		return true
	}
	if line == "@" {
		return true
	}
	for _, prefix := range literalMarkupPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return isSingleLink(line)
}

// isSingleLink reports whether the whole line is exactly one link token.
func isSingleLink(line string) bool {
	tok, rest, ok := matchLink(line)
	return ok && rest == "" && tok.Kind == tokenLink
}
