package guidefmt

import (
	"strings"
	"unicode/utf8"
)

const introducer = '@'

// Token is a classified fragment of a source line. Markup holds the
// verbatim source text; the display form is derived by Rendered.
type Token struct {
	Markup string
	Kind   tokenKind
	label  string
	target string
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and tests.
type TokenKind = tokenKind

const (
	tokenWord tokenKind = iota
	tokenSpace
	tokenLink
	tokenAttribute
	tokenEscape
)

const (
	// TokenWord represents a run of plain non-space characters.
	TokenWord tokenKind = tokenWord
	// TokenSpace represents a run of space characters.
	TokenSpace tokenKind = tokenSpace
	// TokenLink represents a navigation link with display text and target.
	TokenLink tokenKind = tokenLink
	// TokenAttribute represents a bare formatting code with no payload.
	TokenAttribute tokenKind = tokenAttribute
	// TokenEscape represents an escaped single character.
	TokenEscape tokenKind = tokenEscape
)

// nextToken classifies the longest token at the start of s and returns it
// with the unconsumed remainder. The alternatives are tried in a fixed
// order: link, attribute, escape, word, space. A suffix matching none of
// them is ErrMalformedToken; the caller must abort rather than skip bytes.
func nextToken(s string) (Token, string, error) {
	if s == "" {
		return Token{}, "", ErrMalformedToken
	}
	if s[0] == ' ' {
		i := 1
		for i < len(s) && s[i] == ' ' {
			i++
		}
		return Token{Markup: s[:i], Kind: tokenSpace}, s[i:], nil
	}
	if s[0] == introducer {
		if tok, rest, ok := matchLink(s); ok {
			return tok, rest, nil
		}
		if tok, rest, ok := matchAttribute(s); ok {
			return tok, rest, nil
		}
		if len(s) > 1 {
			_, size := utf8.DecodeRuneInString(s[1:])
			return Token{Markup: s[:1+size], Kind: tokenEscape}, s[1+size:], nil
		}
		// A lone trailing introducer completes nothing.
		return Token{}, "", ErrMalformedToken
	}
	i := 0
	for i < len(s) && s[i] != ' ' && s[i] != introducer {
		i++
	}
	return Token{Markup: s[:i], Kind: tokenWord}, s[i:], nil
}

// matchLink recognizes @{"display text" link target}. The target may be
// quoted; surrounding quotes are stripped from the recorded target name.
func matchLink(s string) (Token, string, bool) {
	if !strings.HasPrefix(s, `@{"`) {
		return Token{}, "", false
	}
	end := strings.IndexByte(s[3:], '"')
	if end < 0 {
		return Token{}, "", false
	}
	label := s[3 : 3+end]
	rest := s[4+end:]

	i := 0
	for i < len(rest) && rest[i] == ' ' {
		i++
	}
	j := i
	for j < len(rest) && rest[j] != ' ' && rest[j] != '}' {
		j++
	}
	if !strings.EqualFold(rest[i:j], "link") {
		return Token{}, "", false
	}
	close := strings.IndexByte(rest[j:], '}')
	if close < 0 {
		return Token{}, "", false
	}
	target := strings.TrimSpace(rest[j : j+close])
	target = strings.Trim(target, `"`)
	if target == "" {
		return Token{}, "", false
	}
	consumed := len(s) - len(rest) + j + close + 1
	return Token{
		Markup: s[:consumed],
		Kind:   tokenLink,
		label:  label,
		target: target,
	}, s[consumed:], true
}

// matchAttribute recognizes @{code} where code contains no quote, brace or
// introducer. The code may carry arguments, e.g. @{fg shine}.
func matchAttribute(s string) (Token, string, bool) {
	if !strings.HasPrefix(s, "@{") {
		return Token{}, "", false
	}
	i := 2
	for i < len(s) && s[i] != '"' && s[i] != '}' && s[i] != introducer {
		i++
	}
	if i == 2 || i == len(s) || s[i] != '}' {
		return Token{}, "", false
	}
	return Token{Markup: s[:i+1], Kind: tokenAttribute}, s[i+1:], true
}
