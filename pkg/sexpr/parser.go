package sexpr

import (
	"strings"
	"unicode"

	"github.com/resin-fmt/resin/pkg/errors"
)

// ParseOne parses the first form in text. Leading whitespace and
// comments are skipped. Empty or whitespace-only input yields a nil
// node and no error; trailing content after the form is ignored.
func ParseOne(text string) (*Node, error) {
	p := newParser(text)
	p.skipBlank(nil)
	if p.eof() {
		return nil, nil
	}
	return p.parseForm()
}

// ParseAll parses every top-level form in text, in order. Top-level
// comments become KindComment nodes so multi-document processing can
// reproduce them. Each node records the number of blank lines that
// separated it from the previous form.
func ParseAll(text string) ([]*Node, error) {
	p := newParser(text)
	var docs []*Node
	for {
		var blanks int
		p.skipBlank(&blanks)
		if p.eof() {
			return docs, nil
		}
		var n *Node
		var err error
		if p.peek() == ';' {
			n = p.parseComment()
		} else {
			n, err = p.parseForm()
			if err != nil {
				return nil, err
			}
		}
		n.BlankBefore = blanks
		docs = append(docs, n)
	}
}

type parser struct {
	src  []rune
	pos  int
	line int
	col  int
}

func newParser(text string) *parser {
	return &parser{src: []rune(text), line: 1, col: 1}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune { return p.src[p.pos] }

func (p *parser) peekAt(off int) (rune, bool) {
	if p.pos+off >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos+off], true
}

func (p *parser) next() rune {
	r := p.src[p.pos]
	p.pos++
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return r
}

func (p *parser) errHere(format string, args ...interface{}) error {
	prefix := []interface{}{p.line, p.col}
	return errors.Newf(errors.ErrParse, "line %d:%d: "+format, append(prefix, args...)...)
}

// skipBlank advances past whitespace. When blanks is non-nil it also
// counts fully blank lines, which ParseAll uses to preserve the
// original separation between top-level forms.
func (p *parser) skipBlank(blanks *int) {
	newlines := 0
	for !p.eof() {
		r := p.peek()
		if r == ',' || unicode.IsSpace(r) {
			if r == '\n' {
				newlines++
			}
			p.next()
			continue
		}
		break
	}
	if blanks != nil && newlines > 1 {
		*blanks = newlines - 1
	}
}

// skipSpace advances past whitespace inside a collection, treating
// commas as whitespace the way Clojure readers do.
func (p *parser) skipSpace() {
	for !p.eof() {
		r := p.peek()
		if r == ',' || unicode.IsSpace(r) {
			p.next()
			continue
		}
		break
	}
}

func (p *parser) parseForm() (*Node, error) {
	if p.eof() {
		return nil, p.errHere("unexpected end of input")
	}
	line, col := p.line, p.col
	r := p.peek()
	switch {
	case r == '(':
		return p.parseCollection(KindList, ')')
	case r == '[':
		return p.parseCollection(KindVector, ']')
	case r == '{':
		return p.parseCollection(KindMap, '}')
	case r == ')' || r == ']' || r == '}':
		return nil, p.errHere("unexpected %q", string(r))
	case r == ';':
		return p.parseComment(), nil
	case r == '"':
		return p.parseString()
	case r == '\'' || r == '`' || r == '~' || r == '@' || r == '^' || r == '#':
		return p.parseQuoted(line, col)
	default:
		return p.parseAtom(line, col), nil
	}
}

func (p *parser) parseCollection(kind Kind, closer rune) (*Node, error) {
	n := &Node{Kind: kind, Line: p.line, Col: p.col}
	p.next() // opening bracket
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errHere("unterminated %s, expected %q", kind, string(closer))
		}
		r := p.peek()
		if r == closer {
			p.next()
			return n, nil
		}
		if r == ')' || r == ']' || r == '}' {
			return nil, p.errHere("mismatched %q closing %s", string(r), kind)
		}
		child, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
}

func (p *parser) parseComment() *Node {
	n := &Node{Kind: KindComment, Line: p.line, Col: p.col}
	var sb strings.Builder
	for !p.eof() && p.peek() != '\n' {
		sb.WriteRune(p.next())
	}
	n.Text = sb.String()
	return n
}

func (p *parser) parseString() (*Node, error) {
	n := &Node{Kind: KindString, Line: p.line, Col: p.col}
	var sb strings.Builder
	sb.WriteRune(p.next()) // opening quote
	for {
		if p.eof() {
			return nil, p.errHere("unterminated string")
		}
		r := p.next()
		sb.WriteRune(r)
		if r == '\\' {
			if p.eof() {
				return nil, p.errHere("unterminated escape in string")
			}
			sb.WriteRune(p.next())
			continue
		}
		if r == '"' && sb.Len() > 1 {
			n.Text = sb.String()
			return n, nil
		}
	}
}

// parseQuoted handles reader-macro prefixes: quote, syntax-quote,
// unquote, unquote-splicing, deref, metadata and dispatch forms. The
// marker text is kept verbatim so rendering reproduces the source.
func (p *parser) parseQuoted(line, col int) (*Node, error) {
	marker := string(p.next())
	switch marker {
	case "~":
		if r, ok := p.peekAt(0); ok && r == '@' {
			marker += string(p.next())
		}
	case "#":
		// #_ (discard), #' (var), #{ (set, parsed as a map-shaped
		// collection with the marker retained) and #( (anonymous fn).
		if r, ok := p.peekAt(0); ok && (r == '_' || r == '\'') {
			marker += string(p.next())
		}
	}
	p.skipSpace()
	if p.eof() {
		return nil, p.errHere("dangling reader macro %q", marker)
	}
	child, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindQuote, Text: marker, Children: []*Node{child}, Line: line, Col: col}, nil
}

func isAtomEnd(r rune) bool {
	if r == ',' || unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '(', ')', '[', ']', '{', '}', '"', ';':
		return true
	}
	return false
}

func (p *parser) parseAtom(line, col int) *Node {
	var sb strings.Builder
	for !p.eof() && !isAtomEnd(p.peek()) {
		sb.WriteRune(p.next())
	}
	text := sb.String()
	n := &Node{Text: text, Line: line, Col: col}
	switch {
	case strings.HasPrefix(text, ":"):
		n.Kind = KindKeyword
	case looksNumeric(text):
		n.Kind = KindNumber
	default:
		n.Kind = KindSymbol
	}
	return n
}

func looksNumeric(text string) bool {
	if text == "" {
		return false
	}
	i := 0
	if text[0] == '+' || text[0] == '-' {
		if len(text) == 1 {
			return false
		}
		i = 1
	}
	return text[i] >= '0' && text[i] <= '9'
}
