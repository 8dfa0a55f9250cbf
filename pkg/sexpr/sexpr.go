// Package sexpr provides the structural reader for resin. It parses
// s-expression source text into node trees that preserve every comment
// and the exact source text of every atom, so a document can be
// re-rendered without losing information the author wrote down.
package sexpr

import "strings"

// Kind discriminates node variants.
type Kind int

const (
	KindList Kind = iota
	KindVector
	KindMap
	KindSymbol
	KindKeyword
	KindString
	KindNumber
	KindComment
	KindQuote
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindVector:
		return "vector"
	case KindMap:
		return "map"
	case KindSymbol:
		return "symbol"
	case KindKeyword:
		return "keyword"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindComment:
		return "comment"
	case KindQuote:
		return "quote"
	default:
		return "unknown"
	}
}

// Collection reports whether the kind has children delimited by brackets.
func (k Kind) Collection() bool {
	return k == KindList || k == KindVector || k == KindMap
}

// Node is one parsed form. Atoms carry their exact source text in Text;
// collections carry their children in order, comments included. Quote
// nodes carry the reader-macro marker in Text and exactly one child.
//
// Nodes are never mutated after parsing; navigation happens through
// pkg/zipper which re-derives views instead of changing the tree.
type Node struct {
	Kind     Kind
	Text     string
	Children []*Node

	// Line and Col are 1-based source positions of the first character.
	Line int
	Col  int

	// BlankBefore counts the blank lines separating a top-level form
	// from the previous one. Only set on nodes returned by ParseAll.
	BlankBefore int
}

// Delimiters returns the bracket pair for a collection kind.
func (n *Node) Delimiters() (left, right string) {
	switch n.Kind {
	case KindVector:
		return "[", "]"
	case KindMap:
		return "{", "}"
	default:
		return "(", ")"
	}
}

// Head returns the first non-comment child of a collection, or nil.
func (n *Node) Head() *Node {
	for _, c := range n.Children {
		if c.Kind != KindComment {
			return c
		}
	}
	return nil
}

// String reconstructs a canonical flat rendering of the node. It is a
// debugging aid, not the pretty-printer; comments keep their text but
// collapse onto the same line.
func (n *Node) String() string {
	var sb strings.Builder
	n.appendTo(&sb)
	return sb.String()
}

func (n *Node) appendTo(sb *strings.Builder) {
	if n == nil {
		return
	}
	switch {
	case n.Kind.Collection():
		left, right := n.Delimiters()
		sb.WriteString(left)
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(' ')
			}
			c.appendTo(sb)
		}
		sb.WriteString(right)
	case n.Kind == KindQuote:
		sb.WriteString(n.Text)
		if len(n.Children) > 0 {
			n.Children[0].appendTo(sb)
		}
	default:
		sb.WriteString(n.Text)
	}
}

// ExpandTabs replaces each tab with spaces up to the next tab stop of
// the given width. Width zero or negative leaves the text untouched.
func ExpandTabs(text string, width int) string {
	if width <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}
	var sb strings.Builder
	col := 0
	for _, r := range text {
		switch r {
		case '\t':
			n := width - col%width
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String()
}
