// Package token defines the intermediate unit the renderer produces and
// the finishers consume. A stream is an ordered, finite sequence of
// tokens; concatenating every Text field in order reproduces the
// rendered output exactly.
package token

import "strings"

// Kind classifies a token for colorization and compaction.
type Kind int

const (
	// Whitespace is indentation, separators and newlines.
	Whitespace Kind = iota
	// Element is an atom: symbol, keyword, string, number or comment.
	Element
	// LeftBoundary opens a collection: "(", "[" or "{".
	LeftBoundary
	// RightBoundary closes a collection: ")", "]" or "}".
	RightBoundary
)

func (k Kind) String() string {
	switch k {
	case Whitespace:
		return "whitespace"
	case Element:
		return "element"
	case LeftBoundary:
		return "left-boundary"
	case RightBoundary:
		return "right-boundary"
	default:
		return "unknown"
	}
}

// Token is the (text, color, kind) triple flowing from the renderer to
// the finishers. Color is a semantic tag ("keyword", "string", ...) or
// empty for none; it is assigned by the colorize mapping table, not by
// the renderer.
type Token struct {
	Text  string
	Color string
	Kind  Kind
}

// Boundary reports whether the token opens or closes a collection.
func (t Token) Boundary() bool {
	return t.Kind == LeftBoundary || t.Kind == RightBoundary
}

// Stream is one rendered document.
type Stream []Token

// String is the plain finish: byte-for-byte concatenation of every
// token text in order. Whitespace tokens are never elided.
func (s Stream) String() string {
	var sb strings.Builder
	for _, t := range s {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// Len returns the number of tokens in the stream.
func (s Stream) Len() int { return len(s) }
