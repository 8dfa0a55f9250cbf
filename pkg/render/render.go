// Package render turns a classified input into a token stream. The
// pipeline consumes engines through the Engine interface only; Basic
// is the default implementation, a deliberately simple width-aware
// layout that keeps a form on one line when it fits and otherwise
// breaks after the head with configured indentation.
package render

import (
	"strings"

	"github.com/resin-fmt/resin/pkg/config"
	"github.com/resin-fmt/resin/pkg/token"
	"github.com/resin-fmt/resin/pkg/traverse"
)

// Engine is a pure function from resolved options, starting depth and
// input to a token stream. Engines never mutate their input; the
// dispatcher never retries or reinterprets their output.
type Engine interface {
	Render(res *config.Resolved, depth int, input interface{}) (token.Stream, error)
}

// Basic is the built-in engine.
type Basic struct{}

// Render walks the input through the capability set bound in res.
func (Basic) Render(res *config.Resolved, depth int, input interface{}) (token.Stream, error) {
	if res.Caps == nil {
		panic("render: resolved options carry no capability set")
	}
	r := renderer{caps: res.Caps, width: res.Width(), indent: res.IndentWidth()}
	cur := res.Caps.Bind(input)
	col := depth * r.indent
	return r.emit(cur, col), nil
}

type renderer struct {
	caps   traverse.Caps
	width  int
	indent int
}

// emit renders the subtree at cur starting in column col.
func (r *renderer) emit(cur interface{}, col int) token.Stream {
	tag := r.caps.TagOf(cur)
	if !tag.Collection() && tag != traverse.TagQuote {
		return token.Stream{{Text: r.caps.ValueOf(cur), Kind: token.Element}}
	}

	if tag == traverse.TagQuote {
		marker := r.caps.ValueOf(cur)
		out := token.Stream{{Text: marker, Kind: token.Element}}
		if child, ok := r.caps.FirstChild(cur); ok {
			out = append(out, r.emit(child, col+len(marker))...)
		}
		return out
	}

	if flat, ok := r.flat(cur); ok && col+len(flat.String()) <= r.width {
		return flat
	}
	return r.broken(cur, col)
}

// flat renders a subtree on a single line. It fails when the subtree
// contains a comment, which cannot share a line with what follows it.
func (r *renderer) flat(cur interface{}) (token.Stream, bool) {
	tag := r.caps.TagOf(cur)
	switch {
	case tag == traverse.TagComment:
		return nil, false
	case tag == traverse.TagQuote:
		out := token.Stream{{Text: r.caps.ValueOf(cur), Kind: token.Element}}
		if child, ok := r.caps.FirstChild(cur); ok {
			inner, flatOK := r.flat(child)
			if !flatOK {
				return nil, false
			}
			out = append(out, inner...)
		}
		return out, true
	case !tag.Collection():
		return token.Stream{{Text: r.caps.ValueOf(cur), Kind: token.Element}}, true
	}

	left, right := delimiters(tag)
	out := token.Stream{{Text: left, Kind: token.LeftBoundary}}
	child, ok := r.caps.FirstChild(cur)
	for i := 0; ok; i++ {
		if i > 0 {
			out = append(out, token.Token{Text: " ", Kind: token.Whitespace})
		}
		inner, flatOK := r.flat(child)
		if !flatOK {
			return nil, false
		}
		out = append(out, inner...)
		child, ok = r.caps.NextSibling(child)
	}
	return append(out, token.Token{Text: right, Kind: token.RightBoundary}), true
}

// broken renders a collection with the head on the opening line and
// every following child on its own indented line.
func (r *renderer) broken(cur interface{}, col int) token.Stream {
	tag := r.caps.TagOf(cur)
	left, right := delimiters(tag)
	inner := col + r.indent

	out := token.Stream{{Text: left, Kind: token.LeftBoundary}}
	child, ok := r.caps.FirstChild(cur)
	lastWasComment := false
	for i := 0; ok; i++ {
		if i == 0 {
			out = append(out, r.emit(child, col+len(left))...)
		} else {
			out = append(out, token.Token{
				Text: "\n" + strings.Repeat(" ", inner),
				Kind: token.Whitespace,
			})
			out = append(out, r.emit(child, inner)...)
		}
		lastWasComment = r.caps.TagOf(child) == traverse.TagComment
		child, ok = r.caps.NextSibling(child)
	}
	// A closing bracket must not land on a comment's line.
	if lastWasComment {
		out = append(out, token.Token{
			Text: "\n" + strings.Repeat(" ", inner),
			Kind: token.Whitespace,
		})
	}
	return append(out, token.Token{Text: right, Kind: token.RightBoundary})
}

func delimiters(tag traverse.Tag) (string, string) {
	switch tag {
	case traverse.TagVector:
		return "[", "]"
	case traverse.TagMap:
		return "{", "}"
	default:
		return "(", ")"
	}
}
