package traverse

import (
	"fmt"

	"github.com/resin-fmt/resin/pkg/sexpr"
	"github.com/resin-fmt/resin/pkg/zipper"
)

// DocCaps navigates a structural document through its zipper. Cursors
// are *zipper.Loc values.
type DocCaps struct{}

func (DocCaps) Name() string { return "document" }

func (DocCaps) Bind(input interface{}) interface{} {
	switch v := input.(type) {
	case *zipper.Loc:
		return v
	case *sexpr.Node:
		return zipper.New(v)
	default:
		panic(fmt.Sprintf("traverse: document capability bound to %T", input))
	}
}

func (DocCaps) FirstChild(cur interface{}) (interface{}, bool) {
	if next := loc(cur).Down(); next != nil {
		return next, true
	}
	return nil, false
}

func (DocCaps) NextSibling(cur interface{}) (interface{}, bool) {
	if next := loc(cur).Right(); next != nil {
		return next, true
	}
	return nil, false
}

func (DocCaps) Parent(cur interface{}) (interface{}, bool) {
	if next := loc(cur).Up(); next != nil {
		return next, true
	}
	return nil, false
}

func (DocCaps) TagOf(cur interface{}) Tag {
	switch loc(cur).Tag() {
	case sexpr.KindList:
		return TagList
	case sexpr.KindVector:
		return TagVector
	case sexpr.KindMap:
		return TagMap
	case sexpr.KindKeyword:
		return TagKeyword
	case sexpr.KindString:
		return TagString
	case sexpr.KindNumber:
		return TagNumber
	case sexpr.KindComment:
		return TagComment
	case sexpr.KindQuote:
		return TagQuote
	default:
		return TagSymbol
	}
}

func (DocCaps) ValueOf(cur interface{}) string {
	return loc(cur).Node().Text
}

func loc(cur interface{}) *zipper.Loc {
	l, ok := cur.(*zipper.Loc)
	if !ok {
		panic(fmt.Sprintf("traverse: document cursor is %T, not *zipper.Loc", cur))
	}
	return l
}
