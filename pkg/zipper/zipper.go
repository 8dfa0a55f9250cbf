// Package zipper provides an immutable, navigable location over a
// parsed sexpr tree. A Loc is never mutated; every move derives a new
// location, so a document handed to one print call can be walked again
// later without interference.
package zipper

import "github.com/resin-fmt/resin/pkg/sexpr"

// Loc is a position inside a document tree.
type Loc struct {
	node   *sexpr.Node
	parent *Loc
	index  int
}

// New creates a location at the root of the given document.
func New(root *sexpr.Node) *Loc {
	if root == nil {
		return nil
	}
	return &Loc{node: root}
}

// Node returns the node at this location.
func (l *Loc) Node() *sexpr.Node { return l.node }

// Tag returns the node kind at this location.
func (l *Loc) Tag() sexpr.Kind { return l.node.Kind }

// Down moves to the first child. Quote nodes descend into their single
// wrapped form. Returns nil when there is nothing below.
func (l *Loc) Down() *Loc {
	if len(l.node.Children) == 0 {
		return nil
	}
	return &Loc{node: l.node.Children[0], parent: l, index: 0}
}

// Right moves to the next sibling, or nil at the end of the parent.
func (l *Loc) Right() *Loc {
	if l.parent == nil {
		return nil
	}
	siblings := l.parent.node.Children
	if l.index+1 >= len(siblings) {
		return nil
	}
	return &Loc{node: siblings[l.index+1], parent: l.parent, index: l.index + 1}
}

// Up moves to the parent location, or nil at the root.
func (l *Loc) Up() *Loc { return l.parent }

// Root walks back up to the document root.
func (l *Loc) Root() *Loc {
	cur := l
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}
