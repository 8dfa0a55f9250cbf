// Package traverse defines the navigation capability set the renderer
// uses to walk an input, with one implementation per representation:
// DocCaps walks a comment-preserving document through its zipper, and
// ValueCaps walks a plain in-memory value by its own shape.
//
// The dispatcher selects exactly one implementation per print call,
// matching the classifier's representation tag. Handing a capability
// set a cursor from the other representation is a programming error
// and panics.
package traverse

// Tag names the syntactic role of the node under a cursor.
type Tag string

const (
	TagList    Tag = "list"
	TagVector  Tag = "vector"
	TagMap     Tag = "map"
	TagSymbol  Tag = "symbol"
	TagKeyword Tag = "keyword"
	TagString  Tag = "string"
	TagNumber  Tag = "number"
	TagComment Tag = "comment"
	TagQuote   Tag = "quote"
	TagNil     Tag = "nil"
)

// Collection reports whether the tag has children delimited by brackets.
func (t Tag) Collection() bool {
	return t == TagList || t == TagVector || t == TagMap
}

// Caps is the capability set contract. Cursors are opaque to callers;
// Bind converts a classified input into the implementation's cursor
// type, and the navigation operations move between cursors.
type Caps interface {
	// Name identifies the representation: "document" or "value".
	Name() string
	// Bind normalizes a classified input into a cursor.
	Bind(input interface{}) interface{}
	// FirstChild returns the first child cursor, if any.
	FirstChild(cur interface{}) (interface{}, bool)
	// NextSibling returns the next sibling cursor, if any.
	NextSibling(cur interface{}) (interface{}, bool)
	// Parent returns the parent cursor, if any.
	Parent(cur interface{}) (interface{}, bool)
	// TagOf returns the syntactic role of the cursor's node.
	TagOf(cur interface{}) Tag
	// ValueOf returns the exact text of an atom cursor. For document
	// cursors this is the source text; for plain values it is a
	// readable rendering. Collection cursors return the quote marker
	// or empty.
	ValueOf(cur interface{}) string
}
