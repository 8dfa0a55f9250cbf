package traverse

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// ValueCaps navigates a plain in-memory value by its own shape. Slices
// and arrays print as vectors, maps print as maps with keys in sorted
// order, everything else is a scalar. There is no comment or
// whitespace fidelity in this representation.
type ValueCaps struct{}

// valueCursor threads parent and sibling context through a traversal
// of a plain value, which has no links of its own.
type valueCursor struct {
	val      interface{}
	parent   *valueCursor
	siblings []interface{}
	index    int
}

func (ValueCaps) Name() string { return "value" }

func (ValueCaps) Bind(input interface{}) interface{} {
	if c, ok := input.(*valueCursor); ok {
		return c
	}
	return &valueCursor{val: input}
}

func (ValueCaps) FirstChild(cur interface{}) (interface{}, bool) {
	c := cursor(cur)
	children := childValues(c.val)
	if len(children) == 0 {
		return nil, false
	}
	return &valueCursor{val: children[0], parent: c, siblings: children}, true
}

func (ValueCaps) NextSibling(cur interface{}) (interface{}, bool) {
	c := cursor(cur)
	if c.parent == nil || c.index+1 >= len(c.siblings) {
		return nil, false
	}
	return &valueCursor{val: c.siblings[c.index+1], parent: c.parent, siblings: c.siblings, index: c.index + 1}, true
}

func (ValueCaps) Parent(cur interface{}) (interface{}, bool) {
	c := cursor(cur)
	if c.parent == nil {
		return nil, false
	}
	return c.parent, true
}

func (ValueCaps) TagOf(cur interface{}) Tag {
	v := cursor(cur).val
	if v == nil {
		return TagNil
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return TagVector
	case reflect.Map:
		return TagMap
	case reflect.String:
		return TagString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return TagNumber
	default:
		return TagSymbol
	}
}

func (ValueCaps) ValueOf(cur interface{}) string {
	v := cursor(cur).val
	if v == nil {
		return "nil"
	}
	switch s := v.(type) {
	case string:
		return strconv.Quote(s)
	default:
		return fmt.Sprint(v)
	}
}

func childValues(v interface{}) []interface{} {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		out := make([]interface{}, 0, len(keys)*2)
		for _, k := range keys {
			out = append(out, k.Interface(), rv.MapIndex(k).Interface())
		}
		return out
	default:
		return nil
	}
}

func cursor(cur interface{}) *valueCursor {
	c, ok := cur.(*valueCursor)
	if !ok {
		panic(fmt.Sprintf("traverse: value cursor is %T, not a value cursor", cur))
	}
	return c
}
