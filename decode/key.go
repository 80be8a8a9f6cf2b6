package decode

import "strconv"

// Key is one step into a dynamic value: either a position or a field name.
// Whether a key is a position decides which error kind a failed lookup
// reports (KindIndexable for positions, KindDict for names).
type Key struct {
	name  string
	index int
	pos   bool
}

// Position returns a key addressing element i. i should be non-negative;
// negative positions are never present.
func Position(i int) Key {
	return Key{index: i, pos: true}
}

// Name returns a key addressing field s.
func Name(s string) Key {
	return Key{name: s}
}

// Keys builds a path of keys from ints and strings. It panics on any other
// argument type.
func Keys(ks ...any) []Key {
	res := make([]Key, len(ks))
	for i, k := range ks {
		switch x := k.(type) {
		case int:
			res[i] = Position(x)
		case string:
			res[i] = Name(x)
		case Key:
			res[i] = x
		default:
			panic("decode.Keys: keys must be int, string or Key")
		}
	}
	return res
}

func (k Key) IsPosition() bool {
	return k.pos
}

// Int returns the position of a position key and -1 for a name.
func (k Key) Int() int {
	if !k.pos {
		return -1
	}
	return k.index
}

// Value returns the key as it is looked up in map-like values: an int for
// positions, a string for names.
func (k Key) Value() any {
	if k.pos {
		return k.index
	}
	return k.name
}

// String returns the path segment form of k.
func (k Key) String() string {
	if k.pos {
		return strconv.Itoa(k.index)
	}
	return k.name
}

// prefix reports whether k addresses one of the first three positions, the
// only ones a cons list is indexed at directly.
func (k Key) prefix() bool {
	return k.pos && k.index >= 0 && k.index <= 2
}
