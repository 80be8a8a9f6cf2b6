package decode

import (
	"github.com/signadot/dyndecode/debug"
	"github.com/signadot/dyndecode/dyn"
)

// StrictIndex looks key up in data and distinguishes an absent key from a
// present one, whatever its value:
//
//   - map-like values (ordered maps, Go maps, weak maps) report presence
//     as the map does and never fail;
//   - cons lists are walked for positions 0 to 2, and a list too short to
//     have that position is an ErrIndexable shape error, not an absence;
//   - arrays indexed by position and all other containers are tested for
//     membership: found or absent;
//   - anything else fails with ErrIndexable for a position and ErrDict
//     for a name.
//
// data is never modified.
func StrictIndex(data any, key Key) (any, bool, error) {
	kind := dyn.KindOf(data)
	if debug.Index() {
		debug.Logf("strict index %s %q", kind, key)
	}
	switch {
	case kind.IsMapLike():
		v, ok := dyn.MapLookup(data, key.Value())
		return v, ok, nil
	case kind == dyn.ListKind && key.prefix():
		l, _ := dyn.AsCons(data)
		v, ok := l.At(key.Int())
		if !ok {
			return nil, false, indexError(data, key)
		}
		return v, true, nil
	case kind.IsObject():
		v, ok := member(data, kind, key)
		return v, ok, nil
	}
	return nil, false, indexError(data, key)
}

// Index is the lenient form of StrictIndex: an absent key and a key
// present with a nil value both yield nil. Cons lists are walked for
// positions 0 to 2 and fail with ErrIndexable when too short.
func Index(data any, key Key) (any, error) {
	kind := dyn.KindOf(data)
	if debug.Index() {
		debug.Logf("index %s %q", kind, key)
	}
	switch {
	case kind.IsMapLike():
		v, _ := dyn.MapLookup(data, key.Value())
		return v, nil
	case kind == dyn.ListKind && key.prefix():
		l, _ := dyn.AsCons(data)
		v, ok := l.At(key.Int())
		if !ok {
			return nil, indexError(data, key)
		}
		return v, nil
	case kind.IsObject():
		v, _ := member(data, kind, key)
		return v, nil
	}
	return nil, indexError(data, key)
}

// member tests key for membership in a non map-like container.
func member(data any, kind dyn.Kind, key Key) (any, bool) {
	switch kind {
	case dyn.ArrayKind:
		if !key.IsPosition() {
			return nil, false
		}
		return dyn.ElemAt(data, key.Int())
	case dyn.RecordKind:
		return dyn.FieldLookup(data, key.String())
	}
	// cons lists past the addressable prefix
	return nil, false
}

func indexError(data any, key Key) error {
	kind := KindDict
	if key.IsPosition() {
		kind = KindIndexable
	}
	return &IndexError{Kind: kind, Key: key, Found: dyn.Classify(data)}
}
