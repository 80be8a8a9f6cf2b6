package dyn

import (
	"iter"
	"reflect"
	"strings"
)

// MapLookup looks key up in a map-like value: a Getter or a Go map. It
// reports false for absent keys and for values which are not map-like.
//
// Loaders produce integer keys as int64 or uint64, so an int key is also
// tried in those forms.
func MapLookup(v any, key any) (any, bool) {
	if g, ok := v.(Getter); ok {
		for _, k := range keyCandidates(key) {
			if res, ok := g.Get(k); ok {
				return res, true
			}
		}
		return nil, false
	}
	switch m := v.(type) {
	case map[string]any:
		s, ok := key.(string)
		if !ok {
			return nil, false
		}
		res, ok := m[s]
		return res, ok
	}
	rv := deref(reflect.ValueOf(v))
	if rv.Kind() != reflect.Map {
		if rv.IsValid() && rv.CanInterface() {
			if g, ok := rv.Interface().(Getter); ok {
				return MapLookup(g, key)
			}
		}
		return nil, false
	}
	for _, k := range keyCandidates(key) {
		kv, ok := mapKey(rv.Type().Key(), k)
		if !ok {
			continue
		}
		if e := rv.MapIndex(kv); e.IsValid() {
			return e.Interface(), true
		}
	}
	return nil, false
}

func keyCandidates(key any) []any {
	i, ok := key.(int)
	if !ok {
		return []any{key}
	}
	if i < 0 {
		return []any{i, int64(i)}
	}
	return []any{i, int64(i), uint64(i)}
}

func mapKey(kt reflect.Type, key any) (reflect.Value, bool) {
	if key == nil {
		if kt.Kind() == reflect.Interface {
			return reflect.Zero(kt), true
		}
		return reflect.Value{}, false
	}
	kv := reflect.ValueOf(key)
	if !kv.Comparable() {
		return reflect.Value{}, false
	}
	if kv.Type().AssignableTo(kt) {
		return kv, true
	}
	if kv.Kind() == kt.Kind() && kv.Type().ConvertibleTo(kt) {
		return kv.Convert(kt), true
	}
	return reflect.Value{}, false
}

// FieldLookup finds the exported field of the struct v (or *struct) named
// name. A `dyn` tag takes precedence over a `json` tag, which takes
// precedence over the Go field name; a tag of "-" hides the field.
func FieldLookup(v any, name string) (any, bool) {
	rv := deref(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	rt := rv.Type()
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		fn, ok := fieldName(f)
		if !ok || fn != name {
			continue
		}
		return rv.Field(i).Interface(), true
	}
	return nil, false
}

// FieldNames lists the names FieldLookup accepts for the struct v, in
// declaration order.
func FieldNames(v any) []string {
	rv := deref(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil
	}
	rt := rv.Type()
	var res []string
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if fn, ok := fieldName(f); ok {
			res = append(res, fn)
		}
	}
	return res
}

func fieldName(f reflect.StructField) (string, bool) {
	for _, tag := range []string{"dyn", "json"} {
		t, ok := f.Tag.Lookup(tag)
		if !ok {
			continue
		}
		n, _, _ := strings.Cut(t, ",")
		if n == "-" {
			return "", false
		}
		if n != "" {
			return n, true
		}
	}
	return f.Name, true
}

// ElemAt returns element i of a slice or array. It reports false when i is
// out of range or v is not an array.
func ElemAt(v any, i int) (any, bool) {
	if i < 0 {
		return nil, false
	}
	if a, ok := v.([]any); ok {
		if i >= len(a) {
			return nil, false
		}
		return a[i], true
	}
	if KindOf(v) != ArrayKind {
		return nil, false
	}
	rv := deref(reflect.ValueOf(v))
	if i >= rv.Len() {
		return nil, false
	}
	return rv.Index(i).Interface(), true
}

// Elements iterates over the elements of a cons list or array in order.
// It reports false for any other kind.
func Elements(v any) (iter.Seq[any], bool) {
	switch KindOf(v) {
	case ListKind:
		return asCons(v).All(), true
	case ArrayKind:
	default:
		return nil, false
	}
	if a, ok := v.([]any); ok {
		return func(yield func(any) bool) {
			for _, e := range a {
				if !yield(e) {
					return
				}
			}
		}, true
	}
	rv := deref(reflect.ValueOf(v))
	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}, true
}

// AsCons returns v as a cons list if it is one.
func AsCons(v any) (*Cons, bool) {
	if KindOf(v) != ListKind {
		return nil, false
	}
	return asCons(v), true
}

func asCons(v any) *Cons {
	if l, ok := v.(*Cons); ok {
		return l
	}
	rv := deref(reflect.ValueOf(v))
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		if l, ok := rv.Interface().(*Cons); ok {
			return l
		}
		rv = rv.Elem()
	}
	return nil
}

// deref follows pointers and interfaces, stopping at the dyn containers
// which are themselves pointers.
func deref(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		if rv.CanInterface() {
			switch rv.Interface().(type) {
			case *OrderedMap, *Cons, weakMapper:
				return rv
			}
		}
		rv = rv.Elem()
	}
	return rv
}
