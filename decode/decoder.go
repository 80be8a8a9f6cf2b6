package decode

import (
	"slices"

	"github.com/signadot/dyndecode/dyn"
)

// Decoder turns a dynamic value into a T, reporting every problem it finds
// as a DecodeError.
type Decoder[T any] struct {
	fn func(any) (T, Errors)
}

// New wraps fn as a Decoder. fn must return the zero T alongside errors.
func New[T any](fn func(any) (T, Errors)) Decoder[T] {
	return Decoder[T]{fn: fn}
}

func (d Decoder[T]) Decode(data any) (T, Errors) {
	if d.fn == nil {
		var zero T
		return zero, Errors{{Expected: "Decoder", Found: "Nothing", Value: data}}
	}
	return d.fn(data)
}

// Run decodes data with d. On failure the error is the Errors list and the
// value is the zero T.
func Run[T any](data any, d Decoder[T]) (T, error) {
	v, errs := d.Decode(data)
	if len(errs) > 0 {
		var zero T
		return zero, errs
	}
	return v, nil
}

// Success ignores its input and returns v.
func Success[T any](v T) Decoder[T] {
	return New(func(any) (T, Errors) { return v, nil })
}

// Failure always fails, expecting expected. zero is returned as the value.
func Failure[T any](zero T, expected string) Decoder[T] {
	return New(func(data any) (T, Errors) {
		return zero, Errors{{Expected: expected, Found: dyn.Classify(data), Value: data}}
	})
}

// Dynamic returns its input unchanged.
func Dynamic() Decoder[any] {
	return New(func(data any) (any, Errors) { return data, nil })
}

// NewPrimitive builds a decoder from a conversion which reports whether it
// accepted the value. name is the expected shape in errors.
func NewPrimitive[T any](name string, f func(any) (T, bool)) Decoder[T] {
	return New(func(data any) (T, Errors) {
		v, ok := f(data)
		if !ok {
			var zero T
			return zero, Errors{{Expected: name, Found: dyn.Classify(data), Value: data}}
		}
		return v, nil
	})
}

// Field decodes the field key of a record with d and passes the result to
// next, which decodes the rest of the record. Errors from the field and
// from next are both reported.
//
// A missing field is an error expecting "Field", found "Nothing".
func Field[T, R any](key Key, d Decoder[T], next func(T) Decoder[R]) Decoder[R] {
	return Subfield([]Key{key}, d, next)
}

// Subfield is Field for a nested path.
func Subfield[T, R any](path []Key, d Decoder[T], next func(T) Decoder[R]) Decoder[R] {
	return New(func(data any) (R, Errors) {
		out, errs1 := walk(path, d, data, missingField[T])
		res, errs2 := next(out).Decode(data)
		if errs := slices.Concat(errs1, errs2); len(errs) > 0 {
			var zero R
			return zero, errs
		}
		return res, nil
	})
}

// OptionalField is Field where a missing field decodes to def. A field
// which is present but fails d is still an error.
func OptionalField[T, R any](key Key, def T, d Decoder[T], next func(T) Decoder[R]) Decoder[R] {
	return New(func(data any) (R, Errors) {
		out, errs1 := walk([]Key{key}, d, data, defaultTo(def))
		res, errs2 := next(out).Decode(data)
		if errs := slices.Concat(errs1, errs2); len(errs) > 0 {
			var zero R
			return zero, errs
		}
		return res, nil
	})
}

// At decodes the value at path with d.
func At[T any](path []Key, d Decoder[T]) Decoder[T] {
	return New(func(data any) (T, Errors) {
		return walk(path, d, data, missingField[T])
	})
}

// OptionallyAt is At where a missing key anywhere on path decodes to def.
func OptionallyAt[T any](path []Key, def T, d Decoder[T]) Decoder[T] {
	return New(func(data any) (T, Errors) {
		return walk(path, d, data, defaultTo(def))
	})
}

// Within walks path leniently with Index: absent keys yield nil, which is
// then decoded by d. Only shape errors stop the walk.
func Within[T any](path []Key, d Decoder[T]) Decoder[T] {
	return New(func(data any) (T, Errors) {
		pos := make([]string, 0, len(path))
		for _, key := range path {
			next, err := Index(data, key)
			if err != nil {
				var zero T
				return zero, shapeError(data, err).PushPath(pos...)
			}
			pos = append(pos, key.String())
			data = next
		}
		v, errs := d.Decode(data)
		return v, errs.PushPath(pos...)
	})
}

func walk[T any](path []Key, d Decoder[T], data any, miss func(pos []string) (T, Errors)) (T, Errors) {
	pos := make([]string, 0, len(path))
	for _, key := range path {
		next, found, err := StrictIndex(data, key)
		if err != nil {
			var zero T
			return zero, shapeError(data, err).PushPath(pos...)
		}
		pos = append(pos, key.String())
		if !found {
			return miss(pos)
		}
		data = next
	}
	v, errs := d.Decode(data)
	return v, errs.PushPath(pos...)
}

func missingField[T any](pos []string) (T, Errors) {
	var zero T
	return zero, Errors{{Expected: "Field", Found: "Nothing", Path: slices.Clone(pos)}}
}

func defaultTo[T any](def T) func([]string) (T, Errors) {
	return func([]string) (T, Errors) { return def, nil }
}

// ListOf decodes a cons list or array whose elements all decode with d.
// Only the first failing element is reported.
func ListOf[T any](d Decoder[T]) Decoder[[]T] {
	return New(func(data any) ([]T, Errors) {
		return List(data, d.Decode, PushPath[T], 0)
	})
}

// DictOf decodes an ordered map into a Go map. Key failures are reported
// under "keys" and value failures under "values"; decoding stops at the
// first failing entry.
func DictOf[K comparable, V any](kd Decoder[K], vd Decoder[V]) Decoder[map[K]V] {
	return New(func(data any) (map[K]V, Errors) {
		m, ok := Dict(data)
		if !ok {
			return nil, Errors{{Expected: KindDict, Found: dyn.Classify(data), Value: data}}
		}
		res := make(map[K]V, m.Len())
		for k, v := range m.All() {
			kk, errs := kd.Decode(k)
			if len(errs) > 0 {
				return nil, errs.PushPath("keys")
			}
			vv, errs := vd.Decode(v)
			if len(errs) > 0 {
				return nil, errs.PushPath("values")
			}
			res[kk] = vv
		}
		return res, nil
	})
}

// Optional decodes nil to a nil pointer and anything else with d.
func Optional[T any](d Decoder[T]) Decoder[*T] {
	return New(func(data any) (*T, Errors) {
		if dyn.KindOf(data) == dyn.NilKind {
			return nil, nil
		}
		v, errs := d.Decode(data)
		if len(errs) > 0 {
			return nil, errs
		}
		return &v, nil
	})
}

func Map[T, R any](d Decoder[T], f func(T) R) Decoder[R] {
	return New(func(data any) (R, Errors) {
		v, errs := d.Decode(data)
		if len(errs) > 0 {
			var zero R
			return zero, errs
		}
		return f(v), nil
	})
}

func MapErrors[T any](d Decoder[T], f func(Errors) Errors) Decoder[T] {
	return New(func(data any) (T, Errors) {
		v, errs := d.Decode(data)
		if len(errs) > 0 {
			var zero T
			return zero, f(errs)
		}
		return v, nil
	})
}

// CollapseErrors replaces all errors of d with one expecting name.
func CollapseErrors[T any](d Decoder[T], name string) Decoder[T] {
	return New(func(data any) (T, Errors) {
		v, errs := d.Decode(data)
		if len(errs) > 0 {
			var zero T
			return zero, Errors{{Expected: name, Found: dyn.Classify(data), Value: data}}
		}
		return v, nil
	})
}

// Then chooses the next decoder from the result of d, both run on the same
// input. Used for decoding tagged unions.
func Then[T, R any](d Decoder[T], f func(T) Decoder[R]) Decoder[R] {
	return New(func(data any) (R, Errors) {
		v, errs := d.Decode(data)
		if len(errs) > 0 {
			var zero R
			return zero, errs
		}
		return f(v).Decode(data)
	})
}

// OneOf tries first, then each alternative in turn, returning the first
// success. If all fail, the errors of first are returned.
func OneOf[T any](first Decoder[T], alternatives ...Decoder[T]) Decoder[T] {
	return New(func(data any) (T, Errors) {
		v, errs := first.Decode(data)
		if len(errs) == 0 {
			return v, nil
		}
		for _, alt := range alternatives {
			if av, aerrs := alt.Decode(data); len(aerrs) == 0 {
				return av, nil
			}
		}
		var zero T
		return zero, errs
	})
}

// Recursive defers building a decoder until it is used, so a decoder can
// refer to itself.
func Recursive[T any](f func() Decoder[T]) Decoder[T] {
	return New(func(data any) (T, Errors) {
		return f().Decode(data)
	})
}
