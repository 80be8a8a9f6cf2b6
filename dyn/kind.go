package dyn

import (
	"fmt"
	"reflect"
)

type Kind int

const (
	NilKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	BytesKind
	DictKind
	MapKind
	WeakMapKind
	ListKind
	ArrayKind
	RecordKind
	FuncKind
	UnknownKind
)

var kindNames = map[Kind]string{
	NilKind:     "Nil",
	BoolKind:    "Bool",
	IntKind:     "Int",
	FloatKind:   "Float",
	StringKind:  "String",
	BytesKind:   "BitArray",
	DictKind:    "Dict",
	MapKind:     "Map",
	WeakMapKind: "WeakMap",
	ListKind:    "List",
	ArrayKind:   "Array",
	RecordKind:  "Object",
	FuncKind:    "Function",
	UnknownKind: "Unknown",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a kind>", k)
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, s := range kindNames {
		if s == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		NilKind,
		BoolKind,
		IntKind,
		FloatKind,
		StringKind,
		BytesKind,
		DictKind,
		MapKind,
		WeakMapKind,
		ListKind,
		ArrayKind,
		RecordKind,
		FuncKind,
		UnknownKind,
	}
}

// IsMapLike reports whether values of kind k are looked up by key with an
// explicit absence signal.
func (k Kind) IsMapLike() bool {
	switch k {
	case DictKind, MapKind, WeakMapKind:
		return true
	default:
		return false
	}
}

// IsObject reports whether values of kind k are containers, that is
// whether a membership test makes sense on them.
func (k Kind) IsObject() bool {
	switch k {
	case DictKind, MapKind, WeakMapKind, ListKind, ArrayKind, RecordKind:
		return true
	default:
		return false
	}
}

func (k Kind) IsSequence() bool {
	return k == ListKind || k == ArrayKind
}

// KindOf classifies v. Pointers and interfaces are followed, so a *T has
// the kind of T and a nil pointer is NilKind. The nil *Cons is the empty
// list and a nil *OrderedMap is NilKind.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case nil:
		return NilKind
	case *OrderedMap:
		if x == nil {
			return NilKind
		}
		return DictKind
	case *Cons:
		return ListKind
	case weakMapper:
		return WeakMapKind
	case Getter:
		return MapKind
	case bool:
		return BoolKind
	case string:
		return StringKind
	case []byte:
		return BytesKind
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return IntKind
	case float32, float64:
		return FloatKind
	case []any:
		return ArrayKind
	case map[string]any, map[any]any:
		return MapKind
	}
	return reflectKind(reflect.ValueOf(v))
}

func reflectKind(rv reflect.Value) Kind {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return NilKind
		}
		rv = rv.Elem()
		if rv.CanInterface() {
			switch rv.Interface().(type) {
			case *OrderedMap, *Cons, weakMapper, Getter:
				return KindOf(rv.Interface())
			}
		}
	}
	switch rv.Kind() {
	case reflect.Invalid:
		return NilKind
	case reflect.Bool:
		return BoolKind
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return IntKind
	case reflect.Float32, reflect.Float64:
		return FloatKind
	case reflect.String:
		return StringKind
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return BytesKind
		}
		return ArrayKind
	case reflect.Array:
		return ArrayKind
	case reflect.Map:
		return MapKind
	case reflect.Struct:
		return RecordKind
	case reflect.Func:
		return FuncKind
	default:
		return UnknownKind
	}
}

// Classify returns the human readable shape name of v, used in decode
// errors. Values of UnknownKind are named by their Go type.
func Classify(v any) string {
	k := KindOf(v)
	if k == UnknownKind {
		return fmt.Sprintf("%T", v)
	}
	return k.String()
}
