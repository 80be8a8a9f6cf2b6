package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/signadot/dyndecode/dyn"
	"github.com/signadot/dyndecode/format"
)

// Encode writes v to w in format f. Ordered maps keep their order in JSON
// and YAML output; CBOR output uses core deterministic encoding.
func Encode(w io.Writer, v any, f format.Format) error {
	switch f {
	case format.JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toJSON(v))
	case format.YAMLFormat:
		return yaml.NewEncoder(w).Encode(toYAML(v))
	case format.CBORFormat:
		em, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			return err
		}
		return em.NewEncoder(w).Encode(toCBOR(v))
	}
	return fmt.Errorf("%w: %d", ErrFormat, f)
}

// Marshal is Encode into a byte slice.
func Marshal(v any, f format.Format) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(buf, v, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toJSON rewrites native maps with non-string keys as ordered maps sorted
// by key text, and cons lists as slices.
func toJSON(v any) any {
	switch x := v.(type) {
	case *dyn.OrderedMap:
		if x == nil {
			return x
		}
		m := dyn.NewOrderedMap()
		for k, v := range x.All() {
			m.Set(k, toJSON(v))
		}
		return m
	case *dyn.Cons:
		return mapSlice(x.Slice(), toJSON)
	case []any:
		return mapSlice(x, toJSON)
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, v := range x {
			res[k] = toJSON(v)
		}
		return res
	case map[any]any:
		m := dyn.NewOrderedMap()
		for _, k := range sortedKeys(x) {
			m.Set(fmt.Sprint(k), toJSON(x[k]))
		}
		return m
	}
	return v
}

func toYAML(v any) any {
	switch x := v.(type) {
	case *dyn.OrderedMap:
		if x == nil {
			return nil
		}
		res := make(yaml.MapSlice, 0, x.Len())
		for k, v := range x.All() {
			res = append(res, yaml.MapItem{Key: toYAML(k), Value: toYAML(v)})
		}
		return res
	case *dyn.Cons:
		return mapSlice(x.Slice(), toYAML)
	case []any:
		return mapSlice(x, toYAML)
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, v := range x {
			res[k] = toYAML(v)
		}
		return res
	case map[any]any:
		res := make(yaml.MapSlice, 0, len(x))
		for _, k := range sortedKeys(x) {
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(x[k])})
		}
		return res
	}
	return v
}

func toCBOR(v any) any {
	switch x := v.(type) {
	case *dyn.OrderedMap:
		if x == nil {
			return nil
		}
		res := make(map[any]any, x.Len())
		for k, v := range x.All() {
			res[k] = toCBOR(v)
		}
		return res
	case *dyn.Cons:
		return mapSlice(x.Slice(), toCBOR)
	case []any:
		return mapSlice(x, toCBOR)
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, v := range x {
			res[k] = toCBOR(v)
		}
		return res
	case map[any]any:
		res := make(map[any]any, len(x))
		for k, v := range x {
			res[k] = toCBOR(v)
		}
		return res
	}
	return v
}

func mapSlice(vs []any, f func(any) any) []any {
	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = f(v)
	}
	return res
}

func sortedKeys(m map[any]any) []any {
	keys := make([]any, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b any) int {
		if c := compareKind(a, b); c != 0 {
			return c
		}
		sa, sb := fmt.Sprint(a), fmt.Sprint(b)
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		}
		return 0
	})
	return keys
}

// compareKind orders keys of different types by type name so that, for
// example, all integer keys sort before all string keys.
func compareKind(a, b any) int {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == tb {
		return 0
	}
	na, nb := fmt.Sprint(ta), fmt.Sprint(tb)
	if na < nb {
		return -1
	}
	return 1
}
