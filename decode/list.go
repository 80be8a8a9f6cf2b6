package decode

import (
	"strconv"

	"github.com/signadot/dyndecode/debug"
	"github.com/signadot/dyndecode/dyn"
)

// List decodes every element of a cons list or array with decode.
//
// Decoding stops at the first element which fails: its errors are
// relabeled with pushPath and the element's position, counted from start,
// and returned with a nil result. Elements after it are never decoded.
// A nil pushPath means PushPath.
//
// Data of any other shape fails with a single "List" error carrying an
// empty path. An empty list decodes to an empty, non-nil slice.
func List[T any](data any, decode func(any) (T, Errors), pushPath func(T, Errors, string) (T, Errors), start int) ([]T, Errors) {
	elems, ok := dyn.Elements(data)
	if !ok {
		return nil, Errors{{Expected: "List", Found: dyn.Classify(data), Value: data}}
	}
	if pushPath == nil {
		pushPath = PushPath[T]
	}
	res := []T{}
	pos := start
	for elem := range elems {
		out, errs := decode(elem)
		if len(errs) > 0 {
			if debug.List() {
				debug.Logf("list element %d failed: %v", pos, errs)
				debug.LogAny(elem)
			}
			_, errs = pushPath(out, errs, strconv.Itoa(pos))
			return nil, errs
		}
		res = append(res, out)
		pos++
	}
	return res, nil
}
