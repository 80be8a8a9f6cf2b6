package decode

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/dyndecode/dyn"

	"go.uber.org/multierr"
)

// Error kinds reported by the indexing operations.
const (
	KindIndexable = "Indexable"
	KindDict      = "Dict"
)

var (
	ErrIndexable = errors.New("not indexable")
	ErrDict      = errors.New("not a dict")
)

// IndexError reports that a value's shape cannot be indexed by a key.
type IndexError struct {
	Kind  string // KindIndexable or KindDict
	Key   Key
	Found string // Classify of the indexed value
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cannot index %s with %q: expected %s", e.Found, e.Key, e.Kind)
}

func (e *IndexError) Is(target error) bool {
	switch target {
	case ErrIndexable:
		return e.Kind == KindIndexable
	case ErrDict:
		return e.Kind == KindDict
	}
	return false
}

// DecodeError describes one mismatch between the expected and the observed
// shape of a value.
type DecodeError struct {
	Expected string
	Found    string
	Path     []string // outermost segment first
	Value    any      // offending value, if known
}

func (e DecodeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	}
	return fmt.Sprintf("expected %s, found %s at %s", e.Expected, e.Found, strings.Join(e.Path, "."))
}

// Errors is an ordered list of decode errors. The nil list means success.
type Errors []DecodeError

// PushPath returns a copy of es where segments are prepended to the path of
// every error. es itself is left unchanged.
func (es Errors) PushPath(segments ...string) Errors {
	if es == nil {
		return nil
	}
	res := make(Errors, len(es))
	for i, e := range es {
		e.Path = slices.Concat(segments, e.Path)
		res[i] = e
	}
	return res
}

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Err combines es into a single error, nil when es is empty.
// multierr.Errors recovers the individual DecodeErrors.
func (es Errors) Err() error {
	var err error
	for _, e := range es {
		err = multierr.Append(err, e)
	}
	return err
}

// PushPath prepends segment to the path of every error in errs, passing
// out through. It is the relabeling callback List uses by default.
func PushPath[T any](out T, errs Errors, segment string) (T, Errors) {
	return out, errs.PushPath(segment)
}

func shapeError(data any, err error) Errors {
	kind := KindIndexable
	var ie *IndexError
	if errors.As(err, &ie) {
		kind = ie.Kind
	}
	return Errors{{Expected: kind, Found: dyn.Classify(data), Value: data}}
}
