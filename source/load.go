package source

import (
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/signadot/dyndecode/dyn"
	"github.com/signadot/dyndecode/format"
)

var (
	ErrFormat = errors.New("unsupported format")
	ErrEmpty  = errors.New("empty document")
)

// Load decodes the first document in data. The format is JSON unless an
// option says otherwise.
func Load(data []byte, opts ...Option) (any, error) {
	o := newOpts(opts)
	docs, err := o.load(data, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		if o.format.IsYAML() {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", o.format, ErrEmpty)
	}
	return docs[0], nil
}

// LoadAll decodes every document in data: the documents of a YAML stream,
// a sequence of JSON values or a CBOR sequence.
func LoadAll(data []byte, opts ...Option) ([]any, error) {
	return newOpts(opts).load(data, -1)
}

// load decodes at most limit documents, all of them when limit < 0.
func (o *loadOpts) load(data []byte, limit int) ([]any, error) {
	var (
		docs []any
		err  error
	)
	switch o.format {
	case format.JSONFormat:
		docs, err = loadJSON(data, limit)
	case format.YAMLFormat:
		docs, err = loadYAML(data, limit)
	case format.CBORFormat:
		docs, err = loadCBOR(data, limit)
	default:
		return nil, fmt.Errorf("%w: %d", ErrFormat, o.format)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", o.format, err)
	}
	for i := range docs {
		v, err := o.normalize(docs[i])
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		docs[i] = v
		o.log.Debug("loaded document", "format", o.format, "index", i, "kind", dyn.Classify(docs[i]))
	}
	return docs, nil
}

// normalize converts decoder output to the dyn value model.
func (o *loadOpts) normalize(v any) (any, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		m := dyn.NewOrderedMap()
		for _, item := range x {
			k, err := o.normalize(item.Key)
			if err != nil {
				return nil, err
			}
			if !dyn.Hashable(k) {
				return nil, fmt.Errorf("unhashable mapping key of kind %s", dyn.Classify(k))
			}
			iv, err := o.normalize(item.Value)
			if err != nil {
				return nil, err
			}
			m.Set(k, iv)
		}
		return m, nil
	case *dyn.OrderedMap:
		for k, v := range x.All() {
			nv, err := o.normalize(v)
			if err != nil {
				return nil, err
			}
			x.Set(k, nv)
		}
		return x, nil
	case []any:
		for i := range x {
			nv, err := o.normalize(x[i])
			if err != nil {
				return nil, err
			}
			x[i] = nv
		}
		if o.cons {
			return dyn.NewCons(x...), nil
		}
		return x, nil
	case map[any]any:
		for k, v := range x {
			nv, err := o.normalize(v)
			if err != nil {
				return nil, err
			}
			x[k] = nv
		}
		return x, nil
	case map[string]any:
		for k, v := range x {
			nv, err := o.normalize(v)
			if err != nil {
				return nil, err
			}
			x[k] = nv
		}
		return x, nil
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x), nil
		}
		return x, nil
	case int:
		return int64(x), nil
	default:
		return v, nil
	}
}
