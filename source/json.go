package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/dyndecode/dyn"
	"github.com/tidwall/jsonc"
)

func loadJSON(data []byte, limit int) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()
	var docs []any
	for limit < 0 || len(docs) < limit {
		v, err := readJSON(dec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(docs), err)
		}
		docs = append(docs, v)
	}
	return docs, nil
}

// readJSON reads one value token by token so that object keys keep their
// order.
func readJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			m := dyn.NewOrderedMap()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("offset %d: expected object key, got %v", dec.InputOffset(), kt)
				}
				v, err := readJSON(dec)
				if err != nil {
					return nil, unexpectedEOF(err)
				}
				m.Set(k, v)
			}
			return m, closeDelim(dec)
		case '[':
			res := []any{}
			for dec.More() {
				v, err := readJSON(dec)
				if err != nil {
					return nil, unexpectedEOF(err)
				}
				res = append(res, v)
			}
			return res, closeDelim(dec)
		}
		return nil, fmt.Errorf("offset %d: unexpected %v", dec.InputOffset(), x)
	case json.Number:
		return jsonNumber(x)
	default:
		return x, nil
	}
}

func closeDelim(dec *json.Decoder) error {
	_, err := dec.Token()
	return unexpectedEOF(err)
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func jsonNumber(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u, nil
	}
	return n.Float64()
}
