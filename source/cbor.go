package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// decMode keeps the default map type, map[any]any, so maps with integer
// or byte string keys decode.
var decMode cbor.DecMode

func init() {
	var err error
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("source: CBOR decoder initialization failed: " + err.Error())
	}
}

func loadCBOR(data []byte, limit int) ([]any, error) {
	dec := decMode.NewDecoder(bytes.NewReader(data))
	var docs []any
	for limit < 0 || len(docs) < limit {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", len(docs), err)
		}
		docs = append(docs, v)
	}
	return docs, nil
}
