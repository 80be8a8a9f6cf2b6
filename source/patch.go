package source

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/tidwall/jsonc"
)

// Patch applies an RFC 6902 JSON patch to v and returns the result loaded
// as JSON with opts. The patch may be JSONC.
//
// Objects come back with their keys sorted, as the patch library does not
// keep member order.
func Patch(v any, patch []byte, opts ...Option) (any, error) {
	ops, err := jsonpatch.DecodePatch(jsonc.ToJSON(patch))
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	doc, err := json.Marshal(toJSON(v))
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	return Load(out, append(opts, JSON())...)
}
