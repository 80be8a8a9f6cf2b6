// Package source loads documents into dynamic values and writes them back
// out.
//
// Mappings load as *dyn.OrderedMap in document order, sequences as []any
// (or *dyn.Cons with [ConsLists]) and integers as int64, or uint64 when
// they do not fit. CBOR maps are the exception: they keep the decoder's
// native map[any]any since CBOR keys need not be strings.
//
//	v, err := source.Load(data, source.YAML())
//	v, err = source.Patch(v, ops)
//	err = source.Encode(os.Stdout, v, format.JSONFormat)
//
// JSON input may carry comments and trailing commas (JSONC).
package source
