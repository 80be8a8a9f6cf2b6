// Package dyn provides the dynamic value model used by dyndecode.
//
// # Overview
//
// A dynamic value is any Go value handed to a decoder as `any`. Its shape
// decides how it can be indexed. The package classifies values into a closed
// set of kinds with [KindOf] and provides the containers that plain Go does
// not have:
//
//   - [OrderedMap]: a map preserving insertion order, the "dict" shape.
//   - [Cons]: an immutable singly linked list, the "list" shape.
//   - [WeakMap]: a map whose pointer keys are held weakly.
//
// Native Go maps, slices, arrays and structs are classified through
// reflection and need no wrapping.
//
// # Kinds
//
//   - NilKind: nil, nil pointers
//   - BoolKind, IntKind, FloatKind, StringKind: scalars, including named types
//   - BytesKind: []byte, reported as "BitArray"
//   - DictKind: *OrderedMap
//   - MapKind: Go maps and any [Getter]
//   - WeakMapKind: *WeakMap
//   - ListKind: *Cons, including the empty (nil) list
//   - ArrayKind: slices and arrays
//   - RecordKind: structs, reported as "Object"
//   - FuncKind: functions
//   - UnknownKind: channels, complex numbers and the rest
//
// [Classify] renders the kind name used in decode errors.
//
// # Access
//
// [MapLookup], [FieldLookup], [ElemAt] and [Elements] give uniform access to
// the contents of map-like, record and sequence values. They never mutate
// their argument.
package dyn
