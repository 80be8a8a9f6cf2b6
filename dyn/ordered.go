package dyn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
)

// Getter is implemented by map-like containers. Get reports whether key is
// present, so a present nil value is distinct from an absent key.
type Getter interface {
	Get(key any) (any, bool)
}

// OrderedMap is a map which remembers insertion order. Keys must be
// comparable. The zero value is not usable; use NewOrderedMap.
type OrderedMap struct {
	keys   []any
	values []any
	index  map[any]int
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{index: map[any]int{}}
}

// OrderedMapOf builds an OrderedMap from alternating keys and values.
// It panics if given an odd number of arguments.
func OrderedMapOf(kvs ...any) *OrderedMap {
	if len(kvs)%2 != 0 {
		panic("dyn.OrderedMapOf: odd number of arguments")
	}
	m := NewOrderedMap()
	for i := 0; i < len(kvs); i += 2 {
		m.Set(kvs[i], kvs[i+1])
	}
	return m
}

// Set associates v with k. Setting an existing key keeps its position.
// Set panics if k is not Hashable; callers holding keys from decoded input
// check first.
func (m *OrderedMap) Set(k, v any) {
	if !Hashable(k) {
		panic(fmt.Sprintf("dyn.OrderedMap.Set: unhashable key of type %T", k))
	}
	if i, ok := m.index[k]; ok {
		m.values[i] = v
		return
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.values = append(m.values, v)
}

func (m *OrderedMap) Get(k any) (any, bool) {
	if m == nil || !Hashable(k) {
		return nil, false
	}
	i, ok := m.index[k]
	if !ok {
		return nil, false
	}
	return m.values[i], true
}

func (m *OrderedMap) Delete(k any) bool {
	if m == nil || !Hashable(k) {
		return false
	}
	i, ok := m.index[k]
	if !ok {
		return false
	}
	delete(m.index, k)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.values = append(m.values[:i], m.values[i+1:]...)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return true
}

func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *OrderedMap) Keys() []any {
	if m == nil {
		return nil
	}
	return append([]any(nil), m.keys...)
}

func (m *OrderedMap) Values() []any {
	if m == nil {
		return nil
	}
	return append([]any(nil), m.values...)
}

// All iterates over the entries in insertion order.
func (m *OrderedMap) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if m == nil {
			return
		}
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

// MarshalJSON encodes m as a JSON object in insertion order. Keys which
// are not strings are formatted with fmt.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	buf := bytes.NewBuffer([]byte{'{'})
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		ks, ok := k.(string)
		if !ok {
			ks = fmt.Sprint(k)
		}
		kd, err := json.Marshal(ks)
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := json.Marshal(m.values[i])
		if err != nil {
			return nil, fmt.Errorf("error encoding value of %q: %w", ks, err)
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Hashable reports whether k can be used as an OrderedMap key.
func Hashable(k any) bool {
	if k == nil {
		return true
	}
	return reflect.ValueOf(k).Comparable()
}
