package dyn

import (
	"sync"
	"weak"
)

type weakMapper interface {
	Getter
	weakMap()
}

// WeakMap associates values with *K keys without keeping the keys alive.
// Once a key is garbage collected its entry is dropped. A value which
// references its own key keeps the key reachable and is never dropped.
//
// WeakMap is safe for concurrent use.
type WeakMap[K any] struct {
	mu      sync.Mutex
	entries map[weak.Pointer[K]]any
}

func NewWeakMap[K any]() *WeakMap[K] {
	return &WeakMap[K]{entries: map[weak.Pointer[K]]any{}}
}

func (m *WeakMap[K]) weakMap() {}

func (m *WeakMap[K]) Set(k *K, v any) {
	if k == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune()
	m.entries[weak.Make(k)] = v
}

// Get looks up key, which must be a *K. Keys of any other type are absent.
func (m *WeakMap[K]) Get(key any) (any, bool) {
	if m == nil {
		return nil, false
	}
	k, ok := key.(*K)
	if !ok || k == nil {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[weak.Make(k)]
	return v, ok
}

func (m *WeakMap[K]) Delete(k *K) {
	if k == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, weak.Make(k))
}

// Len counts the entries whose keys are still alive.
func (m *WeakMap[K]) Len() int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune()
	return len(m.entries)
}

func (m *WeakMap[K]) prune() {
	for wp := range m.entries {
		if wp.Value() == nil {
			delete(m.entries, wp)
		}
	}
}
