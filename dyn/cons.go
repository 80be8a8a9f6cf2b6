package dyn

import "iter"

// Cons is an immutable singly linked list. The nil *Cons is the empty
// list, so NewCons() and (*Cons)(nil) are interchangeable.
type Cons struct {
	head any
	tail *Cons
}

func NewCons(vs ...any) *Cons {
	var l *Cons
	for i := len(vs) - 1; i >= 0; i-- {
		l = l.Prepend(vs[i])
	}
	return l
}

// Prepend returns a new list with v in front of l. l is shared, not copied.
func (l *Cons) Prepend(v any) *Cons {
	return &Cons{head: v, tail: l}
}

func (l *Cons) IsEmpty() bool {
	return l == nil
}

func (l *Cons) Head() (any, bool) {
	if l == nil {
		return nil, false
	}
	return l.head, true
}

func (l *Cons) Tail() *Cons {
	if l == nil {
		return nil
	}
	return l.tail
}

// Len walks the whole list.
func (l *Cons) Len() int {
	n := 0
	for x := l; x != nil; x = x.tail {
		n++
	}
	return n
}

// At walks to position i. It reports false when the list is shorter.
func (l *Cons) At(i int) (any, bool) {
	if i < 0 {
		return nil, false
	}
	pos := 0
	for v := range l.All() {
		if pos == i {
			return v, true
		}
		pos++
	}
	return nil, false
}

func (l *Cons) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for x := l; x != nil; x = x.tail {
			if !yield(x.head) {
				return
			}
		}
	}
}

func (l *Cons) Slice() []any {
	res := []any{}
	for v := range l.All() {
		res = append(res, v)
	}
	return res
}
