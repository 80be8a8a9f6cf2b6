package decode

import (
	"errors"
	"testing"

	"github.com/signadot/dyndecode/dyn"
)

type person struct {
	Name  string `dyn:"name"`
	Email *string
}

type indexTest struct {
	name  string
	data  any
	key   Key
	want  any
	found bool
	err   error
}

func strictIndexTests() []indexTest {
	weak := dyn.NewWeakMap[person]()
	p := &person{Name: "p"}
	weak.Set(p, "present")
	return []indexTest{
		{name: "ordered present", data: dyn.OrderedMapOf("a", 1), key: Name("a"), want: 1, found: true},
		{name: "ordered present nil", data: dyn.OrderedMapOf("a", nil), key: Name("a"), want: nil, found: true},
		{name: "ordered absent", data: dyn.OrderedMapOf("a", 1), key: Name("b")},
		{name: "ordered int key", data: dyn.OrderedMapOf(0, "zero"), key: Position(0), want: "zero", found: true},
		{name: "native present", data: map[string]any{"a": 1}, key: Name("a"), want: 1, found: true},
		{name: "native absent", data: map[string]any{"a": 1}, key: Name("b")},
		{name: "native wrong key type", data: map[string]any{"0": 1}, key: Position(0)},
		{name: "weak absent", data: weak, key: Name("x")},
		{name: "cons 0", data: dyn.NewCons("a", "b"), key: Position(0), want: "a", found: true},
		{name: "cons 1", data: dyn.NewCons("a", "b"), key: Position(1), want: "b", found: true},
		{name: "cons 2 short", data: dyn.NewCons("a", "b"), key: Position(2), err: ErrIndexable},
		{name: "cons empty", data: dyn.NewCons(), key: Position(0), err: ErrIndexable},
		{name: "cons beyond prefix", data: dyn.NewCons(1, 2, 3, 4), key: Position(3)},
		{name: "cons name", data: dyn.NewCons(1), key: Name("head")},
		{name: "array present", data: []any{"a", nil}, key: Position(1), want: nil, found: true},
		{name: "array absent", data: []any{"a"}, key: Position(1)},
		{name: "typed array", data: []int{4, 5}, key: Position(1), want: 5, found: true},
		{name: "array name", data: []any{"a"}, key: Name("length")},
		{name: "record present", data: person{Name: "n"}, key: Name("name"), want: "n", found: true},
		{name: "record pointer", data: &person{Name: "n"}, key: Name("name"), want: "n", found: true},
		{name: "record absent", data: person{}, key: Name("age")},
		{name: "record position", data: person{}, key: Position(0)},
		{name: "int position", data: 42, key: Position(0), err: ErrIndexable},
		{name: "int name", data: 42, key: Name("a"), err: ErrDict},
		{name: "bool position", data: true, key: Position(1), err: ErrIndexable},
		{name: "string name", data: "abc", key: Name("a"), err: ErrDict},
		{name: "nil position", data: nil, key: Position(0), err: ErrIndexable},
		{name: "bytes position", data: []byte("ab"), key: Position(0), err: ErrIndexable},
		{name: "func name", data: func() {}, key: Name("a"), err: ErrDict},
	}
}

func TestStrictIndex(t *testing.T) {
	for _, tt := range strictIndexTests() {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := StrictIndex(tt.data, tt.key)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("err = %v, want %v", err, tt.err)
				}
				if found || got != nil {
					t.Errorf("error returned with value (%v, %v)", got, found)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if found != tt.found || got != tt.want {
				t.Errorf("got (%v, %v), want (%v, %v)", got, found, tt.want, tt.found)
			}
		})
	}
}

func TestStrictIndexWeakMap(t *testing.T) {
	weak := dyn.NewWeakMap[person]()
	p := &person{Name: "p"}
	weak.Set(p, "present")
	got, found, err := StrictIndex(weak, Name("p"))
	if err != nil || found {
		t.Errorf("string key: got (%v, %v, %v)", got, found, err)
	}
	// keys of weak maps are pointers, which Key cannot express; lookups by
	// pointer go through the map itself
	if v, ok := weak.Get(p); !ok || v != "present" {
		t.Errorf("Get(p) = %v %v", v, ok)
	}
}

func TestStrictIndexMapLikeNeverFails(t *testing.T) {
	maps := []any{
		dyn.NewOrderedMap(),
		map[string]any{},
		map[int]string{1: "a"},
		dyn.NewWeakMap[int](),
	}
	keys := []Key{Position(0), Position(7), Name(""), Name("x")}
	for _, m := range maps {
		for _, k := range keys {
			if _, _, err := StrictIndex(m, k); err != nil {
				t.Errorf("StrictIndex(%T, %q) failed: %v", m, k, err)
			}
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		data any
		key  Key
		want any
		err  error
	}{
		{name: "ordered present", data: dyn.OrderedMapOf("a", 1), key: Name("a"), want: 1},
		{name: "ordered absent", data: dyn.OrderedMapOf("a", 1), key: Name("b"), want: nil},
		{name: "native absent", data: map[string]int{}, key: Name("b"), want: nil},
		{name: "cons 0", data: dyn.NewCons("a"), key: Position(0), want: "a"},
		{name: "cons 0 empty", data: dyn.NewCons(), key: Position(0), err: ErrIndexable},
		{name: "cons 2", data: dyn.NewCons("a", "b", "c"), key: Position(2), want: "c"},
		{name: "cons 2 short", data: dyn.NewCons("a", "b"), key: Position(2), err: ErrIndexable},
		{name: "cons beyond prefix", data: dyn.NewCons(1, 2, 3, 4), key: Position(3), want: nil},
		{name: "array", data: []any{1, 2}, key: Position(1), want: 2},
		{name: "array out of range", data: []any{1, 2}, key: Position(5), want: nil},
		{name: "record", data: person{Name: "n"}, key: Name("name"), want: "n"},
		{name: "record absent", data: person{}, key: Name("nope"), want: nil},
		{name: "float position", data: 1.5, key: Position(0), err: ErrIndexable},
		{name: "float name", data: 1.5, key: Name("x"), err: ErrDict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Index(tt.data, tt.key)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("err = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndexCollapsesAbsence(t *testing.T) {
	var email *string
	data := person{Name: "n", Email: email}
	missing, err := Index(data, Name("phone"))
	if err != nil {
		t.Fatal(err)
	}
	present, err := Index(data, Name("Email"))
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf("missing = %v", missing)
	}
	if p, ok := present.(*string); !ok || p != nil {
		t.Errorf("present = %#v", present)
	}

	m := dyn.OrderedMapOf("a", nil)
	a, _ := Index(m, Name("a"))
	b, _ := Index(m, Name("b"))
	if a != nil || b != nil {
		t.Errorf("got %v and %v", a, b)
	}
	_, foundA, _ := StrictIndex(m, Name("a"))
	_, foundB, _ := StrictIndex(m, Name("b"))
	if !foundA || foundB {
		t.Errorf("strict: a found %v, b found %v", foundA, foundB)
	}
}

func TestIndexErrorDetails(t *testing.T) {
	_, _, err := StrictIndex(7, Name("x"))
	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("err %T is not an *IndexError", err)
	}
	if ie.Kind != KindDict || ie.Found != "Int" || ie.Key != Name("x") {
		t.Errorf("unexpected %+v", ie)
	}
	if errors.Is(err, ErrIndexable) {
		t.Errorf("Dict error matches ErrIndexable")
	}
}
