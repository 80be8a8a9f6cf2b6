package decode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/dyndecode/dyn"
)

var (
	str = NewPrimitive("String", func(v any) (string, bool) {
		s, ok := v.(string)
		return s, ok
	})
	num = NewPrimitive("Int", func(v any) (int, bool) {
		i, ok := v.(int)
		return i, ok
	})
	ignoreValue = cmpopts.IgnoreFields(DecodeError{}, "Value")
)

type user struct {
	Name string
	Age  int
	Tags []string
}

func userDecoder() Decoder[user] {
	return Field(Name("name"), str, func(name string) Decoder[user] {
		return Field(Name("age"), num, func(age int) Decoder[user] {
			return OptionalField(Name("tags"), nil, ListOf(str), func(tags []string) Decoder[user] {
				return Success(user{Name: name, Age: age, Tags: tags})
			})
		})
	})
}

func TestFieldSuccess(t *testing.T) {
	data := dyn.OrderedMapOf("name", "ann", "age", 41, "tags", []any{"a", "b"})
	got, err := Run(data, userDecoder())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(user{Name: "ann", Age: 41, Tags: []string{"a", "b"}}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	got, err = Run(map[string]any{"name": "bob", "age": 3}, userDecoder())
	if err != nil {
		t.Fatal(err)
	}
	if got.Tags != nil {
		t.Errorf("tags = %v", got.Tags)
	}
}

func TestFieldAccumulatesErrors(t *testing.T) {
	data := dyn.OrderedMapOf("name", 7, "tags", []any{"a", 2, 3})
	got, errs := userDecoder().Decode(data)
	if diff := cmp.Diff(user{}, got); diff != "" {
		t.Errorf("value not zero (-want +got):\n%s", diff)
	}
	want := Errors{
		{Expected: "String", Found: "Int", Path: []string{"name"}},
		{Expected: "Field", Found: "Nothing", Path: []string{"age"}},
		{Expected: "String", Found: "Int", Path: []string{"tags", "1"}},
	}
	if diff := cmp.Diff(want, errs, ignoreValue); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFieldShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		data any
		d    Decoder[string]
		want Errors
	}{
		{
			name: "not a dict",
			data: 3,
			d:    At(Keys("a"), str),
			want: Errors{{Expected: "Dict", Found: "Int"}},
		},
		{
			name: "nested not a dict",
			data: dyn.OrderedMapOf("a", true),
			d:    At(Keys("a", "b"), str),
			want: Errors{{Expected: "Dict", Found: "Bool", Path: []string{"a"}}},
		},
		{
			name: "position into string",
			data: dyn.OrderedMapOf("a", "s"),
			d:    At(Keys("a", 0), str),
			want: Errors{{Expected: "Indexable", Found: "String", Path: []string{"a"}}},
		},
		{
			name: "short cons",
			data: dyn.OrderedMapOf("a", dyn.NewCons("x")),
			d:    At(Keys("a", 2), str),
			want: Errors{{Expected: "Indexable", Found: "List", Path: []string{"a"}}},
		},
		{
			name: "missing nested",
			data: dyn.OrderedMapOf("a", dyn.OrderedMapOf()),
			d:    At(Keys("a", "b", "c"), str),
			want: Errors{{Expected: "Field", Found: "Nothing", Path: []string{"a", "b"}}},
		},
		{
			name: "wrong leaf",
			data: dyn.OrderedMapOf("a", []any{1}),
			d:    At(Keys("a", 0), str),
			want: Errors{{Expected: "String", Found: "Int", Path: []string{"a", "0"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := tt.d.Decode(tt.data)
			if diff := cmp.Diff(tt.want, errs, ignoreValue); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestSubfield(t *testing.T) {
	data := dyn.OrderedMapOf("meta", dyn.OrderedMapOf("id", "x1"))
	d := Subfield(Keys("meta", "id"), str, func(id string) Decoder[string] {
		return Success("id=" + id)
	})
	got, err := Run(data, d)
	if err != nil || got != "id=x1" {
		t.Errorf("got %q %v", got, err)
	}
}

func TestOptionallyAt(t *testing.T) {
	d := OptionallyAt(Keys("a", "b"), "def", str)
	tests := []struct {
		data any
		want string
		errs bool
	}{
		{dyn.OrderedMapOf("a", dyn.OrderedMapOf("b", "x")), "x", false},
		{dyn.OrderedMapOf("a", dyn.OrderedMapOf()), "def", false},
		{dyn.OrderedMapOf(), "def", false},
		{dyn.OrderedMapOf("a", dyn.OrderedMapOf("b", 1)), "", true},
		{dyn.OrderedMapOf("a", 1), "", true},
	}
	for i, tt := range tests {
		got, errs := d.Decode(tt.data)
		if (len(errs) > 0) != tt.errs {
			t.Errorf("%d: errors %v", i, errs)
			continue
		}
		if !tt.errs && got != tt.want {
			t.Errorf("%d: got %q, want %q", i, got, tt.want)
		}
	}
}

func TestOptionalFieldPresentButWrong(t *testing.T) {
	d := OptionalField(Name("n"), 5, num, func(n int) Decoder[int] { return Success(n) })
	_, errs := d.Decode(map[string]any{"n": "five"})
	want := Errors{{Expected: "Int", Found: "String", Path: []string{"n"}}}
	if diff := cmp.Diff(want, errs, ignoreValue); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, _ := d.Decode(map[string]any{})
	if got != 5 {
		t.Errorf("got %d", got)
	}
}

func TestWithin(t *testing.T) {
	d := Within(Keys("a", "b"), Optional(str))
	got, err := Run(dyn.OrderedMapOf("a", dyn.OrderedMapOf()), d)
	if err != nil || got != nil {
		t.Errorf("absent: got %v %v", got, err)
	}
	got, err = Run(dyn.OrderedMapOf("a", dyn.OrderedMapOf("b", "x")), d)
	if err != nil || got == nil || *got != "x" {
		t.Errorf("present: got %v %v", got, err)
	}
	_, errs := d.Decode(dyn.OrderedMapOf("a", 1.5))
	want := Errors{{Expected: "Dict", Found: "Float", Path: []string{"a"}}}
	if diff := cmp.Diff(want, errs, ignoreValue); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	_, errs = Within(Keys("a"), str).Decode(dyn.OrderedMapOf())
	want = Errors{{Expected: "String", Found: "Nil", Path: []string{"a"}}}
	if diff := cmp.Diff(want, errs, ignoreValue); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestListOfNested(t *testing.T) {
	d := ListOf(At(Keys("id"), num))
	data := []any{
		dyn.OrderedMapOf("id", 1),
		dyn.OrderedMapOf("id", "2"),
		dyn.OrderedMapOf(),
	}
	_, errs := d.Decode(data)
	want := Errors{{Expected: "Int", Found: "String", Path: []string{"1", "id"}}}
	if diff := cmp.Diff(want, errs, ignoreValue); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDictOf(t *testing.T) {
	d := DictOf(str, num)
	got, err := Run(dyn.OrderedMapOf("a", 1, "b", 2), d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	tests := []struct {
		name string
		data any
		want Errors
	}{
		{"not a dict", map[string]any{"a": 1}, Errors{{Expected: "Dict", Found: "Map"}}},
		{"bad key", dyn.OrderedMapOf(1, 1), Errors{{Expected: "String", Found: "Int", Path: []string{"keys"}}}},
		{"bad value", dyn.OrderedMapOf("a", 1, "b", "x", "c", "y"), Errors{{Expected: "Int", Found: "String", Path: []string{"values"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := d.Decode(tt.data)
			if got != nil {
				t.Errorf("got %v", got)
			}
			if diff := cmp.Diff(tt.want, errs, ignoreValue); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	d := Optional(num)
	for _, data := range []any{nil, (*int)(nil)} {
		got, errs := d.Decode(data)
		if got != nil || errs != nil {
			t.Errorf("%T: got %v %v", data, got, errs)
		}
	}
	got, errs := d.Decode(3)
	if errs != nil || got == nil || *got != 3 {
		t.Errorf("got %v %v", got, errs)
	}
	if _, errs := d.Decode("x"); len(errs) != 1 {
		t.Errorf("errors %v", errs)
	}
}

type shape struct {
	Kind   string
	Radius int
	Side   int
}

func TestThenAndOneOf(t *testing.T) {
	circle := Field(Name("r"), num, func(r int) Decoder[shape] {
		return Success(shape{Kind: "circle", Radius: r})
	})
	square := Field(Name("side"), num, func(s int) Decoder[shape] {
		return Success(shape{Kind: "square", Side: s})
	})
	tagged := Then(At(Keys("kind"), str), func(k string) Decoder[shape] {
		switch k {
		case "circle":
			return circle
		case "square":
			return square
		}
		return Failure(shape{}, "Shape")
	})
	got, err := Run(dyn.OrderedMapOf("kind", "square", "side", 2), tagged)
	if err != nil || got.Side != 2 {
		t.Errorf("got %v %v", got, err)
	}
	_, errs := tagged.Decode(dyn.OrderedMapOf("kind", "hex"))
	if len(errs) != 1 || errs[0].Expected != "Shape" || errs[0].Found != "Dict" {
		t.Errorf("errors %v", errs)
	}

	untagged := OneOf(circle, square)
	got, err = Run(dyn.OrderedMapOf("side", 4), untagged)
	if err != nil || got.Kind != "square" {
		t.Errorf("got %v %v", got, err)
	}
	_, errs = untagged.Decode(dyn.OrderedMapOf())
	want := Errors{{Expected: "Field", Found: "Nothing", Path: []string{"r"}}}
	if diff := cmp.Diff(want, errs, ignoreValue); diff != "" {
		t.Errorf("first decoder's errors expected (-want +got):\n%s", diff)
	}
}

func TestMapAndErrors(t *testing.T) {
	double := Map(num, func(i int) int { return 2 * i })
	if got, _ := double.Decode(4); got != 8 {
		t.Errorf("got %d", got)
	}
	collapsed := CollapseErrors(At(Keys("a", "b"), num), "Thing")
	_, errs := collapsed.Decode(dyn.OrderedMapOf("a", 1))
	if diff := cmp.Diff(Errors{{Expected: "Thing", Found: "Dict"}}, errs, ignoreValue); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	relabeled := MapErrors(num, func(es Errors) Errors { return es.PushPath("root") })
	_, errs = relabeled.Decode("x")
	if len(errs) != 1 || errs[0].Path[0] != "root" {
		t.Errorf("errors %v", errs)
	}
	if _, errs := relabeled.Decode(1); errs != nil {
		t.Errorf("errors %v", errs)
	}
}

func TestCombinatorFailureYieldsZero(t *testing.T) {
	leaky := Failure(7, "Seven")
	tests := []struct {
		name string
		d    Decoder[int]
	}{
		{"map errors", MapErrors(leaky, func(es Errors) Errors { return es.PushPath("x") })},
		{"collapse errors", CollapseErrors(leaky, "Thing")},
		{"one of", OneOf(leaky, Failure(8, "Eight"))},
		{"map", Map(leaky, func(i int) int { return i + 1 })},
		{"then", Then(leaky, func(int) Decoder[int] { return Success(9) })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := tt.d.Decode("s")
			if len(errs) == 0 {
				t.Fatalf("no errors, got %d", got)
			}
			if got != 0 {
				t.Errorf("got %d alongside errors, want 0", got)
			}
		})
	}
}

type tree struct {
	Value    int
	Children []tree
}

func TestRecursive(t *testing.T) {
	var node Decoder[tree]
	node = Field(Name("v"), num, func(v int) Decoder[tree] {
		return OptionalField(Name("kids"), nil, ListOf(Recursive(func() Decoder[tree] { return node })), func(kids []tree) Decoder[tree] {
			return Success(tree{Value: v, Children: kids})
		})
	})
	data := dyn.OrderedMapOf("v", 1, "kids", []any{
		dyn.OrderedMapOf("v", 2),
		dyn.OrderedMapOf("v", 3, "kids", dyn.NewCons(dyn.OrderedMapOf("v", 4))),
	})
	got, err := Run(data, node)
	if err != nil {
		t.Fatal(err)
	}
	want := tree{Value: 1, Children: []tree{{Value: 2}, {Value: 3, Children: []tree{{Value: 4}}}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	bad := dyn.OrderedMapOf("v", 1, "kids", []any{dyn.OrderedMapOf("v", 2, "kids", []any{dyn.OrderedMapOf("v", "x")})})
	_, errs := node.Decode(bad)
	want2 := Errors{{Expected: "Int", Found: "String", Path: []string{"kids", "0", "kids", "0", "v"}}}
	if diff := cmp.Diff(want2, errs, ignoreValue); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestZeroDecoder(t *testing.T) {
	var d Decoder[int]
	_, err := Run(1, d)
	if err == nil {
		t.Fatal("zero decoder succeeded")
	}
	if got, err := Run("anything", Dynamic()); err != nil || got != "anything" {
		t.Errorf("got %v %v", got, err)
	}
}
