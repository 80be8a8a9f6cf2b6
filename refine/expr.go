package refine

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/dyndecode/decode"
	"github.com/signadot/dyndecode/dyn"
)

// Expr returns a decoder which runs d and then checks the decoded value
// against the boolean expression src. A false result is an error
// expecting expected; so is an expression which fails at run time.
// Expressions are compiled once, here.
func Expr[T any](d decode.Decoder[T], src, expected string) (decode.Decoder[T], error) {
	program, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return decode.Decoder[T]{}, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return decode.New(func(data any) (T, decode.Errors) {
		v, errs := d.Decode(data)
		if len(errs) > 0 {
			var zero T
			return zero, errs
		}
		return check(program, v, expected)
	}), nil
}

// MustExpr is Expr which panics if src does not compile.
func MustExpr[T any](d decode.Decoder[T], src, expected string) decode.Decoder[T] {
	res, err := Expr(d, src, expected)
	if err != nil {
		panic(err)
	}
	return res
}

func check[T any](program *vm.Program, v T, expected string) (T, decode.Errors) {
	var zero T
	out, err := vm.Run(program, env(v))
	if err != nil {
		return zero, decode.Errors{{Expected: expected, Found: "error: " + err.Error(), Value: v}}
	}
	if ok, _ := out.(bool); !ok {
		return zero, decode.Errors{{Expected: expected, Found: dyn.Classify(v), Value: v}}
	}
	return v, nil
}

func env(v any) map[string]any {
	return map[string]any{"value": v}
}

// exprOpts leaves the environment undeclared: value is typed at run time.
func exprOpts() []expr.Option {
	return []expr.Option{
		expr.AsBool(),
		expr.Function("kind", func(params ...any) (any, error) {
			return dyn.Classify(params[0]), nil
		},
			new(func(any) string)),
		expr.Function("at", func(params ...any) (any, error) {
			key, err := toKey(params[1])
			if err != nil {
				return nil, err
			}
			return decode.Index(params[0], key)
		},
			new(func(any, any) any)),
	}
}

func toKey(k any) (decode.Key, error) {
	switch x := k.(type) {
	case int:
		return decode.Position(x), nil
	case int64:
		return decode.Position(int(x)), nil
	case string:
		return decode.Name(x), nil
	}
	return decode.Key{}, fmt.Errorf("key must be an int or a string, got %s", dyn.Classify(k))
}
