// Package refine adds expression checks to decoders.
//
// The expression language is expr (github.com/expr-lang/expr). An
// expression sees the decoded value as "value" and may call
//
//	kind(v)    the shape name of v, as in decode errors ("Int", "Dict", ...)
//	at(v, k)   v indexed leniently by k, an int position or a string name
//
// For example
//
//	port, err := refine.Expr(intDecoder, `value > 0 && value < 65536`, "Port")
package refine
