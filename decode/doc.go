// Package decode turns dynamic values into typed Go values with path-aware
// errors.
//
// # Indexing
//
// The core operations work on any value classified by package dyn:
//
//   - [StrictIndex] looks a [Key] up and reports whether it is present, so
//     that a missing field can be told apart from a field set to nil.
//   - [Index] is the lenient form which treats both the same.
//   - [List] decodes every element of a cons list or array, stopping at
//     the first failing element and prefixing its errors with the
//     element's position.
//   - [Dict] confirms a value already is a *dyn.OrderedMap.
//
// Shape errors from indexing are *[IndexError] values matching
// [ErrIndexable] (positions) or [ErrDict] (names).
//
// # Errors
//
// A [DecodeError] records what was expected, what was found, where, and
// the offending value. Decoders return [Errors], an ordered list, and
// relabel nested failures with [Errors.PushPath]:
//
//	expected Int, found String at users.3.age
//
// # Decoders
//
// [Decoder] values compose. Records are decoded field by field in
// continuation style; every field is decoded even if an earlier one
// failed, so one run reports all problems in a record:
//
//	type User struct {
//		Name string
//		Tags []string
//	}
//
//	str := decode.NewPrimitive("String", func(v any) (string, bool) {
//		s, ok := v.(string)
//		return s, ok
//	})
//	user := decode.Field(decode.Name("name"), str, func(name string) decode.Decoder[User] {
//		return decode.Field(decode.Name("tags"), decode.ListOf(str), func(tags []string) decode.Decoder[User] {
//			return decode.Success(User{Name: name, Tags: tags})
//		})
//	})
//	u, err := decode.Run(data, user)
//
// Lists are the exception: [ListOf] reports only the first failing element.
//
// Scalar decoders are deliberately not provided; build them with
// [NewPrimitive] for the representation your values use.
//
// # Paths
//
// [ParsePath] and [FormatPath] convert between []Key and the textual form
// $.users[3].age used by the dyn command.
package decode
