// Package format names the document formats the source package reads and
// writes.
//
//	f, err := format.ParseFormat("yaml")
//	f, ok := format.FromPath("testdata/users.json")
//
// Formats implement encoding.TextMarshaler so they can be used directly as
// command line flag values.
package format
