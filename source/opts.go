package source

import (
	"log/slog"

	"github.com/signadot/dyndecode/debug"
	"github.com/signadot/dyndecode/format"
)

type loadOpts struct {
	format format.Format
	cons   bool
	log    *slog.Logger
}

type Option func(*loadOpts)

func JSON() Option {
	return WithFormat(format.JSONFormat)
}
func YAML() Option {
	return WithFormat(format.YAMLFormat)
}
func CBOR() Option {
	return WithFormat(format.CBORFormat)
}
func WithFormat(f format.Format) Option {
	return func(o *loadOpts) { o.format = f }
}

// ConsLists makes sequences load as *dyn.Cons instead of []any.
func ConsLists() Option {
	return func(o *loadOpts) { o.cons = true }
}

// Logger sets where load diagnostics go. By default they are discarded
// unless DYN_DEBUG_SOURCE is set.
func Logger(l *slog.Logger) Option {
	return func(o *loadOpts) { o.log = l }
}

func newOpts(opts []Option) *loadOpts {
	o := &loadOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(o)
	}
	if o.log == nil {
		if debug.Source() {
			o.log = debug.Logger()
		} else {
			o.log = slog.New(slog.DiscardHandler)
		}
	}
	return o
}
