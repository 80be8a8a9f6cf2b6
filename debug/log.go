package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/signadot/dyndecode/dyn"
)

// NewLogger returns a text logger which omits timestamps and the INFO
// level tag.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}

func Logger() *slog.Logger {
	return logger.Load()
}

func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	logger.Store(l)
}

// Logf logs a debug message. Containers among args are rendered as
// indented JSON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		switch x := a.(type) {
		case *dyn.OrderedMap, map[string]any, []any:
			args[i] = indented(x)
		case *dyn.Cons:
			args[i] = indented(x.Slice())
		}
	}
	Logger().Debug(fmt.Sprintf(msg, args...))
}

// LogAny logs v as one line of JSON, falling back to %v when v cannot be
// encoded.
func LogAny(v any) {
	if c, ok := v.(*dyn.Cons); ok {
		v = c.Slice()
	}
	d, err := json.Marshal(v)
	if err != nil {
		Logger().Debug(fmt.Sprintf("%v", v))
		return
	}
	Logger().Debug(string(d))
}

func indented(v any) string {
	d, err := json.MarshalIndent(v, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
