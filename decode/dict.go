package decode

import "github.com/signadot/dyndecode/dyn"

// Dict returns data unchanged if it is already an ordered map. It carries
// no diagnostic on failure; callers build their own "Dict" error.
func Dict(data any) (*dyn.OrderedMap, bool) {
	m, ok := data.(*dyn.OrderedMap)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}
