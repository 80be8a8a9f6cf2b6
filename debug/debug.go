package debug

import (
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"
)

type debug struct {
	Index  bool
	List   bool
	Source bool
}

var (
	d      *debug
	logger atomic.Pointer[slog.Logger]
)

func init() {
	d = &debug{}
	d.Index = boolEnv("DYN_DEBUG_INDEX")
	d.List = boolEnv("DYN_DEBUG_LIST")
	d.Source = boolEnv("DYN_DEBUG_SOURCE")
	logger.Store(NewLogger(os.Stderr, slog.LevelDebug))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Index() bool {
	return d.Index
}
func List() bool {
	return d.List
}
func Source() bool {
	return d.Source
}

// SetIndex, SetList and SetSource override the environment.
func SetIndex(v bool)  { d.Index = v }
func SetList(v bool)   { d.List = v }
func SetSource(v bool) { d.Source = v }
