// Package debug gates diagnostic logging behind LOCSYNC_DEBUG_*
// environment variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load   bool
	Sync   bool
	Inject bool
	Prune  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("LOCSYNC_DEBUG_LOAD")
	d.Sync = boolEnv("LOCSYNC_DEBUG_SYNC")
	d.Inject = boolEnv("LOCSYNC_DEBUG_INJECT")
	d.Prune = boolEnv("LOCSYNC_DEBUG_PRUNE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Sync() bool {
	return d.Sync
}
func Inject() bool {
	return d.Inject
}
func Prune() bool {
	return d.Prune
}
