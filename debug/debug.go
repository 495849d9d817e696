// Package debug holds env-flag controlled debug switches.
//
// Set REDLINE_DEBUG_DIFF, REDLINE_DEBUG_MERGE, REDLINE_DEBUG_APPLY, or
// REDLINE_DEBUG_SEARCH to a truthy value to enable tracing on stderr.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Diff   bool
	Merge  bool
	Apply  bool
	Search bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("REDLINE_DEBUG_DIFF")
	d.Merge = boolEnv("REDLINE_DEBUG_MERGE")
	d.Apply = boolEnv("REDLINE_DEBUG_APPLY")
	d.Search = boolEnv("REDLINE_DEBUG_SEARCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Merge() bool {
	return d.Merge
}
func Apply() bool {
	return d.Apply
}
func Search() bool {
	return d.Search
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
