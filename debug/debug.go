package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Merge bool
	Diff  bool
	Patch bool
	Eval  bool
	Load  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JDOC_DEBUG_PARSE")
	d.Merge = boolEnv("JDOC_DEBUG_MERGE")
	d.Diff = boolEnv("JDOC_DEBUG_DIFF")
	d.Patch = boolEnv("JDOC_DEBUG_PATCH")
	d.Eval = boolEnv("JDOC_DEBUG_EVAL")
	d.Load = boolEnv("JDOC_DEBUG_LOAD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Load() bool {
	return d.Load
}
