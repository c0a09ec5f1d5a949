package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Squeeze bool
	Detach  bool
	Attach  bool
	Diff    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Squeeze = boolEnv("ALIGN_DEBUG_SQUEEZE")
	d.Detach = boolEnv("ALIGN_DEBUG_DETACH")
	d.Attach = boolEnv("ALIGN_DEBUG_ATTACH")
	d.Diff = boolEnv("ALIGN_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Squeeze() bool {
	return d.Squeeze
}
func Detach() bool {
	return d.Detach
}
func Attach() bool {
	return d.Attach
}
func Diff() bool {
	return d.Diff
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
