// Package debug holds tracing switches read from the environment at start up.
//
//	ALIGN_DEBUG_SQUEEZE  trace groups closed by squeeze.Reduce
//	ALIGN_DEBUG_DETACH   trace detached alignment construction and joins
//	ALIGN_DEBUG_ATTACH   trace attach/detach conversions
//	ALIGN_DEBUG_DIFF     trace edit script conversion in libdiff
//
// Values are parsed with strconv.ParseBool.
package debug
