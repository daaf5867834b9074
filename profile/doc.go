// Package profile provides optional runtime profiling for denv.
//
// Profiling is compiled in only with the "pprof" build tag, using
// [github.com/pkg/profile]. Without the tag every operation is a no-op and
// [Modes] is empty.
//
//	go build -tags pprof .
//	denv --pprof-mode cpu compute -t maya
//	go tool pprof -http=: ~/.cache/denv/pprof/cpu.pprof
//
// Profiles are written to the directory given by --pprof-dir, which defaults
// to the pprof directory under the user cache directory.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
