// Package launch locates executables on the PATH of a computed environment
// and runs them with exactly that environment.
package launch
