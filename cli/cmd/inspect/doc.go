// Package inspect implements an interactive terminal browser for a resolved
// environment.
//
// Typing narrows the listed variables by fuzzy matching their names. The
// arrow keys move the selection, Tab shows the selected value split into its
// path list entries, and Enter prints the selected variable as KEY=VALUE and
// exits. Ctrl+P and Ctrl+N recall earlier filters, which persist in the
// cache directory.
package inspect
