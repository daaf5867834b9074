// Package env computes a concrete process environment from a declarative,
// platform-conditional and possibly self-referential specification.
//
// # Templates
//
// Values refer to other definitions with tokens of the form {NAME}. A token
// naming an undefined key is left in place verbatim; so is a token naming the
// key that contains it:
//
//	PYTHONPATH : x:y/{PYTHONPATH}   // resolves to x:y/{PYTHONPATH}
//
// Self-references are only substituted by [Merge], which folds a computed
// environment into the environment of a running process.
//
// Keys may contain tokens, too. Such a dynamic key is renamed to its expanded
// form once the tokens it names are resolved:
//
//	A   : D
//	{A} : this is D    // resolves to D=this is D
//
// # Pipeline
//
//	[Select]  flattens platform variants for one [Platform].
//	[Order]   sorts the flattened keys by dependency.
//	[Build]   expands values and dynamic keys in that order.
//	[Resolve] combines all of the above.
//	[Append]  joins path-list values of two environments.
//	[Merge]   substitutes self-references from a host environment.
//	[Cleanup] removes duplicate and empty path-list entries.
//
// Every operation is a pure function of its arguments. Inputs are never
// modified, nothing is read from the process, and nothing is logged.
package env
