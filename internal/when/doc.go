// Package when parses and evaluates context-key predicates such as
//
//	config.telemetry.enabled && workspacePlatform != 'webworker'
//
// Expressions use HCL native expression syntax (&&, ||, !, comparisons,
// parentheses and literals); single-quoted strings are accepted. Dotted
// names address nested context keys. Registries store an Expr without
// evaluating it; views call Eval against their live Context.
package when
