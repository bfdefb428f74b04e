// Package engine owns the secret scan proper: directory traversal with
// exclusion rules, per-line pattern matching against the rule table, the
// entropy fallback pass, and result aggregation. The one piece of mutable
// state is the result accumulator local to a single invocation; concurrent
// scans never share anything.
package engine
