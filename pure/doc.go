// Package pure memoizes pure functions by their input values.
//
// The Tableize family (TableizeI1O1 to TableizeI4O2) wraps a function of one
// to four arguments and one or two results. Results are kept in a Trie whose
// nodes are deleteless dictionaries: each argument selects a child node, the
// last one selects the stored result.
//
// The memo is bounded by generations rather than by evicting single entries.
// When the head generation has taken maxTableSize stores, the previous
// generation is discarded whole and a fresh head is started, so a result
// stays reachable for at least maxTableSize further stores.
//
// Arguments implementing fmt.Stringer are keyed by their string form. Any other
// argument must be comparable; tableizing a call with an argument that is
// neither panics.
//
// Do not tableize functions that depend on time, I/O or other hidden state.
package pure
