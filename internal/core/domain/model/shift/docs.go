// Package shift provides the dynamic shift aggregate and its driver
// assignments. A dynamic shift is a schedule record derived from a concrete
// route rather than a fixed template: its date, start time, and duration come
// from route timing, with conservative floors applied when timing is missing.
//
// The DynamicShift aggregate owns its Assignments. Status transitions are
// enforced by the Status state machine; the creation path (direct vs
// speculative) is tagged explicitly via Flow instead of being inferred from
// the initial status.
package shift
