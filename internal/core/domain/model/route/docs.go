// Package route provides the append-only log of route computation attempts.
// Every call to the external routing provider, successful or not, is captured
// as a Record so that operators can audit what was requested and what came
// back. Records are immutable after creation: the package deliberately
// exposes no mutators.
package route
