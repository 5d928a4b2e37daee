// Package kernel provides core domain primitives shared across aggregates.
// It implements fundamental building blocks following Domain-Driven Design
// principles: small, immutable value objects constructed only through
// validating factory functions.
//
// The central primitive is TrackingToken, the human-readable identifier that
// ties a dynamic shift back to the route record it was derived from. The
// token is a derived encoding, never persisted separately, and must
// round-trip losslessly between its string form and the numeric route id.
package kernel
