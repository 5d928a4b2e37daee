// Package delivery provides the delivery request record, the denormalized
// mirror of driver assignment state. The mirror is kept consistent with the
// authoritative shift and assignment tables opportunistically: confirmation
// propagates onto it when the shift's route linkage resolves to a request,
// and skips it silently when it does not.
package delivery
