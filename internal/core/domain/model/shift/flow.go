package shift

import (
	"fmt"

	"routesync/internal/pkg/errs"
)

// Flow tags which creation path produced a dynamic shift. The two flows were
// historically inferred from the initial status; the tag makes the origin
// explicit so status can evolve independently.
type Flow string

const (
	// FlowDirect marks shifts created from an already confirmed route:
	// they start life in Asignado.
	FlowDirect Flow = "directo"

	// FlowSpeculative marks shifts proposed ahead of confirmation:
	// they start life in Pendiente and are swept if never confirmed.
	FlowSpeculative Flow = "especulativo"
)

// Validate checks if the Flow value is valid.
func (f Flow) Validate() error {
	if f != FlowDirect && f != FlowSpeculative {
		return errs.NewValueIsInvalidErrorWithCause("flow", fmt.Errorf("%q is not a valid flow", string(f)))
	}
	return nil
}

// String returns the persisted string form of the flow.
func (f Flow) String() string {
	return string(f)
}

// initialStatus returns the status a newly created shift gets for this flow.
func (f Flow) initialStatus() Status {
	if f == FlowDirect {
		return Asignado
	}
	return Pendiente
}
