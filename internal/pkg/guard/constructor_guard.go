// Package guard provides the constructor guard pattern used by domain
// objects, commands, and queries to ensure they are only created through
// their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate()
// when a nil error is passed as the validation error. This ensures that
// validation always fails with a meaningful message even if no specific
// error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive programming pattern that ensures value
// objects and entities are only created through their designated constructor
// functions. It prevents direct struct initialization and enforces validation
// rules.
//
// The guard works by maintaining an internal flag that is only set to true
// when the object is created through the proper constructor function. Any
// attempt to use a zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrShiftNotConstructed = errors.New("DynamicShift must be created via NewDynamicShift")
//
//	type DynamicShift struct {
//	    id    int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewDynamicShift(id int64) (DynamicShift, error) {
//	    if id <= 0 {
//	        return DynamicShift{}, errors.New("id must be positive")
//	    }
//	    return DynamicShift{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s DynamicShift) Validate() error {
//	    return s.guard.Validate(ErrShiftNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a new ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of domain
// objects to ensure they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value (not through the constructor),
// this method returns the provided validation error. If validationError is
// nil, ErrDefaultConstructorGuard is returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
