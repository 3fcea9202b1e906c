// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands to tell instances built by their constructor apart
// from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded value
// is a zero value and the caller passed no specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built through a constructor.
//
// Example:
//
//	var ErrSlotIsNotConstructed = errors.New("Slot must be created via NewSlot")
//
//	type Slot struct {
//	    number kernel.PackageNumber
//	    guard  guard.ConstructorGuard
//	}
//
//	func (s Slot) Validate() error {
//	    return s.guard.Validate(ErrSlotIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when
// validationError is nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
