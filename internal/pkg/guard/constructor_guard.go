// Package guard enforces constructor usage for commands, queries and value
// objects. A zero-value struct that embeds a ConstructorGuard fails Validate.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor.
//
// Example usage:
//
//	type SetFieldCommand struct {
//	    wizardID kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c SetFieldCommand) Validate() error {
//	    return c.guard.Validate(ErrSetFieldCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
