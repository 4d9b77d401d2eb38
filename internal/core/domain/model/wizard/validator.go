package wizard

import (
	"regexp"

	"orderwizard/internal/core/domain/model/form"
)

// emailPattern matches one or more non-@ characters, "@", one or more non-@
// characters, ".", one or more non-@ characters.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Validate returns the violations of step for the given form. Every rule of
// the step runs and all violations are collected. Summary and out-of-range
// steps have no rules and always yield an empty map.
//
// Validate is pure: the same inputs always produce an equal map.
func Validate(step Step, state form.State) ErrorMap {
	errs := ErrorMap{}

	switch step {
	case Contact:
		require(errs, state, form.Name)
		require(errs, state, form.Email)
		// A non-empty email that fails the pattern reports InvalidEmail in
		// place of any earlier verdict; an empty one stays Required.
		if email := state.Get(form.Email); email != "" && !emailPattern.MatchString(email) {
			errs[form.Email] = InvalidEmail
		}
		require(errs, state, form.Phone)
	case Delivery, Pickup:
		for _, f := range step.Fields() {
			require(errs, state, f)
		}
	case Summary:
	}

	return errs
}

func require(errs ErrorMap, state form.State, f form.Field) {
	if state.Get(f) == "" {
		errs[f] = Required
	}
}
