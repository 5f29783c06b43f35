// Package validator provides small, composable validation rules for form
// input: presence, length, patterns, password character classes, equality
// and choices.
//
// A Rule pairs a boolean Check with the ValidationError reported when the
// check fails. Rules capture their input when constructed, so building and
// evaluating them has no side effects and the package keeps no state; it is
// safe for concurrent use.
//
// Two evaluators cover the common cases:
//
//   - Apply runs every rule and aggregates failures into ValidationErrors.
//   - First runs rules in order and stops at the first failure, which is how
//     a single form field reports one message at a time.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.Email("email", email),
//	    validator.MinLen("name", name, 3).WithMessage("Name is too short"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed with
// errors.Is. Each ValidationError keeps a TranslationKey and values so a
// rendering layer can look up its own wording; WithMessage overrides the
// default English message without touching the key.
package validator
