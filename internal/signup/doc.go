// Package signup validates the doctor sign-up form.
//
// A Validator evaluates one FieldSpec per field against a FormValues
// snapshot and returns a ValidationResult: a pass/fail and message per
// field, the four password requirements, and the aggregate AllValid flag.
// Every field is checked on every call; inside a field the first failing
// rule decides the message (required, then length, then pattern).
//
// Validation is a pure function of the snapshot. Rendering the result and
// reacting to input events belong to the caller, see internal/form and
// internal/web.
package signup
