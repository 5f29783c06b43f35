package signup

import (
	"slices"

	"github.com/dmitrymomot/medsignup/pkg/validator"
)

// Validator evaluates the sign-up rules against a FormValues snapshot.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	specs           []FieldSpec
	byName          map[Field]FieldSpec
	specializations []string
}

// Option configures a Validator.
type Option func(*Validator)

// WithSpecializations restricts specialization to the given values.
// Without it any non-empty selection passes.
func WithSpecializations(values ...string) Option {
	return func(v *Validator) {
		v.specializations = slices.Clone(values)
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}

	v.specs = defaultSpecs(v.specializations)
	v.byName = make(map[Field]FieldSpec, len(v.specs))
	for _, spec := range v.specs {
		v.byName[spec.Name] = spec
	}
	return v
}

// Specs returns the field specs in evaluation order.
func (v *Validator) Specs() []FieldSpec {
	return slices.Clone(v.specs)
}

// Validate checks every field; a failing field never stops the others.
// Text inputs are trimmed first; the caller's values are not modified.
func (v *Validator) Validate(values FormValues) ValidationResult {
	values = values.Normalized()

	res := ValidationResult{
		Fields:   make(map[Field]FieldResult, len(v.specs)),
		Password: CheckPassword(values.Password),
		AllValid: true,
	}
	for _, spec := range v.specs {
		fr := evaluate(spec, values)
		res.Fields[spec.Name] = fr
		res.AllValid = res.AllValid && fr.Valid
	}
	return res
}

// ValidateField checks a single field against the snapshot.
// Unknown fields are reported invalid.
func (v *Validator) ValidateField(f Field, values FormValues) FieldResult {
	spec, ok := v.byName[f]
	if !ok {
		return FieldResult{Valid: false, Message: ErrUnknownField.Error()}
	}
	return evaluate(spec, values.Normalized())
}

// CheckPassword reports the four password requirements independently.
func CheckPassword(password string) PasswordRequirements {
	rules := passwordRules(password)
	return PasswordRequirements{
		Length:    rules[0].Check(),
		Uppercase: rules[1].Check(),
		Lowercase: rules[2].Check(),
		Digit:     rules[3].Check(),
	}
}

func evaluate(spec FieldSpec, values FormValues) FieldResult {
	if verr := validator.First(spec.Rules(values)...); verr != nil {
		return FieldResult{Valid: false, Message: verr.Message}
	}
	return FieldResult{Valid: true}
}
