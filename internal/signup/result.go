package signup

import "github.com/dmitrymomot/medsignup/pkg/validator"

// FieldResult is the outcome of one field's rules. Message is empty when Valid.
type FieldResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// PasswordRequirements breaks the password rule into its four checks so each
// can be shown as met or unmet on its own.
type PasswordRequirements struct {
	Length    bool `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digit     bool `json:"digit"`
}

// Met reports whether all four requirements hold.
func (p PasswordRequirements) Met() bool {
	return p.Length && p.Uppercase && p.Lowercase && p.Digit
}

// ValidationResult holds every field's outcome plus the aggregate.
type ValidationResult struct {
	Fields   map[Field]FieldResult `json:"fields"`
	Password PasswordRequirements  `json:"password"`
	AllValid bool                  `json:"allValid"`
}

func (r ValidationResult) Valid(f Field) bool {
	return r.Fields[f].Valid
}

func (r ValidationResult) Message(f Field) string {
	return r.Fields[f].Message
}

// Err returns nil when every field passed, otherwise validator.ValidationErrors
// listing failed fields in form order.
func (r ValidationResult) Err() error {
	var errs validator.ValidationErrors
	for _, f := range fieldOrder {
		res, ok := r.Fields[f]
		if !ok || res.Valid {
			continue
		}
		errs.Add(validator.ValidationError{
			Field:          f.String(),
			Message:        res.Message,
			TranslationKey: "signup." + f.String(),
		})
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Invalid returns the failed fields in form order.
func (r ValidationResult) Invalid() []Field {
	var out []Field
	for _, f := range fieldOrder {
		if res, ok := r.Fields[f]; ok && !res.Valid {
			out = append(out, f)
		}
	}
	return out
}
