package signup

import (
	"fmt"
	"slices"
)

// Field names a sign-up form input. Values match the form's input names.
type Field string

const (
	FieldFullName        Field = "fullName"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldLicenseNumber   Field = "licenseNumber"
	FieldSpecialization  Field = "specialization"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldTerms           Field = "terms"
)

var fieldOrder = []Field{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldLicenseNumber,
	FieldSpecialization,
	FieldPassword,
	FieldConfirmPassword,
	FieldTerms,
}

// Fields returns every form field in evaluation order.
func Fields() []Field {
	return slices.Clone(fieldOrder)
}

// ParseField resolves a field name, e.g. from a URL parameter.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

func (f Field) Valid() bool {
	return slices.Contains(fieldOrder, f)
}

func (f Field) String() string {
	return string(f)
}
