package signup

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/medsignup/pkg/sanitizer"
)

// FormValues is a snapshot of the sign-up form inputs.
// Tags match the input names so the same struct binds from forms, JSON and datastar signals.
type FormValues struct {
	FullName        string `form:"fullName" json:"fullName"`
	Email           string `form:"email" json:"email"`
	Phone           string `form:"phone" json:"phone"`
	LicenseNumber   string `form:"licenseNumber" json:"licenseNumber"`
	Specialization  string `form:"specialization" json:"specialization"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword"`
	Terms           bool   `form:"terms" json:"terms"`
}

// Text inputs are trimmed before validation. Selects and passwords are compared as typed.
var normalizers = map[Field]func(string) string{
	FieldFullName:        sanitizer.Trim,
	FieldEmail:           sanitizer.Trim,
	FieldPhone:           sanitizer.Trim,
	FieldLicenseNumber:   sanitizer.Trim,
	FieldSpecialization:  sanitizer.Identity,
	FieldPassword:        sanitizer.Identity,
	FieldConfirmPassword: sanitizer.Identity,
}

// Get returns the raw value of a field. Terms is reported as "true" or "false".
func (v FormValues) Get(f Field) string {
	switch f {
	case FieldFullName:
		return v.FullName
	case FieldEmail:
		return v.Email
	case FieldPhone:
		return v.Phone
	case FieldLicenseNumber:
		return v.LicenseNumber
	case FieldSpecialization:
		return v.Specialization
	case FieldPassword:
		return v.Password
	case FieldConfirmPassword:
		return v.ConfirmPassword
	case FieldTerms:
		return strconv.FormatBool(v.Terms)
	}
	return ""
}

// Set stores a raw value. Terms accepts the usual checkbox encodings ("on", "true", "1", "yes").
// Unknown fields are ignored.
func (v *FormValues) Set(f Field, value string) {
	switch f {
	case FieldFullName:
		v.FullName = value
	case FieldEmail:
		v.Email = value
	case FieldPhone:
		v.Phone = value
	case FieldLicenseNumber:
		v.LicenseNumber = value
	case FieldSpecialization:
		v.Specialization = value
	case FieldPassword:
		v.Password = value
	case FieldConfirmPassword:
		v.ConfirmPassword = value
	case FieldTerms:
		v.Terms = parseCheckbox(value)
	}
}

// Normalized returns a copy with the trimmed text inputs.
func (v FormValues) Normalized() FormValues {
	out := v
	for f, normalize := range normalizers {
		out.Set(f, sanitizer.Apply(v.Get(f), normalize))
	}
	return out
}

func parseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes", "checked":
		return true
	}
	return false
}
