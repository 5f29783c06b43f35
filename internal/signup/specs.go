package signup

import "github.com/dmitrymomot/medsignup/pkg/validator"

const (
	minFullNameLength      = 3
	minLicenseNumberLength = 5
	minPasswordLength      = 8
)

// User-facing messages, one per failing rule.
const (
	MsgFullNameRequired       = "Full name is required"
	MsgFullNameTooShort       = "Full name must be at least 3 characters"
	MsgFullNameInvalid        = "Full name can only contain letters, spaces, hyphens, and apostrophes"
	MsgEmailRequired          = "Email address is required"
	MsgEmailInvalid           = "Please enter a valid email address"
	MsgPhoneRequired          = "Phone number is required"
	MsgPhoneInvalid           = "Please enter a valid phone number (minimum 10 digits)"
	MsgLicenseRequired        = "Medical license number is required"
	MsgLicenseTooShort        = "Medical license number must be at least 5 characters"
	MsgLicenseInvalid         = "Medical license number can only contain letters and numbers"
	MsgSpecializationRequired = "Please select a specialization"
	MsgSpecializationInvalid  = "Please select a valid specialization"
	MsgPasswordRequired       = "Password is required"
	MsgPasswordWeak           = "Password does not meet all requirements"
	MsgConfirmRequired        = "Please confirm your password"
	MsgConfirmMismatch        = "Passwords do not match"
	MsgTermsRequired          = "You must agree to the terms and conditions"
)

// FieldSpec is the rule set of one field. Rules are evaluated in order and the
// first failure is reported. Rules receives the whole snapshot because some
// fields, like confirmPassword, depend on others.
type FieldSpec struct {
	Name     Field
	Required bool
	Rules    func(v FormValues) []validator.Rule
}

func defaultSpecs(specializations []string) []FieldSpec {
	return []FieldSpec{
		{
			Name:     FieldFullName,
			Required: true,
			Rules: func(v FormValues) []validator.Rule {
				name := FieldFullName.String()
				return []validator.Rule{
					validator.Required(name, v.FullName).WithMessage(MsgFullNameRequired),
					validator.MinLen(name, v.FullName, minFullNameLength).WithMessage(MsgFullNameTooShort),
					validator.PersonName(name, v.FullName).WithMessage(MsgFullNameInvalid),
				}
			},
		},
		{
			Name:     FieldEmail,
			Required: true,
			Rules: func(v FormValues) []validator.Rule {
				name := FieldEmail.String()
				return []validator.Rule{
					validator.Required(name, v.Email).WithMessage(MsgEmailRequired),
					validator.Email(name, v.Email).WithMessage(MsgEmailInvalid),
				}
			},
		},
		{
			Name:     FieldPhone,
			Required: true,
			Rules: func(v FormValues) []validator.Rule {
				name := FieldPhone.String()
				return []validator.Rule{
					validator.Required(name, v.Phone).WithMessage(MsgPhoneRequired),
					validator.Phone(name, v.Phone).WithMessage(MsgPhoneInvalid),
				}
			},
		},
		{
			Name:     FieldLicenseNumber,
			Required: true,
			Rules: func(v FormValues) []validator.Rule {
				name := FieldLicenseNumber.String()
				return []validator.Rule{
					validator.Required(name, v.LicenseNumber).WithMessage(MsgLicenseRequired),
					validator.MinLen(name, v.LicenseNumber, minLicenseNumberLength).WithMessage(MsgLicenseTooShort),
					validator.Alphanumeric(name, v.LicenseNumber).WithMessage(MsgLicenseInvalid),
				}
			},
		},
		{
			Name:     FieldSpecialization,
			Required: true,
			Rules: func(v FormValues) []validator.Rule {
				name := FieldSpecialization.String()
				rules := []validator.Rule{
					validator.NotEmpty(name, v.Specialization).WithMessage(MsgSpecializationRequired),
				}
				if len(specializations) > 0 {
					rules = append(rules,
						validator.InList(name, v.Specialization, specializations).WithMessage(MsgSpecializationInvalid),
					)
				}
				return rules
			},
		},
		{
			Name:     FieldPassword,
			Required: true,
			Rules: func(v FormValues) []validator.Rule {
				name := FieldPassword.String()
				return []validator.Rule{
					validator.NotEmpty(name, v.Password).WithMessage(MsgPasswordRequired),
					validator.All(name, MsgPasswordWeak, passwordRules(v.Password)...),
				}
			},
		},
		{
			Name:     FieldConfirmPassword,
			Required: true,
			Rules: func(v FormValues) []validator.Rule {
				name := FieldConfirmPassword.String()
				return []validator.Rule{
					validator.NotEmpty(name, v.ConfirmPassword).WithMessage(MsgConfirmRequired),
					validator.Equal(name, v.ConfirmPassword, FieldPassword.String(), v.Password).WithMessage(MsgConfirmMismatch),
				}
			},
		},
		{
			Name:     FieldTerms,
			Required: true,
			Rules: func(v FormValues) []validator.Rule {
				return []validator.Rule{
					validator.Accepted(FieldTerms.String(), v.Terms).WithMessage(MsgTermsRequired),
				}
			},
		},
	}
}

// passwordRules lists the four requirements in PasswordRequirements order.
func passwordRules(password string) []validator.Rule {
	name := FieldPassword.String()
	return []validator.Rule{
		validator.MinLen(name, password, minPasswordLength),
		validator.PasswordUppercase(name, password),
		validator.PasswordLowercase(name, password),
		validator.PasswordDigit(name, password),
	}
}
