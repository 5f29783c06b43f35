package form

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/medsignup/internal/signup"
	"github.com/dmitrymomot/medsignup/pkg/logger"
	"github.com/dmitrymomot/medsignup/pkg/sanitizer"
)

// Controller drives one sign-up form session: it receives input events,
// asks the Validator for verdicts and keeps the resulting visual state.
//
// A Controller is not safe for concurrent use. Create one per session.
type Controller struct {
	validator  *signup.Validator
	log        *slog.Logger
	onAccepted []func(context.Context, signup.FormValues)
	state      State
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for submit outcomes. Field values are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// OnAccepted registers a callback invoked with the trimmed values of an
// accepted submission, before the form is reset.
func OnAccepted(fn func(ctx context.Context, values signup.FormValues)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.onAccepted = append(c.onAccepted, fn)
		}
	}
}

// New creates a controller with an empty form.
func New(v *signup.Validator, opts ...Option) *Controller {
	c := &Controller{
		validator: v,
		log:       slog.New(slog.DiscardHandler),
		state:     State{Fields: neutralFields()},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Restore rebuilds a controller from a snapshot sent back by a client.
// Missing field states are filled in as neutral.
func Restore(v *signup.Validator, s State, opts ...Option) *Controller {
	c := New(v, opts...)
	c.state = s.clone()
	if c.state.Fields == nil {
		c.state.Fields = neutralFields()
	}
	for _, f := range signup.Fields() {
		if _, ok := c.state.Fields[f]; !ok {
			c.state.Fields[f] = FieldState{Status: StatusNeutral}
		}
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state.clone()
}

// Input handles a keystroke-level change of a field.
//
//   - email, phone: once non-empty, the status follows the pattern; the message is left alone.
//   - password: shows the requirements panel, runs the password rule and
//     re-checks a non-empty confirmation against the new value.
//   - confirmPassword: runs the confirmation rule.
//
// Other fields only update the snapshot until they are blurred.
func (c *Controller) Input(f signup.Field, value string) {
	c.state.Values.Set(f, value)

	switch f {
	case signup.FieldEmail, signup.FieldPhone:
		c.liveFormat(f)
	case signup.FieldPassword:
		c.state.Requirements = RequirementsPanel{
			Visible:              true,
			PasswordRequirements: signup.CheckPassword(c.state.Values.Password),
		}
		c.apply(signup.FieldPassword)
		c.syncConfirmation()
	case signup.FieldConfirmPassword:
		c.apply(signup.FieldConfirmPassword)
	}
}

// Blur runs the full rule of a text field when it loses focus.
// Fields validated on input or change ignore blur.
func (c *Controller) Blur(f signup.Field) {
	switch f {
	case signup.FieldFullName, signup.FieldEmail, signup.FieldPhone,
		signup.FieldLicenseNumber, signup.FieldConfirmPassword:
		c.apply(f)
	}
}

// Change handles select and checkbox changes. Specialization and terms are
// validated right away; other fields only update the snapshot.
func (c *Controller) Change(f signup.Field, value string) {
	c.state.Values.Set(f, value)

	switch f {
	case signup.FieldSpecialization, signup.FieldTerms:
		c.apply(f)
	}
}

// Outcome is the result of a submit.
type Outcome struct {
	Accepted bool                    `json:"accepted"`
	Result   signup.ValidationResult `json:"result"`
}

// Submit clears previous feedback and validates every field. An accepted
// submission fires the OnAccepted callbacks, empties the form and shows the
// success banner. A rejected one leaves each field's verdict in place.
func (c *Controller) Submit(ctx context.Context) Outcome {
	c.clearFeedback()

	res := c.validator.Validate(c.state.Values)
	for f, fr := range res.Fields {
		c.state.Fields[f] = stateFromResult(fr)
	}
	c.state.Requirements = RequirementsPanel{Visible: true, PasswordRequirements: res.Password}

	if !res.AllValid {
		invalid := res.Invalid()
		names := make([]string, len(invalid))
		for i, f := range invalid {
			names[i] = f.String()
		}
		c.log.DebugContext(ctx, "sign-up rejected",
			logger.Component("form"),
			logger.Fields(names...),
		)
		return Outcome{Result: res}
	}

	accepted := c.state.Values.Normalized()
	for _, fn := range c.onAccepted {
		fn(ctx, accepted)
	}
	c.log.InfoContext(ctx, "sign-up accepted",
		logger.Component("form"),
		logger.Masked("email", sanitizer.MaskEmail(accepted.Email)),
		logger.Masked("phone", sanitizer.MaskPhone(accepted.Phone)),
		slog.String("specialization", accepted.Specialization),
	)

	c.Reset()
	c.state.SuccessShown = true
	return Outcome{Accepted: true, Result: res}
}

// ToggleVisibility flips plain-text display of a password input and returns
// whether it is now visible. Other fields are not affected and report false.
func (c *Controller) ToggleVisibility(f signup.Field) bool {
	switch f {
	case signup.FieldPassword:
		c.state.PasswordVisible = !c.state.PasswordVisible
		return c.state.PasswordVisible
	case signup.FieldConfirmPassword:
		c.state.ConfirmVisible = !c.state.ConfirmVisible
		return c.state.ConfirmVisible
	}
	return false
}

// DismissSuccess hides the success banner.
func (c *Controller) DismissSuccess() {
	c.state.SuccessShown = false
}

// Reset empties every input and clears all feedback.
// Password visibility toggles are kept, as a browser form reset keeps input types.
func (c *Controller) Reset() {
	c.state.Values = signup.FormValues{}
	c.clearFeedback()
	c.state.SuccessShown = false
}

func (c *Controller) apply(f signup.Field) {
	c.state.Fields[f] = stateFromResult(c.validator.ValidateField(f, c.state.Values))
}

func (c *Controller) liveFormat(f signup.Field) {
	if sanitizer.Trim(c.state.Values.Get(f)) == "" {
		return
	}
	if c.validator.ValidateField(f, c.state.Values).Valid {
		c.state.Fields[f] = FieldState{Status: StatusSuccess}
		return
	}
	st := c.state.Fields[f]
	st.Status = StatusError
	c.state.Fields[f] = st
}

// syncConfirmation follows a password edit: a non-empty confirmation that no
// longer matches turns red, a matching one loses its error.
func (c *Controller) syncConfirmation() {
	confirm := c.state.Values.ConfirmPassword
	if confirm == "" {
		return
	}
	st := c.state.Fields[signup.FieldConfirmPassword]
	switch {
	case confirm != c.state.Values.Password:
		st.Status = StatusError
	case st.Status == StatusError:
		st = FieldState{Status: StatusNeutral}
	}
	c.state.Fields[signup.FieldConfirmPassword] = st
}

func (c *Controller) clearFeedback() {
	c.state.Fields = neutralFields()
	c.state.Requirements = RequirementsPanel{}
}
