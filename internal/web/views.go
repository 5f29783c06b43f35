package web

import (
	"encoding/json"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/medsignup/handler"
	"github.com/dmitrymomot/medsignup/internal/catalog"
	"github.com/dmitrymomot/medsignup/internal/form"
	"github.com/dmitrymomot/medsignup/internal/signup"
)

// Element ids shared by full renders and DataStar patches.
const (
	FormID         = "doctorSignupForm"
	RequirementsID = "passwordRequirements"
	SuccessID      = "successMessage"
	ToastID        = "toast-container"
)

// FeedbackID is the id of the message element under a field.
func FeedbackID(f signup.Field) string {
	return f.String() + "Error"
}

// PageParams feeds Page and SignupForm.
type PageParams struct {
	Title           string
	State           form.State
	Specializations []catalog.Specialization
}

// Views groups the components the service renders. Zero fields fall back to
// the built-in markup.
type Views struct {
	Page                 func(PageParams) templ.Component
	FieldFeedback        func(signup.Field, form.FieldState) templ.Component
	PasswordRequirements func(form.RequirementsPanel) templ.Component
	SuccessMessage       func(bool) templ.Component
	Toast                func(handler.ErrorToastParams) templ.Component
	ErrorPage            func(handler.ErrorPageParams) templ.Component
}

// DefaultViews returns the built-in components.
func DefaultViews() Views {
	return Views{
		Page:                 Page,
		FieldFeedback:        FieldFeedback,
		PasswordRequirements: PasswordRequirements,
		SuccessMessage:       SuccessMessage,
		Toast:                Toast,
		ErrorPage:            ErrorPage,
	}
}

func (v Views) withDefaults() Views {
	d := DefaultViews()
	if v.Page == nil {
		v.Page = d.Page
	}
	if v.FieldFeedback == nil {
		v.FieldFeedback = d.FieldFeedback
	}
	if v.PasswordRequirements == nil {
		v.PasswordRequirements = d.PasswordRequirements
	}
	if v.SuccessMessage == nil {
		v.SuccessMessage = d.SuccessMessage
	}
	if v.Toast == nil {
		v.Toast = d.Toast
	}
	if v.ErrorPage == nil {
		v.ErrorPage = d.ErrorPage
	}
	return v
}

type inputSpec struct {
	label        string
	kind         string
	autocomplete string
	events       []string
}

var inputs = map[signup.Field]inputSpec{
	signup.FieldFullName:        {label: "Full Name", kind: "text", autocomplete: "name", events: []string{"blur"}},
	signup.FieldEmail:           {label: "Email Address", kind: "email", autocomplete: "email", events: []string{"blur", "input"}},
	signup.FieldPhone:           {label: "Phone Number", kind: "tel", autocomplete: "tel", events: []string{"blur", "input"}},
	signup.FieldLicenseNumber:   {label: "Medical License Number", kind: "text", autocomplete: "off", events: []string{"blur"}},
	signup.FieldSpecialization:  {label: "Specialization", events: []string{"change"}},
	signup.FieldPassword:        {label: "Password", kind: "password", autocomplete: "new-password", events: []string{"input"}},
	signup.FieldConfirmPassword: {label: "Confirm Password", kind: "password", autocomplete: "new-password", events: []string{"blur", "input"}},
	signup.FieldTerms:           {label: "I agree to the Terms and Conditions", kind: "checkbox", events: []string{"change"}},
}

// signals is the client-side store. Passwords are never sent back to the browser.
type signals struct {
	signup.FormValues
	ShowPassword bool `json:"showPassword"`
	ShowConfirm  bool `json:"showConfirm"`
}

func pageSignals(st form.State) string {
	values := st.Values
	values.Password, values.ConfirmPassword = "", ""
	b, err := json.Marshal(signals{FormValues: values, ShowPassword: st.PasswordVisible, ShowConfirm: st.ConfirmVisible})
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Page renders the full sign-up document.
func Page(p PageParams) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(p.Title)
		h.raw(`</title>`)
		h.raw(`<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"></script>`)
		h.raw(`</head><body><main class="container"><h1>`)
		h.text(p.Title)
		h.raw(`</h1>`)
		h.raw(`<div id="` + ToastID + `"></div>`)
		h.render(SuccessMessage(p.State.SuccessShown))
		h.render(SignupForm(p))
		h.raw(`</main></body></html>`)
	})
}

// SignupForm renders the form alone. It works without JavaScript as a plain
// POST and is enhanced by DataStar attributes when the client loads it.
func SignupForm(p PageParams) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form id="` + FormID + `" method="post" action="/signup" novalidate`)
		h.attr("data-signals", pageSignals(p.State))
		h.raw(` data-on:submit__prevent="@post('/signup')">`)

		for _, f := range signup.Fields() {
			spec := inputs[f]
			st := p.State.Field(f)
			h.raw(`<div class="form-group">`)

			switch f {
			case signup.FieldSpecialization:
				fieldLabel(h, f, spec.label)
				h.raw(`<select`)
				inputAttrs(h, f, spec, st)
				h.raw(`><option value="">Select your specialization</option>`)
				for _, opt := range p.Specializations {
					h.raw(`<option`)
					h.attr("value", opt.Value)
					h.flag("selected", opt.Value == p.State.Values.Specialization)
					h.raw(`>`)
					h.text(opt.Label)
					h.raw(`</option>`)
				}
				h.raw(`</select>`)

			case signup.FieldTerms:
				h.raw(`<label class="checkbox"><input type="checkbox" value="on"`)
				inputAttrs(h, f, spec, st)
				h.flag("checked", p.State.Values.Terms)
				h.raw(`> `)
				h.text(spec.label)
				h.raw(`</label>`)

			case signup.FieldPassword, signup.FieldConfirmPassword:
				fieldLabel(h, f, spec.label)
				toggle := "showPassword"
				visible := p.State.PasswordVisible
				if f == signup.FieldConfirmPassword {
					toggle, visible = "showConfirm", p.State.ConfirmVisible
				}
				kind := "password"
				if visible {
					kind = "text"
				}
				h.raw(`<div class="password-wrapper"><input`)
				h.attr("type", kind)
				h.attr("data-attr:type", "$"+toggle+" ? 'text' : 'password'")
				inputAttrs(h, f, spec, st)
				h.raw(`><button type="button" class="toggle-password"`)
				h.attr("aria-label", "Show or hide "+spec.label)
				h.attr("data-on:click", "$"+toggle+" = !$"+toggle)
				h.raw(`><span class="eye-icon" aria-hidden="true">&#128065;</span></button></div>`)
				if f == signup.FieldPassword {
					h.render(PasswordRequirements(p.State.Requirements))
				}

			default:
				fieldLabel(h, f, spec.label)
				h.raw(`<input`)
				h.attr("type", spec.kind)
				h.attr("value", p.State.Values.Get(f))
				inputAttrs(h, f, spec, st)
				h.raw(`>`)
			}

			h.render(FieldFeedback(f, st))
			h.raw(`</div>`)
		}

		h.raw(`<button type="submit" class="btn-primary">Create Account</button></form>`)
	})
}

func fieldLabel(h *htmlWriter, f signup.Field, label string) {
	h.raw(`<label`)
	h.attr("for", f.String())
	h.raw(`>`)
	h.text(label)
	h.raw(`</label>`)
}

func inputAttrs(h *htmlWriter, f signup.Field, spec inputSpec, st form.FieldState) {
	name := f.String()
	h.attr("id", name)
	h.attr("name", name)
	h.attr("data-bind", name)
	if spec.autocomplete != "" {
		h.attr("autocomplete", spec.autocomplete)
	}
	if st.Status != form.StatusNeutral {
		h.attr("class", string(st.Status))
	}
	h.attr("aria-describedby", FeedbackID(f))
	for _, ev := range spec.events {
		key := "data-on:" + ev
		if ev == "input" {
			key += "__debounce.300ms"
		}
		h.attr(key, "@post('/signup/fields/"+name+"?event="+ev+"')")
	}
}

// FieldFeedback renders the message element under an input. Its status is
// exposed as data-status so styles can follow it without re-rendering the input.
func FieldFeedback(f signup.Field, st form.FieldState) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<span class="error-message" role="alert"`)
		h.attr("id", FeedbackID(f))
		h.attr("data-status", string(st.Status))
		h.raw(`>`)
		h.text(st.Message)
		h.raw(`</span>`)
	})
}

var requirementItems = []struct {
	id    string
	label string
	met   func(signup.PasswordRequirements) bool
}{
	{"req-length", "At least 8 characters", func(p signup.PasswordRequirements) bool { return p.Length }},
	{"req-uppercase", "One uppercase letter", func(p signup.PasswordRequirements) bool { return p.Uppercase }},
	{"req-lowercase", "One lowercase letter", func(p signup.PasswordRequirements) bool { return p.Lowercase }},
	{"req-number", "One number", func(p signup.PasswordRequirements) bool { return p.Digit }},
}

// PasswordRequirements renders the checklist. It is hidden until the password is typed into.
func PasswordRequirements(panel form.RequirementsPanel) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<ul id="` + RequirementsID + `" class="password-requirements"`)
		h.flag("hidden", !panel.Visible)
		h.raw(`>`)
		for _, item := range requirementItems {
			met := item.met(panel.PasswordRequirements)
			h.raw(`<li`)
			h.attr("id", item.id)
			if met {
				h.raw(` class="met">&#10003; `)
			} else {
				h.raw(`>&#10007; `)
			}
			h.text(item.label)
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	})
}

// SuccessMessage renders the banner shown after an accepted submission.
func SuccessMessage(shown bool) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div id="` + SuccessID + `" class="success-message" role="status"`)
		h.flag("hidden", !shown)
		h.raw(`><p>Registration successful! Your account is pending verification.</p>`)
		if shown {
			h.raw(`<button type="button" class="btn-link" data-on:click="@post('/signup/dismiss')">Dismiss</button>`)
		}
		h.raw(`</div>`)
	})
}

// Toast renders an error notification for DataStar requests.
func Toast(p handler.ErrorToastParams) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="toast"`)
		h.attr("data-type", p.Type)
		h.raw(`>`)
		h.text(p.Message)
		if p.RequestID != "" {
			h.raw(` <small>`)
			h.text(p.RequestID)
			h.raw(`</small>`)
		}
		h.raw(`</div>`)
	})
}

// ErrorPage renders a minimal error document.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		h.text(strconv.Itoa(p.StatusCode))
		h.raw(`</title></head><body><main class="container"><h1>`)
		h.text(p.Error)
		h.raw(`</h1>`)
		if p.RequestID != "" {
			h.raw(`<p>Request ID: <code>`)
			h.text(p.RequestID)
			h.raw(`</code></p>`)
		}
		h.raw(`<p><a href="/">Back to sign-up</a></p></main></body></html>`)
	})
}
