package form

import (
	"maps"

	"github.com/dmitrymomot/medsignup/internal/signup"
)

// Status is the visual state of one input.
type Status string

const (
	StatusNeutral Status = "neutral"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// FieldState is what a renderer needs for one input: its status and the
// message shown under it.
type FieldState struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// RequirementsPanel is the password checklist. It stays hidden until the
// password is first typed into.
type RequirementsPanel struct {
	Visible bool `json:"visible"`
	signup.PasswordRequirements
}

// State is a complete, renderable snapshot of a form session.
type State struct {
	Values          signup.FormValues           `json:"values"`
	Fields          map[signup.Field]FieldState `json:"fields"`
	Requirements    RequirementsPanel           `json:"requirements"`
	PasswordVisible bool                        `json:"passwordVisible"`
	ConfirmVisible  bool                        `json:"confirmVisible"`
	SuccessShown    bool                        `json:"successShown"`
}

// Field returns the state of f, neutral when unknown.
func (s State) Field(f signup.Field) FieldState {
	if st, ok := s.Fields[f]; ok {
		return st
	}
	return FieldState{Status: StatusNeutral}
}

func (s State) clone() State {
	out := s
	out.Fields = maps.Clone(s.Fields)
	return out
}

func neutralFields() map[signup.Field]FieldState {
	fields := make(map[signup.Field]FieldState, len(signup.Fields()))
	for _, f := range signup.Fields() {
		fields[f] = FieldState{Status: StatusNeutral}
	}
	return fields
}

func stateFromResult(r signup.FieldResult) FieldState {
	if r.Valid {
		return FieldState{Status: StatusSuccess}
	}
	return FieldState{Status: StatusError, Message: r.Message}
}
