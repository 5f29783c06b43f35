package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form binds url-encoded and multipart form fields to `form` tagged struct fields.
//
// Supported field types: string, bool, signed and unsigned integers, floats,
// pointers to those and slices for multi-value fields. Booleans accept the
// checkbox encodings "on", "yes" and "1"; a missing checkbox leaves false.
//
//	type SignupRequest struct {
//		Email string `form:"email"`
//		Terms bool   `form:"terms"`
//		Notes string `form:"-"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		var values map[string][]string

		switch mt := mediaType(r); mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value
		default:
			return ErrBinderNotApplicable
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
