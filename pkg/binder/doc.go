// Package binder decodes HTTP requests into tagged structs.
//
// Each constructor returns a func(r *http.Request, v any) error that handles
// one kind of payload:
//
//   - Form binds application/x-www-form-urlencoded and multipart/form-data
//     using `form` tags.
//   - JSON binds application/json bodies using `json` tags, in strict mode
//     with a size limit.
//   - Signals binds the signal store sent by a DataStar client using `json` tags.
//
// A binder that does not handle the request returns ErrBinderNotApplicable so
// several binders can be tried in order:
//
//	http.HandleFunc("/signup", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, signup.FormValues](
//			binder.Signals(),
//			binder.JSON(),
//			binder.Form(),
//		),
//	))
//
// Values are bound as sent. Trimming and other normalization is left to the
// domain code, since some inputs, such as passwords, must be compared exactly.
package binder
