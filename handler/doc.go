// Package handler provides typed HTTP handlers and the responses they return.
//
// A HandlerFunc receives a Context and a request value decoded by binders,
// and returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	validateField := handler.HandlerFunc[handler.Context, signup.FormValues](
//		func(ctx handler.Context, req signup.FormValues) handler.Response {
//			return handler.JSON(v.ValidateField(signup.FieldEmail, req))
//		},
//	)
//
//	r.Post("/signup/fields/email", handler.Wrap(validateField,
//		handler.WithBinders[handler.Context, signup.FormValues](binder.Signals(), binder.JSON(), binder.Form()),
//	))
//
// Responses:
//
//   - JSON and JSONError write the {data, meta, error} envelope. Validation
//     errors, either ValidationError or validator.ValidationErrors, become
//     422 with per-field details.
//   - Templ renders a templ component as HTML, or as a DataStar element patch
//     when IsDataStar reports true. TemplMulti sends several patches in one
//     stream and TemplMultiSignals also patches client signals.
//
// NewErrorHandler picks the error representation from the request the same
// way: toast patch for DataStar, JSON for JSON clients, an error page otherwise.
package handler
