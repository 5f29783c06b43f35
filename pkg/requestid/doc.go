// Package requestid tags every request with an id that shows up in responses and logs.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//
// Incoming X-Request-ID values are reused when they are at most 128
// characters of letters, digits, '-' and '_'. Anything else is replaced with
// a fresh UUID so ids coming from clients cannot inject content into logs.
package requestid
