// Package clientip resolves the originating client address of a request
// served behind a reverse proxy.
//
// Only deploy behind a proxy that overwrites the forwarding headers: the
// values are taken as sent.
//
//	r.Use(clientip.Middleware)
//	...
//	ip := clientip.FromContext(r.Context())
package clientip
