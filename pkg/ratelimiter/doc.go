// Package ratelimiter implements a token bucket limiter with an in-memory
// store and net/http middleware.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       30,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(bucket, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	}))
//
// A bucket starts full. Each refill interval adds RefillRate tokens up to
// Capacity; a request is denied when fewer tokens remain than it asks for,
// and a denied request takes nothing.
package ratelimiter
