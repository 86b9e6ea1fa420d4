// Package middleware provides decorators for ports.StateStore.
//
// Middlewares compose: the last one applied is the first one called.
//
//	seal, err := middleware.NewEncryptionMiddleware(cfg)
//	...
//	store = middleware.Chain(redisStore, seal, middleware.NewMetricsMiddleware(reg))
package middleware

import "github.com/aretw0/tally/pkg/ports"

// Middleware allows wrapping a StateStore to add behavior.
type Middleware func(ports.StateStore) ports.StateStore

// Chain applies middlewares to store in order.
func Chain(store ports.StateStore, mws ...Middleware) ports.StateStore {
	for _, mw := range mws {
		store = mw(store)
	}
	return store
}
