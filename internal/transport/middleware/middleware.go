// Package middleware holds the HTTP middleware shared by the REST router.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
