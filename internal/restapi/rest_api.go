package restapi

import (
	"net/http"
	"time"

	"carrierdash/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, app.Config.RateBurst, 5*time.Minute, app.Config.TrustProxy),
	}
}

// WithMiddleware wraps handler in the request logging, security header,
// compression and rate limiting middleware, outermost first.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	handler = api.rateLimiter.Handler(handler)
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	return NewRequestLoggingMiddleware(api.Logger, api.Config.TrustProxy)(handler)
}

// Close stops the background work of the middleware
func (api *RestAPI) Close() {
	api.rateLimiter.Stop()
}
