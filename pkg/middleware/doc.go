// Package middleware provides net/http middleware for the preview server.
//
// This package includes:
//   - Prometheus request metrics
//   - OpenTelemetry request spans
//   - structured request logging with log/slog
//
// All middleware take and return http.Handler and plug into chi:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
//	r.Use(middleware.OpenTelemetry(tracer))
//	r.Use(middleware.Logger(logger))
//
// Requests are labeled by chi route pattern rather than raw path to keep
// label cardinality bounded.
package middleware
