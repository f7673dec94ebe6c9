package middleware

import (
	"net/http"
	"strings"

	"fashionhub/internal/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Tracing starts a server span per request, continuing any trace context
// found in the request headers, and echoes the context in the response.
func Tracing(t tracing.Tracer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := t.StartSpanFromHeader(r.Context(), r.Header, r.Method+" "+r.URL.Path)
			defer span.End()

			t.InjectHTTP(ctx, w.Header())

			r = r.WithContext(ctx)
			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			span.SetAttributes(
				attribute.String("http.method", strings.ToUpper(r.Method)),
				attribute.String("http.url", r.URL.String()),
				attribute.String("http.route", r.Pattern),
				attribute.Int("http.status_code", rw.statusCode),
			)
			if rw.statusCode >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rw.statusCode))
			}
		})
	}
}
