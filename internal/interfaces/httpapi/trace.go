package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("marcador-reportes/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan only opens child spans for handlers; middleware and helpers
// reuse the request span so traces stay one level deep.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

// startHandlerSpan opens a handler span tagged with the request id and the
// raw query the report was asked for.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx, span := startSpan(r.Context(), name)
	span.SetAttributes(
		attribute.String("request.id", requestIDFromContext(ctx)),
		attribute.String("http.query", r.URL.RawQuery),
	)
	return ctx, span
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
