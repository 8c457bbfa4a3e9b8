package usecases

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
)

var tracer = otel.Tracer("github.com/samirrijal/fuelcalc/internal/core/usecases")

const failureAttr = attribute.Key("fuelcalc.validation.message")

// recordRejection marks the span as failed validation, one event per failure.
func recordRejection(span trace.Span, verr *domain.ValidationError) {
	span.SetStatus(codes.Error, "validation failed")
	for _, msg := range verr.Messages() {
		span.AddEvent("validation_failure", trace.WithAttributes(failureAttr.String(msg)))
	}
}
