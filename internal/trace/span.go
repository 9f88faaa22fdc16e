package trace

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Attribute keys recorded on transition spans and frame events.
const (
	KeyView      = attribute.Key("stackui.view.name")
	KeyAnimation = attribute.Key("stackui.animation")
	KeyStackSize = attribute.Key("stackui.stack.size")
	KeyFadeOut   = attribute.Key("stackui.fade_out")
	KeyWait      = attribute.Key("stackui.wait")
	KeyFrame     = attribute.Key("stackui.frame")
	KeyOverrun   = attribute.Key("stackui.frame.overrun_us")
)

// StartTransition starts the span covering one push or pop, from the moment
// input is blocked until it is released.
func StartTransition(ctx context.Context, tracer oteltrace.Tracer, op, view, animation string, stackSize int) oteltrace.Span {
	_, span := tracer.Start(ctx, op,
		oteltrace.WithAttributes(
			KeyView.String(view),
			KeyAnimation.String(animation),
			KeyStackSize.Int(stackSize),
		),
	)
	return span
}

// FrameOverrun records a frame that exceeded its budget on span.
func FrameOverrun(span oteltrace.Span, frame uint64, overrun time.Duration) {
	span.AddEvent("frame.overrun", oteltrace.WithAttributes(
		KeyFrame.Int64(int64(frame)),
		KeyOverrun.Int64(overrun.Microseconds()),
	))
}
