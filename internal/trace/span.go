package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var seqCounter, spanCounter atomic.Uint64

// Span is an open phase. Its end event repeats the begin event's phase, name
// and parent.
type Span struct {
	tracer Tracer
	begin  Event
	extra  map[string]string
}

func emit(t Tracer, ev Event) {
	ev.Seq = seqCounter.Add(1)
	t.Emit(&ev)
}

func allowed(t Tracer, p Phase) bool {
	return t != nil && t.Enabled() && t.Level().Allows(p)
}

// Begin opens a span and emits its begin event. parent is 0 for roots.
// Disabled phases get an inert span.
func Begin(t Tracer, phase Phase, name string, parent uint64) *Span {
	if !allowed(t, phase) {
		return &Span{}
	}
	s := &Span{tracer: t, begin: Event{
		Time:     time.Now(),
		Kind:     KindBegin,
		Phase:    phase,
		SpanID:   spanCounter.Add(1),
		ParentID: parent,
		Name:     name,
	}}
	emit(t, s.begin)
	return s
}

// Start opens a span with the tracer and parent stored in ctx. Spans begun
// from the returned context nest under it.
func Start(ctx context.Context, phase Phase, name string) (context.Context, *Span) {
	span := Begin(FromContext(ctx), phase, name, ParentID(ctx))
	return WithParent(ctx, span), span
}

// End emits the end event and returns how long the span was open.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	ev := s.begin
	ev.Kind = KindEnd
	ev.Time = time.Now()
	ev.Detail = detail
	ev.Extra = s.extra
	emit(s.tracer, ev)
	return ev.Time.Sub(s.begin.Time)
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.tracer == nil {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, 0 for inert spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.begin.SpanID
}

// Point emits an instant event under parent.
func Point(t Tracer, phase Phase, name, detail string, parent uint64) {
	if !allowed(t, phase) {
		return
	}
	emit(t, Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Phase:    phase,
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}
