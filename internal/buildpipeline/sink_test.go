package buildpipeline

import (
	"sync"
	"testing"
)

func TestChannelSinkForwards(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "a.pas", Stage: StageParse, Status: StatusWorking})
	got := <-ch
	if got.File != "a.pas" || got.Stage != StageParse || got.Status != StatusWorking {
		t.Errorf("unexpected event %+v", got)
	}
	// Без канала событие молча теряется
	ChannelSink{}.OnEvent(Event{})
}

func TestRecordingSinkConcurrent(t *testing.T) {
	var sink RecordingSink
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Emit(&sink, Event{Stage: StageSema, Status: StatusDone})
		}()
	}
	wg.Wait()
	if n := len(sink.Events()); n != 10 {
		t.Errorf("events = %d, want 10", n)
	}
	Emit(nil, Event{})
}
