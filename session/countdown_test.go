package session

import (
	"testing"
	"time"

	"sumcoach/types"
)

func TestCountdownDecrementsWhileFetching(t *testing.T) {
	e, p, _ := newTestEngine()
	defer e.Close()

	if err := e.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	call := p.expectCall(t)

	seen := CountdownStart
	waitFor(t, e, "countdown to decrease", func(s types.Snapshot) bool {
		if s.Countdown > seen {
			t.Fatalf("Countdown increased from %d to %d", seen, s.Countdown)
		}
		seen = s.Countdown
		return s.Countdown <= CountdownStart-3
	})

	call <- fetchResult{article: testArticle()}
	waitFor(t, e, "reading step", func(s types.Snapshot) bool { return s.Step == types.StepReading })
}

func TestCountdownFloorsAtZero(t *testing.T) {
	p := newFakeProvider()
	ev := newFakeEvaluator()
	e := NewEngine(p, ev, Config{TickInterval: time.Millisecond})
	defer e.Close()

	if err := e.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	call := p.expectCall(t)

	waitFor(t, e, "countdown to reach zero", func(s types.Snapshot) bool { return s.Countdown == 0 })

	// A slow provider holds the counter at zero instead of going negative
	time.Sleep(30 * time.Millisecond)
	snap := e.Snapshot()
	if snap.Countdown != 0 {
		t.Errorf("Expected countdown to hold at 0, got %d", snap.Countdown)
	}
	if snap.Step != types.StepFetching {
		t.Errorf("Expected still fetching, got %s", snap.Step)
	}

	call <- fetchResult{article: testArticle()}
	waitFor(t, e, "reading step", func(s types.Snapshot) bool { return s.Step == types.StepReading })
}

func TestCountdownStopsOutsideFetching(t *testing.T) {
	e, p, _ := newTestEngine()
	defer e.Close()

	if err := e.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	p.expectCall(t) <- fetchResult{article: testArticle()}
	snap := waitFor(t, e, "reading step", func(s types.Snapshot) bool { return s.Step == types.StepReading })

	// The counter must not keep ticking after the fetching step ends
	frozen := snap.Countdown
	time.Sleep(50 * time.Millisecond)
	if got := e.Snapshot().Countdown; got != frozen {
		t.Errorf("Countdown still ticking after fetch: %d -> %d", frozen, got)
	}
}

func TestCountdownResetOnRestart(t *testing.T) {
	e, p, _ := newTestEngine()
	defer e.Close()

	if err := e.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	first := p.expectCall(t)
	waitFor(t, e, "countdown to decrease", func(s types.Snapshot) bool { return s.Countdown < CountdownStart })

	if err := e.Start(); err != nil {
		t.Fatalf("second Start() error: %v", err)
	}
	// Allow one tick of slack between restart and the snapshot
	if got := e.Snapshot().Countdown; got < CountdownStart-1 {
		t.Errorf("Expected countdown reset to %d on restart, got %d", CountdownStart, got)
	}

	first <- fetchResult{article: testArticle()}
	p.expectCall(t) <- fetchResult{article: testArticle()}
	waitFor(t, e, "reading step", func(s types.Snapshot) bool { return s.Step == types.StepReading })
}
