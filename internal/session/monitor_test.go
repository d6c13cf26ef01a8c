package session

import (
	"testing"
	"time"
)

func newTestMonitor(t *testing.T) *Monitor {
	t.Helper()
	m, err := NewMonitor()
	if err != nil {
		t.Fatalf("NewMonitor error: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func TestMonitorExpiresAfterDeadline(t *testing.T) {
	m := newTestMonitor(t)

	id := NewSessionID()
	m.Track(id, time.Now().Add(50*time.Millisecond))

	if m.Expired(id) {
		t.Fatal("session expired before its deadline")
	}

	time.Sleep(120 * time.Millisecond)
	if !m.Expired(id) {
		t.Fatal("session not expired after deadline elapsed")
	}
}

func TestMonitorPastExpirationIsImmediate(t *testing.T) {
	m := newTestMonitor(t)

	id := NewSessionID()
	m.Track(id, time.Now().Add(-time.Second))

	if !m.Expired(id) {
		t.Fatal("already-past expiration must expire on registration")
	}
}

func TestMonitorRetrackResetsTimer(t *testing.T) {
	m := newTestMonitor(t)

	id := NewSessionID()
	m.Track(id, time.Now().Add(40*time.Millisecond))
	// token refreshed: new, later expiration replaces the old timer
	m.Track(id, time.Now().Add(300*time.Millisecond))

	time.Sleep(120 * time.Millisecond)
	if m.Expired(id) {
		t.Fatal("old timer fired despite being rescheduled")
	}

	time.Sleep(250 * time.Millisecond)
	if !m.Expired(id) {
		t.Fatal("rescheduled timer never fired")
	}
}

func TestMonitorDropForgetsSession(t *testing.T) {
	m := newTestMonitor(t)

	id := NewSessionID()
	m.Track(id, time.Now().Add(-time.Second))
	m.Drop(id)

	if m.Expired(id) {
		t.Fatal("dropped session still reported expired")
	}
}

func TestMonitorZeroExpirationNeverFires(t *testing.T) {
	m := newTestMonitor(t)

	id := NewSessionID()
	m.Track(id, time.Time{})

	time.Sleep(60 * time.Millisecond)
	if m.Expired(id) {
		t.Fatal("zero expiration must not arm a timer")
	}
}
