package connector

import (
	"testing"
	"time"
)

func TestTryBeginFrameFalseWhenDisconnected(t *testing.T) {
	c := &Connector{}
	if _, ok := c.TryBeginFrame(); ok {
		t.Fatal("TryBeginFrame() = true while disconnected, want false")
	}
}

func TestNextViewFalseWhenDisconnected(t *testing.T) {
	c := &Connector{}
	if _, ok := c.NextView(); ok {
		t.Fatal("NextView() = true while disconnected, want false")
	}
}

func TestConnectedReportsInstanceState(t *testing.T) {
	c := &Connector{}
	if c.Connected() {
		t.Fatal("Connected() = true with nil instance, want false")
	}
}

func TestRecenterIsNoOpWhenDisconnected(t *testing.T) {
	c := &Connector{}
	c.Recenter() // must not panic
}

func TestScheduleRetrySetsDeadlineTenSecondsOut(t *testing.T) {
	c := &Connector{}
	before := time.Now()
	c.scheduleRetry()
	after := time.Now()

	if c.inst != nil {
		t.Fatal("scheduleRetry() left inst non-nil")
	}
	if c.retryDeadline.Before(before.Add(retryInterval)) || c.retryDeadline.After(after.Add(retryInterval)) {
		t.Fatalf("retryDeadline = %v, want ~%v", c.retryDeadline, before.Add(retryInterval))
	}
}

func TestRetryDueFalseBeforeDeadline(t *testing.T) {
	c := &Connector{retryDeadline: time.Now().Add(retryInterval)}
	if c.retryDue() {
		t.Fatal("retryDue() = true immediately after scheduling, want false")
	}
}

func TestRetryDueTrueAfterDeadline(t *testing.T) {
	c := &Connector{retryDeadline: time.Now().Add(-time.Second)}
	if !c.retryDue() {
		t.Fatal("retryDue() = false after deadline elapsed, want true")
	}
}

func TestRetryDueFalseWithZeroDeadline(t *testing.T) {
	c := &Connector{}
	if c.retryDue() {
		t.Fatal("retryDue() = true with zero-value deadline, want false")
	}
}
