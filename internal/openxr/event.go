package openxr

/*
#include <string.h>
#include <openxr/openxr.h>

static XrEventDataBuffer newEventDataBuffer(void) {
	XrEventDataBuffer b;
	memset(&b, 0, sizeof(b));
	b.type = XR_TYPE_EVENT_DATA_BUFFER;
	return b;
}
*/
import "C"

import (
	"unsafe"

	"github.com/lanternvr/xrbridge/core"
)

// EventType identifies the handful of event kinds the instance and
// session layers branch on. Every other XR_TYPE_EVENT_DATA_* kind is
// collapsed into EventOther and ignored.
type EventType int

const (
	EventNone EventType = iota
	EventEventsLost
	EventInstanceLossPending
	EventSessionStateChanged
	EventOther
)

// SessionState mirrors XrSessionState, reported alongside
// EventSessionStateChanged.
type SessionState int

const (
	SessionStateUnknown SessionState = iota
	SessionStateIdle
	SessionStateReady
	SessionStateSynchronized
	SessionStateVisible
	SessionStateFocused
	SessionStateStopping
	SessionStateLossPending
	SessionStateExiting
)

func (s SessionState) String() string {
	switch s {
	case SessionStateIdle:
		return "idle"
	case SessionStateReady:
		return "ready"
	case SessionStateSynchronized:
		return "synchronized"
	case SessionStateVisible:
		return "visible"
	case SessionStateFocused:
		return "focused"
	case SessionStateStopping:
		return "stopping"
	case SessionStateLossPending:
		return "loss_pending"
	case SessionStateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

func sessionStateFromC(s C.XrSessionState) SessionState {
	switch s {
	case C.XR_SESSION_STATE_IDLE:
		return SessionStateIdle
	case C.XR_SESSION_STATE_READY:
		return SessionStateReady
	case C.XR_SESSION_STATE_SYNCHRONIZED:
		return SessionStateSynchronized
	case C.XR_SESSION_STATE_VISIBLE:
		return SessionStateVisible
	case C.XR_SESSION_STATE_FOCUSED:
		return SessionStateFocused
	case C.XR_SESSION_STATE_STOPPING:
		return SessionStateStopping
	case C.XR_SESSION_STATE_LOSS_PENDING:
		return SessionStateLossPending
	case C.XR_SESSION_STATE_EXITING:
		return SessionStateExiting
	default:
		return SessionStateUnknown
	}
}

// Event is the Go-side decoding of one polled XrEventDataBuffer.
type Event struct {
	Type         EventType
	SessionState SessionState
}

// PollEvent drains one pending event, non-blocking. Returns
// (Event{Type: EventNone}, nil) when the queue is empty.
func (inst *Instance) PollEvent() (Event, error) {
	buf := C.newEventDataBuffer()
	result := Result(C.xrPollEvent(inst.handle, &buf))
	if result == EventUnavailable {
		return Event{Type: EventNone}, nil
	}
	if result.Failed() {
		return Event{}, core.ErrXRCallFailed
	}

	header := (*C.XrEventDataBaseHeader)(unsafe.Pointer(&buf))
	switch header._type {
	case C.XR_TYPE_EVENT_DATA_EVENTS_LOST:
		return Event{Type: EventEventsLost}, nil
	case C.XR_TYPE_EVENT_DATA_INSTANCE_LOSS_PENDING:
		return Event{Type: EventInstanceLossPending}, nil
	case C.XR_TYPE_EVENT_DATA_SESSION_STATE_CHANGED:
		changed := (*C.XrEventDataSessionStateChanged)(unsafe.Pointer(&buf))
		return Event{Type: EventSessionStateChanged, SessionState: sessionStateFromC(changed.state)}, nil
	default:
		return Event{Type: EventOther}, nil
	}
}
