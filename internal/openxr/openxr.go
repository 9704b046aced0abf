// Package openxr is a thin cgo wrapper around the real OpenXR C ABI
// (openxr/openxr.h), scoped to exactly the calls the session, instance,
// and swapchain layers above it need: instance/session/space/swapchain
// lifecycle, the event pump, and the per-frame wait/begin/locate/end
// sequence. It does not attempt to be a general-purpose binding.
package openxr

/*
#cgo LDFLAGS: -lopenxr_loader
#include <stdlib.h>
#include <string.h>
#include <openxr/openxr.h>
*/
import "C"

// Result mirrors XrResult: negative values are errors, zero is success,
// positive values are informational ("unavailable"-style) successes.
type Result int32

const (
	Success          Result = C.XR_SUCCESS
	TimeoutExpired   Result = C.XR_TIMEOUT_EXPIRED
	SessionLossPend  Result = C.XR_SESSION_LOSS_PENDING
	EventUnavailable Result = C.XR_EVENT_UNAVAILABLE
)

// Succeeded reports whether r represents any success code, including
// the informational (positive) ones.
func (r Result) Succeeded() bool {
	return r >= 0
}

// Failed reports whether r represents a genuine failure (negative).
func (r Result) Failed() bool {
	return r < 0
}
