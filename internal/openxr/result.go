package openxr

/*
#include <openxr/openxr.h>
*/
import "C"

// ResultToString translates result into the runtime's own human-readable
// string via xrResultToString when an instance is available, falling
// back to a small local name table before the instance exists (e.g. a
// failed xrCreateInstance itself has no instance to ask). Codes outside
// that table are reported as "XR_RESULT_UNKNOWN".
func ResultToString(inst *Instance, result Result) string {
	if inst == nil || inst.handle == nil {
		return genericResultString(result)
	}
	var buf [C.XR_MAX_RESULT_STRING_SIZE]C.char
	if C.xrResultToString(inst.handle, C.XrResult(result), &buf[0]) != C.XR_SUCCESS {
		return genericResultString(result)
	}
	return C.GoString(&buf[0])
}

func genericResultString(result Result) string {
	switch result {
	case Success:
		return "XR_SUCCESS"
	case TimeoutExpired:
		return "XR_TIMEOUT_EXPIRED"
	case SessionLossPend:
		return "XR_SESSION_LOSS_PENDING"
	case EventUnavailable:
		return "XR_EVENT_UNAVAILABLE"
	default:
		return "XR_RESULT_UNKNOWN"
	}
}
