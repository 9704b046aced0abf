package core

import "errors"

var (
	// ErrSwapchainTimeout is returned when xrWaitSwapchainImage exceeds its
	// 100ms budget. Treated as fatal: contention should never occur.
	ErrSwapchainTimeout = errors.New("openxr: swapchain wait timed out")

	// ErrUnsupportedGraphicsBinding is returned by the platform package when
	// asked for a graphics binding on a platform this spec doesn't cover
	// (anything that isn't Win32 GL or X11 GL; EGL is deferred).
	ErrUnsupportedGraphicsBinding = errors.New("openxr: unsupported graphics binding for this platform")

	// ErrGraphicsDriverMismatch is returned when the host windowing library's
	// driver name doesn't match the compiled-in graphics binding kind.
	ErrGraphicsDriverMismatch = errors.New("openxr: host driver does not match graphics binding")

	// ErrNoDepthFormat is returned when the runtime doesn't support any
	// 32-bit float depth swapchain format.
	ErrNoDepthFormat = errors.New("openxr: no supported depth format")

	// ErrMissingGraphicsExtension is returned when the runtime doesn't
	// advertise the OpenGL (or OpenGL ES) enable extension, and when the
	// host's GL context version falls outside the range the runtime
	// accepts.
	ErrMissingGraphicsExtension = errors.New("openxr: runtime does not support the host's graphics API")

	// ErrXRCallFailed wraps any OpenXR call returning a non-success
	// result code. The caller has already logged the function name and
	// translated result string; this is just the sentinel bubbled
	// upward for branching.
	ErrXRCallFailed = errors.New("openxr: call failed")
)
