// Package platform extracts the host's currently-active GL context and
// builds the platform-specific graphics binding that the OpenXR
// session-create chain requires, chosen at compile time per GOOS
// rather than via preprocessor branching.
package platform

import "github.com/lanternvr/xrbridge/core"

/** @brief Identifies which graphics-binding variant a Binding implements. */
type Kind int

const (
	KindUnknown Kind = iota
	/** @brief Win32 HDC + HGLRC, selected when GOOS=windows. */
	KindWin32GL
	/** @brief Xlib Display + GLX context + GLX drawable, selected when GOOS=linux. */
	KindXlibGL
	/** @brief EGL + GLES, deferred: no implementation in this package. */
	KindEGLGLES
)

// DriverName is the symbolic name the host windowing library reports
// for its active driver ("windows", "x11", "wayland", ...). Session
// construction fails fatally if this does not match Binding.Kind().
func (k Kind) DriverName() string {
	switch k {
	case KindWin32GL:
		return "windows"
	case KindXlibGL:
		return "x11"
	case KindEGLGLES:
		return "egl"
	default:
		return "unknown"
	}
}

// Binding is the small capability interface the session-create chain
// is built from: each platform supplies its own variant, extracted
// from whatever GL context the host windowing library currently has
// current on this thread.
type Binding interface {
	Kind() Kind
	// GraphicsBinding returns the platform-specific struct to chain
	// into xrCreateSession's XrSessionCreateInfo.next pointer. The
	// concrete type is one of Win32Binding or XlibBinding.
	GraphicsBinding() interface{}
}

// CurrentBinding extracts the calling thread's current GL context and
// wraps it in the platform's Binding variant. The host must have made
// its GL context current before calling this, on the same thread that
// will drive the XR frame loop.
//
// Implemented per-GOOS in binding_windows.go, binding_linux.go, and
// binding_other.go (which always returns core.ErrUnsupportedGraphicsBinding).
func CurrentBinding() (Binding, error) {
	return currentBinding()
}

// CheckDriverMatch fails fatally (per the session construction
// contract) if the host's reported windowing driver name doesn't match
// the binding kind this build was compiled for.
func CheckDriverMatch(b Binding, hostDriverName string) error {
	if b.Kind().DriverName() != hostDriverName {
		core.LogError("host driver %q does not match compiled graphics binding %q", hostDriverName, b.Kind().DriverName())
		return core.ErrGraphicsDriverMismatch
	}
	return nil
}
