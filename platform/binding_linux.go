//go:build linux

package platform

/*
#cgo LDFLAGS: -lGL -lX11
#include <GL/glx.h>
#include <X11/Xlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/lanternvr/xrbridge/core"
)

// XlibBinding carries the display, GLX context, and GLX drawable the
// Xlib OpenXR graphics binding struct (XrGraphicsBindingOpenGLXlibKHR)
// requires.
type XlibBinding struct {
	Display  uintptr
	Context  uintptr
	Drawable uintptr
}

func (XlibBinding) Kind() Kind { return KindXlibGL }

func (b XlibBinding) GraphicsBinding() interface{} { return b }

func currentBinding() (Binding, error) {
	display := C.glXGetCurrentDisplay()
	context := C.glXGetCurrentContext()
	drawable := C.glXGetCurrentDrawable()
	if display == nil || context == nil || drawable == 0 {
		core.LogError("no current GLX context: glXGetCurrentDisplay/Context/Drawable returned null")
		return nil, core.ErrUnsupportedGraphicsBinding
	}
	return XlibBinding{
		Display:  uintptr(unsafe.Pointer(display)),
		Context:  uintptr(unsafe.Pointer(context)),
		Drawable: uintptr(drawable),
	}, nil
}
