//go:build windows

package platform

/*
#cgo LDFLAGS: -lopengl32 -lgdi32
#include <windows.h>

static HDC currentHDC(void)  { return wglGetCurrentDC(); }
static HGLRC currentHGLRC(void) { return wglGetCurrentContext(); }
*/
import "C"

import "github.com/lanternvr/xrbridge/core"

// Win32Binding carries the device and rendering context handles the
// Win32 OpenXR graphics binding struct (XrGraphicsBindingOpenGLWin32KHR)
// requires.
type Win32Binding struct {
	HDC   uintptr
	HGLRC uintptr
}

func (Win32Binding) Kind() Kind { return KindWin32GL }

func (b Win32Binding) GraphicsBinding() interface{} { return b }

func currentBinding() (Binding, error) {
	hdc := C.currentHDC()
	hglrc := C.currentHGLRC()
	if hdc == nil || hglrc == nil {
		core.LogError("no current GL context: wglGetCurrentDC/wglGetCurrentContext returned null")
		return nil, core.ErrUnsupportedGraphicsBinding
	}
	return Win32Binding{
		HDC:   uintptr(hdc),
		HGLRC: uintptr(hglrc),
	}, nil
}
