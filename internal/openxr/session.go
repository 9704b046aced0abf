package openxr

/*
#include <string.h>
#include <openxr/openxr.h>
#include <openxr/openxr_platform.h>

static XrGraphicsBindingOpenGLWin32KHR newWin32Binding(void *hdc, void *hglrc) {
	XrGraphicsBindingOpenGLWin32KHR b;
	memset(&b, 0, sizeof(b));
	b.type = XR_TYPE_GRAPHICS_BINDING_OPENGL_WIN32_KHR;
	b.hDC = (HDC)hdc;
	b.hGLRC = (HGLRC)hglrc;
	return b;
}

static XrGraphicsBindingOpenGLXlibKHR newXlibBinding(void *display, void *context, unsigned long drawable) {
	XrGraphicsBindingOpenGLXlibKHR b;
	memset(&b, 0, sizeof(b));
	b.type = XR_TYPE_GRAPHICS_BINDING_OPENGL_XLIB_KHR;
	b.xDisplay = (Display*)display;
	b.glxContext = (GLXContext)context;
	b.glxDrawable = (GLXDrawable)drawable;
	return b;
}
*/
import "C"

import (
	"unsafe"

	"github.com/lanternvr/xrbridge/core"
	"github.com/lanternvr/xrbridge/platform"
)

// Session wraps an XrSession handle.
type Session struct {
	handle C.XrSession
}

// CreateSession creates the session for sys, threading the
// platform-appropriate graphics binding (Win32 or Xlib, see the
// platform package) into XrSessionCreateInfo.next.
func CreateSession(inst *Instance, sys SystemId, binding platform.Binding) (*Session, error) {
	var info C.XrSessionCreateInfo
	info._type = C.XR_TYPE_SESSION_CREATE_INFO
	info.systemId = C.XrSystemId(sys)

	switch b := binding.GraphicsBinding().(type) {
	case platform.Win32Binding:
		win32 := C.newWin32Binding(unsafe.Pointer(b.HDC), unsafe.Pointer(b.HGLRC))
		info.next = unsafe.Pointer(&win32)
	case platform.XlibBinding:
		xlib := C.newXlibBinding(unsafe.Pointer(b.Display), unsafe.Pointer(b.Context), C.ulong(b.Drawable))
		info.next = unsafe.Pointer(&xlib)
	default:
		return nil, core.ErrUnsupportedGraphicsBinding
	}

	var handle C.XrSession
	result := Result(C.xrCreateSession(inst.handle, &info, &handle))
	if result.Failed() {
		core.LogError("xrCreateSession: %s", ResultToString(inst, result))
		return nil, core.ErrXRCallFailed
	}
	return &Session{handle: handle}, nil
}

// Begin starts the session with the given primary stereo view config.
func (s *Session) Begin(inst *Instance) error {
	var info C.XrSessionBeginInfo
	info._type = C.XR_TYPE_SESSION_BEGIN_INFO
	info.primaryViewConfigurationType = C.XR_VIEW_CONFIGURATION_TYPE_PRIMARY_STEREO

	result := Result(C.xrBeginSession(s.handle, &info))
	if result.Failed() {
		core.LogError("xrBeginSession: %s", ResultToString(inst, result))
		return core.ErrXRCallFailed
	}
	return nil
}

// Destroy releases the session. Must be called only after every owned
// Swapchain has already been destroyed.
func (s *Session) Destroy() {
	if s == nil || s.handle == nil {
		return
	}
	C.xrDestroySession(s.handle)
	s.handle = nil
}

// FrameState is the result of xrWaitFrame.
type FrameState struct {
	PredictedDisplayTime int64
	ShouldRender         bool
}

// WaitFrame blocks for VSync pacing, the only intentional blocking
// point in the per-frame path.
func (s *Session) WaitFrame(inst *Instance) (FrameState, error) {
	var waitInfo C.XrFrameWaitInfo
	waitInfo._type = C.XR_TYPE_FRAME_WAIT_INFO

	var state C.XrFrameState
	state._type = C.XR_TYPE_FRAME_STATE

	result := Result(C.xrWaitFrame(s.handle, &waitInfo, &state))
	if result.Failed() {
		core.LogError("xrWaitFrame: %s", ResultToString(inst, result))
		return FrameState{}, core.ErrXRCallFailed
	}

	return FrameState{
		PredictedDisplayTime: int64(state.predictedDisplayTime),
		ShouldRender:         state.shouldRender != C.XR_FALSE,
	}, nil
}

// BeginFrame must be called exactly once per xrWaitFrame, before any
// swapchain acquire.
func (s *Session) BeginFrame(inst *Instance) error {
	var info C.XrFrameBeginInfo
	info._type = C.XR_TYPE_FRAME_BEGIN_INFO

	result := Result(C.xrBeginFrame(s.handle, &info))
	if result.Failed() {
		core.LogError("xrBeginFrame: %s", ResultToString(inst, result))
		return core.ErrXRCallFailed
	}
	return nil
}

// View is one entry of xrLocateViews: pose plus FoV for one eye.
type View struct {
	PositionValid    bool
	OrientationValid bool
	PositionX        float32
	PositionY        float32
	PositionZ        float32
	OrientationX     float32
	OrientationY     float32
	OrientationZ     float32
	OrientationW     float32
	AngleLeft        float32
	AngleRight       float32
	AngleUp          float32
	AngleDown        float32
}

// LocateViews reports the predicted per-eye pose and FoV in viewSpace,
// relative to playSpace, at predictedDisplayTime.
func (s *Session) LocateViews(inst *Instance, viewSpace, playSpace *Space, predictedDisplayTime int64, viewCount int) ([]View, error) {
	var locateInfo C.XrViewLocateInfo
	locateInfo._type = C.XR_TYPE_VIEW_LOCATE_INFO
	locateInfo.viewConfigurationType = C.XR_VIEW_CONFIGURATION_TYPE_PRIMARY_STEREO
	locateInfo.displayTime = C.XrTime(predictedDisplayTime)
	locateInfo.space = playSpace.handle

	var viewState C.XrViewState
	viewState._type = C.XR_TYPE_VIEW_STATE

	views := make([]C.XrView, viewCount)
	for i := range views {
		views[i]._type = C.XR_TYPE_VIEW
	}

	var outCount C.uint32_t
	result := Result(C.xrLocateViews(s.handle, &locateInfo, &viewState, C.uint32_t(viewCount), &outCount, &views[0]))
	if result.Failed() {
		core.LogError("xrLocateViews: %s", ResultToString(inst, result))
		return nil, core.ErrXRCallFailed
	}

	positionValid := viewState.viewStateFlags&C.XR_VIEW_STATE_POSITION_VALID_BIT != 0
	orientationValid := viewState.viewStateFlags&C.XR_VIEW_STATE_ORIENTATION_VALID_BIT != 0

	out := make([]View, outCount)
	for i := 0; i < int(outCount); i++ {
		v := views[i]
		out[i] = View{
			PositionValid:    positionValid,
			OrientationValid: orientationValid,
			PositionX:        float32(v.pose.position.x),
			PositionY:        float32(v.pose.position.y),
			PositionZ:        float32(v.pose.position.z),
			OrientationX:     float32(v.pose.orientation.x),
			OrientationY:     float32(v.pose.orientation.y),
			OrientationZ:     float32(v.pose.orientation.z),
			OrientationW:     float32(v.pose.orientation.w),
			AngleLeft:        float32(v.fov.angleLeft),
			AngleRight:       float32(v.fov.angleRight),
			AngleUp:          float32(v.fov.angleUp),
			AngleDown:        float32(v.fov.angleDown),
		}
	}
	return out, nil
}

// ProjectionLayerView is one pre-built composition-layer view entry;
// only pose, FoV, and swapchain sub-image change per frame.
type ProjectionLayerView struct {
	View            View
	SwapchainHandle uintptr
	ImageRectW      int32
	ImageRectH      int32
}

// EndFrame submits the frame with layers (empty when the frame isn't
// renderable), always paired with a prior BeginFrame. playSpace is the
// reference space the projection layer (and every view pose within it)
// is expressed in.
func (s *Session) EndFrame(inst *Instance, playSpace *Space, predictedDisplayTime int64, layers []ProjectionLayerView) error {
	var info C.XrFrameEndInfo
	info._type = C.XR_TYPE_FRAME_END_INFO
	info.displayTime = C.XrTime(predictedDisplayTime)
	info.environmentBlendMode = C.XR_ENVIRONMENT_BLEND_MODE_OPAQUE

	if len(layers) == 0 {
		info.layerCount = 0
		info.layers = nil
		result := Result(C.xrEndFrame(s.handle, &info))
		if result.Failed() {
			core.LogError("xrEndFrame: %s", ResultToString(inst, result))
			return core.ErrXRCallFailed
		}
		return nil
	}

	projViews := make([]C.XrCompositionLayerProjectionView, len(layers))
	for i, l := range layers {
		projViews[i]._type = C.XR_TYPE_COMPOSITION_LAYER_PROJECTION_VIEW
		projViews[i].pose.position.x = C.float(l.View.PositionX)
		projViews[i].pose.position.y = C.float(l.View.PositionY)
		projViews[i].pose.position.z = C.float(l.View.PositionZ)
		projViews[i].pose.orientation.x = C.float(l.View.OrientationX)
		projViews[i].pose.orientation.y = C.float(l.View.OrientationY)
		projViews[i].pose.orientation.z = C.float(l.View.OrientationZ)
		projViews[i].pose.orientation.w = C.float(l.View.OrientationW)
		projViews[i].fov.angleLeft = C.float(l.View.AngleLeft)
		projViews[i].fov.angleRight = C.float(l.View.AngleRight)
		projViews[i].fov.angleUp = C.float(l.View.AngleUp)
		projViews[i].fov.angleDown = C.float(l.View.AngleDown)
		projViews[i].subImage.swapchain = C.XrSwapchain(unsafe.Pointer(l.SwapchainHandle))
		projViews[i].subImage.imageRect.extent.width = C.int32_t(l.ImageRectW)
		projViews[i].subImage.imageRect.extent.height = C.int32_t(l.ImageRectH)
	}

	var projLayer C.XrCompositionLayerProjection
	projLayer._type = C.XR_TYPE_COMPOSITION_LAYER_PROJECTION
	projLayer.space = playSpace.handle
	projLayer.viewCount = C.uint32_t(len(projViews))
	projLayer.views = &projViews[0]

	layerPtrs := []*C.XrCompositionLayerBaseHeader{
		(*C.XrCompositionLayerBaseHeader)(unsafe.Pointer(&projLayer)),
	}

	info.layerCount = C.uint32_t(len(layerPtrs))
	info.layers = &layerPtrs[0]

	result := Result(C.xrEndFrame(s.handle, &info))
	if result.Failed() {
		core.LogError("xrEndFrame: %s", ResultToString(inst, result))
		return core.ErrXRCallFailed
	}
	return nil
}
