// Package instance implements the L1 level of the containment
// hierarchy: the OpenXR instance, extension negotiation, and the event
// pump, owning exactly one Session for runtime-level concerns that
// survive session recreation.
package instance

import (
	"github.com/lanternvr/xrbridge/core"
	"github.com/lanternvr/xrbridge/internal/openxr"
	"github.com/lanternvr/xrbridge/session"
	"github.com/lanternvr/xrbridge/video"
)

const (
	appVersion          = 1
	openGLExtensionName = "XR_KHR_opengl_enable"
)

// Instance owns the OpenXR instance handle, its negotiated extension
// set, and the Session constructed on top of it.
type Instance struct {
	handle  *openxr.Instance
	session *session.Session
}

// Create enumerates extensions, requires the OpenGL enable extension,
// creates the OpenXR instance, logs the runtime name/version, then
// constructs the Session. Any step failing aborts construction.
func Create(appName string, driver video.Driver, opts session.Options) (*Instance, error) {
	available, err := openxr.EnumerateExtensions()
	if err != nil {
		return nil, err
	}
	if !openxr.HasExtension(available, openGLExtensionName) {
		core.LogError("runtime does not advertise %s", openGLExtensionName)
		return nil, core.ErrMissingGraphicsExtension
	}

	handle, err := openxr.CreateInstance(appName, appVersion, []string{openGLExtensionName})
	if err != nil {
		return nil, err
	}

	runtimeName, runtimeVersion, err := handle.Properties()
	if err == nil {
		core.LogInfo("connected to XR runtime %q version %d", runtimeName, runtimeVersion)
	}

	sess, err := session.Create(handle, driver, opts)
	if err != nil {
		handle.Destroy()
		return nil, err
	}

	return &Instance{handle: handle, session: sess}, nil
}

// HandleEvents drains all pending events non-blocking. Returns false
// on instance-loss-pending or a polling error — causing the Connector
// to drop and later re-create this Instance. A lost-events report is
// logged and draining continues.
func (inst *Instance) HandleEvents() bool {
	for {
		ev, err := inst.handle.PollEvent()
		if err != nil {
			core.LogError("xrPollEvent failed: %v", err)
			return false
		}
		switch ev.Type {
		case openxr.EventNone:
			return true
		case openxr.EventEventsLost:
			core.LogWarn("XR runtime reported lost events")
		case openxr.EventInstanceLossPending:
			core.LogError("XR runtime reported instance loss pending")
			return false
		case openxr.EventSessionStateChanged:
			core.LogInfo("XR session state changed: %s", ev.SessionState)
		default:
			// ignored
		}
	}
}

// TryBeginFrame delegates to the Session.
func (inst *Instance) TryBeginFrame(now int64) (int64, bool) {
	delta, ok := inst.session.TryBeginFrame(now)
	return delta, ok
}

// NextView delegates to the Session. A non-nil error means a fatal
// mid-frame failure; the caller must invalidate this Instance.
func (inst *Instance) NextView() (session.ViewInfo, bool, error) {
	return inst.session.NextView()
}

// Recenter delegates to the Session.
func (inst *Instance) Recenter() {
	inst.session.Recenter()
}

// Destroy tears down the Session first, then the instance handle, in
// strict reverse construction order.
func (inst *Instance) Destroy() {
	if inst == nil {
		return
	}
	inst.session.Destroy()
	inst.handle.Destroy()
}
