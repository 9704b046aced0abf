package openxr

/*
#include <openxr/openxr.h>
#include <openxr/openxr_platform.h>

// xrGetOpenGLGraphicsRequirementsKHR is an extension entry point: the
// loader does not export it statically, so it must be resolved per
// instance via xrGetInstanceProcAddr before it can be called.
static XrResult callGetOpenGLGraphicsRequirementsKHR(XrInstance instance, XrSystemId systemId, XrGraphicsRequirementsOpenGLKHR *req) {
	PFN_xrGetOpenGLGraphicsRequirementsKHR fn = NULL;
	XrResult result = xrGetInstanceProcAddr(instance, "xrGetOpenGLGraphicsRequirementsKHR", (PFN_xrVoidFunction*)&fn);
	if (XR_FAILED(result) || fn == NULL) {
		return result;
	}
	return fn(instance, systemId, req);
}
*/
import "C"

import "github.com/lanternvr/xrbridge/core"

// GLVersion packs a major.minor pair the way XrGraphicsRequirementsOpenGLKHR
// encodes its min/max API version fields.
type GLVersion struct {
	Major, Minor int
}

func glVersionFromPacked(v C.XrVersion) GLVersion {
	return GLVersion{
		Major: int((v >> 48) & 0xffff),
		Minor: int((v >> 32) & 0xffff),
	}
}

// GraphicsRequirements is the GL version range the runtime accepts,
// queried before session creation as the OpenXR spec requires.
type GraphicsRequirements struct {
	MinAPIVersion GLVersion
	MaxAPIVersion GLVersion
}

// GetOpenGLGraphicsRequirements queries the runtime's accepted desktop
// GL version range for sys. Requires XR_KHR_opengl_enable to have been
// requested at instance creation.
func (inst *Instance) GetOpenGLGraphicsRequirements(sys SystemId) (GraphicsRequirements, error) {
	var req C.XrGraphicsRequirementsOpenGLKHR
	req._type = C.XR_TYPE_GRAPHICS_REQUIREMENTS_OPENGL_KHR

	result := Result(C.callGetOpenGLGraphicsRequirementsKHR(inst.handle, C.XrSystemId(sys), &req))
	if result.Failed() {
		core.LogError("xrGetOpenGLGraphicsRequirementsKHR: %s", ResultToString(inst, result))
		return GraphicsRequirements{}, core.ErrXRCallFailed
	}

	return GraphicsRequirements{
		MinAPIVersion: glVersionFromPacked(req.minApiVersionSupported),
		MaxAPIVersion: glVersionFromPacked(req.maxApiVersionSupported),
	}, nil
}
