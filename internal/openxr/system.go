package openxr

/*
#include <openxr/openxr.h>
*/
import "C"

import "github.com/lanternvr/xrbridge/core"

// SystemId identifies the HMD system selected at GetSystem time.
type SystemId uint64

// SystemProperties surfaces the handful of fields the session layer
// logs at construction time.
type SystemProperties struct {
	SystemName              string
	OrientationTracking     bool
	PositionTracking        bool
	MaxSwapchainImageWidth  uint32
	MaxSwapchainImageHeight uint32
}

// GetSystem selects the head-mounted-display form factor and returns
// its system id.
func (inst *Instance) GetSystem() (SystemId, error) {
	var info C.XrSystemGetInfo
	info._type = C.XR_TYPE_SYSTEM_GET_INFO
	info.formFactor = C.XR_FORM_FACTOR_HEAD_MOUNTED_DISPLAY

	var systemId C.XrSystemId
	result := Result(C.xrGetSystem(inst.handle, &info, &systemId))
	if result.Failed() {
		core.LogError("xrGetSystem: %s", ResultToString(inst, result))
		return 0, core.ErrXRCallFailed
	}
	return SystemId(systemId), nil
}

// SystemProperties reads back tracking capabilities and swapchain image
// size limits for sys.
func (inst *Instance) SystemProperties(sys SystemId) (SystemProperties, error) {
	var props C.XrSystemProperties
	props._type = C.XR_TYPE_SYSTEM_PROPERTIES

	result := Result(C.xrGetSystemProperties(inst.handle, C.XrSystemId(sys), &props))
	if result.Failed() {
		core.LogError("xrGetSystemProperties: %s", ResultToString(inst, result))
		return SystemProperties{}, core.ErrXRCallFailed
	}

	return SystemProperties{
		SystemName:              C.GoString(&props.systemName[0]),
		OrientationTracking:     props.trackingProperties.orientationTracking != C.XR_FALSE,
		PositionTracking:        props.trackingProperties.positionTracking != C.XR_FALSE,
		MaxSwapchainImageWidth:  uint32(props.graphicsProperties.maxSwapchainImageWidth),
		MaxSwapchainImageHeight: uint32(props.graphicsProperties.maxSwapchainImageHeight),
	}, nil
}

// ViewConfigType mirrors the subset of XrViewConfigurationType this
// package supports; only primary stereo is selected.
type ViewConfigType int

const PrimaryStereo ViewConfigType = C.XR_VIEW_CONFIGURATION_TYPE_PRIMARY_STEREO

// ViewConfigView is one entry of xrEnumerateViewConfigurationViews:
// the runtime's recommended render-target size and sample count for
// one eye.
type ViewConfigView struct {
	RecommendedWidth       uint32
	RecommendedHeight      uint32
	RecommendedSampleCount uint32
}

// EnumerateViewConfigViews lists the per-view recommended rect sizes
// for the primary stereo view configuration (always two entries: left
// then right eye).
func (inst *Instance) EnumerateViewConfigViews(sys SystemId) ([]ViewConfigView, error) {
	var count C.uint32_t
	result := Result(C.xrEnumerateViewConfigurationViews(inst.handle, C.XrSystemId(sys), C.XR_VIEW_CONFIGURATION_TYPE_PRIMARY_STEREO, 0, &count, nil))
	if result.Failed() {
		core.LogError("xrEnumerateViewConfigurationViews (count): %s", ResultToString(inst, result))
		return nil, core.ErrXRCallFailed
	}

	views := make([]C.XrViewConfigurationView, count)
	for i := range views {
		views[i]._type = C.XR_TYPE_VIEW_CONFIGURATION_VIEW
	}

	result = Result(C.xrEnumerateViewConfigurationViews(inst.handle, C.XrSystemId(sys), C.XR_VIEW_CONFIGURATION_TYPE_PRIMARY_STEREO, count, &count, &views[0]))
	if result.Failed() {
		core.LogError("xrEnumerateViewConfigurationViews: %s", ResultToString(inst, result))
		return nil, core.ErrXRCallFailed
	}

	out := make([]ViewConfigView, count)
	for i := 0; i < int(count); i++ {
		out[i] = ViewConfigView{
			RecommendedWidth:       uint32(views[i].recommendedImageRectWidth),
			RecommendedHeight:      uint32(views[i].recommendedImageRectHeight),
			RecommendedSampleCount: uint32(views[i].recommendedSwapchainSampleCount),
		}
	}
	return out, nil
}
