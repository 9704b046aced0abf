package openxr

/*
#include <string.h>
#include <openxr/openxr.h>
*/
import "C"

import "github.com/lanternvr/xrbridge/core"

// ReferenceSpaceType mirrors the three reference space kinds this
// package uses.
type ReferenceSpaceType int

const (
	ReferenceSpaceLocal ReferenceSpaceType = iota
	ReferenceSpaceStage
	ReferenceSpaceView
)

func (t ReferenceSpaceType) toC() C.XrReferenceSpaceType {
	switch t {
	case ReferenceSpaceStage:
		return C.XR_REFERENCE_SPACE_TYPE_STAGE
	case ReferenceSpaceView:
		return C.XR_REFERENCE_SPACE_TYPE_VIEW
	default:
		return C.XR_REFERENCE_SPACE_TYPE_LOCAL
	}
}

// Space wraps an XrSpace handle.
type Space struct {
	handle C.XrSpace
}

// PoseF is a plain position+orientation pose passed across the cgo
// boundary, independent of the math package's Pose so this file has no
// import-cycle risk.
type PoseF struct {
	PX, PY, PZ     float32
	OX, OY, OZ, OW float32
}

// CreateReferenceSpace creates a reference space of kind t with the
// given offset pose from the space's natural origin.
func (s *Session) CreateReferenceSpace(inst *Instance, t ReferenceSpaceType, offset PoseF) (*Space, error) {
	var info C.XrReferenceSpaceCreateInfo
	info._type = C.XR_TYPE_REFERENCE_SPACE_CREATE_INFO
	info.referenceSpaceType = t.toC()
	info.poseInReferenceSpace.position.x = C.float(offset.PX)
	info.poseInReferenceSpace.position.y = C.float(offset.PY)
	info.poseInReferenceSpace.position.z = C.float(offset.PZ)
	info.poseInReferenceSpace.orientation.x = C.float(offset.OX)
	info.poseInReferenceSpace.orientation.y = C.float(offset.OY)
	info.poseInReferenceSpace.orientation.z = C.float(offset.OZ)
	info.poseInReferenceSpace.orientation.w = C.float(offset.OW)

	var handle C.XrSpace
	result := Result(C.xrCreateReferenceSpace(s.handle, &info, &handle))
	if result.Failed() {
		core.LogError("xrCreateReferenceSpace: %s", ResultToString(inst, result))
		return nil, core.ErrXRCallFailed
	}
	return &Space{handle: handle}, nil
}

// Locate reports where viewSpace is relative to base (playSpace) at
// time t, used by recenter to extract the HMD's current yaw. valid only
// reflects orientation-valid: recenter only ever reads pose.orientation,
// so position-valid is not checked here.
func (viewSpace *Space) Locate(inst *Instance, base *Space, t int64) (PoseF, bool, error) {
	var location C.XrSpaceLocation
	location._type = C.XR_TYPE_SPACE_LOCATION

	result := Result(C.xrLocateSpace(viewSpace.handle, base.handle, C.XrTime(t), &location))
	if result.Failed() {
		core.LogError("xrLocateSpace: %s", ResultToString(inst, result))
		return PoseF{}, false, core.ErrXRCallFailed
	}

	valid := location.locationFlags&C.XR_SPACE_LOCATION_ORIENTATION_VALID_BIT != 0
	pose := PoseF{
		PX: float32(location.pose.position.x),
		PY: float32(location.pose.position.y),
		PZ: float32(location.pose.position.z),
		OX: float32(location.pose.orientation.x),
		OY: float32(location.pose.orientation.y),
		OZ: float32(location.pose.orientation.z),
		OW: float32(location.pose.orientation.w),
	}
	return pose, valid, nil
}

// Destroy releases the space handle.
func (s *Space) Destroy() {
	if s == nil || s.handle == nil {
		return
	}
	C.xrDestroySpace(s.handle)
	s.handle = nil
}
