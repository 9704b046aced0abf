// Package session implements the L2 level of the containment
// hierarchy: graphics binding, view configuration, reference spaces,
// the per-frame state machine, composition layers, and recenter.
package session

import (
	"github.com/lanternvr/xrbridge/internal/openxr"
	xrmath "github.com/lanternvr/xrbridge/math"
	"github.com/lanternvr/xrbridge/swapchain"
	"github.com/lanternvr/xrbridge/video"
)

// ViewKind identifies which eye (or other view role) a ViewInfo
// describes.
type ViewKind int

const (
	ViewInvalid ViewKind = iota
	ViewLeftEye
	ViewRightEye
	ViewHUD
	ViewGeneric
)

// ViewInfo is the bit-exact-for-host-compatibility per-eye output of
// NextView.
type ViewInfo struct {
	Kind         ViewKind
	Target       video.RenderTarget
	Width        uint32
	Height       uint32
	Position     xrmath.Vec3
	Orientation  xrmath.Quaternion
	PositionBase xrmath.Vec3
	AngleLeft    float32
	AngleRight   float32
	AngleUp      float32
	AngleDown    float32
	ZNear        float32
	ZFar         float32
}

// frameState is the per-frame state machine: Idle -> FrameWaiting (implicit,
// inside TryBeginFrame) -> FrameRendering(viewIndex) -> FrameEnded (folds
// back to Idle once NextView finishes the last view).
type frameState int

const (
	stateIdle frameState = iota
	stateRendering
)

// ReferenceSpaceKind selects between seated and room-scale play space,
// driven by the ROOM_SCALE configuration flag.
type ReferenceSpaceKind int

const (
	ReferenceSpaceSeated ReferenceSpaceKind = iota
	ReferenceSpaceRoomScale
)

// viewChain bundles one eye's color and depth swapchains with the
// parallel render-target objects keyed by color swapchain image index.
type viewChain struct {
	color         *swapchain.Swapchain
	depth         *swapchain.Swapchain
	renderTargets []video.RenderTarget
	recommended   openxr.ViewConfigView
}

// Options configures session construction; fields correspond to the
// host-tunable knobs the spec leaves open (depth composition layer
// default-disabled, room-scale vs seated, clip planes).
type Options struct {
	PlaySpace             ReferenceSpaceKind
	ZNear                 float32
	ZFar                  float32
	EnableDepthLayer      bool
	PreferredColorFormats []int64
	PreferredDepthFormats []int64
	SampleCount           uint32

	// HostDriverName is the symbolic name the host windowing library
	// reports for its active driver ("windows", "x11", ...). Construction
	// fails fatally if it doesn't match the compiled graphics binding.
	HostDriverName string
}

// Session owns the graphics-bound OpenXR session, its spaces, and its
// per-view swapchain chains.
type Session struct {
	inst   *openxr.Instance
	driver video.Driver
	opts   Options

	handle      *openxr.Session
	systemID    openxr.SystemId
	viewConfigs []openxr.ViewConfigView

	playSpace       *openxr.Space
	playSpaceOffset xrmath.Quaternion
	yawOffset       float32
	viewSpace       *openxr.Space

	viewChains []viewChain

	colorFormat int64
	depthFormat int64

	state           frameState
	inFrame         bool
	nextViewIndex   int
	recenterPending bool

	frameState   openxr.FrameState
	shouldRender bool
	views        []openxr.View

	frameCounter uint64
}

// FrameCounter returns the number of frames this session has fully
// ended via xrEndFrame, a diagnostic counter with no effect on XR
// call sequencing.
func (s *Session) FrameCounter() uint64 {
	return s.frameCounter
}
