package session

import (
	"github.com/lanternvr/xrbridge/core"
	xrmath "github.com/lanternvr/xrbridge/math"
)

// TryBeginFrame transitions Idle -> FrameRendering(0): waits for
// VSync, begins the frame, applies any pending recenter, locates the
// views, and primes the per-eye output. Returns the predicted-display-
// time delta (may be 0 if not computed) and true on success.
func (s *Session) TryBeginFrame(now int64) (int64, bool) {
	frameState, err := s.handle.WaitFrame(s.inst)
	if err != nil {
		return 0, false
	}
	s.frameState = frameState

	if err := s.handle.BeginFrame(s.inst); err != nil {
		return 0, false
	}

	if s.recenterPending && frameState.ShouldRender {
		if err := s.recenterNow(frameState.PredictedDisplayTime); err != nil {
			return 0, false
		}
		s.recenterPending = false
	}

	views, err := s.handle.LocateViews(s.inst, s.viewSpace, s.playSpace, frameState.PredictedDisplayTime, len(s.viewChains))
	if err != nil {
		return 0, false
	}
	s.views = views

	s.shouldRender = frameState.ShouldRender
	for _, v := range views {
		if !v.PositionValid || !v.OrientationValid {
			s.shouldRender = false
		}
	}

	s.inFrame = true
	s.nextViewIndex = 0
	s.state = stateRendering

	delta := frameState.PredictedDisplayTime - now
	return delta, true
}

// viewKindForIndex maps a view index to the output Kind; only the
// first two views are ever produced by this stereo-only construction.
func viewKindForIndex(i int) ViewKind {
	switch i {
	case 0:
		return ViewLeftEye
	case 1:
		return ViewRightEye
	default:
		return ViewGeneric
	}
}

// NextView produces one per-eye render target each call. Returns
// gotView=false once every view has been produced, ending the frame as
// a side effect of that final call — a normal, non-fatal outcome. A
// non-nil error instead means a fatal mid-frame failure: no xrEndFrame
// was submitted, and the caller must invalidate this Session.
func (s *Session) NextView() (ViewInfo, bool, error) {
	if s.shouldRender && s.nextViewIndex < len(s.viewChains) {
		i := s.nextViewIndex
		chain := &s.viewChains[i]

		if err := chain.color.AcquireAndWait(s.inst); err != nil {
			s.abortFrame()
			return ViewInfo{}, false, err
		}
		if err := chain.depth.AcquireAndWait(s.inst); err != nil {
			s.abortFrame()
			return ViewInfo{}, false, err
		}

		index := chain.color.GetAcquiredIndex()
		rt := chain.renderTargets[index]
		if rt == nil {
			rt = s.driver.AddRenderTarget()
			chain.renderTargets[index] = rt
		}
		rt.Bind(chain.color.GetAcquiredTexture(), chain.depth.GetAcquiredTexture())

		v := s.views[i]
		pose := xrmath.Pose{
			Position:    xrmath.Vec3{X: v.PositionX, Y: v.PositionY, Z: v.PositionZ},
			Orientation: xrmath.Quaternion{X: v.OrientationX, Y: v.OrientationY, Z: v.OrientationZ, W: v.OrientationW},
		}.ToLeftHanded()

		info := ViewInfo{
			Kind:        viewKindForIndex(i),
			Target:      rt,
			Width:       chain.recommended.RecommendedWidth,
			Height:      chain.recommended.RecommendedHeight,
			Position:    pose.Position,
			Orientation: pose.Orientation,
			AngleLeft:   v.AngleLeft,
			AngleRight:  v.AngleRight,
			AngleUp:     v.AngleUp,
			AngleDown:   v.AngleDown,
			ZNear:       s.opts.ZNear,
			ZFar:        s.opts.ZFar,
		}
		info.PositionBase = s.positionBase()

		s.nextViewIndex++
		return info, true, nil
	}

	s.endFrame()
	return ViewInfo{}, false, nil
}

// positionBase computes the midpoint between the two eyes' left-handed
// positions, used by the host for IPD-aware effects. Only meaningful
// once both views have been located.
func (s *Session) positionBase() xrmath.Vec3 {
	if len(s.views) < 2 {
		return xrmath.Vec3{}
	}
	left := xrmath.Vec3{X: s.views[0].PositionX, Y: s.views[0].PositionY, Z: s.views[0].PositionZ}.NegateZ()
	right := xrmath.Vec3{X: s.views[1].PositionX, Y: s.views[1].PositionY, Z: s.views[1].PositionZ}.NegateZ()
	return left.Add(right).MulScalar(0.5)
}

// endFrame releases every acquired swapchain image in view order, then
// submits the frame via xrEndFrame with the (possibly empty) layer
// list, always pairing with the earlier BeginFrame.
func (s *Session) endFrame() {
	for i := range s.viewChains {
		if err := s.viewChains[i].color.Release(s.inst); err != nil {
			core.LogError("releasing color swapchain for view %d: %v", i, err)
		}
		if err := s.viewChains[i].depth.Release(s.inst); err != nil {
			core.LogError("releasing depth swapchain for view %d: %v", i, err)
		}
	}

	layers := s.buildProjectionLayers()
	if err := s.handle.EndFrame(s.inst, s.playSpace, s.frameState.PredictedDisplayTime, layers); err != nil {
		core.LogError("xrEndFrame failed: %v", err)
	}

	s.inFrame = false
	s.state = stateIdle
	s.frameCounter++
}

// abortFrame is used on a mid-frame fatal error: no end-frame is
// submitted, since the Instance is being torn down regardless.
func (s *Session) abortFrame() {
	s.inFrame = false
	s.state = stateIdle
}
