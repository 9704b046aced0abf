package session

import (
	"github.com/lanternvr/xrbridge/core"
	"github.com/lanternvr/xrbridge/internal/openxr"
	xrmath "github.com/lanternvr/xrbridge/math"
	"github.com/lanternvr/xrbridge/platform"
	"github.com/lanternvr/xrbridge/swapchain"
	"github.com/lanternvr/xrbridge/video"
)

// Create runs the full construction sequence: system query, view
// config enumeration, graphics compatibility check, session creation,
// spaces, begin session, swapchain formats, and per-view swapchain
// pairs. Each step is fatal on failure. Composition layers are not
// pre-built here; buildProjectionLayers rebuilds them at each frame end.
func Create(inst *openxr.Instance, driver video.Driver, opts Options) (*Session, error) {
	systemID, err := inst.GetSystem()
	if err != nil {
		return nil, err
	}

	props, err := inst.SystemProperties(systemID)
	if err != nil {
		return nil, err
	}
	core.LogInfo("XR system %q: orientation tracking=%v position tracking=%v", props.SystemName, props.OrientationTracking, props.PositionTracking)

	viewConfigs, err := inst.EnumerateViewConfigViews(systemID)
	if err != nil {
		return nil, err
	}
	if len(viewConfigs) < 2 {
		core.LogError("primary stereo view config reported %d views, want 2", len(viewConfigs))
		return nil, core.ErrXRCallFailed
	}

	if err := checkGraphicsCompatibility(inst, systemID); err != nil {
		return nil, err
	}

	binding, err := platform.CurrentBinding()
	if err != nil {
		return nil, err
	}
	if err := platform.CheckDriverMatch(binding, opts.HostDriverName); err != nil {
		return nil, err
	}

	handle, err := openxr.CreateSession(inst, systemID, binding)
	if err != nil {
		return nil, err
	}

	s := &Session{
		inst:        inst,
		driver:      driver,
		opts:        opts,
		handle:      handle,
		systemID:    systemID,
		viewConfigs: viewConfigs,
		state:       stateIdle,
	}

	if err := s.setupSpaces(); err != nil {
		s.handle.Destroy()
		return nil, err
	}

	if err := s.handle.Begin(inst); err != nil {
		s.teardownSpaces()
		s.handle.Destroy()
		return nil, err
	}

	if err := s.setupSwapchainFormats(); err != nil {
		s.teardownSpaces()
		s.handle.Destroy()
		return nil, err
	}

	if err := s.setupViewChains(); err != nil {
		s.destroyViewChains()
		s.teardownSpaces()
		s.handle.Destroy()
		return nil, err
	}

	return s, nil
}

// checkGraphicsCompatibility fetches the GL API range the runtime
// accepts and compares it against the host's actual current context,
// required to happen before session creation.
func checkGraphicsCompatibility(inst *openxr.Instance, systemID openxr.SystemId) error {
	requirements, err := inst.GetOpenGLGraphicsRequirements(systemID)
	if err != nil {
		return err
	}

	current := platform.QueryContextVersion()
	min := platform.ContextVersion{Major: requirements.MinAPIVersion.Major, Minor: requirements.MinAPIVersion.Minor, Profile: platform.ProfileGL}
	max := platform.ContextVersion{Major: requirements.MaxAPIVersion.Major, Minor: requirements.MaxAPIVersion.Minor, Profile: platform.ProfileGL}

	if !current.InRange(min, max) {
		core.LogError("host GL context %d.%d outside runtime-accepted range [%d.%d, %d.%d]",
			current.Major, current.Minor, min.Major, min.Minor, max.Major, max.Minor)
		return core.ErrMissingGraphicsExtension
	}
	return nil
}

func (s *Session) setupSpaces() error {
	refSpace := openxr.ReferenceSpaceLocal
	if s.opts.PlaySpace == ReferenceSpaceRoomScale {
		refSpace = openxr.ReferenceSpaceStage
	}

	s.playSpaceOffset = xrmath.IdentityQuaternion()
	identity := openxr.PoseF{OW: 1}

	playSpace, err := s.handle.CreateReferenceSpace(s.inst, refSpace, identity)
	if err != nil {
		return err
	}
	s.playSpace = playSpace

	viewSpace, err := s.handle.CreateReferenceSpace(s.inst, openxr.ReferenceSpaceView, identity)
	if err != nil {
		s.playSpace.Destroy()
		s.playSpace = nil
		return err
	}
	s.viewSpace = viewSpace
	return nil
}

func (s *Session) teardownSpaces() {
	s.viewSpace.Destroy()
	s.viewSpace = nil
	s.playSpace.Destroy()
	s.playSpace = nil
}

func (s *Session) setupSwapchainFormats() error {
	formats, err := s.handle.EnumerateSwapchainFormats(s.inst)
	if err != nil {
		return err
	}

	s.colorFormat = pickColorFormat(formats, s.opts.PreferredColorFormats)

	depthFormat, ok := pickDepthFormat(formats, s.opts.PreferredDepthFormats)
	if !ok {
		core.LogError("no supported 32-bit float depth swapchain format among %v", formats)
		return core.ErrNoDepthFormat
	}
	s.depthFormat = depthFormat
	return nil
}

// pickColorFormat returns the first preferred format the runtime
// supports, falling back to whatever the runtime lists first when none
// of the preferred formats are available.
func pickColorFormat(available []int64, preferred []int64) int64 {
	for _, want := range preferred {
		for _, have := range available {
			if have == want {
				return want
			}
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return 0
}

// pickDepthFormat returns the first preferred format the runtime
// supports. Unlike pickColorFormat it never falls back to an arbitrary
// runtime format: a depth swapchain created against a color internal
// format is a silent correctness bug, so the candidate set defaults to
// the known 32-bit float depth formats when the caller configured no
// preference, and ok is false when nothing in that set is available.
func pickDepthFormat(available []int64, preferred []int64) (int64, bool) {
	candidates := preferred
	if len(candidates) == 0 {
		candidates = video.Depth32FFormats
	}
	for _, want := range candidates {
		for _, have := range available {
			if have == want {
				return want, true
			}
		}
	}
	return 0, false
}

func (s *Session) setupViewChains() error {
	chains := make([]viewChain, len(s.viewConfigs))
	for i, vc := range s.viewConfigs {
		sampleCount := vc.RecommendedSampleCount
		if s.opts.SampleCount != 0 {
			sampleCount = s.opts.SampleCount
		}
		color, err := swapchain.Create(s.inst, s.handle, s.driver, swapchain.KindColor, s.colorFormat, vc.RecommendedWidth, vc.RecommendedHeight, sampleCount, video.DriverKindOpenGL)
		if err != nil {
			return err
		}
		depth, err := swapchain.Create(s.inst, s.handle, s.driver, swapchain.KindDepth, s.depthFormat, vc.RecommendedWidth, vc.RecommendedHeight, sampleCount, video.DriverKindOpenGL)
		if err != nil {
			color.Destroy()
			return err
		}
		chains[i] = viewChain{
			color:         color,
			depth:         depth,
			renderTargets: make([]video.RenderTarget, color.Length()),
			recommended:   vc,
		}
	}
	s.viewChains = chains
	return nil
}

func (s *Session) destroyViewChains() {
	for i := range s.viewChains {
		for _, rt := range s.viewChains[i].renderTargets {
			if rt != nil {
				s.driver.RemoveRenderTarget(rt)
			}
		}
		s.viewChains[i].depth.Destroy()
		s.viewChains[i].color.Destroy()
	}
	s.viewChains = nil
}

// Destroy tears down the session in strict reverse construction order:
// swapchains, then spaces, then the session handle itself.
func (s *Session) Destroy() {
	if s == nil {
		return
	}
	s.destroyViewChains()
	s.teardownSpaces()
	s.handle.Destroy()
}
