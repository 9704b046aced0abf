package session

import "github.com/lanternvr/xrbridge/internal/openxr"

// buildProjectionLayers rebuilds the composition-layer view array
// purely as values each frame, from per-view state located this frame.
// Returns an empty slice when the frame isn't renderable, which
// EndFrame turns into an empty-layer xrEndFrame submission.
func (s *Session) buildProjectionLayers() []openxr.ProjectionLayerView {
	if !s.shouldRender {
		return nil
	}

	layers := make([]openxr.ProjectionLayerView, len(s.viewChains))
	for i := range s.viewChains {
		layers[i] = openxr.ProjectionLayerView{
			View:            s.views[i],
			SwapchainHandle: s.viewChains[i].color.GetHandle(),
			ImageRectW:      int32(s.viewChains[i].recommended.RecommendedWidth),
			ImageRectH:      int32(s.viewChains[i].recommended.RecommendedHeight),
		}
	}
	return layers
}
