// Package swapchain implements the L3 level of the containment
// hierarchy: one color or depth image ring per eye, wrapping the
// runtime's images into host textures and driving the strictly paired
// acquire/wait/release handshake.
package swapchain

import (
	"github.com/lanternvr/xrbridge/internal/openxr"
	"github.com/lanternvr/xrbridge/video"
)

// Kind distinguishes a color swapchain from its paired depth swapchain,
// since they're wrapped into host textures with different formats.
type Kind int

const (
	KindColor Kind = iota
	KindDepth
)

// Swapchain owns the runtime swapchain handle, its enumerated images,
// and the host texture wrapping each one.
type Swapchain struct {
	kind     Kind
	handle   *openxr.Swapchain
	width    uint32
	height   uint32
	textures []video.Texture

	acquired      bool
	acquiredIndex int
}

// Create creates the runtime swapchain with the given format and sample
// count and the usage implied by kind (sampled + color attachment for
// color, depth-stencil attachment for depth), then asks driver to wrap each enumerated image
// into a host texture — linear-depth-float for depth swapchains,
// 8-bit sRGBA for color.
func Create(inst *openxr.Instance, sess *openxr.Session, driver video.Driver, kind Kind, format int64, width, height, sampleCount uint32, driverKind video.DriverKind) (*Swapchain, error) {
	var usage openxr.SwapchainUsage
	colorFormat := video.ColorFormatRGBA8
	name := "xr-color"
	if kind == KindDepth {
		usage = openxr.UsageDepthStencilAttachment
		colorFormat = video.ColorFormatDepth32F
		name = "xr-depth"
	} else {
		usage = openxr.UsageColorAttachment | openxr.UsageSampled
	}

	handle, err := sess.CreateSwapchain(inst, format, usage, width, height, sampleCount)
	if err != nil {
		return nil, err
	}

	images, err := handle.EnumerateImages(inst)
	if err != nil {
		handle.Destroy()
		return nil, err
	}

	textures := make([]video.Texture, len(images))
	for i, image := range images {
		textures[i] = driver.UseDeviceDependentTexture(name, driverKind, uintptr(image), colorFormat, width, height)
	}

	return &Swapchain{
		kind:     kind,
		handle:   handle,
		width:    width,
		height:   height,
		textures: textures,
	}, nil
}

// Length returns the number of images in the ring.
func (s *Swapchain) Length() int {
	return len(s.textures)
}

// GetHandle returns the opaque runtime swapchain handle, used to
// populate the composition-layer sub-image reference.
func (s *Swapchain) GetHandle() uintptr {
	return s.handle.Handle()
}

// AcquireAndWait acquires the next image index and waits up to 100ms
// for it to become GPU ready. Both steps must succeed; either failure
// is fatal per the containing frame's failure semantics.
func (s *Swapchain) AcquireAndWait(inst *openxr.Instance) error {
	index, err := s.handle.AcquireImage(inst)
	if err != nil {
		return err
	}
	if err := s.handle.WaitImage(inst); err != nil {
		return err
	}
	s.acquired = true
	s.acquiredIndex = index
	return nil
}

// GetAcquiredIndex returns the currently acquired image index. Only
// meaningful between a successful AcquireAndWait and the matching
// Release.
func (s *Swapchain) GetAcquiredIndex() int {
	return s.acquiredIndex
}

// GetAcquiredTexture returns the host texture wrapping the currently
// acquired image.
func (s *Swapchain) GetAcquiredTexture() video.Texture {
	if !s.acquired {
		return nil
	}
	return s.textures[s.acquiredIndex]
}

// Release returns the acquired image to the runtime. The caller must
// have already issued a full GPU flush.
func (s *Swapchain) Release(inst *openxr.Instance) error {
	if !s.acquired {
		return nil
	}
	if err := s.handle.ReleaseImage(inst); err != nil {
		return err
	}
	s.acquired = false
	return nil
}

// Destroy releases the runtime swapchain handle. Must be called before
// the owning Session is destroyed.
func (s *Swapchain) Destroy() {
	if s == nil {
		return
	}
	s.handle.Destroy()
}
