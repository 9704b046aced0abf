// Package video describes the host video driver as seen from the XR
// side: texture registration, render-target objects, and the
// reference-counting discipline the Session and Swapchain levels are
// required to honor when they wrap runtime-owned GPU images.
package video

/** @brief The color format of a device-dependent texture. */
type ColorFormat int

const (
	/** @brief Unknown or unset format. */
	ColorFormatUnknown ColorFormat = iota
	/** @brief 8-bit sRGBA, used for color swapchain images. */
	ColorFormatRGBA8
	/** @brief 8-bit BGRA, the host's native swapchain-compatible format. */
	ColorFormatBGRA8
	/** @brief 32-bit linear float depth, used for depth swapchain images. */
	ColorFormatDepth32F
)

// DriverKind names the graphics API a wrapped GPU image handle belongs
// to, so the video driver can dispatch to the matching backend.
type DriverKind int

const (
	DriverKindUnknown DriverKind = iota
	DriverKindOpenGL
	DriverKindOpenGLES
)

// GL internal format tokens used when negotiating swapchain formats
// with the runtime. These are the values GL_SRGB8_ALPHA8, GL_RGBA8,
// GL_DEPTH_COMPONENT32F, and GL_DEPTH32F_STENCIL8 take in the OpenGL
// and OpenGL ES headers; kept here as plain int64s rather than through
// a cgo/GL import so this package stays buildable without a GL context.
const (
	GLRGBA8             int64 = 0x8058
	GLSRGB8Alpha8       int64 = 0x8C43
	GLDepthComponent32F int64 = 0x8CAC
	GLDepth32FStencil8  int64 = 0x8CAD
)

// Depth32FFormats lists the GL internal formats that are valid 32-bit
// float depth swapchain formats. A depth swapchain must be created
// against one of these; falling back to an arbitrary runtime-reported
// format risks silently picking a color format instead.
var Depth32FFormats = []int64{GLDepthComponent32F, GLDepth32FStencil8}

// Texture is an opaque handle to a host texture object that wraps a
// runtime-owned GPU image. The XR side never reads or writes pixels
// through it directly; it only hands it to RenderTarget objects and to
// the per-frame view info it reports to the host.
type Texture interface {
	// Handle returns the driver-native handle (e.g. a GL texture name)
	// backing this wrapper, as an opaque value the underlying driver
	// understands.
	Handle() uintptr
	Width() uint32
	Height() uint32
}

// RenderTarget is an externally refcounted object bundling a color and
// depth texture into something the host's per-frame scene renderer can
// draw into directly. The Session allocates one per color-swapchain
// image index and reuses it across frames.
type RenderTarget interface {
	// Bind (re)points the render target at the given color and depth
	// textures, called whenever a swapchain image index is reused.
	Bind(color, depth Texture)
	// Grab increments the reference count.
	Grab()
	// Drop decrements the reference count; the video driver frees the
	// target once it reaches zero.
	Drop()
	// RefCount reports the current reference count.
	RefCount() int
}

// Driver is the host video driver's contract with the XR core. It is
// an external collaborator: the XR core never constructs one, only
// receives it at Connector construction time and calls into it.
type Driver interface {
	// AddRenderTarget allocates a fresh, unbound render target with an
	// initial reference count of one.
	AddRenderTarget() RenderTarget
	// RemoveRenderTarget drops the Session's reference to rt.
	RemoveRenderTarget(rt RenderTarget)
	// UseDeviceDependentTexture wraps a runtime-owned GPU image handle
	// (gpuHandle, interpreted per driverKind) into a host Texture of
	// the given color format and dimensions. name is used for
	// diagnostics only.
	UseDeviceDependentTexture(name string, driverKind DriverKind, gpuHandle uintptr, format ColorFormat, width, height uint32) Texture
}
