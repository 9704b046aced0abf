package openxr

/*
#include <string.h>
#include <openxr/openxr.h>
#include <openxr/openxr_platform.h>
*/
import "C"

import (
	"unsafe"

	"github.com/lanternvr/xrbridge/core"
)

// SwapchainUsage mirrors the XrSwapchainUsageFlags bits this package
// cares about.
type SwapchainUsage int

const (
	UsageColorAttachment SwapchainUsage = 1 << iota
	UsageDepthStencilAttachment
	UsageSampled
)

func (u SwapchainUsage) toC() C.XrSwapchainUsageFlags {
	var flags C.XrSwapchainUsageFlags
	if u&UsageColorAttachment != 0 {
		flags |= C.XR_SWAPCHAIN_USAGE_COLOR_ATTACHMENT_BIT
	}
	if u&UsageDepthStencilAttachment != 0 {
		flags |= C.XR_SWAPCHAIN_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT
	}
	if u&UsageSampled != 0 {
		flags |= C.XR_SWAPCHAIN_USAGE_SAMPLED_BIT
	}
	return flags
}

// Swapchain wraps an XrSwapchain handle.
type Swapchain struct {
	handle C.XrSwapchain
}

// EnumerateSwapchainFormats lists the GL internal formats the runtime
// supports for swapchain images, in the runtime's preference order.
func (s *Session) EnumerateSwapchainFormats(inst *Instance) ([]int64, error) {
	var count C.uint32_t
	result := Result(C.xrEnumerateSwapchainFormats(s.handle, 0, &count, nil))
	if result.Failed() {
		core.LogError("xrEnumerateSwapchainFormats (count): %s", ResultToString(inst, result))
		return nil, core.ErrXRCallFailed
	}

	formats := make([]C.int64_t, count)
	result = Result(C.xrEnumerateSwapchainFormats(s.handle, count, &count, &formats[0]))
	if result.Failed() {
		core.LogError("xrEnumerateSwapchainFormats: %s", ResultToString(inst, result))
		return nil, core.ErrXRCallFailed
	}

	out := make([]int64, count)
	for i := 0; i < int(count); i++ {
		out[i] = int64(formats[i])
	}
	return out, nil
}

// CreateSwapchain creates a swapchain with faceCount=1, arraySize=1,
// mipCount=1, the fixed shape every view's color and depth chain uses.
func (s *Session) CreateSwapchain(inst *Instance, format int64, usage SwapchainUsage, width, height uint32, sampleCount uint32) (*Swapchain, error) {
	var info C.XrSwapchainCreateInfo
	info._type = C.XR_TYPE_SWAPCHAIN_CREATE_INFO
	info.usageFlags = usage.toC()
	info.format = C.int64_t(format)
	info.sampleCount = C.uint32_t(sampleCount)
	info.width = C.uint32_t(width)
	info.height = C.uint32_t(height)
	info.faceCount = 1
	info.arraySize = 1
	info.mipCount = 1

	var handle C.XrSwapchain
	result := Result(C.xrCreateSwapchain(s.handle, &info, &handle))
	if result.Failed() {
		core.LogError("xrCreateSwapchain: %s", ResultToString(inst, result))
		return nil, core.ErrXRCallFailed
	}
	return &Swapchain{handle: handle}, nil
}

// EnumerateImages returns the runtime-owned GL texture names backing
// this swapchain's image ring.
func (sc *Swapchain) EnumerateImages(inst *Instance) ([]uint32, error) {
	var count C.uint32_t
	result := Result(C.xrEnumerateSwapchainImages(sc.handle, 0, &count, nil))
	if result.Failed() {
		core.LogError("xrEnumerateSwapchainImages (count): %s", ResultToString(inst, result))
		return nil, core.ErrXRCallFailed
	}

	images := make([]C.XrSwapchainImageOpenGLKHR, count)
	for i := range images {
		images[i]._type = C.XR_TYPE_SWAPCHAIN_IMAGE_OPENGL_KHR
	}

	header := (*C.XrSwapchainImageBaseHeader)(unsafe.Pointer(&images[0]))
	result = Result(C.xrEnumerateSwapchainImages(sc.handle, count, &count, header))
	if result.Failed() {
		core.LogError("xrEnumerateSwapchainImages: %s", ResultToString(inst, result))
		return nil, core.ErrXRCallFailed
	}

	out := make([]uint32, count)
	for i := 0; i < int(count); i++ {
		out[i] = uint32(images[i].image)
	}
	return out, nil
}

// AcquireImage requests the next image index from the runtime.
func (sc *Swapchain) AcquireImage(inst *Instance) (int, error) {
	var info C.XrSwapchainImageAcquireInfo
	info._type = C.XR_TYPE_SWAPCHAIN_IMAGE_ACQUIRE_INFO

	var index C.uint32_t
	result := Result(C.xrAcquireSwapchainImage(sc.handle, &info, &index))
	if result.Failed() {
		core.LogError("xrAcquireSwapchainImage: %s", ResultToString(inst, result))
		return 0, core.ErrXRCallFailed
	}
	return int(index), nil
}

// WaitImage blocks up to 100ms for the acquired image to become GPU
// ready. A timeout is treated as fatal by the caller.
func (sc *Swapchain) WaitImage(inst *Instance) error {
	var info C.XrSwapchainImageWaitInfo
	info._type = C.XR_TYPE_SWAPCHAIN_IMAGE_WAIT_INFO
	info.timeout = 100000000 // 100ms in nanoseconds, XrDuration units

	result := Result(C.xrWaitSwapchainImage(sc.handle, &info))
	if result == TimeoutExpired {
		core.LogError("xrWaitSwapchainImage: timed out after 100ms")
		return core.ErrSwapchainTimeout
	}
	if result.Failed() {
		core.LogError("xrWaitSwapchainImage: %s", ResultToString(inst, result))
		return core.ErrXRCallFailed
	}
	return nil
}

// ReleaseImage returns the acquired image to the runtime. The caller
// must have issued a full GPU flush first.
func (sc *Swapchain) ReleaseImage(inst *Instance) error {
	var info C.XrSwapchainImageReleaseInfo
	info._type = C.XR_TYPE_SWAPCHAIN_IMAGE_RELEASE_INFO

	result := Result(C.xrReleaseSwapchainImage(sc.handle, &info))
	if result.Failed() {
		core.LogError("xrReleaseSwapchainImage: %s", ResultToString(inst, result))
		return core.ErrXRCallFailed
	}
	return nil
}

// Destroy releases the swapchain. Must be called before the owning
// Session is destroyed.
func (sc *Swapchain) Destroy() {
	if sc == nil || sc.handle == nil {
		return
	}
	C.xrDestroySwapchain(sc.handle)
	sc.handle = nil
}

// Handle returns the opaque swapchain handle, used to fill the
// composition-layer sub-image reference at end-frame time.
func (sc *Swapchain) Handle() uintptr {
	return uintptr(unsafe.Pointer(sc.handle))
}
