package openxr

/*
#include <stdlib.h>
#include <string.h>
#include <openxr/openxr.h>

static XrResult enumerateInstanceExtensionProperties(uint32_t *count, XrExtensionProperties *props) {
	return xrEnumerateInstanceExtensionProperties(NULL, *count, count, props);
}
*/
import "C"

import (
	"unsafe"

	"github.com/lanternvr/xrbridge/core"
)

// Instance wraps an XrInstance handle. It is created with a fixed
// application name/version and a pre-negotiated extension list, and
// survives for the lifetime of one connection attempt.
type Instance struct {
	handle C.XrInstance
}

// EnumerateExtensions lists every extension this OpenXR runtime
// advertises, used by the instance layer to check for the OpenGL (or
// OpenGL ES) enable extension before requesting it.
func EnumerateExtensions() ([]string, error) {
	var count C.uint32_t
	result := Result(C.enumerateInstanceExtensionProperties(&count, nil))
	if result.Failed() {
		core.LogError("xrEnumerateInstanceExtensionProperties (count): %s", ResultToString(nil, result))
		return nil, core.ErrXRCallFailed
	}
	if count == 0 {
		return nil, nil
	}

	props := make([]C.XrExtensionProperties, count)
	for i := range props {
		props[i]._type = C.XR_TYPE_EXTENSION_PROPERTIES
	}

	result = Result(C.enumerateInstanceExtensionProperties(&count, &props[0]))
	if result.Failed() {
		core.LogError("xrEnumerateInstanceExtensionProperties: %s", ResultToString(nil, result))
		return nil, core.ErrXRCallFailed
	}

	names := make([]string, 0, count)
	for i := 0; i < int(count); i++ {
		names = append(names, C.GoString(&props[i].extensionName[0]))
	}
	return names, nil
}

// HasExtension reports whether name is present in the advertised set.
func HasExtension(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// CreateInstance creates an XrInstance requesting the given enabled
// extensions, tagging it with appName/appVersion for the runtime's
// diagnostics.
func CreateInstance(appName string, appVersion uint32, extensions []string) (*Instance, error) {
	cAppName := C.CString(appName)
	defer C.free(unsafe.Pointer(cAppName))

	cExtNames := make([]*C.char, len(extensions))
	for i, ext := range extensions {
		cExtNames[i] = C.CString(ext)
		defer C.free(unsafe.Pointer(cExtNames[i]))
	}

	var info C.XrInstanceCreateInfo
	info._type = C.XR_TYPE_INSTANCE_CREATE_INFO
	C.strncpy(&info.applicationInfo.applicationName[0], cAppName, C.size_t(len(info.applicationInfo.applicationName))-1)
	info.applicationInfo.applicationVersion = C.uint32_t(appVersion)
	info.applicationInfo.apiVersion = C.XR_CURRENT_API_VERSION
	info.enabledExtensionCount = C.uint32_t(len(cExtNames))
	if len(cExtNames) > 0 {
		info.enabledExtensionNames = (**C.char)(unsafe.Pointer(&cExtNames[0]))
	}

	var handle C.XrInstance
	result := Result(C.xrCreateInstance(&info, &handle))
	if result.Failed() {
		core.LogError("xrCreateInstance: %s (hint: the XR runtime, e.g. SteamVR, may not be running)", ResultToString(nil, result))
		return nil, core.ErrXRCallFailed
	}
	return &Instance{handle: handle}, nil
}

// Properties reads back the runtime's name and version, logged once
// on a successful connection.
func (inst *Instance) Properties() (runtimeName string, runtimeVersion uint64, err error) {
	var props C.XrInstanceProperties
	props._type = C.XR_TYPE_INSTANCE_PROPERTIES
	result := Result(C.xrGetInstanceProperties(inst.handle, &props))
	if result.Failed() {
		core.LogError("xrGetInstanceProperties: %s", ResultToString(inst, result))
		return "", 0, core.ErrXRCallFailed
	}
	return C.GoString(&props.runtimeName[0]), uint64(props.runtimeVersion), nil
}

// Destroy releases the instance. Must be called only after the owned
// Session has already been destroyed.
func (inst *Instance) Destroy() {
	if inst == nil || inst.handle == nil {
		return
	}
	C.xrDestroyInstance(inst.handle)
	inst.handle = nil
}
