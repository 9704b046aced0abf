//go:build !windows && !linux

package platform

import "github.com/lanternvr/xrbridge/core"

// currentBinding rejects every platform this package doesn't cover.
// EGL-GLES is deferred by design (see KindEGLGLES); any other GOOS is
// simply unsupported. Either way the host driver is explicitly
// rejected rather than silently accepted.
func currentBinding() (Binding, error) {
	return nil, core.ErrUnsupportedGraphicsBinding
}
