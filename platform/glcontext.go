package platform

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/lanternvr/xrbridge/core"
)

// Profile identifies whether the host's active context is desktop GL
// or GLES, the axis the runtime's graphics-requirements range is
// expressed against.
type Profile int

const (
	ProfileUnknown Profile = iota
	ProfileGL
	ProfileGLES
)

// ContextVersion describes the host's currently-active GL context, as
// read directly from the driver rather than trusted from window hints.
type ContextVersion struct {
	Major, Minor int
	Profile      Profile
}

// QueryContextVersion reads GL_MAJOR_VERSION/GL_MINOR_VERSION and the
// core/compat profile mask from the context current on this thread.
// The host must call gl.Init() (or equivalent) before this.
func QueryContextVersion() ContextVersion {
	var major, minor, mask int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	gl.GetIntegerv(gl.CONTEXT_PROFILE_MASK, &mask)

	core.LogDebug("host GL context: %d.%d (profile mask 0x%x)", major, minor, mask)

	return ContextVersion{
		Major:   int(major),
		Minor:   int(minor),
		Profile: ProfileGL,
	}
}

// InRange reports whether v falls within [min, max] inclusive, the
// comparison the session's graphics compatibility check runs before
// session creation.
func (v ContextVersion) InRange(min, max ContextVersion) bool {
	if v.Profile != min.Profile {
		return false
	}
	lo := min.Major*100 + min.Minor
	hi := max.Major*100 + max.Minor
	cur := v.Major*100 + v.Minor
	return cur >= lo && cur <= hi
}
