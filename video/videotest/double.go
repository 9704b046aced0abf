// Package videotest provides a minimal in-memory stand-in for the host
// video driver, for hosts such as cmd/xrdemo that have no real video
// driver of their own.
package videotest

import (
	"github.com/google/uuid"

	"github.com/lanternvr/xrbridge/video"
)

type texture struct {
	id     uuid.UUID
	handle uintptr
	width  uint32
	height uint32
}

func (t *texture) Handle() uintptr { return t.handle }
func (t *texture) Width() uint32   { return t.width }
func (t *texture) Height() uint32  { return t.height }

type renderTarget struct {
	id       uuid.UUID
	color    video.Texture
	depth    video.Texture
	refCount int
}

func (r *renderTarget) Bind(color, depth video.Texture) {
	r.color = color
	r.depth = depth
}

func (r *renderTarget) Grab() { r.refCount++ }

func (r *renderTarget) Drop() {
	if r.refCount > 0 {
		r.refCount--
	}
}

func (r *renderTarget) RefCount() int { return r.refCount }

// Driver is a test double implementing video.Driver. It keeps no real
// GPU resources, only bookkeeping: every Texture and RenderTarget it
// hands out carries a stable uuid.UUID identity so tests can assert on
// which wrapper was bound where.
type Driver struct {
	Targets  []*renderTarget
	Textures []*texture
}

func NewDriver() *Driver {
	return &Driver{}
}

func (d *Driver) AddRenderTarget() video.RenderTarget {
	rt := &renderTarget{id: uuid.New(), refCount: 1}
	d.Targets = append(d.Targets, rt)
	return rt
}

func (d *Driver) RemoveRenderTarget(rt video.RenderTarget) {
	rt.Drop()
}

func (d *Driver) UseDeviceDependentTexture(name string, driverKind video.DriverKind, gpuHandle uintptr, format video.ColorFormat, width, height uint32) video.Texture {
	t := &texture{id: uuid.New(), handle: gpuHandle, width: width, height: height}
	d.Textures = append(d.Textures, t)
	return t
}
