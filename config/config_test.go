package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lanternvr/xrbridge/video"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	want := Default()
	if got.RoomScale != want.RoomScale || got.EnableDepthLayer != want.EnableDepthLayer ||
		got.ZNear != want.ZNear || got.ZFar != want.ZFar ||
		len(got.PreferredColorFormats) != len(want.PreferredColorFormats) ||
		len(got.PreferredDepthFormats) != len(want.PreferredDepthFormats) {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
}

func TestDefaultPreferredDepthFormatIs32Float(t *testing.T) {
	want := Default()
	if len(want.PreferredDepthFormats) == 0 || want.PreferredDepthFormats[0] != video.GLDepthComponent32F {
		t.Fatalf("PreferredDepthFormats = %v, want to start with GL_DEPTH_COMPONENT32F (%d)", want.PreferredDepthFormats, video.GLDepthComponent32F)
	}
}

func TestLoadDecodesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xr.toml")
	content := `
room_scale = true
enable_depth_layer = true
z_near = 0.1
z_far = 500.0
preferred_color_formats = [32856]
preferred_depth_formats = [33190]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	want := Config{
		RoomScale:             true,
		EnableDepthLayer:      true,
		ZNear:                 0.1,
		ZFar:                  500.0,
		PreferredColorFormats: []int64{32856},
		PreferredDepthFormats: []int64{33190},
	}
	if got.RoomScale != want.RoomScale || got.EnableDepthLayer != want.EnableDepthLayer ||
		got.ZNear != want.ZNear || got.ZFar != want.ZFar {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
	if len(got.PreferredColorFormats) != 1 || got.PreferredColorFormats[0] != 32856 {
		t.Fatalf("PreferredColorFormats = %v, want [32856]", got.PreferredColorFormats)
	}
}

func TestDefaultDisablesDepthLayer(t *testing.T) {
	if Default().EnableDepthLayer {
		t.Fatal("Default().EnableDepthLayer = true, want false (depth layer breaks SteamVR)")
	}
}
