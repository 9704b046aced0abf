// Package config decodes the connector's TOML configuration file and
// watches it for changes, so a host can tweak clip planes or format
// preferences without restarting. The reconnect retry interval is not
// configurable here.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lanternvr/xrbridge/video"
)

// Config holds every host-tunable knob the spec leaves open: the
// room-scale flag, the preferred swapchain formats, clip planes, and
// the depth composition layer toggle (defaulted off, per the runtime
// note that it breaks SteamVR).
type Config struct {
	RoomScale             bool    `toml:"room_scale"`
	EnableDepthLayer      bool    `toml:"enable_depth_layer"`
	ZNear                 float32 `toml:"z_near"`
	ZFar                  float32 `toml:"z_far"`
	PreferredColorFormats []int64 `toml:"preferred_color_formats"`
	PreferredDepthFormats []int64 `toml:"preferred_depth_formats"`
}

// Default returns the configuration this package falls back to when
// no file is present. The preferred formats default to sRGB8 color and
// a 32-bit float depth buffer, the pair the runtime is most likely to
// support.
func Default() Config {
	return Config{
		RoomScale:             false,
		EnableDepthLayer:      false,
		ZNear:                 0.05,
		ZFar:                  1000.0,
		PreferredColorFormats: []int64{video.GLSRGB8Alpha8, video.GLRGBA8},
		PreferredDepthFormats: []int64{video.GLDepthComponent32F, video.GLDepth32FStencil8},
	}
}

// Load reads and decodes path, returning Default() if the file does
// not exist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
