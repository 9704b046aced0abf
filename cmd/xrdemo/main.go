/*
xrdemo is a minimal host: it opens a GL window, stands up a video
driver test double, and drives the Connector's per-frame API. It
exists to exercise the connector package end to end, not as a
supported embedding example.
*/
package main

import (
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lanternvr/xrbridge/config"
	"github.com/lanternvr/xrbridge/connector"
	"github.com/lanternvr/xrbridge/core"
	"github.com/lanternvr/xrbridge/session"
	"github.com/lanternvr/xrbridge/video/videotest"
)

func init() {
	runtime.LockOSThread()
}

// hostDriverName reports the symbolic windowing driver glfw is built
// against on this platform, matching the names platform.Kind.DriverName
// reports for the compiled graphics binding.
func hostDriverName() string {
	switch runtime.GOOS {
	case "windows":
		return "windows"
	case "linux":
		return "x11"
	default:
		return "unknown"
	}
}

func main() {
	if err := glfw.Init(); err != nil {
		core.LogFatal("failed to initialize glfw: %s", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(1280, 720, "xrdemo", nil, nil)
	if err != nil {
		core.LogFatal("failed to create window: %s", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		core.LogFatal("failed to initialize gl: %s", err)
	}
	core.LogInfo("GL: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	cfg, err := config.Load("xrdemo.toml")
	if err != nil {
		core.LogFatal("failed to load config: %s", err)
	}

	opts := connector.Options{
		AppName: "xrdemo",
		SessionOptions: session.Options{
			ZNear:                 cfg.ZNear,
			ZFar:                  cfg.ZFar,
			EnableDepthLayer:      cfg.EnableDepthLayer,
			PreferredColorFormats: cfg.PreferredColorFormats,
			PreferredDepthFormats: cfg.PreferredDepthFormats,
			HostDriverName:        hostDriverName(),
		},
	}
	if cfg.RoomScale {
		opts.SessionOptions.PlaySpace = session.ReferenceSpaceRoomScale
	}

	driver := videotest.NewDriver()
	conn := connector.New(driver, opts)
	defer conn.Shutdown()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	for !window.ShouldClose() {
		select {
		case <-sigCh:
			return
		default:
		}

		glfw.PollEvents()
		conn.HandleEvents()

		if _, ok := conn.TryBeginFrame(); ok {
			for {
				view, ok := conn.NextView()
				if !ok {
					break
				}
				_ = view // the host's scene renderer draws into view.Target here
			}
		}

		window.SwapBuffers()
	}
}
