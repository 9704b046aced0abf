// Package connector implements the L0 level of the containment
// hierarchy: the public entry point the host drives every frame,
// owning the reconnect policy and delegating everything else to the
// Instance.
package connector

import (
	"time"

	"github.com/lanternvr/xrbridge/instance"
	"github.com/lanternvr/xrbridge/session"
	"github.com/lanternvr/xrbridge/video"
)

// retryInterval is the constant reconnect backoff. It never changes
// after a failure: the reconnect loop is stateless.
const retryInterval = 10 * time.Second

// Options bundles construction-time configuration shared by every
// reconnect attempt.
type Options struct {
	AppName        string
	SessionOptions session.Options
}

// Connector owns the reconnect policy and the current Instance, which
// may be nil between a failure and the next retry.
type Connector struct {
	driver video.Driver
	opts   Options

	inst          *instance.Instance
	retryDeadline time.Time
}

// New constructs a Connector and makes a first connection attempt.
// A failed first attempt is not itself fatal: the reconnect policy
// takes over exactly as it would after a later failure.
func New(driver video.Driver, opts Options) *Connector {
	c := &Connector{
		driver: driver,
		opts:   opts,
	}
	c.tryConnect()
	return c
}

func (c *Connector) tryConnect() {
	inst, err := instance.Create(c.opts.AppName, c.driver, c.opts.SessionOptions)
	if err != nil {
		c.scheduleRetry()
		return
	}
	c.inst = inst
}

func (c *Connector) scheduleRetry() {
	c.inst = nil
	c.retryDeadline = time.Now().Add(retryInterval)
}

func (c *Connector) retryDue() bool {
	return !c.retryDeadline.IsZero() && !time.Now().Before(c.retryDeadline)
}

// HandleEvents drains XR events when connected; when disconnected,
// attempts reconnection once the retry deadline has elapsed. Must be
// called at least once per outer event-processing pass, never inside
// a frame.
func (c *Connector) HandleEvents() {
	if c.inst == nil {
		if c.retryDue() {
			c.tryConnect()
		}
		return
	}
	if !c.inst.HandleEvents() {
		c.inst.Destroy()
		c.scheduleRetry()
	}
}

// Recenter requests a yaw reset, taking effect at the start of the
// next renderable frame. A no-op while disconnected.
func (c *Connector) Recenter() {
	if c.inst == nil {
		return
	}
	c.inst.Recenter()
}

// TryBeginFrame blocks for VSync and returns false when the system is
// idle or disconnected.
func (c *Connector) TryBeginFrame() (int64, bool) {
	if c.inst == nil {
		return 0, false
	}
	delta, ok := c.inst.TryBeginFrame(time.Now().UnixNano())
	if !ok {
		c.inst.Destroy()
		c.scheduleRetry()
		return 0, false
	}
	return delta, true
}

// NextView produces the next eye's render data, returning false after
// the last eye (the frame has been ended). A fatal mid-frame failure
// also returns false, but additionally invalidates the Instance and
// schedules a reconnect, exactly as TryBeginFrame does on failure.
func (c *Connector) NextView() (session.ViewInfo, bool) {
	if c.inst == nil {
		return session.ViewInfo{}, false
	}
	view, ok, err := c.inst.NextView()
	if err != nil {
		c.inst.Destroy()
		c.scheduleRetry()
		return session.ViewInfo{}, false
	}
	return view, ok
}

// Connected reports whether an Instance currently exists.
func (c *Connector) Connected() bool {
	return c.inst != nil
}

// Shutdown tears down the current Instance, if any.
func (c *Connector) Shutdown() {
	if c.inst == nil {
		return
	}
	c.inst.Destroy()
	c.inst = nil
}
