package session

import (
	xrmath "github.com/lanternvr/xrbridge/math"

	"github.com/lanternvr/xrbridge/internal/openxr"
)

// Recenter sets recenterPending; the actual re-derivation happens
// inside the next renderable TryBeginFrame. Only yaw is adjusted —
// position is deliberately preserved so the player's seated origin
// stays stable.
func (s *Session) Recenter() {
	s.recenterPending = true
}

// recenterNow relocates the VIEW space in the play space at t, extracts
// the yaw by projecting the forward vector through the orientation,
// folds it into yawOffset mod 2pi, and rebuilds both reference spaces
// with the new pure-yaw offset.
func (s *Session) recenterNow(t int64) error {
	pose, valid, err := s.viewSpace.Locate(s.inst, s.playSpace, t)
	if err != nil {
		return err
	}
	if !valid {
		return nil
	}

	orientation := xrmath.Quaternion{X: pose.OX, Y: pose.OY, Z: pose.OZ, W: pose.OW}
	yaw := orientation.Yaw()

	s.yawOffset = wrapTwoPi(s.yawOffset + yaw)
	s.playSpaceOffset = xrmath.YawQuaternion(s.yawOffset)

	return s.rebuildSpaces()
}

func wrapTwoPi(theta float32) float32 {
	const twoPi = 6.2831855
	for theta > twoPi {
		theta -= twoPi
	}
	for theta < 0 {
		theta += twoPi
	}
	return theta
}

// rebuildSpaces destroys and re-creates the play and view spaces with
// the current playSpaceOffset. Position is never touched: the offset
// is always pure yaw, position stays at the origin.
func (s *Session) rebuildSpaces() error {
	refSpace := openxr.ReferenceSpaceLocal
	if s.opts.PlaySpace == ReferenceSpaceRoomScale {
		refSpace = openxr.ReferenceSpaceStage
	}

	offset := openxr.PoseF{
		OX: s.playSpaceOffset.X,
		OY: s.playSpaceOffset.Y,
		OZ: s.playSpaceOffset.Z,
		OW: s.playSpaceOffset.W,
	}

	newPlaySpace, err := s.handle.CreateReferenceSpace(s.inst, refSpace, offset)
	if err != nil {
		return err
	}
	newViewSpace, err := s.handle.CreateReferenceSpace(s.inst, openxr.ReferenceSpaceView, openxr.PoseF{OW: 1})
	if err != nil {
		newPlaySpace.Destroy()
		return err
	}

	s.playSpace.Destroy()
	s.viewSpace.Destroy()
	s.playSpace = newPlaySpace
	s.viewSpace = newViewSpace
	return nil
}

// YawOffset exposes the current yaw offset in radians, for tests and
// diagnostics.
func (s *Session) YawOffset() float32 {
	return s.yawOffset
}

// PlaySpaceOffset exposes the current play-space offset quaternion,
// for tests asserting the pure-yaw invariant.
func (s *Session) PlaySpaceOffset() xrmath.Quaternion {
	return s.playSpaceOffset
}
