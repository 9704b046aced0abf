package session

import (
	"math"
	"testing"

	xrmath "github.com/lanternvr/xrbridge/math"
	"github.com/lanternvr/xrbridge/video"
)

func TestViewKindForIndex(t *testing.T) {
	cases := []struct {
		index int
		want  ViewKind
	}{
		{0, ViewLeftEye},
		{1, ViewRightEye},
		{2, ViewGeneric},
	}
	for _, c := range cases {
		if got := viewKindForIndex(c.index); got != c.want {
			t.Errorf("viewKindForIndex(%d) = %v, want %v", c.index, got, c.want)
		}
	}
}

func TestWrapTwoPiStaysInRange(t *testing.T) {
	cases := []float32{0, 1, 6.2831855, 7, -1, -7}
	for _, theta := range cases {
		got := wrapTwoPi(theta)
		if got < 0 || got > 6.2831855+1e-4 {
			t.Errorf("wrapTwoPi(%v) = %v, out of [0, 2pi]", theta, got)
		}
	}
}

func TestRecenterSetsPendingFlag(t *testing.T) {
	s := &Session{}
	s.Recenter()
	if !s.recenterPending {
		t.Fatal("Recenter() did not set recenterPending")
	}
}

func TestPlaySpaceOffsetIsPureYawAfterAssignment(t *testing.T) {
	s := &Session{}
	s.yawOffset = float32(math.Pi / 2)
	s.playSpaceOffset = xrmath.YawQuaternion(s.yawOffset)

	offset := s.PlaySpaceOffset()
	if offset.X != 0 || offset.Z != 0 {
		t.Fatalf("play space offset is not pure yaw: %+v", offset)
	}

	wantSin := float32(math.Sin(math.Pi / 4))
	wantCos := float32(math.Cos(math.Pi / 4))
	if diff := offset.Y - wantSin; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("offset.Y = %v, want %v", offset.Y, wantSin)
	}
	if diff := offset.W - wantCos; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("offset.W = %v, want %v", offset.W, wantCos)
	}
}

func TestFrameCounterStartsAtZero(t *testing.T) {
	s := &Session{}
	if s.FrameCounter() != 0 {
		t.Fatalf("FrameCounter() = %d, want 0", s.FrameCounter())
	}
}

func TestPickDepthFormatRejectsColorOnlyRuntime(t *testing.T) {
	available := []int64{video.GLRGBA8, video.GLSRGB8Alpha8}
	if _, ok := pickDepthFormat(available, nil); ok {
		t.Fatal("pickDepthFormat() = ok with no 32-bit float depth format available, want !ok")
	}
}

func TestPickDepthFormatAcceptsKnown32FFormat(t *testing.T) {
	available := []int64{video.GLRGBA8, video.GLDepthComponent32F}
	got, ok := pickDepthFormat(available, nil)
	if !ok || got != video.GLDepthComponent32F {
		t.Fatalf("pickDepthFormat() = (%v, %v), want (%v, true)", got, ok, video.GLDepthComponent32F)
	}
}

func TestPickDepthFormatHonorsPreferredOverDefaultSet(t *testing.T) {
	available := []int64{video.GLDepthComponent32F, video.GLDepth32FStencil8}
	got, ok := pickDepthFormat(available, []int64{video.GLDepth32FStencil8})
	if !ok || got != video.GLDepth32FStencil8 {
		t.Fatalf("pickDepthFormat() = (%v, %v), want (%v, true)", got, ok, video.GLDepth32FStencil8)
	}
}

func TestPickColorFormatFallsBackToFirstAvailable(t *testing.T) {
	available := []int64{video.GLRGBA8}
	if got := pickColorFormat(available, []int64{video.GLSRGB8Alpha8}); got != video.GLRGBA8 {
		t.Fatalf("pickColorFormat() = %v, want fallback %v", got, video.GLRGBA8)
	}
}
