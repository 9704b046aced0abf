package swapchain

import "testing"

func TestLengthMatchesTextureCount(t *testing.T) {
	s := &Swapchain{width: 1920, height: 1080}
	if s.Length() != 0 {
		t.Fatalf("Length() = %d, want 0 for unconstructed swapchain", s.Length())
	}
}

func TestGetAcquiredTextureNilWhenNotAcquired(t *testing.T) {
	s := &Swapchain{}
	if tex := s.GetAcquiredTexture(); tex != nil {
		t.Fatalf("GetAcquiredTexture() = %v, want nil when not acquired", tex)
	}
}

func TestReleaseIsNoOpWhenNotAcquired(t *testing.T) {
	s := &Swapchain{}
	if err := s.Release(nil); err != nil {
		t.Fatalf("Release() on unacquired swapchain = %v, want nil", err)
	}
}

func TestDestroyNilSwapchainIsSafe(t *testing.T) {
	var s *Swapchain
	s.Destroy()
}
