package flow

import (
	"testing"

	"github.com/mediasaver/media-saver/internal/detect"
)

func TestNewState(t *testing.T) {
	s := NewState()

	if s.Phase != PhaseIdle {
		t.Errorf("Expected initial phase Idle, got %s", s.Phase)
	}
	if s.Platform != detect.PlatformUnknown {
		t.Errorf("Expected initial platform unknown, got %s", s.Platform)
	}
	if s.Loading() {
		t.Error("New state must not be loading")
	}
}

func TestWithURLDerivesPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected detect.Platform
	}{
		{"https://youtu.be/abc", detect.PlatformYouTube},
		{"https://www.tiktok.com/@u/video/1", detect.PlatformTikTok},
		{"https://instagram.com/reel/x", detect.PlatformInstagram},
		{"https://example.com", detect.PlatformUnknown},
		{"", detect.PlatformUnknown},
	}

	for _, test := range tests {
		s := NewState().WithURL(test.url)
		if s.Platform != test.expected {
			t.Errorf("WithURL(%q) derived platform %s, expected %s", test.url, s.Platform, test.expected)
		}
		if s.URL != test.url {
			t.Errorf("WithURL(%q) stored URL %q", test.url, s.URL)
		}
	}
}

func TestTransitionsArePure(t *testing.T) {
	original := NewState().WithURL("https://youtu.be/abc")

	_ = original.Submitted("working")
	_ = original.Failed("boom")
	_ = original.Succeeded("done")
	_ = original.Warned("careful")
	_ = original.Cleared()

	if original.Phase != PhaseIdle || original.URL != "https://youtu.be/abc" ||
		original.Error != "" || original.Success != "" {
		t.Errorf("Transitions mutated their receiver: %+v", original)
	}

	// Same input, same output.
	a := original.Submitted("working")
	b := original.Submitted("working")
	if a != b {
		t.Errorf("Submitted is not deterministic: %+v vs %+v", a, b)
	}
}

func TestSubmittedClearsPriorMessages(t *testing.T) {
	s := NewState().WithURL("https://youtu.be/abc").Failed("old error")

	s = s.Submitted("Contacting the server…")

	if s.Phase != PhaseLoading {
		t.Errorf("Expected Loading, got %s", s.Phase)
	}
	if s.Error != "" || s.Success != "" {
		t.Errorf("Expected prior messages cleared, got error=%q success=%q", s.Error, s.Success)
	}
	if s.Progress != "Contacting the server…" {
		t.Errorf("Expected first phrase seeded, got %q", s.Progress)
	}
}

func TestProgressedOnlyWhileLoading(t *testing.T) {
	loading := NewState().WithURL("u").Submitted("one")
	if got := loading.Progressed("two"); got.Progress != "two" {
		t.Errorf("Expected phrase to advance while loading, got %q", got.Progress)
	}

	idle := NewState()
	if got := idle.Progressed("two"); got.Progress != "" {
		t.Errorf("Progressed outside loading must be a no-op, got %q", got.Progress)
	}
}

func TestSucceededClearsURL(t *testing.T) {
	s := NewState().WithURL("https://youtu.be/abc").Submitted("one")

	s = s.Succeeded("Saved clip.mp4 (3.4 MB)")

	if s.Phase != PhaseSuccess {
		t.Errorf("Expected Success, got %s", s.Phase)
	}
	if s.URL != "" {
		t.Errorf("Expected URL cleared after success, got %q", s.URL)
	}
	if s.Platform != detect.PlatformUnknown {
		t.Errorf("Expected platform reset with the URL, got %s", s.Platform)
	}
}

func TestFailedKeepsURL(t *testing.T) {
	s := NewState().WithURL("https://youtu.be/abc").Submitted("one").Failed("bad url")

	if s.Phase != PhaseError {
		t.Errorf("Expected Error, got %s", s.Phase)
	}
	if s.Error != "bad url" {
		t.Errorf("Expected error message kept, got %q", s.Error)
	}
	if s.URL != "https://youtu.be/abc" {
		t.Error("A failed action must keep the URL so the user can retry")
	}
}

func TestWarnedStaysIdle(t *testing.T) {
	s := NewState().Warned(MsgEmptyURL)

	if s.Phase != PhaseIdle {
		t.Errorf("Validation warning must not leave idle, got %s", s.Phase)
	}
	if s.Error != MsgEmptyURL {
		t.Errorf("Expected validation message, got %q", s.Error)
	}
}

func TestClearedReturnsToIdle(t *testing.T) {
	s := NewState().WithURL("https://youtu.be/abc").Submitted("one").Failed("boom").Cleared()

	if s.Phase != PhaseIdle {
		t.Errorf("Expected Idle, got %s", s.Phase)
	}
	if s.Error != "" || s.Success != "" || s.Progress != "" {
		t.Errorf("Expected messages dropped, got %+v", s)
	}
	if s.URL != "https://youtu.be/abc" {
		t.Error("Clearing messages must not erase the typed URL")
	}
}
