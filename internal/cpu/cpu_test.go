package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesReportsArchitecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
}

func TestSetForcedFeaturesOverridesDetection(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX2: true, Architecture: "test"})

	f := DetectFeatures()
	if !f.HasAVX2 || f.Architecture != "test" {
		t.Fatalf("forced features not returned: %+v", f)
	}

	ResetDetection()

	f = DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("ResetDetection did not restore real detection: %+v", f)
	}
}

func TestHasSIMDHonorsForceGeneric(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX2: true, HasNEON: true, ForceGeneric: true})
	if HasSIMD() {
		t.Fatal("HasSIMD() = true despite ForceGeneric")
	}

	SetForcedFeatures(Features{HasSSE2: true})
	if !HasSIMD() {
		t.Fatal("HasSIMD() = false with SSE2 available")
	}

	SetForcedFeatures(Features{})
	if HasSIMD() {
		t.Fatal("HasSIMD() = true with no vector extensions")
	}
}

func TestDetectFeaturesIsStable(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	first := DetectFeatures()
	second := DetectFeatures()
	if first != second {
		t.Fatalf("detection not cached: %+v vs %+v", first, second)
	}
}
