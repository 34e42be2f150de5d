package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("Clamp(5,0,1) = %v, want 1", got)
	}

	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("Clamp(-5,0,1) = %v, want 0", got)
	}

	// Swapped bounds are reordered.
	if got := Clamp(0.5, 1, 0); got != 0.5 {
		t.Fatalf("Clamp(0.5,1,0) = %v, want 0.5", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values within eps to compare equal")
	}

	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("expected distant values to compare unequal")
	}
}

func TestDBConversionsRoundTrip(t *testing.T) {
	for _, db := range []float64{-60, -6, 0, 6, 20} {
		lin := DBToLinear(db)
		if got := LinearToDB(lin); math.Abs(got-db) > 1e-12 {
			t.Fatalf("amplitude round trip: got %v, want %v", got, db)
		}

		pow := DBPowerToLinear(db)
		if got := LinearPowerToDB(pow); math.Abs(got-db) > 1e-12 {
			t.Fatalf("power round trip: got %v, want %v", got, db)
		}
	}
}

func TestModeString(t *testing.T) {
	if PostProcessing.String() != "post-processing" {
		t.Fatal("unexpected PostProcessing string")
	}

	if RealTime.String() != "real-time" {
		t.Fatal("unexpected RealTime string")
	}
}
