package design

import "testing"

func TestResolveEnvironmentFallback(t *testing.T) {
	env := ResolveEnvironment("", "")
	if env.Altitude.ID != DefaultAltitudeBandID || env.Temperature.ID != DefaultTemperatureBandID {
		t.Fatalf("default env = %s/%s", env.Altitude.ID, env.Temperature.ID)
	}
	env = ResolveEnvironment("orbit", "plasma")
	if env.Altitude.ID != DefaultAltitudeBandID || env.Temperature.ID != DefaultTemperatureBandID {
		t.Fatalf("unknown ids must fall back, got %s/%s", env.Altitude.ID, env.Temperature.ID)
	}
	env = ResolveEnvironment("mountain", "cold")
	if env.Altitude.ID != "mountain" || env.Temperature.ID != "cold" {
		t.Fatalf("resolved env = %s/%s", env.Altitude.ID, env.Temperature.ID)
	}
}

func TestBandTablesWellFormed(t *testing.T) {
	for _, b := range AltitudeBands() {
		if b.ThrustEfficiency <= 0 || b.ThrustEfficiency > 1 {
			t.Fatalf("%s thrust efficiency %v out of range", b.ID, b.ThrustEfficiency)
		}
		if b.PowerPenalty < 0 {
			t.Fatalf("%s power penalty %v negative", b.ID, b.PowerPenalty)
		}
	}
	for _, b := range TemperatureBands() {
		if b.CapacityFactor <= 0 || b.CapacityFactor > 1 {
			t.Fatalf("%s capacity factor %v out of range", b.ID, b.CapacityFactor)
		}
	}
}

func TestBandTablesAreCopies(t *testing.T) {
	bands := AltitudeBands()
	bands[0].ThrustEfficiency = -5
	if got := AltitudeBands()[0].ThrustEfficiency; got == -5 {
		t.Fatalf("AltitudeBands leaked internal slice")
	}
}
