package scene

import (
	"testing"

	"github.com/sar2/sar2/pkg/math"
)

func TestCloudLayersOrdered(t *testing.T) {
	s := New()
	s.SetCloudLayers([]CloudLayer{{Altitude: 2000}, {Altitude: 500}, {Altitude: 1200}})

	layers := s.CloudLayers()
	for i := 1; i < len(layers); i++ {
		if layers[i-1].Altitude > layers[i].Altitude {
			t.Fatalf("layers not ascending: %v", layers)
		}
	}
	if got := s.LowestCloudLayer().Altitude; got != 500 {
		t.Errorf("lowest = %v, want 500", got)
	}
	if got := s.HighestCloudLayer().Altitude; got != 2000 {
		t.Errorf("highest = %v, want 2000", got)
	}
}

func TestNoCloudLayers(t *testing.T) {
	s := New()
	if s.LowestCloudLayer() != nil || s.HighestCloudLayer() != nil {
		t.Error("expected nil layers on empty scene")
	}
}

func TestObjectLookup(t *testing.T) {
	s := New()
	if s.Player() != nil {
		t.Error("new scene should have no player")
	}

	i := s.AddObject(&Object{Name: "heli", Type: TypeAircraft})
	s.PlayerIndex = i

	tests := []struct {
		index int
		want  bool
	}{
		{-1, false},
		{0, true},
		{1, false},
	}
	for _, tt := range tests {
		if got := s.Object(tt.index) != nil; got != tt.want {
			t.Errorf("Object(%d) present = %v, want %v", tt.index, got, tt.want)
		}
	}
	if s.Player().Name != "heli" {
		t.Errorf("Player() = %v", s.Player())
	}
}

func TestSetRotMatricesCapacity(t *testing.T) {
	var c CameraState
	m := make([]math.Mat3, MaxCameraRotMatrices+2)
	c.SetRotMatrices(m)
	if c.RotMatrixCount != MaxCameraRotMatrices {
		t.Errorf("RotMatrixCount = %d, want %d", c.RotMatrixCount, MaxCameraRotMatrices)
	}

	c.SetRotMatrices(m[:2])
	if len(c.ValidRotMatrices()) != 2 {
		t.Errorf("ValidRotMatrices() len = %d, want 2", len(c.ValidRotMatrices()))
	}
}

func TestFlagsAndOverspeed(t *testing.T) {
	f := FlagHideNightModel | FlagNightModelAtDawn
	if !f.Has(FlagHideNightModel) || f.Has(FlagNightModelAtDusk) {
		t.Errorf("Flags.Has mismatch for %b", f)
	}

	a := &Aircraft{Airspeed: 80, OverspeedExpected: 75}
	if !a.Overspeed() {
		t.Error("expected overspeed")
	}
	a.OverspeedExpected = 0
	if a.Overspeed() {
		t.Error("zero threshold must never report overspeed")
	}
}

func TestColor(t *testing.T) {
	c := Color{0.5, 1.2, -0.1}.Clamp()
	if c != (Color{0.5, 1, 0}) {
		t.Errorf("Clamp() = %v", c)
	}
	if g := (Color{0.2, 0.7, 0.4}).Gray(); g != 0.7 {
		t.Errorf("Gray() = %v, want 0.7", g)
	}
}
