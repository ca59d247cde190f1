package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestSanitizeRadians(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{2 * math.Pi, 0},
		{5 * math.Pi, math.Pi},
		{-4 * math.Pi, 0},
	}

	for _, tt := range tests {
		got := SanitizeRadians(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SanitizeRadians(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("SanitizeRadians(%v) = %v, out of range", tt.in, got)
		}
	}
}

func TestDirFromPos(t *testing.T) {
	tests := []struct {
		name      string
		to        Vec3
		heading   float32
		pitchDown bool
	}{
		{"north", Vec3{0, 100, 0}, 0, false},
		{"east", Vec3{100, 0, 0}, math.Pi / 2, false},
		{"south", Vec3{0, -100, 0}, math.Pi, false},
		{"west below", Vec3{-100, 0, -50}, 3 * math.Pi / 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DirFromPos(Vec3{}, tt.to)
			if !near(d.Heading, tt.heading) {
				t.Errorf("heading = %v, want %v", d.Heading, tt.heading)
			}
			if tt.pitchDown && (d.Pitch <= 0 || d.Pitch >= math.Pi) {
				t.Errorf("pitch = %v, want positive nose-down", d.Pitch)
			}
			if d.Bank != 0 {
				t.Errorf("bank = %v, want 0", d.Bank)
			}
		})
	}
}

func TestDistance2D(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{3, 4, 1000}
	if got := a.Distance2D(b); got != 5 {
		t.Errorf("Distance2D() = %v, want 5", got)
	}
}

func TestRotationMatrices(t *testing.T) {
	tests := []struct {
		name string
		got  Mat3
		want Mat3
	}{
		// Row vectors: a quarter heading turn maps north onto east.
		{"heading", HeadingMat3(math.Pi / 2), Mat3{0, -1, 0, 1, 0, 0, 0, 0, 1}},
		{"pitch", PitchMat3(math.Pi / 2), Mat3{1, 0, 0, 0, 0, -1, 0, 1, 0}},
		{"bank", BankMat3(math.Pi / 2), Mat3{0, 0, 1, 0, 1, 0, -1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.want {
				if !near(tt.got[i], tt.want[i]) {
					t.Fatalf("matrix = %v, want %v", tt.got, tt.want)
				}
			}
		})
	}
}

func TestToRender(t *testing.T) {
	w := Vec3{1, 2, 3}
	r := ToRender(w)
	if r != (mgl32.Vec3{1, 3, -2}) {
		t.Errorf("ToRender(%v) = %v", w, r)
	}
}

func TestModelMatrixTranslation(t *testing.T) {
	m := ModelMatrix(Vec3{10, 20, 30}, Direction{Heading: 1, Pitch: 0.2, Bank: 0.3})
	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	want := mgl32.Vec4{10, 30, -20, 1}
	for i := range want {
		if !near(origin[i], want[i]) {
			t.Fatalf("model origin = %v, want %v", origin, want)
		}
	}
}

func TestHeadingRotationClockwise(t *testing.T) {
	// Heading pi/2 turns the object's nose (render -Z, north) to east (+X).
	nose := HeadingRotation(math.Pi / 2).Mul4x1(mgl32.Vec4{0, 0, -1, 0})
	if !near(nose[0], 1) || !near(nose[2], 0) {
		t.Errorf("rotated nose = %v, want +X", nose)
	}
}
