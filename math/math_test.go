package math

import (
	stdmath "math"
	"testing"
)

func near32(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) < 1e-4
}

func nearVec3(a, b Vec3) bool {
	return near32(a.X, b.X) && near32(a.Y, b.Y) && near32(a.Z, b.Z)
}

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got := v1.Add(v2); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := v2.Sub(v1); got != NewVec3(3, 3, 3) {
		t.Errorf("Sub: expected (3,3,3), got %v", got)
	}
	if got := v1.Dot(v2); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
	if got := Vec3Right.Cross(Vec3Up); got != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, got)
	}
	if got := NewVec3(3, 0, 4).Length(); got != 5 {
		t.Errorf("Length: expected 5, got %v", got)
	}
}

func TestVec3Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	if v.Get(AxisY) != 2 {
		t.Errorf("Get: expected 2, got %v", v.Get(AxisY))
	}
	w := v.With(AxisZ, 9)
	if w != NewVec3(1, 2, 9) {
		t.Errorf("With: expected (1,2,9), got %v", w)
	}
	if v.Z != 3 {
		t.Errorf("With must not mutate the receiver, got z=%v", v.Z)
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	result := NewVec4(0, 0, 0, 1).MulMat(m)
	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
	if dir := m.MulDir(Vec3Up); dir != Vec3Up {
		t.Errorf("Translation must not move directions, got %v", dir)
	}
}

func TestMat4TRSOrder(t *testing.T) {
	// Scale by 2, rotate 90 degrees about Y, then translate along X.
	m := Mat4TRS(NewVec3(10, 0, 0), NewVec3(0, float32(stdmath.Pi/2), 0), NewVec3(2, 2, 2))
	got := m.MulVec3(Vec3Right)
	want := NewVec3(10, 0, -2)
	if !nearVec3(got, want) {
		t.Errorf("TRS: expected %v, got %v", want, got)
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Mat4TRS(NewVec3(1, -2, 3), NewVec3(0.3, 0.5, -0.7), NewVec3(1, 2, 0.5))
	id := m.Mul(m.Inverse())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if !near32(id[i][j], want) {
				t.Errorf("Inverse: expected [%d][%d] = %v, got %v", i, j, want, id[i][j])
			}
		}
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	m := Mat4LookAt(eye, Vec3Zero, Vec3Up)

	if got := m.MulVec3(eye); !nearVec3(got, Vec3Zero) {
		t.Errorf("LookAt: expected eye to transform to origin, got %v", got)
	}
	if got := m.MulVec3(Vec3Zero); !nearVec3(got, NewVec3(0, 0, -5)) {
		t.Errorf("LookAt: expected target on -Z, got %v", got)
	}
}

func TestMat4Perspective(t *testing.T) {
	m := Mat4Perspective(float32(stdmath.Pi/2), 2, 0.1, 100)
	if !near32(m[1][1], 1) {
		t.Errorf("Perspective: expected Y scale 1 for a 90 degree fov, got %v", m[1][1])
	}
	if !near32(m[0][0], 0.5) {
		t.Errorf("Perspective: expected X scale 0.5 for aspect 2, got %v", m[0][0])
	}
}

func TestDegreesRoundTrip(t *testing.T) {
	for d := -180.0; d <= 180.0; d += 0.25 {
		got := RadiansToDegrees(DegreesToRadians(d))
		if stdmath.Abs(got-d) > 1e-9 {
			t.Fatalf("round trip of %v degrees gave %v", d, got)
		}
	}
	if got := DegreesToRadians(180); stdmath.Abs(got-stdmath.Pi) > 1e-12 {
		t.Errorf("DegreesToRadians(180): expected pi, got %v", got)
	}
}

func TestChannelRoundTrip(t *testing.T) {
	for c := 0.0; c <= 255.0; c += 0.5 {
		got := ChannelUp(ChannelDown(c))
		if stdmath.Abs(got-c) > 1e-9 {
			t.Fatalf("round trip of channel %v gave %v", c, got)
		}
	}
	if got := ChannelDown(255); got != 1 {
		t.Errorf("ChannelDown(255): expected 1, got %v", got)
	}
}

func TestClampAndWrap(t *testing.T) {
	if Clamp(-7, -5, 5) != -5 || Clamp(7, -5, 5) != 5 || Clamp(1.5, -5, 5) != 1.5 {
		t.Error("Clamp: value outside expected range")
	}
	if got := WrapDegrees(360.5); stdmath.Abs(got-0.5) > 1e-9 {
		t.Errorf("WrapDegrees(360.5): expected 0.5, got %v", got)
	}
	if got := WrapDegrees(-90); got != 270 {
		t.Errorf("WrapDegrees(-90): expected 270, got %v", got)
	}
}

func TestPixelToNDC(t *testing.T) {
	if got := PixelToNDC(0, 0, 800, 600); got != NewVec2(-1, 1) {
		t.Errorf("top-left: expected (-1,1), got %v", got)
	}
	if got := PixelToNDC(400, 300, 800, 600); got != NewVec2(0, 0) {
		t.Errorf("centre: expected (0,0), got %v", got)
	}
	if got := PixelToNDC(10, 10, 0, 600); got != (Vec2{}) {
		t.Errorf("zero width: expected origin, got %v", got)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4RotationX(0.3)
	m2 := Mat4RotationY(0.4)

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
