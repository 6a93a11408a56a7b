package geom

import "testing"

func TestCircleCircleCollision(t *testing.T) {
	res := CheckCollision(CircleCollider(3), Vec2{}, CircleCollider(3), Vec2{X: 5})
	if !res.Collided {
		t.Fatal("expected collision for overlapping circles")
	}
	if !approxEqual(res.Penetration, 1.0) {
		t.Fatalf("penetration mismatch: got %.6f want 1.0", res.Penetration)
	}
	// Normal points from shape 2 toward shape 1.
	if !approxEqual(res.Normal.X, -1) || !approxEqual(res.Normal.Y, 0) {
		t.Fatalf("normal mismatch: got (%.4f, %.4f) want (-1, 0)", res.Normal.X, res.Normal.Y)
	}
}

func TestCircleCircleNoCollision(t *testing.T) {
	res := CheckCollision(CircleCollider(3), Vec2{}, CircleCollider(3), Vec2{X: 10})
	if res.Collided {
		t.Fatal("expected no collision for separated circles")
	}
	if res.Penetration != 0 {
		t.Fatalf("penetration should be zero, got %.6f", res.Penetration)
	}
}

func TestCircleCircleTouchingIsNotCollision(t *testing.T) {
	res := CheckCollision(CircleCollider(3), Vec2{}, CircleCollider(3), Vec2{X: 6})
	if res.Collided {
		t.Fatal("circles exactly touching must not collide")
	}
}

func TestCircleCircleCoincidentCenters(t *testing.T) {
	res := CheckCollision(CircleCollider(2), Vec2{X: 7, Y: 7}, CircleCollider(2), Vec2{X: 7, Y: 7})
	if !res.Collided {
		t.Fatal("coincident circles must collide")
	}
	if !approxEqual(res.Normal.X, 1) || !approxEqual(res.Normal.Y, 0) {
		t.Fatalf("coincident centers must use the fixed (1,0) normal, got (%.4f, %.4f)",
			res.Normal.X, res.Normal.Y)
	}
	if !approxEqual(res.Penetration, 4) {
		t.Fatalf("penetration mismatch: got %.6f want 4", res.Penetration)
	}
}

func TestRectRectCollision(t *testing.T) {
	res := CheckCollision(RectCollider(6, 6), Vec2{}, RectCollider(6, 6), Vec2{X: 5})
	if !res.Collided {
		t.Fatal("expected collision for overlapping boxes")
	}
	if !approxEqual(res.Penetration, 1.0) {
		t.Fatalf("penetration mismatch: got %.6f want 1.0", res.Penetration)
	}
	if !approxEqual(res.Normal.X, -1) || !approxEqual(res.Normal.Y, 0) {
		t.Fatalf("normal mismatch: got (%.4f, %.4f) want (-1, 0)", res.Normal.X, res.Normal.Y)
	}
}

func TestRectRectSmallerOverlapAxisWins(t *testing.T) {
	// Overlap is 1 on X and 4 on Y: resolution must happen along X.
	res := CheckCollision(RectCollider(6, 10), Vec2{}, RectCollider(6, 10), Vec2{X: 5, Y: 6})
	if !res.Collided {
		t.Fatal("expected collision")
	}
	if res.Normal.Y != 0 {
		t.Fatalf("expected X-axis resolution, got normal (%.4f, %.4f)", res.Normal.X, res.Normal.Y)
	}
	if !approxEqual(res.Penetration, 1.0) {
		t.Fatalf("penetration mismatch: got %.6f want 1.0", res.Penetration)
	}
}

func TestCircleRectCollision(t *testing.T) {
	res := CheckCollision(CircleCollider(3), Vec2{}, RectCollider(4, 4), Vec2{X: 3})
	if !res.Collided {
		t.Fatal("expected circle-rect collision")
	}
	if !approxEqual(res.Normal.X, -1) || !approxEqual(res.Normal.Y, 0) {
		t.Fatalf("normal mismatch: got (%.4f, %.4f) want (-1, 0)", res.Normal.X, res.Normal.Y)
	}
}

func TestCircleInsideRectUsesNearestEdgeNormal(t *testing.T) {
	// Circle center just inside the right edge of a wide box.
	res := CheckCollision(CircleCollider(2), Vec2{X: 4.5}, RectCollider(10, 10), Vec2{})
	if !res.Collided {
		t.Fatal("expected collision with center inside box")
	}
	if !approxEqual(res.Normal.X, 1) || !approxEqual(res.Normal.Y, 0) {
		t.Fatalf("expected right-edge normal, got (%.4f, %.4f)", res.Normal.X, res.Normal.Y)
	}
}

func TestSwapSymmetryNegatesNormal(t *testing.T) {
	shapes := []Collider{
		CircleCollider(3),
		RectCollider(6, 6),
		RectCollider(4, 8),
	}
	positions := []Vec2{
		{X: 1.5, Y: -0.5},
		{X: -2, Y: 2.5},
	}

	for _, a := range shapes {
		for _, b := range shapes {
			fwd := CheckCollision(a, positions[0], b, positions[1])
			rev := CheckCollision(b, positions[1], a, positions[0])

			if fwd.Collided != rev.Collided {
				t.Fatalf("swap changed collided for %v/%v", a.Kind, b.Kind)
			}
			if !fwd.Collided {
				continue
			}
			if !approxEqual(fwd.Penetration, rev.Penetration) {
				t.Fatalf("swap changed penetration for %v/%v: %.6f vs %.6f",
					a.Kind, b.Kind, fwd.Penetration, rev.Penetration)
			}
			if !approxEqual(fwd.Normal.X, -rev.Normal.X) || !approxEqual(fwd.Normal.Y, -rev.Normal.Y) {
				t.Fatalf("swap must negate normal for %v/%v: (%.4f, %.4f) vs (%.4f, %.4f)",
					a.Kind, b.Kind, fwd.Normal.X, fwd.Normal.Y, rev.Normal.X, rev.Normal.Y)
			}
		}
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	r := v.Rotate(1.2345)
	if !approxEqual(v.Len(), r.Len()) {
		t.Fatalf("rotation changed length: %.6f vs %.6f", v.Len(), r.Len())
	}
}

func approxEqual(a, b float32) bool {
	const eps = 1e-4
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
