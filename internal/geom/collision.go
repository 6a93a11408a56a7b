package geom

// Collision kernels for the two shapes the simulation uses: circles and
// axis-aligned boxes centered on their owner's position. All functions are
// pure; the normal always points from the second shape toward the first.

const contactEpsilon = 1e-4

type ColliderKind int

const (
	ColliderCircle ColliderKind = iota
	ColliderRect
)

// Collider is a closed tagged union over the supported shapes. It is a
// derived view of an entity's stats, never stored state.
type Collider struct {
	Kind   ColliderKind
	Radius float32 // circle only
	W, H   float32 // rect only
}

func CircleCollider(radius float32) Collider {
	return Collider{Kind: ColliderCircle, Radius: radius}
}

func RectCollider(w, h float32) Collider {
	return Collider{Kind: ColliderRect, W: w, H: h}
}

type CollisionData struct {
	Collided    bool
	Penetration float32
	Normal      Vec2
}

func noCollision() CollisionData {
	return CollisionData{}
}

func contact(penetration float32, normal Vec2) CollisionData {
	return CollisionData{Collided: true, Penetration: penetration, Normal: normal}
}

// CheckCollision reports whether the two shapes intersect, along with the
// penetration depth and the contact normal pointing from b toward a.
// Swapping the arguments yields the same penetration and a negated normal.
func CheckCollision(a Collider, posA Vec2, b Collider, posB Vec2) CollisionData {
	switch {
	case a.Kind == ColliderCircle && b.Kind == ColliderCircle:
		return circleCircle(posA, a.Radius, posB, b.Radius)
	case a.Kind == ColliderCircle && b.Kind == ColliderRect:
		return circleRect(posA, a.Radius, posB, b.W, b.H)
	case a.Kind == ColliderRect && b.Kind == ColliderCircle:
		// Reverse and flip the normal; only the normal is order-dependent.
		res := circleRect(posB, b.Radius, posA, a.W, a.H)
		res.Normal = res.Normal.Neg()
		return res
	default:
		return rectRect(posA, a.W, a.H, posB, b.W, b.H)
	}
}

func circleCircle(pos1 Vec2, r1 float32, pos2 Vec2, r2 float32) CollisionData {
	delta := pos1.Sub(pos2)
	distSq := delta.LenSq()
	radiiSum := r1 + r2

	if distSq >= radiiSum*radiiSum {
		return noCollision()
	}

	dist := delta.Len()
	normal := Vec2{X: 1, Y: 0} // coincident centers, arbitrary fixed direction
	if dist > contactEpsilon {
		normal = delta.Mul(1 / dist)
	}
	return contact(radiiSum-dist, normal)
}

func circleRect(circlePos Vec2, radius float32, rectPos Vec2, w, h float32) CollisionData {
	halfW := w / 2
	halfH := h / 2

	closest := Vec2{
		X: clamp(circlePos.X, rectPos.X-halfW, rectPos.X+halfW),
		Y: clamp(circlePos.Y, rectPos.Y-halfH, rectPos.Y+halfH),
	}

	delta := circlePos.Sub(closest)
	distSq := delta.LenSq()
	if distSq >= radius*radius {
		return noCollision()
	}

	dist := delta.Len()
	if dist > contactEpsilon {
		return contact(radius-dist, delta.Mul(1/dist))
	}

	// Circle center inside the box: push out of the nearest edge,
	// ties broken left, right, top, bottom.
	dLeft := absf(circlePos.X - (rectPos.X - halfW))
	dRight := absf((rectPos.X + halfW) - circlePos.X)
	dTop := absf(circlePos.Y - (rectPos.Y - halfH))
	dBottom := absf((rectPos.Y + halfH) - circlePos.Y)

	minDist := minf(minf(dLeft, dRight), minf(dTop, dBottom))
	var normal Vec2
	switch minDist {
	case dLeft:
		normal = Vec2{X: -1}
	case dRight:
		normal = Vec2{X: 1}
	case dTop:
		normal = Vec2{Y: -1}
	default:
		normal = Vec2{Y: 1}
	}
	return contact(radius-dist, normal)
}

func rectRect(pos1 Vec2, w1, h1 float32, pos2 Vec2, w2, h2 float32) CollisionData {
	delta := pos1.Sub(pos2)
	overlapX := (w1+w2)/2 - absf(delta.X)
	overlapY := (h1+h2)/2 - absf(delta.Y)

	if overlapX <= 0 || overlapY <= 0 {
		return noCollision()
	}

	// Resolve along the axis of smaller overlap, ties favor X.
	if overlapX <= overlapY {
		normal := Vec2{X: 1}
		if delta.X < 0 {
			normal.X = -1
		}
		return contact(overlapX, normal)
	}
	normal := Vec2{Y: 1}
	if delta.Y < 0 {
		normal.Y = -1
	}
	return contact(overlapY, normal)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
