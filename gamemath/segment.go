package gamemath

import (
	math2 "github.com/yohamta/donburi/features/math"
)

// IntersectionKind classifies the result of a segment-segment intersection.
type IntersectionKind int

const (
	// IntersectionNone means the segments do not touch.
	IntersectionNone IntersectionKind = iota
	// IntersectionPoint means the segments cross at a single point.
	IntersectionPoint
	// IntersectionInterval means the segments are collinear and overlap
	// along a sub-segment.
	IntersectionInterval
)

// Intersection is the tagged result of SegmentIntersection. Point is set for
// IntersectionPoint. Start and End are set for IntersectionInterval, ordered
// along the first segment's direction.
type Intersection struct {
	Kind  IntersectionKind
	Point math2.Vec2
	Start math2.Vec2
	End   math2.Vec2
}

const segmentEpsilon = 1e-12

// SegmentIntersection computes the intersection of segment a1-a2 with
// segment b1-b2.
func SegmentIntersection(a1, a2, b1, b2 math2.Vec2) Intersection {
	r := Sub(a2, a1)
	s := Sub(b2, b1)
	qp := Sub(b1, a1)

	denom := Cross(r, s)
	if denom > -segmentEpsilon && denom < segmentEpsilon {
		if c := Cross(qp, r); c > segmentEpsilon || c < -segmentEpsilon {
			// Parallel, not collinear.
			return Intersection{Kind: IntersectionNone}
		}
		return collinearOverlap(a1, r, b1, b2)
	}

	t := Cross(qp, s) / denom
	u := Cross(qp, r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Intersection{Kind: IntersectionNone}
	}
	return Intersection{
		Kind:  IntersectionPoint,
		Point: Add(a1, Scale(r, t)),
	}
}

// collinearOverlap projects b1 and b2 onto the first segment's parameter
// space and intersects with [0, 1].
func collinearOverlap(a1, r math2.Vec2, b1, b2 math2.Vec2) Intersection {
	rr := Dot(r, r)
	if rr < segmentEpsilon {
		// First segment is a single point.
		return Intersection{Kind: IntersectionNone}
	}

	t0 := Dot(Sub(b1, a1), r) / rr
	t1 := Dot(Sub(b2, a1), r) / rr
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	lo := t0
	if lo < 0 {
		lo = 0
	}
	hi := t1
	if hi > 1 {
		hi = 1
	}
	if lo > hi {
		return Intersection{Kind: IntersectionNone}
	}
	if hi-lo < segmentEpsilon {
		return Intersection{
			Kind:  IntersectionPoint,
			Point: Add(a1, Scale(r, lo)),
		}
	}
	return Intersection{
		Kind:  IntersectionInterval,
		Start: Add(a1, Scale(r, lo)),
		End:   Add(a1, Scale(r, hi)),
	}
}
