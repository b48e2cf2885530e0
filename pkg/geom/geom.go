package geom

import (
	"math"
	"math/rand/v2"
)

// Unit returns v scaled to unit length.
//
// The zero vector is not guarded against: Unit(Vec3{}) divides by zero and
// yields non-finite components. Callers must not pass zero vectors.
func Unit(v Vec3) Vec3 {
	return v.Scale(1 / v.Norm())
}

// VectorAngle returns the angle between v1 and v2 in degrees, in [0, 180].
//
// The normalized dot product is clamped to [-1, 1] before the inverse
// cosine, so nearly parallel vectors whose dot product overshoots due to
// floating-point round-off return exactly 0 or 180 instead of NaN.
func VectorAngle(v1, v2 Vec3) float64 {
	d := Unit(v1).Dot(Unit(v2))
	d = math.Max(-1, math.Min(1, d))
	return degrees(math.Acos(d))
}

// Angle returns the angle at vertex b formed by the points a, b, c,
// in degrees.
func Angle(a, b, c Vec3) float64 {
	return VectorAngle(b.Sub(a), b.Sub(c))
}

// Dihedral returns the dihedral angle about the b-c bond formed by the
// points a, b, c, d, in degrees. It is the angle between the normals of
// the planes (a, b, c) and (b, c, d).
func Dihedral(a, b, c, d Vec3) float64 {
	r1 := a.Sub(b)
	r2 := b.Sub(c)
	r3 := c.Sub(d)
	n1 := Unit(r1.Cross(r2))
	n2 := Unit(r2.Cross(r3))
	return VectorAngle(n1, n2)
}

// CenterOfGeometry returns the arithmetic mean of points.
// It returns the zero vector for an empty slice.
func CenterOfGeometry(points []Vec3) Vec3 {
	if len(points) == 0 {
		return Vec3{}
	}
	var sum Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// NormSphere returns count unit vectors distributed uniformly over the
// surface of the unit sphere, using the package-global random source.
func NormSphere(count int) []Vec3 {
	return NormSphereRand(nil, count)
}

// NormSphereRand is like [NormSphere] but draws from r, which makes the
// output reproducible. A nil r falls back to the package-global source.
//
// Each vector is drawn from a standard 3-D normal distribution and
// normalized. The Gaussian construction is what makes the distribution
// uniform on the sphere; sampling angles uniformly would cluster vectors
// at the poles.
func NormSphereRand(r *rand.Rand, count int) []Vec3 {
	normFloat := rand.NormFloat64
	if r != nil {
		normFloat = r.NormFloat64
	}
	out := make([]Vec3, count)
	for i := range out {
		out[i] = Unit(Vec3{normFloat(), normFloat(), normFloat()})
	}
	return out
}

// RadiusOfGyration returns the pipeline's radius-of-gyration measure of
// points:
//
//	sqrt( (1/N²) · Σ over all ordered pairs (i, j) of ||p_i - p_j||² )
//
// The sum runs over all N² ordered pairs including i == j, and the result
// deliberately omits the factor-of-two correction of the textbook
// sum-over-pairs identity. Downstream consumers depend on this exact
// value, so the literal formula is kept.
func RadiusOfGyration(points []Vec3) float64 {
	n := float64(len(points))
	var sum float64
	for _, p := range points {
		for _, q := range points {
			d := p.Sub(q)
			sum += d.Dot(d)
		}
	}
	return math.Sqrt(sum / (n * n))
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
