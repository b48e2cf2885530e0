// Package geom provides the small set of 3-D vector primitives used by the
// structure-generation pipeline: unit vectors, bond and dihedral angles,
// centers of geometry, uniformly distributed unit vectors on the sphere,
// and the pipeline's radius-of-gyration measure.
//
// All functions are pure and operate on fixed-size [Vec3] values. Angles
// are returned in degrees in the range [0, 180].
package geom
