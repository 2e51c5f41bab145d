// Package affordance implements the Affordance Tree: a PKDT-shaped spatial
// index augmented, at every leaf, with a precomputed list of every point
// that could possibly lie within any legal query ball touching that leaf's
// cell. This turns a correct radius-collision query into a single leaf
// lookup plus a short linear scan over that leaf's affordance list, instead
// of a general radius search.
//
// A legal query is one whose squared radius lies within the [min, max]
// range declared at construction time. The tree is only sound for radii in
// that range; Collides panics if asked about a radius outside it.
//
// Trees are immutable after Build; Collides and CollidesBatch are pure
// functions of the tree and their arguments and are safe for concurrent use.
package affordance
