// Package mesh defines the basic value types of the mesh protocol stack:
// addresses, TTL, key indices, and identifier types shared by all layers.
//
// All types are plain immutable values. Validity is checked explicitly via
// Valid/Kind methods; the zero value of each type is a legal Go value but
// not necessarily a legal protocol value (e.g. the zero Address is the
// unassigned address).
package mesh
