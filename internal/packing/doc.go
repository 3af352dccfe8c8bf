// Package packing implements the single-SKU storage optimizer: pallet geometry,
// orientation enumeration, the placement oracle, the feasibility search over
// quantity, the orientation optimizer and the layer breakdown of a solution.
//
// Everything in this package is pure computation over immutable inputs and is
// safe for concurrent use.
package packing
