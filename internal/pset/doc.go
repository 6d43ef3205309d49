// Package pset implements parameter sets: named, hierarchical records of
// typed parameters.
//
// A Record holds parameters in declaration order. Each Parameter has a Kind
// (double, int32, vdouble, PSet, ...) fixed when the record is declared, a
// value represented as a cty.Value, and a tracked flag. Nested records are
// parameters of kind PSet.
//
// The schema of a record (parameter names, nesting and kinds) is fixed by its
// declaration. Derived records are produced by cloning a base record and
// overriding values in place:
//
//	neg := base.Clone()
//	err := neg.Apply(
//		pset.Declare("extSVDeltaRToJet", pset.Double(-0.4)),
//		pset.Assign("vertexCuts.distVal2dMin", -2.5),
//	)
//
// Overrides never add parameters or change kinds. An unknown path fails with
// a *SchemaError and a value of the wrong type with a *TypeMismatchError; in
// both cases the record is left untouched. Once a record is handed to its
// consumers it is frozen and rejects further writes with ErrFrozen.
package pset
