// Package errors provides standardized error handling patterns for funowl.
//
// # Overview
//
// The errors package implements a two-class error classification system for
// the dual-serialization core: Construction (a constructor argument matched
// no grammar slot or named field) and Render (an already-built tree failed a
// renderer-specific validation while being serialized).
//
// This classification mirrors the two phases of the library: trees are built
// first, from variadic arguments or builder methods, and rendered later. An
// object may legally exist in a state that one renderer rejects and another
// accepts, so the class of a failure tells the caller which phase to fix.
//
// The classification system integrates with Go's standard error handling
// patterns, supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if leftover != nil {
//	    return fmt.Errorf("%w: %v", errors.ErrUnrecognizedArgument, leftover)
//	}
//
// Wrap errors with component context:
//
//	if err := ontology.ToFunctional(w); err != nil {
//	    return errors.WrapRender(err, "document", "ToFunctional", "render ontology")
//	}
//
// Check classification at call sites:
//
//	if errors.IsConstruction(err) {
//	    // reject the input, nothing was built
//	}
package errors
