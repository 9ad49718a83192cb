package delaunay

import "github.com/pkg/errors"

// Threading errors through every step of the incremental mesh update would
// obscure the algorithm. Instead, precondition and invariant violations panic
// with a GeometryError, and the public facade recovers the panic back into an
// ordinary error. Either way the whole operation is aborted; no partial
// triangulation ever escapes.

type GeometryError error

// fatalf panics with a GeometryError for caller mistakes, e.g. inserting a
// point outside the seeding bounding box.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf(format, args...)))
}

// internalf panics with a GeometryError for broken internal invariants:
// states that are impossible unless an upstream geometric assumption (no
// duplicate points, no exact cocircularity beyond the tie-break) was
// violated. The label makes these loud and distinguishable from caller
// errors.
func internalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf("internal invariant violation: "+format, args...)))
}

// HandleGeometryPanicRecover converts a recovered GeometryError panic back
// into an error. Any other panic value is re-raised. Use it in a defer at the
// public API boundary:
//
//	defer func() {
//		if recovered := HandleGeometryPanicRecover(recover()); recovered != nil {
//			err = recovered
//		}
//	}()
func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
