// Package matrix provides the dense linear-algebra primitives behind the
// least-squares engine: a row-major Dense matrix, shape validators, a
// matrix-vector product, a direct solver and a condition-number probe.
//
// The package provides:
//
//   - Dense with bounds-checked At/Set that return errors instead of panicking.
//   - Solve: Gaussian elimination with partial pivoting and a hard singular
//     cutoff (SingularTolerance). Inputs are never mutated.
//   - MatVec for residual checks (A·x − b).
//   - Cond: 2-norm condition number, delegated to gonum/mat.
//
// Errors are package sentinels (errors.go) wrapped with an operation tag;
// match them with errors.Is.
package matrix
