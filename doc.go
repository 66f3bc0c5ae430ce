// Package bibliotekanumeryczna is a small numerical library for continuous
// least-squares function approximation.
//
// 🚀 What does it do?
//
//	Given an interval [a, b], a set of basis functions φᵢ and samples of an
//	unknown function, it finds the coefficients cᵢ of the combination
//	Σ cᵢ·φᵢ(x) that is closest to the samples in the continuous L² sense.
//
// ✨ Packages:
//
//	basis/      : basis functions (x^d, sin(kπx), cos(kπx), e^(αx)) and standard families
//	quadrature/ : composite trapezoid rule with a fixed panel count
//	samples/    : sample points and their piecewise-linear reconstruction
//	matrix/     : dense matrices, Gaussian elimination with partial pivoting, condition number
//	lsq/        : the approximation Session (normal equations, fit, evaluation, RMS)
//	telemetry/  : Prometheus metrics for fits
//	job/        : YAML/TOML job files describing a fit
//	render/     : plots of a fit (gonum/plot)
//	cmd/lsqfit  : command-line front end
//
// ⚙️ Usage:
//
//	s, _ := lsq.New(0, 1)
//	fs, _ := basis.Trigonometric(3)
//	s.AddBasisFunctions(fs...)
//	_ = s.AddFunction(func(x float64) float64 { return math.Sin(2 * math.Pi * x) }, 100)
//	if s.Approximate() {
//		y, _ := s.Evaluate(0.3)
//		fmt.Println(y, s.ComputeError())
//	}
//
// Everything is synchronous and single-threaded; a Session must not be
// mutated from several goroutines at once.
package bibliotekanumeryczna
