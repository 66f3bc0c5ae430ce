package lsq

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/basis"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/matrix"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/samples"
)

// Session is one least-squares approximation problem: an interval, an
// ordered basis, a sample set and, after a successful fit, coefficients.
//
// Invariants:
//   - a < b, both finite.
//   - len(coefficients) is 0 or len(basis).
type Session struct {
	id           string
	a, b         float64
	basis        []basis.Function
	points       samples.Set
	coefficients []float64

	log      zerolog.Logger
	observer Observer
}

// New creates an empty session on [a, b].
// Errors: ErrInvalidArgument if a ≥ b or either bound is NaN/±Inf.
func New(a, b float64, opts ...Option) (*Session, error) {
	if err := validateInterval(a, b); err != nil {
		return nil, lsqErrorf("New", err)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	return &Session{
		id:       o.id,
		a:        a,
		b:        b,
		log:      o.logger.With().Str("session", o.id).Logger(),
		observer: o.observer,
	}, nil
}

// NewDefault creates an empty session on [DefaultIntervalStart, DefaultIntervalEnd].
func NewDefault(opts ...Option) *Session {
	s, _ := New(DefaultIntervalStart, DefaultIntervalEnd, opts...)
	return s
}

func validateInterval(a, b float64) error {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return fmt.Errorf("interval [%g, %g] not finite: %w", a, b, ErrInvalidArgument)
	}
	// !(a < b) also rejects NaN.
	if !(a < b) {
		return fmt.Errorf("interval [%g, %g] requires a < b: %w", a, b, ErrInvalidArgument)
	}

	return nil
}

// ID returns the session identifier used in log events.
func (s *Session) ID() string { return s.id }

// Interval returns the current bounds.
func (s *Session) Interval() (a, b float64) { return s.a, s.b }

// SetInterval replaces the interval. On error the interval is unchanged.
// Basis, samples and coefficients are left as they are; coefficients
// fitted on the old interval stay in use until the next Fit.
func (s *Session) SetInterval(a, b float64) error {
	if err := validateInterval(a, b); err != nil {
		return lsqErrorf("SetInterval", err)
	}
	s.a, s.b = a, b

	return nil
}

// AddBasisFunction appends f to the basis. Any stored coefficients are
// dropped, since they no longer match the basis size.
func (s *Session) AddBasisFunction(f basis.Function) {
	s.basis = append(s.basis, f)
	s.coefficients = nil
}

// AddBasisFunctions appends fs in order.
func (s *Session) AddBasisFunctions(fs ...basis.Function) {
	if len(fs) == 0 {
		return
	}
	s.basis = append(s.basis, fs...)
	s.coefficients = nil
}

// AddDataPoint appends the sample (x, y). Duplicates are kept.
func (s *Session) AddDataPoint(x, y float64) {
	s.points = append(s.points, samples.Point{X: x, Y: y})
}

// AddDataPoints appends pts in order.
func (s *Session) AddDataPoints(pts []samples.Point) {
	s.points = append(s.points, pts...)
}

// AddFunction samples f at numPoints evenly spaced x in [a, b], ends
// included, and appends the samples. numPoints == 1 samples only at a.
// Errors: ErrInvalidArgument if numPoints ≤ 0 or f is nil.
func (s *Session) AddFunction(f func(float64) float64, numPoints int) error {
	pts, err := samples.Linspace(f, s.a, s.b, numPoints)
	if err != nil {
		return fmt.Errorf("AddFunction: %w: %w", ErrInvalidArgument, err)
	}
	s.points = append(s.points, pts...)

	return nil
}

// Clear drops basis functions, samples and coefficients. The interval,
// id, logger and observer are kept.
func (s *Session) Clear() {
	s.basis = nil
	s.points = nil
	s.coefficients = nil
}

// BasisFunctions returns a copy of the basis in coefficient order.
func (s *Session) BasisFunctions() []basis.Function { return slices.Clone(s.basis) }

// DataPoints returns a copy of the samples in their current order (sorted
// by X after a Fit).
func (s *Session) DataPoints() samples.Set { return s.points.Clone() }

// Coefficients returns a copy of the fitted coefficients, or nil when the
// session is not fitted.
func (s *Session) Coefficients() []float64 { return slices.Clone(s.coefficients) }

// Fitted reports whether Evaluate can be used.
func (s *Session) Fitted() bool {
	return len(s.coefficients) != 0 && len(s.coefficients) == len(s.basis)
}

// Approximate runs Fit and reports whether it succeeded. On failure the
// coefficients are cleared; the cause is logged and passed to the observer.
func (s *Session) Approximate() bool {
	_, err := s.Fit()
	return err == nil
}

// Fit solves the normal equations and stores the coefficients.
//
// Implementation:
//   - Stage 1: require at least one basis function and one data point.
//   - Stage 2: sort samples by X (kept sorted afterwards).
//   - Stage 3: build the Gram matrix and projection vector.
//   - Stage 4: solve with partial pivoting; store coefficients and RMS.
//
// Every call recomputes from scratch. On any error the coefficients are
// cleared.
//
// Errors:
//   - ErrNoBasis, ErrNoData (both ErrPreconditionUnmet).
//   - matrix.ErrSingular when a pivot falls below matrix.SingularTolerance.
//
// Complexity: O(n²·quadrature.Subintervals + n³) for n basis functions.
func (s *Session) Fit() (Report, error) {
	start := time.Now()
	r, err := s.fit()
	r.Elapsed = time.Since(start)

	if err != nil {
		s.coefficients = nil
		r.Coefficients = nil
		s.log.Warn().Err(err).
			Int("basis", r.Basis).
			Int("points", r.Points).
			Msg("fit failed")
	} else {
		s.log.Debug().
			Int("basis", r.Basis).
			Int("points", r.Points).
			Dur("elapsed", r.Elapsed).
			Float64("rms", r.RMS).
			Float64("cond", r.Condition).
			Msg("fit done")
	}
	if s.observer != nil {
		s.observer.ObserveFit(r, err)
	}

	return r, err
}

func (s *Session) fit() (Report, error) {
	r := Report{Basis: len(s.basis), Points: len(s.points), Condition: math.Inf(1)}

	// Stage 1: preconditions.
	if len(s.basis) == 0 {
		return r, lsqErrorf("Fit", ErrNoBasis)
	}
	if len(s.points) == 0 {
		return r, lsqErrorf("Fit", ErrNoData)
	}

	// Stage 2: the reconstruction needs ascending X.
	s.points.Sort()

	// Stage 3: normal equations.
	g, err := Gram(s.basis, s.a, s.b)
	if err != nil {
		return r, lsqErrorf("Fit", err)
	}
	rhs := Projection(s.basis, s.points, s.a, s.b)
	r.Condition = condition(g)

	// Stage 4: solve.
	c, err := matrix.Solve(g, rhs)
	if err != nil {
		return r, lsqErrorf("Fit", err)
	}
	s.coefficients = c
	r.Coefficients = slices.Clone(c)
	r.RMS = s.ComputeError()

	return r, nil
}

// Evaluate returns Σ cᵢ·φᵢ(x).
// Errors: ErrNotFitted if there is no successful fit.
func (s *Session) Evaluate(x float64) (float64, error) {
	if !s.Fitted() {
		return 0, lsqErrorf("Evaluate", ErrNotFitted)
	}

	return s.eval(x), nil
}

func (s *Session) eval(x float64) float64 {
	var y float64
	for i, f := range s.basis {
		y += s.coefficients[i] * f.Evaluate(x)
	}

	return y
}

// ComputeError returns the root-mean-square residual of the fit over the
// stored samples. It is 0 when the session is not fitted or has no samples.
func (s *Session) ComputeError() float64 {
	if !s.Fitted() || len(s.points) == 0 {
		return 0
	}
	var sum, d float64
	for _, p := range s.points {
		d = s.eval(p.X) - p.Y
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(s.points)))
}

