package job

import (
	"fmt"
	"math"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/basis"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/lsq"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/samples"
)

// Job is one declarative fit.
type Job struct {
	Name     string          `yaml:"name" toml:"name" json:"name"`
	Interval *Interval       `yaml:"interval" toml:"interval" json:"interval,omitempty"`
	Basis    Basis           `yaml:"basis" toml:"basis" json:"basis"`
	Target   *Target         `yaml:"target" toml:"target" json:"target,omitempty"`
	Points   []samples.Point `yaml:"points" toml:"points" json:"points,omitempty"`
}

// Interval is [A, B]. A missing interval means [lsq.DefaultIntervalStart, lsq.DefaultIntervalEnd].
type Interval struct {
	A float64 `yaml:"a" toml:"a" json:"a"`
	B float64 `yaml:"b" toml:"b" json:"b"`
}

// Basis lists the basis sections. Nil family pointers are absent sections.
type Basis struct {
	Polynomial    *int      `yaml:"polynomial" toml:"polynomial" json:"polynomial,omitempty"`
	Trigonometric *int      `yaml:"trigonometric" toml:"trigonometric" json:"trigonometric,omitempty"`
	Exponential   []float64 `yaml:"exponential" toml:"exponential" json:"exponential,omitempty"`
	Terms         []string  `yaml:"terms" toml:"terms" json:"terms,omitempty"`
}

// Target is a function given as a weighted sum of basis terms, sampled
// Samples times (lsq.DefaultSampleCount when 0).
type Target struct {
	Samples int            `yaml:"samples" toml:"samples" json:"samples"`
	Terms   []WeightedTerm `yaml:"terms" toml:"terms" json:"terms"`
}

// WeightedTerm is Weight·term(x). A missing weight is 1.
type WeightedTerm struct {
	Term   string   `yaml:"term" toml:"term" json:"term"`
	Weight *float64 `yaml:"weight" toml:"weight" json:"weight,omitempty"`
}

// Bounds returns the interval, applying defaults.
func (j *Job) Bounds() (a, b float64) {
	if j.Interval == nil {
		return lsq.DefaultIntervalStart, lsq.DefaultIntervalEnd
	}

	return j.Interval.A, j.Interval.B
}

// Validate checks everything Build needs without building.
//
// Errors (all wrap ErrInvalidJob):
//   - interval with !(a < b) or non-finite bounds;
//   - no basis function, or a basis section rejected by package basis;
//   - neither a target nor points;
//   - negative target sample count, empty target, bad target term.
func (j *Job) Validate() error {
	a, b := j.Bounds()
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a >= b {
		return fmt.Errorf("interval [%g, %g]: %w", a, b, ErrInvalidJob)
	}
	fs, err := j.Functions()
	if err != nil {
		return fmt.Errorf("basis: %w: %w", ErrInvalidJob, err)
	}
	if len(fs) == 0 {
		return fmt.Errorf("basis: empty: %w", ErrInvalidJob)
	}
	if j.Target == nil && len(j.Points) == 0 {
		return fmt.Errorf("no target and no points: %w", ErrInvalidJob)
	}
	if j.Target != nil {
		if j.Target.Samples < 0 {
			return fmt.Errorf("target: samples %d: %w", j.Target.Samples, ErrInvalidJob)
		}
		if len(j.Target.Terms) == 0 {
			return fmt.Errorf("target: no terms: %w", ErrInvalidJob)
		}
		if _, err = j.TargetFunc(); err != nil {
			return fmt.Errorf("target: %w: %w", ErrInvalidJob, err)
		}
	}

	return nil
}

// Functions resolves the basis sections in order: polynomial,
// trigonometric, exponential, terms.
func (j *Job) Functions() ([]basis.Function, error) {
	var out []basis.Function
	if j.Basis.Polynomial != nil {
		fs, err := basis.Polynomial(*j.Basis.Polynomial)
		if err != nil {
			return nil, err
		}
		out = append(out, fs...)
	}
	if j.Basis.Trigonometric != nil {
		fs, err := basis.Trigonometric(*j.Basis.Trigonometric)
		if err != nil {
			return nil, err
		}
		out = append(out, fs...)
	}
	if len(j.Basis.Exponential) > 0 {
		fs, err := basis.Exponential(j.Basis.Exponential...)
		if err != nil {
			return nil, err
		}
		out = append(out, fs...)
	}
	if len(j.Basis.Terms) > 0 {
		fs, err := basis.ParseAll(j.Basis.Terms)
		if err != nil {
			return nil, err
		}
		out = append(out, fs...)
	}

	return out, nil
}

// TargetFunc returns x ↦ Σ wₖ·termₖ(x), or nil when the job has no target.
func (j *Job) TargetFunc() (func(float64) float64, error) {
	if j.Target == nil {
		return nil, nil
	}
	fs := make([]basis.Function, len(j.Target.Terms))
	ws := make([]float64, len(j.Target.Terms))
	for i, wt := range j.Target.Terms {
		f, err := basis.Parse(wt.Term)
		if err != nil {
			return nil, err
		}
		fs[i] = f
		ws[i] = 1
		if wt.Weight != nil {
			ws[i] = *wt.Weight
		}
	}

	return func(x float64) float64 {
		var y float64
		for i, f := range fs {
			y += ws[i] * f.Evaluate(x)
		}
		return y
	}, nil
}

// Build validates j and returns a session loaded with its basis and data,
// not yet fitted. The job name becomes the session id when set.
func (j *Job) Build(opts ...lsq.Option) (*lsq.Session, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	a, b := j.Bounds()
	s, err := lsq.New(a, b, append([]lsq.Option{lsq.WithID(j.Name)}, opts...)...)
	if err != nil {
		return nil, err
	}
	fs, err := j.Functions()
	if err != nil {
		return nil, err
	}
	s.AddBasisFunctions(fs...)

	if j.Target != nil {
		f, err := j.TargetFunc()
		if err != nil {
			return nil, err
		}
		n := j.Target.Samples
		if n == 0 {
			n = lsq.DefaultSampleCount
		}
		if err = s.AddFunction(f, n); err != nil {
			return nil, err
		}
	}
	s.AddDataPoints(j.Points)

	return s, nil
}

// Result is the outcome of Run.
type Result struct {
	Name    string       `json:"name"`
	A       float64      `json:"a"`
	B       float64      `json:"b"`
	Terms   []string     `json:"terms"`
	Report  lsq.Report   `json:"report"`
	Session *lsq.Session `json:"-"`
}

// Run builds and fits j. On a fit failure the Result still carries the
// session and the report, and the error is returned alongside.
func (j *Job) Run(opts ...lsq.Option) (Result, error) {
	s, err := j.Build(opts...)
	if err != nil {
		return Result{Name: j.Name}, err
	}
	a, b := s.Interval()
	res := Result{Name: j.Name, A: a, B: b, Session: s}
	for _, f := range s.BasisFunctions() {
		res.Terms = append(res.Terms, f.String())
	}
	res.Report, err = s.Fit()

	return res, err
}
