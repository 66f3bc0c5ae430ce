package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/lsq"
)

// ErrNilSession is returned when no session is given.
var ErrNilSession = errors.New("render: nil session")

// Defaults applied to zero Options fields.
const (
	DefaultWidth   = 6 * vg.Inch
	DefaultHeight  = 4 * vg.Inch
	DefaultSamples = 400
	DefaultFormat  = "png"
)

// Options controls the figure.
type Options struct {
	Title   string
	Width   vg.Length
	Height  vg.Length
	Samples int    // curve resolution
	Format  string // used by WriteTo; Save takes it from the extension
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Samples <= 1 {
		o.Samples = DefaultSamples
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}

	return o
}

// Fit builds the plot of s.
// Errors: ErrNilSession; lsq.ErrNotFitted when s has no successful fit.
func Fit(s *lsq.Session, opts Options) (*plot.Plot, error) {
	if s == nil {
		return nil, ErrNilSession
	}
	if !s.Fitted() {
		return nil, fmt.Errorf("render: %w", lsq.ErrNotFitted)
	}
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	pts := s.DataPoints()
	if len(pts) > 0 {
		xys := make(plotter.XYs, len(pts))
		for i, pt := range pts {
			xys[i].X, xys[i].Y = pt.X, pt.Y
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("render: samples: %w", err)
		}
		sc.GlyphStyle.Color = plotutil.Color(0)
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
		p.Legend.Add("samples", sc)
	}

	a, b := s.Interval()
	fn := plotter.NewFunction(func(x float64) float64 {
		y, _ := s.Evaluate(x)
		return y
	})
	fn.XMin, fn.XMax = a, b
	fn.Samples = opts.Samples
	fn.Color = plotutil.Color(1)
	fn.Width = vg.Points(1.5)
	p.Add(fn)
	p.Legend.Add(fmt.Sprintf("fit (rms %.3g)", s.ComputeError()), fn)
	p.X.Min, p.X.Max = a, b

	return p, nil
}

// WriteTo encodes the plot of s to w in opts.Format.
func WriteTo(w io.Writer, s *lsq.Session, opts Options) (int64, error) {
	p, err := Fit(s, opts)
	if err != nil {
		return 0, err
	}
	opts = opts.withDefaults()
	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}

	return wt.WriteTo(w)
}

// Save writes the plot of s to path; the format follows the extension.
func Save(path string, s *lsq.Session, opts Options) error {
	p, err := Fit(s, opts)
	if err != nil {
		return err
	}
	opts = opts.withDefaults()
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		return fmt.Errorf("render: %q has no extension", path)
	}
	if err = p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}
