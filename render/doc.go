// Package render draws a fitted lsq.Session with gonum.org/v1/plot: the
// samples as a scatter and the fitted curve over the session interval.
//
//	p, err := render.Fit(s, render.Options{Title: "sin(2πx)"})
//	_ = render.Save("fit.png", s, render.Options{})
//
// Output formats are those of plot.Plot.WriterTo (png, svg, pdf, eps, jpg, tiff).
package render
