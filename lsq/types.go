package lsq

import "time"

// Report summarises one Fit call.
//
//	Coefficients – solved coefficients in basis order (nil on failure).
//	RMS          – root-mean-square residual over the data points.
//	Condition    – 2-norm condition number of the Gram matrix (+Inf if it
//	               could not be computed). Informational only.
//	Basis/Points – sizes of the problem.
//	Elapsed      – wall time of the fit.
type Report struct {
	Coefficients []float64     `json:"coefficients"`
	RMS          float64       `json:"rms"`
	Condition    float64       `json:"condition"`
	Basis        int           `json:"basis"`
	Points       int           `json:"points"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Observer receives the outcome of every Fit. err is nil on success.
type Observer interface {
	ObserveFit(r Report, err error)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(r Report, err error)

// ObserveFit calls f(r, err).
func (f ObserverFunc) ObserveFit(r Report, err error) { f(r, err) }
