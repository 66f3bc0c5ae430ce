package telemetry

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/lsq"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/matrix"
)

// Outcome label values of lsq_fits_total.
const (
	OutcomeOK       = "ok"
	OutcomeSingular = "singular"
	OutcomeNoBasis  = "no_basis"
	OutcomeNoData   = "no_data"
	OutcomeError    = "error"
)

// FitMetrics holds the Prometheus collectors updated after every fit.
type FitMetrics struct {
	Fits      *prometheus.CounterVec
	Duration  prometheus.Histogram
	RMS       prometheus.Gauge
	Condition prometheus.Gauge
}

var _ lsq.Observer = (*FitMetrics)(nil)

// NewFitMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewFitMetrics(reg prometheus.Registerer) (*FitMetrics, error) {
	m := &FitMetrics{
		Fits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lsq_fits_total",
				Help: "Total number of least-squares fits by outcome",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lsq_fit_duration_seconds",
				Help:    "Wall time of a least-squares fit in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
		RMS: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "lsq_fit_rms",
				Help: "RMS residual of the last successful fit",
			},
		),
		Condition: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "lsq_gram_condition",
				Help: "2-norm condition number of the last Gram matrix",
			},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Fits, m.Duration, m.RMS, m.Condition} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("telemetry: register: %w", err)
		}
	}

	return m, nil
}

// ObserveFit records one fit. Precondition failures do not touch the
// condition gauge since no Gram matrix was built.
func (m *FitMetrics) ObserveFit(r lsq.Report, err error) {
	outcome := Outcome(err)
	m.Fits.WithLabelValues(outcome).Inc()
	m.Duration.Observe(r.Elapsed.Seconds())

	switch outcome {
	case OutcomeOK:
		m.RMS.Set(r.RMS)
		m.Condition.Set(r.Condition)
	case OutcomeSingular:
		m.Condition.Set(r.Condition)
	}
}

// Outcome classifies a Fit error into a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, lsq.ErrNoBasis):
		return OutcomeNoBasis
	case errors.Is(err, lsq.ErrNoData):
		return OutcomeNoData
	case errors.Is(err, matrix.ErrSingular):
		return OutcomeSingular
	default:
		return OutcomeError
	}
}

