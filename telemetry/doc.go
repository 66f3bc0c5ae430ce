// Package telemetry exports Prometheus metrics for least-squares fits.
//
// FitMetrics implements lsq.Observer; attach it to a session with
// lsq.WithObserver and every Fit updates:
//
//	lsq_fits_total{outcome}      ok | singular | no_basis | no_data | error
//	lsq_fit_duration_seconds     histogram of Fit wall time
//	lsq_fit_rms                  RMS residual of the last successful fit
//	lsq_gram_condition           Gram condition number of the last fit
//
// Metrics are registered on a caller-supplied prometheus.Registerer so that
// tests and embedding programs keep their own registries.
package telemetry
