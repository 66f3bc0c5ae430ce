package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/job"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/lsq"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/render"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/telemetry"
)

type fitFlags struct {
	config  string
	plot    string
	format  string
	metrics string
	title   string
}

func (a *app) newFitCmd() *cobra.Command {
	var f fitFlags
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Run the fit described by a job file",
		Long:  "Load a YAML or TOML job file, fit it and print the coefficients and RMS residual",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFit(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "Job file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&f.plot, "plot", "", "Write a plot of the fit (format from extension)")
	cmd.Flags().StringVar(&f.format, "format", "table", "Output format (table|json)")
	cmd.Flags().StringVar(&f.metrics, "metrics", "", "Write Prometheus metrics to this textfile")
	cmd.Flags().StringVar(&f.title, "title", "", "Plot title (defaults to the job name)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (a *app) runFit(cmd *cobra.Command, f fitFlags) error {
	if f.format != "table" && f.format != "json" {
		return fmt.Errorf("--format %q: want table or json", f.format)
	}
	j, err := job.Load(f.config)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	m, err := telemetry.NewFitMetrics(reg)
	if err != nil {
		return err
	}

	a.logger.Info().Str("config", f.config).Str("job", j.Name).Msg("running fit")
	res, err := j.Run(lsq.WithLogger(a.logger), lsq.WithObserver(m))
	if f.metrics != "" {
		if werr := prometheus.WriteToTextfile(f.metrics, reg); werr != nil {
			a.logger.Warn().Err(werr).Str("path", f.metrics).Msg("metrics not written")
		}
	}
	if err != nil {
		return fmt.Errorf("fit %q: %w", j.Name, err)
	}

	if f.plot != "" {
		title := f.title
		if title == "" {
			title = j.Name
		}
		if err = render.Save(f.plot, res.Session, render.Options{Title: title}); err != nil {
			return err
		}
		a.logger.Info().Str("path", f.plot).Msg("plot written")
	}

	if f.format == "json" {
		return writeJSON(cmd.OutOrStdout(), res)
	}

	return writeTable(cmd.OutOrStdout(), res)
}

func writeJSON(w io.Writer, res job.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(res)
}

func writeTable(w io.Writer, res job.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "job\t%s\n", res.Name)
	fmt.Fprintf(tw, "interval\t[%g, %g]\n", res.A, res.B)
	fmt.Fprintf(tw, "points\t%d\n", res.Report.Points)
	fmt.Fprintf(tw, "rms\t%.6g\n", res.Report.RMS)
	fmt.Fprintf(tw, "condition\t%.4g\n", res.Report.Condition)
	fmt.Fprintln(tw, "\nterm\tcoefficient")
	for i, term := range res.Terms {
		fmt.Fprintf(tw, "%s\t%.10g\n", term, res.Report.Coefficients[i])
	}

	return tw.Flush()
}
