package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/basis"
)

func (a *app) newBasisCmd() *cobra.Command {
	var (
		family string
		order  int
		alphas []float64
	)
	cmd := &cobra.Command{
		Use:   "basis",
		Short: "Print the terms of a standard basis family",
		Long:  "Print the terms generated by polynomial(order), trigonometric(order) or exponential(alpha...)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs, err := standardBasis(family, order, alphas)
			if err != nil {
				return err
			}
			terms := make([]string, len(fs))
			for i, f := range fs {
				terms[i] = f.String()
			}
			a.logger.Debug().Str("family", family).Int("terms", len(terms)).Msg("basis generated")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(terms, " "))

			return err
		},
	}
	cmd.Flags().StringVar(&family, "family", "polynomial", "Basis family (polynomial|trigonometric|exponential)")
	cmd.Flags().IntVar(&order, "order", 3, "Degree or maximum frequency")
	cmd.Flags().Float64SliceVar(&alphas, "alpha", nil, "Exponential rates, in order")

	return cmd
}

func standardBasis(family string, order int, alphas []float64) ([]basis.Function, error) {
	switch strings.ToLower(family) {
	case "polynomial", "poly":
		return basis.Polynomial(order)
	case "trigonometric", "trig":
		return basis.Trigonometric(order)
	case "exponential", "exp":
		if len(alphas) == 0 {
			return nil, fmt.Errorf("family exponential needs --alpha")
		}
		return basis.Exponential(alphas...)
	default:
		return nil, fmt.Errorf("unknown family %q", family)
	}
}
