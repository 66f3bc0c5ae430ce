package lsq_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/basis"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/lsq"
)

var sinkR lsq.Report

func BenchmarkFit(b *testing.B) {
	for _, deg := range []int{1, 3, 6} {
		s := mustSession(b, 0, 1)
		fs, err := basis.Polynomial(deg)
		if err != nil {
			b.Fatal(err)
		}
		s.AddBasisFunctions(fs...)
		if err = s.AddFunction(math.Exp, 200); err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("degree=%d", deg), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r, err := s.Fit()
				if err != nil {
					b.Fatal(err)
				}
				sinkR = r
			}
		})
	}
}
