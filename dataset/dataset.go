// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

// Package dataset extracts and summarizes numeric columns from go-gg
// tables for the chart builders: column conversion, Pearson
// correlation, interquartile-range outlier detection and goodness of
// fit for trendlines.
package dataset

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// Floats returns the named column of t converted to float64s.
func Floats(t *table.Table, col string) ([]float64, error) {
	c := t.Column(col)
	if c == nil {
		return nil, fmt.Errorf("dataset: unknown column %q", col)
	}
	var xs []float64
	slice.Convert(&xs, c)
	return xs, nil
}

// Columns returns the named columns of t converted to float64s, in
// the given order.
func Columns(t *table.Table, cols []string) ([][]float64, error) {
	out := make([][]float64, len(cols))
	for i, col := range cols {
		xs, err := Floats(t, col)
		if err != nil {
			return nil, err
		}
		out[i] = xs
	}
	return out, nil
}

// Pearson returns the Pearson correlation coefficient of xs and ys.
// It is NaN when either sample has zero variance.
func Pearson(xs, ys []float64) float64 {
	mx, my := stats.Mean(xs), stats.Mean(ys)
	var sxy, sxx, syy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(sxx*syy)
}

// Correlation computes the Pearson correlation matrix of the named
// columns. Element [i][j] is the correlation of cols[i] and cols[j];
// the diagonal is 1.
func Correlation(t *table.Table, cols []string) ([][]float64, error) {
	data, err := Columns(t, cols)
	if err != nil {
		return nil, err
	}
	m := make([][]float64, len(cols))
	for i := range m {
		m[i] = make([]float64, len(cols))
		m[i][i] = 1
	}
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			r := Pearson(data[i], data[j])
			m[i][j], m[j][i] = r, r
		}
	}
	return m, nil
}

// Fences are the lower and upper cutoffs outside which a value is
// flagged as a possible outlier.
type Fences struct {
	Lower, Upper float64
}

// IQROutliers flags the values of each named column that fall more
// than 1.5 interquartile ranges below the first or above the third
// quartile. It returns, per column, the row indices of flagged
// values and the fences used. Columns without outliers map to a nil
// index slice.
func IQROutliers(t *table.Table, cols []string) (map[string][]int, map[string]Fences, error) {
	outliers := make(map[string][]int, len(cols))
	fences := make(map[string]Fences, len(cols))
	for _, col := range cols {
		xs, err := Floats(t, col)
		if err != nil {
			return nil, nil, err
		}
		s := stats.Sample{Xs: xs}
		q1, q3 := s.Quantile(0.25), s.Quantile(0.75)
		iqr := q3 - q1
		f := Fences{Lower: q1 - 1.5*iqr, Upper: q3 + 1.5*iqr}
		fences[col] = f
		var idx []int
		for i, x := range xs {
			if x < f.Lower || x > f.Upper {
				idx = append(idx, i)
			}
		}
		outliers[col] = idx
	}
	return outliers, fences, nil
}

// RSquared returns the coefficient of determination for fitted
// values yhat against observations y. It is NaN when y has zero
// variance.
func RSquared(y, yhat []float64) float64 {
	m := stats.Mean(y)
	var tot, res float64
	for i := range y {
		tot += (y[i] - m) * (y[i] - m)
		res += (y[i] - yhat[i]) * (y[i] - yhat[i])
	}
	if tot == 0 {
		return math.NaN()
	}
	return 1 - res/tot
}
