// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import (
	"strconv"

	"github.com/stockparfait/fred/schema"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Summary statistics of a Timeseries.
type Summary struct {
	Count  int
	Start  schema.Date
	End    schema.Date
	First  float64
	Last   float64
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for fewer than 2 points
	Median float64
}

// Summarize computes the Summary. An empty Timeseries yields a zero Summary.
func (t *Timeseries) Summarize() Summary {
	n := t.Len()
	if n == 0 {
		return Summary{}
	}
	sorted := make([]float64, n)
	copy(sorted, t.data)
	slices.Sort(sorted)

	s := Summary{
		Count:  n,
		Start:  t.dates[0],
		End:    t.dates[n-1],
		First:  t.data[0],
		Last:   t.data[n-1],
		Min:    floats.Min(t.data),
		Max:    floats.Max(t.data),
		Mean:   stat.Mean(t.data, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
	if n > 1 {
		s.StdDev = stat.StdDev(t.data, nil)
	}
	return s
}

// SummaryRow is a name-value pair of a Summary, for printing as a table row.
type SummaryRow struct {
	Name  string
	Value string
}

// CSV implements table.Row.
func (r SummaryRow) CSV() []string { return []string{r.Name, r.Value} }

// Rows of the Summary in a fixed order.
func (s Summary) Rows() []SummaryRow {
	return []SummaryRow{
		{"Count", strconv.Itoa(s.Count)},
		{"Start", s.Start.String()},
		{"End", s.End.String()},
		{"First", formatFloat(s.First)},
		{"Last", formatFloat(s.Last)},
		{"Min", formatFloat(s.Min)},
		{"Max", formatFloat(s.Max)},
		{"Mean", formatFloat(s.Mean)},
		{"StdDev", formatFloat(s.StdDev)},
		{"Median", formatFloat(s.Median)},
	}
}
