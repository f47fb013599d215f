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
	"math"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fred/schema"
)

// Timeseries stores numeric values along with their dates. The dates are
// always sorted in ascending order.
type Timeseries struct {
	dates []schema.Date
	data  []float64
}

// NewTimeseries creates a new Timeseries. The dates are expected to be sorted
// in ascending order (not checked). It panics if dates and data have different
// lengths. Note, that the argument slices are used as is, not copied.
func NewTimeseries(dates []schema.Date, data []float64) *Timeseries {
	if len(dates) != len(data) {
		panic(errors.Reason("len(dates) [%d] != len(data) [%d]",
			len(dates), len(data)))
	}
	return &Timeseries{dates: dates, data: data}
}

// FromObservations converts FRED observations to a Timeseries. Missing values
// are skipped, and the order of observations is preserved.
func FromObservations(obs schema.Observations) (*Timeseries, error) {
	dates := []schema.Date{}
	data := []float64{}
	for _, o := range obs {
		v, ok, err := o.Decimal()
		if err != nil {
			return nil, errors.Annotate(err, "failed to parse observation value")
		}
		if !ok {
			continue
		}
		d, err := o.DateValue()
		if err != nil {
			return nil, errors.Annotate(err, "failed to parse observation date")
		}
		f, _ := v.Float64()
		dates = append(dates, d)
		data = append(data, f)
	}
	return NewTimeseries(dates, data), nil
}

// Dates of the Timeseries.
func (t *Timeseries) Dates() []schema.Date { return t.dates }

// Data of the Timeseries.
func (t *Timeseries) Data() []float64 { return t.data }

// Len is the number of points.
func (t *Timeseries) Len() int { return len(t.data) }

// Copy makes a deep copy of the Timeseries.
func (t *Timeseries) Copy() *Timeseries {
	dates := make([]schema.Date, len(t.dates))
	data := make([]float64, len(t.data))
	copy(dates, t.dates)
	copy(data, t.data)
	return NewTimeseries(dates, data)
}

// Check that Timeseries is consistent: the lengths of dates and data are the
// same and the dates are strictly ascending.
func (t *Timeseries) Check() error {
	if len(t.dates) != len(t.data) {
		return errors.Reason("len(dates) [%d] != len(data) [%d]",
			len(t.dates), len(t.data))
	}
	for i := 1; i < len(t.dates); i++ {
		if !t.dates[i-1].Before(t.dates[i]) {
			return errors.Reason("dates[%d] = %s >= dates[%d] = %s",
				i-1, t.dates[i-1], i, t.dates[i])
		}
	}
	return nil
}

// Range extracts the sub-series from the inclusive date interval. A zero
// start or end leaves that side unbounded. It may return an empty
// Timeseries, but never nil.
func (t *Timeseries) Range(start, end schema.Date) *Timeseries {
	return t.Filter(func(i int) bool { return t.dates[i].InRange(start, end) })
}

// Filter keeps the points whose index satisfies keep.
func (t *Timeseries) Filter(keep func(i int) bool) *Timeseries {
	dates := []schema.Date{}
	data := []float64{}
	for i := range t.data {
		if keep(i) {
			dates = append(dates, t.dates[i])
			data = append(data, t.data[i])
		}
	}
	return NewTimeseries(dates, data)
}

// Shift the timeseries in time. A positive shift moves the values into the
// future, negative - into the past. The values outside of the date range are
// dropped. It may return an empty Timeseries, but never nil.
func (t *Timeseries) Shift(shift int) *Timeseries {
	if shift == 0 {
		return t
	}
	absShift := shift
	if absShift < 0 {
		absShift = -shift
	}
	l := len(t.dates)
	if absShift >= l {
		return NewTimeseries(nil, nil)
	}
	if shift > 0 {
		return NewTimeseries(t.dates[shift:], t.data[:l-shift])
	}
	return NewTimeseries(t.dates[:l+shift], t.data[-shift:])
}

// delta computes {f(x[t-n], x[t])} dated at t.
func (t *Timeseries) delta(n int, f func(prev, curr float64) float64) *Timeseries {
	if n < 1 {
		panic(errors.Reason("n=%d must be >= 1", n))
	}
	if n >= len(t.data) {
		return NewTimeseries(nil, nil)
	}
	deltas := make([]float64, 0, len(t.data)-n)
	for i := n; i < len(t.data); i++ {
		deltas = append(deltas, f(t.data[i-n], t.data[i]))
	}
	return NewTimeseries(t.dates[n:], deltas)
}

// Change over n periods: x[t] - x[t-n].
func (t *Timeseries) Change(n int) *Timeseries {
	return t.delta(n, func(prev, curr float64) float64 { return curr - prev })
}

// PercentChange over n periods: 100 * (x[t] / x[t-n] - 1).
func (t *Timeseries) PercentChange(n int) *Timeseries {
	return t.delta(n, func(prev, curr float64) float64 {
		return 100 * (curr/prev - 1)
	})
}

// LogChange over n periods: log(x[t]) - log(x[t-n]).
func (t *Timeseries) LogChange(n int) *Timeseries {
	return t.delta(n, func(prev, curr float64) float64 {
		return math.Log(curr) - math.Log(prev)
	})
}

// Point is a single dated value, for printing as a table row.
type Point struct {
	Date  schema.Date
	Value float64
}

// CSV implements table.Row.
func (p Point) CSV() []string {
	return []string{p.Date.String(), formatFloat(p.Value)}
}

// Points of the Timeseries in order.
func (t *Timeseries) Points() []Point {
	res := make([]Point, len(t.data))
	for i := range t.data {
		res[i] = Point{Date: t.dates[i], Value: t.data[i]}
	}
	return res
}
