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

package schema

import (
	"github.com/shopspring/decimal"
	"github.com/stockparfait/errors"
)

// MissingValue is how FRED marks an observation without a value.
const MissingValue = "."

// Observation is a single data point of a series. The value is kept as the
// original string to preserve its exact decimal representation.
// See https://fred.stlouisfed.org/docs/api/fred/series_observations.html .
type Observation struct {
	Realtime
	Date  string `json:"date" required:"true"`
	Value string `json:"value" required:"true"`
}

func (o *Observation) InitMessage(js any) error { return initMessage(o, js) }

// Missing reports whether the observation has no value.
func (o Observation) Missing() bool {
	return o.Value == MissingValue || o.Value == ""
}

// Decimal parses the value. The boolean is false for a missing value.
func (o Observation) Decimal() (decimal.Decimal, bool, error) {
	if o.Missing() {
		return decimal.Zero, false, nil
	}
	d, err := decimal.NewFromString(o.Value)
	if err != nil {
		return decimal.Zero, false, errors.Annotate(
			err, "invalid value for %s: '%s'", o.Date, o.Value)
	}
	return d, true, nil
}

// DateValue parses the observation date.
func (o Observation) DateValue() (Date, error) {
	d, err := NewDateFromString(o.Date)
	if err != nil {
		return Date{}, errors.Annotate(err, "invalid observation date")
	}
	return d, nil
}

// ObservationHeader is the table header matching Observation.CSV().
func ObservationHeader() []string {
	return []string{"Date", "Value"}
}

// CSV implements table.Row.
func (o Observation) CSV() []string {
	return []string{o.Date, o.Value}
}

// Observations is an ordered list of data points.
type Observations []Observation

// Present keeps only the observations with a value.
func (obs Observations) Present() Observations {
	res := Observations{}
	for _, o := range obs {
		if !o.Missing() {
			res = append(res, o)
		}
	}
	return res
}

// SeriesObservations is the response of the series/observations endpoint.
type SeriesObservations struct {
	Page
	ObservationStart string       `json:"observation_start" required:"true"`
	ObservationEnd   string       `json:"observation_end" required:"true"`
	Units            string       `json:"units" required:"true"`
	OutputType       int          `json:"output_type" required:"true"`
	FileType         string       `json:"file_type" required:"true"`
	Observations     Observations `json:"observations" required:"true"`
}

func (s *SeriesObservations) InitMessage(js any) error { return initMessage(s, js) }
