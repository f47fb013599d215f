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
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// SeriesItem describes an economic data series.
// See https://fred.stlouisfed.org/docs/api/fred/series.html .
type SeriesItem struct {
	ID string `json:"id" required:"true"`
	Realtime
	Title                   string  `json:"title" required:"true"`
	ObservationStart        string  `json:"observation_start" required:"true"`
	ObservationEnd          string  `json:"observation_end" required:"true"`
	Frequency               string  `json:"frequency" required:"true"`
	FrequencyShort          string  `json:"frequency_short"`
	Units                   string  `json:"units" required:"true"`
	UnitsShort              string  `json:"units_short" required:"true"`
	SeasonalAdjustment      string  `json:"seasonal_adjustment" required:"true"`
	SeasonalAdjustmentShort string  `json:"seasonal_adjustment_short" required:"true"`
	LastUpdated             string  `json:"last_updated" required:"true"`
	Popularity              int     `json:"popularity" required:"true"`
	GroupPopularity         *int    `json:"group_popularity,omitempty"`
	Notes                   *string `json:"notes,omitempty"`
}

func (s *SeriesItem) InitMessage(js any) error { return initMessage(s, js) }

// SeriesItemHeader is the table header matching SeriesItem.CSV().
func SeriesItemHeader() []string {
	return []string{
		"ID", "Title", "Frequency", "Units", "Seasonal Adjustment",
		"Start", "End", "Last Updated", "Popularity",
	}
}

// CSV implements table.Row.
func (s SeriesItem) CSV() []string {
	return []string{
		s.ID,
		s.Title,
		s.Frequency,
		s.UnitsShort,
		s.SeasonalAdjustmentShort,
		s.ObservationStart,
		s.ObservationEnd,
		s.LastUpdated,
		strconv.Itoa(s.Popularity),
	}
}

// SeriesItems is an ordered collection of series. All the methods leave the
// receiver intact and return new values.
type SeriesItems []SeriesItem

// Filter keeps the items satisfying keep, in the original order.
func (s SeriesItems) Filter(keep func(SeriesItem) bool) SeriesItems {
	res := SeriesItems{}
	for _, it := range s {
		if keep(it) {
			res = append(res, it)
		}
	}
	return res
}

func containsAny(title string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(title, p) {
			return true
		}
	}
	return false
}

// ExcludePhrases keeps the items whose title contains none of the phrases.
func (s SeriesItems) ExcludePhrases(phrases ...string) SeriesItems {
	return s.Filter(func(it SeriesItem) bool {
		return !containsAny(it.Title, phrases)
	})
}

// HasPhrase keeps the items whose title contains the phrase.
func (s SeriesItems) HasPhrase(phrase string) SeriesItems {
	return s.Filter(func(it SeriesItem) bool {
		return strings.Contains(it.Title, phrase)
	})
}

// OnlyInclude keeps the items whose title contains at least one of the
// phrases.
func (s SeriesItems) OnlyInclude(phrases ...string) SeriesItems {
	return s.Filter(func(it SeriesItem) bool {
		return containsAny(it.Title, phrases)
	})
}

// EqualsOneOf keeps the items whose title is exactly one of titles.
func (s SeriesItems) EqualsOneOf(titles ...string) SeriesItems {
	return s.Filter(func(it SeriesItem) bool {
		return slices.Contains(titles, it.Title)
	})
}

// Titles of the series in order.
func (s SeriesItems) Titles() []string {
	res := make([]string, len(s))
	for i, it := range s {
		res[i] = it.Title
	}
	return res
}

// IDs of the series in order.
func (s SeriesItems) IDs() []string {
	res := make([]string, len(s))
	for i, it := range s {
		res[i] = it.ID
	}
	return res
}

// Series is the response of the series endpoint. FRED spells the list
// "seriess".
type Series struct {
	Realtime
	Seriess SeriesItems `json:"seriess" required:"true"`
}

func (s *Series) InitMessage(js any) error { return initMessage(s, js) }

// SeriesPage is the response of the category/series, release/series,
// series/search and tags/series endpoints.
type SeriesPage struct {
	Page
	Seriess SeriesItems `json:"seriess" required:"true"`
}

func (s *SeriesPage) InitMessage(js any) error { return initMessage(s, js) }

// SeriesUpdates is the response of the series/updates endpoint.
type SeriesUpdates struct {
	Page
	FilterVariable string      `json:"filter_variable" required:"true"`
	FilterValue    string      `json:"filter_value" required:"true"`
	Seriess        SeriesItems `json:"seriess" required:"true"`
}

func (s *SeriesUpdates) InitMessage(js any) error { return initMessage(s, js) }

// VintageDates is the response of the series/vintagedates endpoint.
type VintageDates struct {
	Page
	VintageDates []string `json:"vintage_dates" required:"true"`
}

func (v *VintageDates) InitMessage(js any) error { return initMessage(v, js) }
