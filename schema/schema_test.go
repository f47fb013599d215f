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
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

const seriesJSON = `{
  "realtime_start": "2013-08-14",
  "realtime_end": "2013-08-14",
  "seriess": [
    {
      "id": "GNPCA",
      "realtime_start": "2013-08-14",
      "realtime_end": "2013-08-14",
      "title": "Real Gross National Product",
      "observation_start": "1929-01-01",
      "observation_end": "2012-01-01",
      "frequency": "Annual",
      "frequency_short": "A",
      "units": "Billions of Chained 2009 Dollars",
      "units_short": "Bil. of Chn. 2009 $",
      "seasonal_adjustment": "Not Seasonally Adjusted",
      "seasonal_adjustment_short": "NSA",
      "last_updated": "2013-07-31 09:26:16-05",
      "popularity": 39,
      "notes": "BEA Account Code: A001RX1"
    }
  ]
}`

func testItems(titles ...string) SeriesItems {
	res := SeriesItems{}
	for i, t := range titles {
		res = append(res, SeriesItem{ID: string(rune('A' + i)), Title: t})
	}
	return res
}

func TestSchema(t *testing.T) {
	t.Parallel()

	Convey("Series decodes", t, func() {
		var s Series
		So(s.InitMessage(testutil.JSON(seriesJSON)), ShouldBeNil)
		So(s.RealtimeStart, ShouldEqual, "2013-08-14")
		So(len(s.Seriess), ShouldEqual, 1)
		it := s.Seriess[0]
		So(it.ID, ShouldEqual, "GNPCA")
		So(it.RealtimeEnd, ShouldEqual, "2013-08-14")
		So(it.Popularity, ShouldEqual, 39)
		So(it.GroupPopularity, ShouldBeNil)
		So(*it.Notes, ShouldEqual, "BEA Account Code: A001RX1")
		So(it.CSV(), ShouldResemble, []string{
			"GNPCA", "Real Gross National Product", "Annual",
			"Bil. of Chn. 2009 $", "NSA", "1929-01-01", "2012-01-01",
			"2013-07-31 09:26:16-05", "39"})
		So(len(SeriesItemHeader()), ShouldEqual, len(it.CSV()))
	})

	Convey("Series without realtime_start fails", t, func() {
		var s Series
		err := s.InitMessage(testutil.JSON(`{"realtime_end": "2013-08-14", "seriess": []}`))
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "realtime_start")
	})

	Convey("Series with null required fields fails", t, func() {
		var s Series
		err := s.InitMessage(testutil.JSON(`{
  "realtime_start": null, "realtime_end": "2013-08-14", "seriess": null}`))
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "RealtimeStart is null")

		err = s.InitMessage(testutil.JSON(`{
  "realtime_start": "2013-08-14", "realtime_end": "2013-08-14", "seriess": null}`))
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "Seriess is null")
	})

	Convey("Series item with a wrong type fails", t, func() {
		var s SeriesItem
		js := testutil.JSON(`{"id": 5}`)
		So(s.InitMessage(js), ShouldNotBeNil)
	})

	Convey("Unknown fields are tolerated", t, func() {
		var c Categories
		So(c.InitMessage(testutil.JSON(`{
  "categories": [{"id": 125, "name": "Trade Balance", "parent_id": 13, "extra": 1}],
  "new_field": true}`)), ShouldBeNil)
		So(c.Categories, ShouldResemble, []Category{
			{ID: 125, Name: "Trade Balance", ParentID: 13}})
	})

	Convey("Paged envelopes round-trip", t, func() {
		group := 5
		notes := "some notes"
		page := SeriesPage{
			Page: Page{
				Realtime:  Realtime{RealtimeStart: "2020-01-01", RealtimeEnd: "2020-02-01"},
				OrderBy:   "series_id",
				SortOrder: "asc",
				Count:     2,
				Offset:    0,
				Limit:     1000,
			},
			Seriess: SeriesItems{
				{
					ID:              "ONE",
					Realtime:        Realtime{RealtimeStart: "2020-01-01", RealtimeEnd: "2020-02-01"},
					Title:           "First",
					Frequency:       "Monthly",
					Popularity:      3,
					GroupPopularity: &group,
					Notes:           &notes,
				},
				{ID: "TWO", Title: "Second"},
			},
		}
		data, err := json.Marshal(page)
		So(err, ShouldBeNil)
		var js any
		So(json.Unmarshal(data, &js), ShouldBeNil)
		var decoded SeriesPage
		So(decoded.InitMessage(js), ShouldBeNil)
		So(decoded, ShouldResemble, page)
	})

	Convey("Tags", t, func() {
		var tags TagsPage
		So(tags.InitMessage(testutil.JSON(`{
  "realtime_start": "2013-08-14",
  "realtime_end": "2013-08-14",
  "order_by": "series_count",
  "sort_order": "desc",
  "count": 2,
  "offset": 0,
  "limit": 1000,
  "tags": [
    {"name": "nation", "group_id": "geot", "notes": "", "created": "2012-02-27 10:18:19-06", "popularity": 100, "series_count": 105200},
    {"name": "usa", "group_id": "geo", "notes": null, "created": "2012-02-27 10:18:19-06", "popularity": 100, "series_count": 360000}
  ]
}`)), ShouldBeNil)
		So(tags.Count, ShouldEqual, 2)
		So(tags.Names(), ShouldResemble, []string{"nation", "usa"})
		So(tags.OneLine(), ShouldEqual, "nation, usa")
		So(tags.Tags[1].Notes, ShouldBeNil)
		So(tags.Tags[1].CSV(), ShouldResemble, []string{"usa", "geo", "360000", "100", ""})
	})

	Convey("Release tables accept numeric and string IDs", t, func() {
		var rt ReleaseTables
		So(rt.InitMessage(testutil.JSON(`{
  "name": "Personal consumption",
  "element_id": 12886,
  "release_id": "53",
  "elements": {
    "12887": {
      "element_id": 12887,
      "release_id": 53,
      "series_id": "DGDSRL1A225NBEA",
      "parent_id": 12886,
      "line": "3",
      "type": "series",
      "name": "Goods",
      "level": "1",
      "children": []
    }
  }
}`)), ShouldBeNil)
		So(rt.ReleaseID, ShouldEqual, ID("53"))
		So(*rt.ElementID, ShouldEqual, 12886)
		e := rt.Elements["12887"]
		So(e.ReleaseID, ShouldEqual, ID("53"))
		So(e.ParentID, ShouldEqual, ID("12886"))
		So(*e.SeriesID, ShouldEqual, "DGDSRL1A225NBEA")
		So(len(e.Children), ShouldEqual, 0)
	})

	Convey("Observations", t, func() {
		var obs SeriesObservations
		So(obs.InitMessage(testutil.JSON(`{
  "realtime_start": "2013-08-14",
  "realtime_end": "2013-08-14",
  "observation_start": "1776-07-04",
  "observation_end": "9999-12-31",
  "units": "lin",
  "output_type": 1,
  "file_type": "json",
  "order_by": "observation_date",
  "sort_order": "asc",
  "count": 3,
  "offset": 0,
  "limit": 100000,
  "observations": [
    {"realtime_start": "2013-08-14", "realtime_end": "2013-08-14", "date": "1929-01-01", "value": "1065.9"},
    {"realtime_start": "2013-08-14", "realtime_end": "2013-08-14", "date": "1930-01-01", "value": "."},
    {"realtime_start": "2013-08-14", "realtime_end": "2013-08-14", "date": "1931-01-01", "value": "907.8"}
  ]
}`)), ShouldBeNil)
		So(obs.OutputType, ShouldEqual, 1)
		So(len(obs.Observations), ShouldEqual, 3)

		d, ok, err := obs.Observations[0].Decimal()
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
		So(d.Equal(decimal.RequireFromString("1065.9")), ShouldBeTrue)

		_, ok, err = obs.Observations[1].Decimal()
		So(err, ShouldBeNil)
		So(ok, ShouldBeFalse)

		date, err := obs.Observations[2].DateValue()
		So(err, ShouldBeNil)
		So(date, ShouldResemble, NewDate(1931, 1, 1))

		So(len(obs.Observations.Present()), ShouldEqual, 2)

		bad := Observation{Date: "2020-01-01", Value: "n/a"}
		_, _, err = bad.Decimal()
		So(err, ShouldNotBeNil)
	})

	Convey("SeriesItems filters", t, func() {
		items := testItems(
			"Consumer Price Index: All Items",
			"Consumer Price Index: Food",
			"Unemployment Rate",
			"Real GDP",
		)

		Convey("ExcludePhrases and HasPhrase partition the collection", func() {
			for _, p := range []string{"Consumer", "Rate", "GDP", "none", ""} {
				in := items.HasPhrase(p)
				out := items.ExcludePhrases(p)
				So(len(in)+len(out), ShouldEqual, len(items))
				for _, id := range in.IDs() {
					So(out.IDs(), ShouldNotContain, id)
				}
			}
			So(items.HasPhrase("Consumer").Titles(), ShouldResemble, []string{
				"Consumer Price Index: All Items", "Consumer Price Index: Food"})
			So(items.ExcludePhrases("Consumer", "GDP").Titles(), ShouldResemble,
				[]string{"Unemployment Rate"})
		})

		Convey("OnlyInclude keeps any match in order", func() {
			So(items.OnlyInclude("GDP", "Food").IDs(), ShouldResemble, []string{"B", "D"})
			So(items.OnlyInclude().IDs(), ShouldResemble, []string{})
			So(items.OnlyInclude("Rate").IDs(), ShouldResemble, items.HasPhrase("Rate").IDs())
		})

		Convey("EqualsOneOf is idempotent", func() {
			once := items.EqualsOneOf("Real GDP", "Unemployment Rate", "Missing")
			So(once.IDs(), ShouldResemble, []string{"C", "D"})
			So(once.EqualsOneOf("Real GDP", "Unemployment Rate", "Missing"), ShouldResemble, once)
		})

		Convey("filters do not modify the receiver", func() {
			before := append(SeriesItems{}, items...)
			items.ExcludePhrases("Consumer")
			items.EqualsOneOf("Real GDP")
			So(items, ShouldResemble, before)
		})
	})

	Convey("Date", t, func() {
		d, err := NewDateFromString("2013-07-31 09:26:16-05")
		So(err, ShouldBeNil)
		So(d.String(), ShouldEqual, "2013-07-31")
		So(d.InRange(NewDate(2013, 1, 1), Date{}), ShouldBeTrue)
		So(d.InRange(Date{}, NewDate(2013, 7, 30)), ShouldBeFalse)

		var d2 Date
		So(json.Unmarshal([]byte(`"2020-02-29"`), &d2), ShouldBeNil)
		So(d2, ShouldResemble, NewDate(2020, 2, 29))
		data, err := json.Marshal(d2)
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `"2020-02-29"`)

		_, err = NewDateFromString("yesterday")
		So(err, ShouldNotBeNil)

		var d3 Date
		So(d3.InitMessage(map[string]any{}), ShouldBeNil)
		So(d3.IsZero(), ShouldBeTrue)
		So(d3.InitMessage(map[string]any{"year": 2020.0}), ShouldNotBeNil)
	})

	Convey("ID", t, func() {
		var id ID
		So(id.InitMessage("A1"), ShouldBeNil)
		So(id, ShouldEqual, ID("A1"))
		So(id.InitMessage(12.0), ShouldBeNil)
		So(id, ShouldEqual, ID("12"))
		So(id.InitMessage(map[string]any{}), ShouldBeNil)
		So(id, ShouldEqual, ID(""))
		So(id.InitMessage(map[string]any{"id": 5.0}), ShouldNotBeNil)
		So(id.InitMessage(true), ShouldNotBeNil)
	})
}
