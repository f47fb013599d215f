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

package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stockparfait/fetch"
	"github.com/stockparfait/logging"
	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

const seriesItemJSON = `{
  "id": "%s",
  "realtime_start": "2022-06-01",
  "realtime_end": "2022-06-01",
  "title": "%s",
  "observation_start": "1929-01-01",
  "observation_end": "2021-01-01",
  "frequency": "Annual",
  "frequency_short": "A",
  "units": "Billions of Chained 2012 Dollars",
  "units_short": "Bil. of Chn. 2012 $",
  "seasonal_adjustment": "Not Seasonally Adjusted",
  "seasonal_adjustment_short": "NSA",
  "last_updated": "2022-03-31 07:54:05-05",
  "popularity": 12
}`

func seriesPageJSON(items ...string) string {
	res := `{"realtime_start": "2022-06-01", "realtime_end": "2022-06-01",
  "order_by": "search_rank", "sort_order": "desc",
  "count": 100, "offset": 0, "limit": 3, "seriess": [`
	for i, it := range items {
		if i > 0 {
			res += ","
		}
		res += it
	}
	return res + "]}"
}

func observationsJSON(values ...string) string {
	res := `{"realtime_start": "2022-06-01", "realtime_end": "2022-06-01",
  "observation_start": "1776-07-04", "observation_end": "9999-12-31",
  "units": "lin", "output_type": 1, "file_type": "json",
  "order_by": "observation_date", "sort_order": "asc",
  "count": 3, "offset": 0, "limit": 100000, "observations": [`
	for i, v := range values {
		if i > 0 {
			res += ","
		}
		res += fmt.Sprintf(`{"realtime_start": "2022-06-01", "realtime_end": "2022-06-01",
  "date": "202%d-01-01", "value": "%s"}`, i, v)
	}
	return res + "]}"
}

func TestMain(t *testing.T) {
	t.Parallel()

	tmpdir, tmpdirErr := os.MkdirTemp("", "test_fred_app")
	defer os.RemoveAll(tmpdir)

	Convey("Setup succeeded", t, func() {
		So(tmpdirErr, ShouldBeNil)
	})

	Convey("parseFlags", t, func() {
		Convey("accepts a single query", func() {
			flags, err := parseFlags([]string{
				"-config", "path/to/config.toml", "-log-level", "warning",
				"-search", "gdp", "-exclude", "Real, Nominal", "-limit", "5"})
			So(err, ShouldBeNil)
			So(flags.Config, ShouldEqual, "path/to/config.toml")
			So(flags.LogLevel, ShouldEqual, logging.Warning)
			So(flags.Search, ShouldEqual, "gdp")
			So(flags.Exclude, ShouldResemble, []string{"Real", "Nominal"})
			So(flags.Limit, ShouldEqual, 5)
			So(flags.Category, ShouldEqual, -1)
		})

		Convey("accepts category 0", func() {
			flags, err := parseFlags([]string{"-category", "0"})
			So(err, ShouldBeNil)
			So(flags.Category, ShouldEqual, 0)
		})

		Convey("requires exactly one query", func() {
			_, err := parseFlags([]string{"-csv"})
			So(err, ShouldNotBeNil)
			_, err = parseFlags([]string{"-series", "GNPCA", "-releases"})
			So(err, ShouldNotBeNil)
		})

		Convey("requires observations for summary", func() {
			_, err := parseFlags([]string{"-series", "GNPCA", "-summary"})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("parseConfig", t, func() {
		configPath := filepath.Join(tmpdir, "parse.toml")
		So(testutil.WriteFile(configPath, `key = "secret"
limit = 10
`), ShouldBeNil)
		c, err := parseConfig(configPath)
		So(err, ShouldBeNil)
		So(c, ShouldResemble, &Config{Key: "secret", Limit: 10})

		c, err = parseConfig("")
		So(err, ShouldBeNil)
		So(c, ShouldResemble, &Config{})

		_, err = parseConfig(filepath.Join(tmpdir, "nonexistent.toml"))
		So(err, ShouldNotBeNil)
	})

	Convey("envLookup reads the env file", t, func() {
		envPath := filepath.Join(tmpdir, "test.env")
		So(testutil.WriteFile(envPath, "FRED_APP_TEST_VALUE=fromfile\n"), ShouldBeNil)
		lookup, err := envLookup(envPath)
		So(err, ShouldBeNil)
		v, ok := lookup("FRED_APP_TEST_VALUE")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, "fromfile")

		lookup, err = envLookup(filepath.Join(tmpdir, "missing.env"))
		So(err, ShouldBeNil)
		_, ok = lookup("FRED_APP_TEST_VALUE")
		So(ok, ShouldBeFalse)
	})

	Convey("printData works", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		ctx := fetch.UseClient(context.Background(), server.Client())

		configPath := filepath.Join(tmpdir, "config.toml")
		So(testutil.WriteFile(configPath, fmt.Sprintf(`key = "testkey"
base_url = "%s"
`, server.URL())), ShouldBeNil)

		run := func(args ...string) (string, error) {
			flags, err := parseFlags(append([]string{"-config", configPath}, args...))
			if err != nil {
				return "", err
			}
			var buf bytes.Buffer
			err = printData(ctx, flags, &buf)
			return buf.String(), err
		}

		Convey("series", func() {
			server.ResponseBody = []string{`{"realtime_start": "2022-06-01",
  "realtime_end": "2022-06-01", "seriess": [` +
				fmt.Sprintf(seriesItemJSON, "GNPCA", "Real Gross National Product") + `]}`}
			out, err := run("-series", "GNPCA", "-csv")
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/fred/series")
			So(server.RequestQuery.Get("series_id"), ShouldEqual, "GNPCA")
			So(server.RequestQuery.Get("api_key"), ShouldEqual, "testkey")
			So("\n"+out, ShouldEqual, `
ID,Title,Frequency,Units,Seasonal Adjustment,Start,End,Last Updated,Popularity
GNPCA,Real Gross National Product,Annual,Bil. of Chn. 2012 $,NSA,1929-01-01,2021-01-01,2022-03-31 07:54:05-05,12
`)
		})

		Convey("search with filters and limit", func() {
			server.ResponseBody = []string{seriesPageJSON(
				fmt.Sprintf(seriesItemJSON, "GDPC1", "Real Gross Domestic Product"),
				fmt.Sprintf(seriesItemJSON, "GDP", "Gross Domestic Product"),
				fmt.Sprintf(seriesItemJSON, "GDPPOT", "Real Potential Gross Domestic Product"),
			)}
			out, err := run("-search", "gdp", "-exclude", "Potential", "-limit", "3", "-csv")
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/fred/series/search")
			So(server.RequestQuery.Get("search_text"), ShouldEqual, "gdp")
			So(server.RequestQuery.Get("limit"), ShouldEqual, "3")
			So("\n"+out, ShouldEqual, `
ID,Title,Frequency,Units,Seasonal Adjustment,Start,End,Last Updated,Popularity
GDPC1,Real Gross Domestic Product,Annual,Bil. of Chn. 2012 $,NSA,1929-01-01,2021-01-01,2022-03-31 07:54:05-05,12
GDP,Gross Domestic Product,Annual,Bil. of Chn. 2012 $,NSA,1929-01-01,2021-01-01,2022-03-31 07:54:05-05,12
`)
		})

		Convey("observations", func() {
			server.ResponseBody = []string{observationsJSON("1.5", ".", "3.5")}
			out, err := run("-observations", "UNRATE", "-start", "2020-01-01", "-csv")
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/fred/series/observations")
			So(server.RequestQuery.Get("observation_start"), ShouldEqual, "2020-01-01")
			So("\n"+out, ShouldEqual, `
Date,Value
2020-01-01,1.5
2021-01-01,.
2022-01-01,3.5
`)
		})

		Convey("observations summary", func() {
			server.ResponseBody = []string{observationsJSON("1.5", ".", "3.5")}
			out, err := run("-observations", "UNRATE", "-summary", "-csv")
			So(err, ShouldBeNil)
			So("\n"+out, ShouldEqual, `
Statistic,UNRATE
Count,2
Start,2020-01-01
End,2022-01-01
First,1.5
Last,3.5
Min,1.5
Max,3.5
Mean,2.5
StdDev,1.4142135623730951
Median,1.5
`)
		})

		Convey("query file", func() {
			queryPath := filepath.Join(tmpdir, "query.json")
			So(testutil.WriteFile(queryPath, `{"series": ["A", "B"]}`), ShouldBeNil)
			server.ResponseBody = []string{
				observationsJSON("1", "2"),
				`{"error_code": 400, "error_message": "Bad Request. The series does not exist."}`,
			}
			out, err := run("-query", queryPath, "-csv")
			So(err, ShouldBeNil)
			So("\n"+out, ShouldEqual, `
Series,Count,Start,End,Last,Min,Max,Mean,Error
A,2,2020-01-01,2021-01-01,2,1,2,1.5,
B,,,,,,,,FRED API error 400: Bad Request. The series does not exist.
`)
		})

		Convey("text output", func() {
			server.ResponseBody = []string{`{"categories": [
  {"id": 32991, "name": "Money, Banking, & Finance", "parent_id": 0},
  {"id": 10, "name": "Population", "parent_id": 0}]}`}
			out, err := run("-category", "0")
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/fred/category/children")
			So("\n"+out, ShouldEqual, `
ID    | Name                      | Parent ID
----- | ------------------------- | ---------
32991 | Money, Banking, & Finance | 0
10    | Population                | 0
`)
		})

		Convey("API errors are reported", func() {
			server.ResponseStatus = []int{http.StatusBadRequest}
			server.ResponseBody = []string{`{"error_code":400,"error_message":"Bad Request."}`}
			_, err := run("-series-tags", "NOPE")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Bad Request.")
		})
	})
}
