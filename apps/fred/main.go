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

// Command fred queries the FRED economic data API and prints the results as
// a text table or CSV.
//
// The API key is read from the config file (-config), or else from the
// FRED_API_KEY environment variable, which may also be set in a .env file.
//
// Examples:
//
//   fred -series GNPCA
//   fred -observations UNRATE -start 2020-01-01 -summary
//   fred -search "consumer price index" -exclude "Food,Energy" -limit 20
//   fred -query series.json -csv
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/fred/api"
	"github.com/stockparfait/fred/message"
	"github.com/stockparfait/fred/schema"
	"github.com/stockparfait/fred/stats"
	"github.com/stockparfait/fred/table"
	"github.com/stockparfait/logging"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	Config   string // optional TOML config file
	EnvFile  string // default: .env
	LogLevel logging.Level
	CSV      bool // print CSV; default: text
	Limit    int  // max. number of results; 0 = server default
	Start    string
	End      string
	Summary  bool     // summarize observations instead of listing them
	Exclude  []string // phrases to exclude from series titles
	Include  []string // phrases required in series titles
	// Exactly one of the following must be present.
	Series         string
	Observations   string
	Search         string
	TagsSeries     []string
	SeriesTags     string
	Category       int // -1 when not set
	CategorySeries int // -1 when not set
	Release        int // -1 when not set
	Releases       bool
	Sources        bool
	Query          string // JSON file with a list of series IDs
}

// listFlag is a comma-separated list of strings.
type listFlag struct {
	list *[]string
}

var _ flag.Value = listFlag{}

func (l listFlag) String() string {
	if l.list == nil {
		return ""
	}
	return strings.Join(*l.list, ",")
}

func (l listFlag) Set(s string) error {
	*l.list = nil
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			*l.list = append(*l.list, p)
		}
	}
	return nil
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("fred", flag.ExitOnError)
	fs.StringVar(&flags.Config, "config", "", "TOML config file with the API key")
	fs.StringVar(&flags.EnvFile, "env", ".env", "file with environment variables, if exists")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")
	fs.IntVar(&flags.Limit, "limit", 0, "maximum number of results")
	fs.StringVar(&flags.Start, "start", "", "first observation date, YYYY-MM-DD")
	fs.StringVar(&flags.End, "end", "", "last observation date, YYYY-MM-DD")
	fs.BoolVar(&flags.Summary, "summary", false, "print summary statistics of observations")
	fs.Var(listFlag{&flags.Exclude}, "exclude", "comma-separated phrases to exclude from series titles")
	fs.Var(listFlag{&flags.Include}, "include", "comma-separated phrases to require in series titles")

	fs.StringVar(&flags.Series, "series", "", "series ID to describe")
	fs.StringVar(&flags.Observations, "observations", "", "series ID to print observations for")
	fs.StringVar(&flags.Search, "search", "", "search text for series")
	fs.Var(listFlag{&flags.TagsSeries}, "tags-series", "comma-separated tags to list series for")
	fs.StringVar(&flags.SeriesTags, "series-tags", "", "series ID to list tags for")
	fs.IntVar(&flags.Category, "category", -1, "category ID to list child categories for")
	fs.IntVar(&flags.CategorySeries, "category-series", -1, "category ID to list series for")
	fs.IntVar(&flags.Release, "release", -1, "release ID to list series for")
	fs.BoolVar(&flags.Releases, "releases", false, "list all releases")
	fs.BoolVar(&flags.Sources, "sources", false, "list all sources")
	fs.StringVar(&flags.Query, "query", "", "JSON file with series IDs to summarize")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}
	kinds := 0
	for _, present := range []bool{
		flags.Series != "",
		flags.Observations != "",
		flags.Search != "",
		len(flags.TagsSeries) > 0,
		flags.SeriesTags != "",
		flags.Category >= 0,
		flags.CategorySeries >= 0,
		flags.Release >= 0,
		flags.Releases,
		flags.Sources,
		flags.Query != "",
	} {
		if present {
			kinds++
		}
	}
	if kinds != 1 {
		return nil, errors.Reason("expected exactly one of -series, -observations, " +
			"-search, -tags-series, -series-tags, -category, -category-series, " +
			"-release, -releases, -sources or -query")
	}
	if flags.Summary && flags.Observations == "" {
		return nil, errors.Reason("-summary requires -observations")
	}
	return &flags, nil
}

type Config struct {
	Key     string `toml:"key"`      // user key for FRED
	Limit   int    `toml:"limit"`    // default for -limit
	BaseURL string `toml:"base_url"` // default: api.URL
}

func parseConfig(filePath string) (*Config, error) {
	var c Config
	if filePath == "" {
		return &c, nil
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	return &c, nil
}

// envLookup returns a lookup function for environment variables, with the
// process environment taking precedence over the env file.
func envLookup(envFile string) (func(string) (string, bool), error) {
	envs := map[string]string{}
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if envs, err = godotenv.Read(envFile); err != nil {
				return nil, errors.Annotate(err, "failed to read %s", envFile)
			}
		}
	}
	return func(k string) (string, bool) {
		if v, ok := os.LookupEnv(k); ok {
			return v, true
		}
		v, ok := envs[k]
		return v, ok
	}, nil
}

// QueryConfig is the content of the -query file, e.g.:
//
//   {"series": ["GNPCA", "UNRATE"], "start": "2000-01-01"}
type QueryConfig struct {
	Series []string    `json:"series" required:"true"`
	Start  schema.Date `json:"start"`
	End    schema.Date `json:"end"`
}

var _ message.Message = &QueryConfig{}

func (q *QueryConfig) InitMessage(js any) error {
	if err := message.Init(q, js); err != nil {
		return errors.Annotate(err, "failed to init QueryConfig")
	}
	if len(q.Series) == 0 {
		return errors.Reason("no series in the query")
	}
	return nil
}

func dateOpts(start, end schema.Date) []api.Param {
	var opts []api.Param
	if !start.IsZero() {
		opts = append(opts, api.ObservationStart(start))
	}
	if !end.IsZero() {
		opts = append(opts, api.ObservationEnd(end))
	}
	return opts
}

func parseDates(flags *Flags) (start, end schema.Date, err error) {
	if start, err = schema.NewDateFromString(flags.Start); err != nil {
		err = errors.Annotate(err, "invalid -start")
		return
	}
	if end, err = schema.NewDateFromString(flags.End); err != nil {
		err = errors.Annotate(err, "invalid -end")
	}
	return
}

func filterSeries(flags *Flags, items schema.SeriesItems) schema.SeriesItems {
	if len(flags.Include) > 0 {
		items = items.OnlyInclude(flags.Include...)
	}
	if len(flags.Exclude) > 0 {
		items = items.ExcludePhrases(flags.Exclude...)
	}
	return items
}

func seriesTable(flags *Flags, items schema.SeriesItems) *table.Table {
	return table.FromRows(schema.SeriesItemHeader(), filterSeries(flags, items))
}

func observationsTable(ctx context.Context, flags *Flags, id string) (*table.Table, error) {
	start, end, err := parseDates(flags)
	if err != nil {
		return nil, err
	}
	res, err := api.SeriesObservations(ctx, id, dateOpts(start, end)...)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch observations for %s", id)
	}
	logging.Infof(ctx, "fetched %d observations for %s", len(res.Observations), id)
	if !flags.Summary {
		return table.FromRows(schema.ObservationHeader(), res.Observations), nil
	}
	ts, err := stats.FromObservations(res.Observations)
	if err != nil {
		return nil, errors.Annotate(err, "invalid observations for %s", id)
	}
	return table.FromRows([]string{"Statistic", id}, ts.Summarize().Rows()), nil
}

// summaryRow is a one-line summary of a series in a -query output.
type summaryRow struct {
	ID      string
	Summary stats.Summary
	Err     error
}

func summaryHeader() []string {
	return []string{"Series", "Count", "Start", "End", "Last", "Min", "Max", "Mean", "Error"}
}

func (r summaryRow) CSV() []string {
	if r.Err != nil {
		return []string{r.ID, "", "", "", "", "", "", "", r.Err.Error()}
	}
	s := r.Summary
	f := func(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }
	return []string{
		r.ID, strconv.Itoa(s.Count), s.Start.String(), s.End.String(),
		f(s.Last), f(s.Min), f(s.Max), f(s.Mean), "",
	}
}

func queryTable(ctx context.Context, fileName string) (*table.Table, error) {
	var q QueryConfig
	if err := message.FromFile(&q, fileName); err != nil {
		return nil, errors.Annotate(err, "failed to read query from %s", fileName)
	}
	opts := dateOpts(q.Start, q.End)
	summarize := func(ctx context.Context, id string) (stats.Summary, error) {
		res, err := api.SeriesObservations(ctx, id, opts...)
		if err != nil {
			return stats.Summary{}, err
		}
		ts, err := stats.FromObservations(res.Observations)
		if err != nil {
			return stats.Summary{}, err
		}
		return ts.Summarize(), nil
	}
	tbl := table.NewTable(summaryHeader()...)
	for i, r := range api.Collect(api.Map(ctx, q.Series, summarize)) {
		if r.Err != nil {
			logging.Warningf(ctx, "failed to summarize %s: %s", q.Series[i], r.Err.Error())
		}
		tbl.AddRow(summaryRow{ID: q.Series[i], Summary: r.Value, Err: r.Err})
	}
	return tbl, nil
}

func buildTable(ctx context.Context, flags *Flags, limit []api.Param) (*table.Table, error) {
	switch {
	case flags.Series != "":
		res, err := api.Series(ctx, flags.Series)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch series %s", flags.Series)
		}
		return seriesTable(flags, res.Seriess), nil
	case flags.Observations != "":
		return observationsTable(ctx, flags, flags.Observations)
	case flags.Search != "":
		res, err := api.SeriesSearch(ctx, flags.Search, limit...)
		if err != nil {
			return nil, errors.Annotate(err, "failed to search for '%s'", flags.Search)
		}
		logging.Infof(ctx, "found %d series, showing %d", res.Count, len(res.Seriess))
		return seriesTable(flags, res.Seriess), nil
	case len(flags.TagsSeries) > 0:
		res, err := api.TagsSeries(ctx, flags.TagsSeries, limit...)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch series for tags")
		}
		return seriesTable(flags, res.Seriess), nil
	case flags.SeriesTags != "":
		res, err := api.SeriesTags(ctx, flags.SeriesTags, limit...)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch tags for %s", flags.SeriesTags)
		}
		return table.FromRows(schema.TagHeader(), res.Tags), nil
	case flags.Category >= 0:
		res, err := api.CategoryChildren(ctx, flags.Category)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch category %d", flags.Category)
		}
		return table.FromRows(schema.CategoryHeader(), res.Categories), nil
	case flags.CategorySeries >= 0:
		res, err := api.CategorySeries(ctx, flags.CategorySeries, limit...)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch series in category %d",
				flags.CategorySeries)
		}
		return seriesTable(flags, res.Seriess), nil
	case flags.Release >= 0:
		res, err := api.ReleaseSeries(ctx, flags.Release, limit...)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch series of release %d",
				flags.Release)
		}
		return seriesTable(flags, res.Seriess), nil
	case flags.Releases:
		res, err := api.Releases(ctx, limit...)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch releases")
		}
		return table.FromRows(schema.ReleaseHeader(), res.Releases), nil
	case flags.Sources:
		res, err := api.Sources(ctx, limit...)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch sources")
		}
		return table.FromRows(schema.SourceHeader(), res.Sources), nil
	case flags.Query != "":
		return queryTable(ctx, flags.Query)
	}
	return nil, errors.Reason("no query")
}

func printData(ctx context.Context, flags *Flags, w io.Writer) error {
	config, err := parseConfig(flags.Config)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	key := config.Key
	if key == "" {
		lookup, err := envLookup(flags.EnvFile)
		if err != nil {
			return errors.Annotate(err, "failed to load environment")
		}
		if key, err = api.APIKeyFromEnv(lookup); err != nil {
			return errors.Annotate(err, "no API key in config or environment")
		}
	}
	client := api.NewClient(key)
	if config.BaseURL != "" {
		client = client.WithBaseURL(config.BaseURL)
	}
	ctx = api.UseCustomClient(ctx, client)

	limit := flags.Limit
	if limit == 0 {
		limit = config.Limit
	}
	var limitOpts []api.Param
	if limit > 0 {
		limitOpts = append(limitOpts, api.Limit(limit))
	}
	tbl, err := buildTable(ctx, flags, limitOpts)
	if err != nil {
		return err
	}
	p := table.Params{CSV: flags.CSV, LeftAlign: true, MaxColWidth: 60}
	if err := tbl.Write(w, p); err != nil {
		return errors.Annotate(err, "failed to print table")
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := printData(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
