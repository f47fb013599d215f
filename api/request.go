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

package api

import (
	"strconv"
	"strings"

	"github.com/stockparfait/fred/schema"
)

// Format of the response body.
type Format int

const (
	FormatJSON Format = iota
	FormatXML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	}
	return "unknown"
}

// Param is a single query parameter. The order of parameters in a request is
// preserved in the URL.
type Param struct {
	Key   string
	Value string
}

// P creates an arbitrary query parameter.
func P(key, value string) Param {
	return Param{Key: key, Value: value}
}

// Limit is the maximum number of results to return.
func Limit(n int) Param { return P("limit", strconv.Itoa(n)) }

// Offset is the index of the first result to return.
func Offset(n int) Param { return P("offset", strconv.Itoa(n)) }

// SortOrder is either "asc" or "desc".
func SortOrder(order string) Param { return P("sort_order", order) }

// OrderBy is the attribute to order results by, e.g. "popularity".
func OrderBy(attr string) Param { return P("order_by", attr) }

func RealtimeStart(d schema.Date) Param { return P("realtime_start", d.String()) }
func RealtimeEnd(d schema.Date) Param   { return P("realtime_end", d.String()) }

func ObservationStart(d schema.Date) Param { return P("observation_start", d.String()) }
func ObservationEnd(d schema.Date) Param   { return P("observation_end", d.String()) }

// Units of observations, e.g. "lin", "chg", "pch".
func Units(u string) Param { return P("units", u) }

// Frequency to aggregate observations to, e.g. "m", "q", "a".
func Frequency(f string) Param { return P("frequency", f) }

// Aggregation method for frequency aggregation: "avg", "sum" or "eop".
func Aggregation(method string) Param { return P("aggregation_method", method) }

// TagNames restricts results to those having all the tags.
func TagNames(tags ...string) Param { return P("tag_names", strings.Join(tags, ";")) }

// SearchType is "full_text" or "series_id".
func SearchType(t string) Param { return P("search_type", t) }

// FilterValue of series/updates: "macro", "regional" or "all".
func FilterValue(v string) Param { return P("filter_value", v) }

// Request to a single FRED endpoint.
type Request struct {
	Path   string // endpoint path relative to /fred/, e.g. "series/tags"
	Params []Param
	Format Format
}

// NewRequest creates a JSON request for the endpoint path.
func NewRequest(path string, params ...Param) *Request {
	return &Request{Path: path, Params: params, Format: FormatJSON}
}

// URL builds the complete request URL:
//
//   <baseURL>/fred/<path>?<k1>=<v1>&...&api_key=<apiKey>&file_type=json
//
// Parameters are written in order without escaping.
func (r *Request) URL(baseURL, apiKey string) (string, error) {
	if r.Path == "" {
		return "", &ConfigurationError{Message: "empty endpoint path"}
	}
	if apiKey == "" {
		return "", &ConfigurationError{Message: "API key is not set"}
	}
	if r.Format != FormatJSON {
		return "", &ConfigurationError{
			Message: "unsupported response format: " + r.Format.String()}
	}
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(baseURL, "/"))
	b.WriteString("/fred/")
	b.WriteString(strings.TrimPrefix(r.Path, "/"))
	b.WriteString("?")
	for _, p := range r.Params {
		b.WriteString(p.Key)
		b.WriteString("=")
		b.WriteString(p.Value)
		b.WriteString("&")
	}
	b.WriteString("api_key=")
	b.WriteString(apiKey)
	b.WriteString("&file_type=")
	b.WriteString(r.Format.String())
	return b.String(), nil
}
