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
)

// Tag is a FRED tag: a keyword attached to series, such as "usa" or "cpi".
// See https://fred.stlouisfed.org/docs/api/fred/tags.html .
type Tag struct {
	Name        string  `json:"name" required:"true"`
	GroupID     string  `json:"group_id" required:"true"`
	Notes       *string `json:"notes,omitempty"`
	Created     string  `json:"created" required:"true"`
	Popularity  int     `json:"popularity" required:"true"`
	SeriesCount int     `json:"series_count" required:"true"`
}

func (t *Tag) InitMessage(js any) error { return initMessage(t, js) }

// TagHeader is the table header matching Tag.CSV().
func TagHeader() []string {
	return []string{"Name", "Group", "Series Count", "Popularity", "Notes"}
}

// CSV implements table.Row.
func (t Tag) CSV() []string {
	return []string{
		t.Name,
		t.GroupID,
		strconv.Itoa(t.SeriesCount),
		strconv.Itoa(t.Popularity),
		str(t.Notes),
	}
}

// TagsPage is the response of all the endpoints returning tags: tags,
// related_tags, category/tags, category/related_tags, release/tags,
// release/related_tags, series/tags, series/search/tags and
// series/search/related_tags.
type TagsPage struct {
	Page
	Tags []Tag `json:"tags" required:"true"`
}

func (t *TagsPage) InitMessage(js any) error { return initMessage(t, js) }

// Names of the tags in the response order.
func (t *TagsPage) Names() []string {
	names := make([]string, len(t.Tags))
	for i, tag := range t.Tags {
		names[i] = tag.Name
	}
	return names
}

// OneLine joins the tag names into a single comma-separated line.
func (t *TagsPage) OneLine() string {
	return strings.Join(t.Names(), ", ")
}
